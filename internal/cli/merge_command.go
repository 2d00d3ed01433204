package cli

import (
	"context"
	"fmt"
	"strconv"

	"worklog/internal/errors"
)

// MergeCommand handles the merge command: collapse two or more entries
// into the first one
type MergeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewMergeCommand creates a new merge command handler
func NewMergeCommand(app *App) *MergeCommand {
	return &MergeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the merge command
func (c *MergeCommand) Execute(ctx context.Context, args []string, desktop bool) error {
	if len(args) < 2 {
		return c.errorHandler.Handle("merge entries",
			errors.NewInvalidInputError("ids", args, "usage: wl merge <id> <id>..."))
	}

	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return c.errorHandler.Handle("merge entries",
				errors.NewInvalidInputError("id", arg, "entry ids must be numeric"))
		}
		ids = append(ids, id)
	}

	if err := c.app.store.Merge(ctx, ids); err != nil {
		return c.errorHandler.Handle("merge entries", err)
	}

	c.app.notifier(desktop).Notify(fmt.Sprintf("merged %d entries into %d", len(ids), ids[0]))
	return nil
}
