package cli

import (
	"context"
	"fmt"

	"worklog/internal/errors"
)

// ListCommand handles the list command: per-entry listing since an
// optional date, defaulting to today
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	cutoff := c.app.today()
	if len(args) > 0 {
		parsed, err := parseCutoffDate(args[0])
		if err != nil {
			return c.errorHandler.Handle("list entries",
				errors.NewInvalidInputError("date", args[0], "expected YYYY-MM-DD"))
		}
		cutoff = parsed
	}

	lines, err := c.app.reporter.ListSince(ctx, cutoff, false)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	for _, line := range lines {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
