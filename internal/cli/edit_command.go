package cli

import (
	"context"
	"strings"

	"worklog/internal/api"
	"worklog/internal/errors"
)

// EditCommand handles the edit command: rewrite the comment of the most
// recent entry
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string, desktop bool) error {
	comment := strings.TrimSpace(strings.Join(args, " "))
	if comment == "" {
		return c.errorHandler.Handle("edit entry",
			errors.NewInvalidInputError("comment", comment, "usage: wl edit \"new comment\""))
	}

	status, err := c.app.store.UpdateLast(ctx, comment)
	if err != nil {
		return c.errorHandler.Handle("edit entry", err)
	}

	c.app.notifier(desktop).Notify(api.FormatStatus(status))
	return nil
}
