package cli

import (
	"context"

	"worklog/internal/api"
)

// ResetCommand handles the reset command: delete the most recent entry
type ResetCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string, desktop bool) error {
	status, err := c.app.store.ResetLast(ctx)
	if err != nil {
		return c.errorHandler.Handle("reset entry", err)
	}

	c.app.notifier(desktop).Notify(api.FormatStatus(status))
	return nil
}
