package cli

import (
	"context"
	"fmt"
	"strconv"
)

// ResumeCommand handles the resume command: start a new entry copying
// the comment of an earlier one
type ResumeCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context, args []string, desktop bool) error {
	// A missing or malformed id falls back to resuming the most
	// recent entry.
	var id *int64
	if len(args) > 0 {
		if parsed, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			id = &parsed
		}
	}

	if _, err := c.app.store.CloseOpen(ctx); err != nil {
		return c.errorHandler.Handle("resume entry", err)
	}

	comment, err := c.app.store.Resume(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("resume entry", err)
	}

	c.app.notifier(desktop).Notify(fmt.Sprintf("resumed: %s", comment))
	return nil
}
