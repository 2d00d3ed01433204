package cli

import (
	"context"
	"fmt"
	"strings"

	"worklog/internal/errors"
)

// OnCommand handles the on command: close whatever is open, then start
// a new entry
type OnCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewOnCommand creates a new on command handler
func NewOnCommand(app *App) *OnCommand {
	return &OnCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the on command. With ask set the comment is collected
// interactively instead of from the arguments.
func (c *OnCommand) Execute(ctx context.Context, args []string, ask, desktop bool) error {
	comment := strings.Join(args, " ")
	if ask {
		comment = c.app.prompter.Ask("What are you working on?")
	}

	if strings.TrimSpace(comment) == "" {
		return c.errorHandler.Handle("start entry",
			errors.NewInvalidInputError("comment", comment, "usage: wl on \"what you are working on\""))
	}

	// Keep at most one entry open: close before creating.
	if _, err := c.app.store.CloseOpen(ctx); err != nil {
		return c.errorHandler.Handle("start entry", err)
	}

	entry, err := c.app.store.Start(ctx, comment)
	if err != nil {
		return c.errorHandler.Handle("start entry", err)
	}

	c.app.notifier(desktop).Notify(fmt.Sprintf("started working on %s", entry.Comment))
	return nil
}
