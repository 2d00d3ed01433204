package cli

import (
	"context"
	"fmt"

	"worklog/internal/errors"
)

// SinceCommand handles the since command: per-entry listing from a
// required date, each line prefixed with the entry's date
type SinceCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSinceCommand creates a new since command handler
func NewSinceCommand(app *App) *SinceCommand {
	return &SinceCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the since command
func (c *SinceCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.errorHandler.Handle("list entries",
			errors.NewInvalidInputError("date", "", "usage: wl since YYYY-MM-DD"))
	}

	cutoff, err := parseCutoffDate(args[0])
	if err != nil {
		return c.errorHandler.Handle("list entries",
			errors.NewInvalidInputError("date", args[0], "expected YYYY-MM-DD"))
	}

	lines, err := c.app.reporter.ListSince(ctx, cutoff, true)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	for _, line := range lines {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
