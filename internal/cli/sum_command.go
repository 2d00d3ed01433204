package cli

import (
	"context"
	"fmt"
	"time"

	"worklog/internal/errors"
)

// SumCommand handles the sum command: daily sums since an optional date
type SumCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSumCommand creates a new sum command handler
func NewSumCommand(app *App) *SumCommand {
	return &SumCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the sum command
func (c *SumCommand) Execute(ctx context.Context, args []string) error {
	// Without a date the sum spans the whole store.
	var cutoff time.Time
	if len(args) > 0 {
		parsed, err := parseCutoffDate(args[0])
		if err != nil {
			return c.errorHandler.Handle("sum entries",
				errors.NewInvalidInputError("date", args[0], "expected YYYY-MM-DD"))
		}
		cutoff = parsed
	}

	lines, err := c.app.reporter.SumSince(ctx, cutoff)
	if err != nil {
		return c.errorHandler.Handle("sum entries", err)
	}

	for _, line := range lines {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
