package cli

import (
	"context"
	"fmt"

	"worklog/internal/report"
)

// DoneCommand handles the done command: close every open entry and
// report what was worked on
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string, desktop bool) error {
	closed, err := c.app.store.CloseOpen(ctx)
	if err != nil {
		return c.errorHandler.Handle("close entry", err)
	}

	sink := c.app.notifier(desktop)
	if len(closed) == 0 {
		sink.Notify("no open entry")
		return nil
	}

	now := c.app.clk.Now()
	for _, entry := range closed {
		elapsed := int64(entry.Elapsed(now).Seconds())
		sink.Notify(fmt.Sprintf("worked %s on %s", report.FormatSeconds(elapsed), entry.Comment))
	}
	return nil
}
