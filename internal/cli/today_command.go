package cli

import (
	"context"
	"fmt"
)

// TodayCommand handles the today command: daily sum for the current day
type TodayCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTodayCommand creates a new today command handler
func NewTodayCommand(app *App) *TodayCommand {
	return &TodayCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the today command
func (c *TodayCommand) Execute(ctx context.Context, args []string) error {
	lines, err := c.app.reporter.SumSince(ctx, c.app.today())
	if err != nil {
		return c.errorHandler.Handle("sum today", err)
	}

	for _, line := range lines {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
