package cli

import (
	"io"
	"os"
	"time"

	"worklog/internal/api"
	"worklog/internal/clock"
	"worklog/internal/config"
	"worklog/internal/notify"
	"worklog/internal/prompt"
	"worklog/internal/report"
	"worklog/internal/validation"
)

// App bundles the collaborators every command handler needs: the entry
// store, the reporter derived from it, the prompt and notification
// collaborators, and the clock used to resolve "today".
type App struct {
	store    api.Store
	reporter *report.Reporter
	prompter prompt.Prompter
	config   *config.Config
	clk      clock.Clock
	out      io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(store api.Store, cfg *config.Config) *App {
	return &App{
		store:    store,
		reporter: report.NewReporter(store),
		prompter: prompt.NewInteractive(),
		config:   cfg,
		clk:      clock.System{},
		out:      os.Stdout,
	}
}

// notifier returns the message sink selected by the --notify flag:
// a desktop pop-up when set, plain terminal output otherwise.
func (a *App) notifier(desktop bool) notify.Notifier {
	if desktop {
		return notify.NewDesktop(a.config.Notify.Command, a.config.Notify.Title)
	}
	return notify.NewTerminal(a.out)
}

// today returns the start of the current calendar day.
func (a *App) today() time.Time {
	return api.MidnightOf(a.clk.Now())
}

// parseCutoffDate parses a YYYY-MM-DD argument into the midnight
// instant that starts that day.
func parseCutoffDate(arg string) (time.Time, error) {
	return time.ParseInLocation(validation.DateFormat, arg, time.Local)
}
