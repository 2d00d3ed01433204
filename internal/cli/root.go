package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worklog/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "wl",
		Short: "A command-line work log",
		Long: `worklog (wl) keeps a log of what you worked on and for how long.

EXAMPLES:
  wl on "reviewing the parser"    # Start working on something
  wl done                         # Stop working, see the elapsed time
  wl resume                       # Start again on the last thing
  wl resume 12                    # Start again on entry 12
  wl today                        # Today's total
  wl sum 2026-08-01               # Daily totals since a date
  wl list                         # Today's entries
  wl since 2026-08-01             # Entries since a date, with dates
  wl edit "what it really was"    # Fix the last comment
  wl merge 12 14 15               # Collapse entries into entry 12
  wl reset                        # Delete the last entry

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  WL_DB_DIR              Database directory (default: ~/.worklog)
  WL_DB_FILENAME         Database filename (default: worklog.db)
  WL_DB_QUERY_TIMEOUT    Query timeout (default: 10s)
  WL_NOTIFY_COMMAND      Desktop notification command (default: notify-send)
  WL_APP_TIMEOUT         Application timeout (default: 60s)
  WL_DEBUG               Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Bool("notify", false, "Report through the desktop notifier instead of stdout")

	flags.String("db-dir", "", "Database directory (overrides WL_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WL_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WL_DB_QUERY_TIMEOUT)")
	flags.String("notify-command", "", "Desktop notification command (overrides WL_NOTIFY_COMMAND)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides WL_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WL_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	onCmd := &cobra.Command{
		Use:   "on [comment]",
		Short: "Start working on something",
		Long: `Close any open entry and start a new one with the given comment.

Examples:
  wl on "reviewing the parser"
  wl on --ask                  # Prompt for the comment interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			ask, _ := cmd.Flags().GetBool("ask")
			return NewOnCommand(r.app).Execute(ctx, args, ask, r.desktopNotify())
		},
	}
	onCmd.Flags().Bool("ask", false, "Prompt interactively for the comment")

	doneCmd := &cobra.Command{
		Use:   "done",
		Short: "Stop working",
		Long:  "Close any open entry and report how long you worked on it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDoneCommand(r.app).Execute(ctx, args, r.desktopNotify())
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume [id]",
		Short: "Start again on a previous entry",
		Long: `Close any open entry and start a new one copying the comment of a
previous entry. Without an id the most recent entry is resumed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewResumeCommand(r.app).Execute(ctx, args, r.desktopNotify())
		},
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's total",
		Long:  "Show the summed time worked today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewTodayCommand(r.app).Execute(ctx, args)
		},
	}

	sumCmd := &cobra.Command{
		Use:   "sum [date]",
		Short: "Show daily totals",
		Long: `Show summed time per day. Without a date the whole log is summed;
with a YYYY-MM-DD date only days from that date on are included.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSumCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [date]",
		Short: "List entries",
		Long: `List entries one per line. Without a date only today's entries are
listed; with a YYYY-MM-DD date all entries from that date on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	sinceCmd := &cobra.Command{
		Use:   "since <date>",
		Short: "List entries since a date",
		Long:  "List entries from the given YYYY-MM-DD date on, prefixed with their date.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSinceCommand(r.app).Execute(ctx, args)
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the last entry",
		Long:  "Delete the most recently created entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewResetCommand(r.app).Execute(ctx, args, r.desktopNotify())
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <comment>",
		Short: "Rewrite the last entry's comment",
		Long:  "Replace the comment of the most recent entry, keeping its times.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(r.app).Execute(ctx, args, r.desktopNotify())
		},
	}

	mergeCmd := &cobra.Command{
		Use:   "merge <id> <id>...",
		Short: "Merge entries into one",
		Long: `Merge two or more entries into the first one. The merged entry spans
the summed time of all listed entries and carries their comments; the
other entries are deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewMergeCommand(r.app).Execute(ctx, args, r.desktopNotify())
		},
	}

	r.cmd.AddCommand(
		onCmd,
		doneCmd,
		resumeCmd,
		todayCmd,
		sumCmd,
		listCmd,
		sinceCmd,
		resetCmd,
		editCmd,
		mergeCmd,
	)
}

// desktopNotify reports whether the persistent --notify flag was set
func (r *RootCommand) desktopNotify() bool {
	notify, _ := r.cmd.PersistentFlags().GetBool("notify")
	return notify
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if notifyCommand, _ := flags.GetString("notify-command"); notifyCommand != "" {
		r.config.Notify.Command = notifyCommand
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
