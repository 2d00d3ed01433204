package main

import (
	"fmt"
	"os"

	"worklog/internal/api"
	"worklog/internal/cli"
	"worklog/internal/clock"
	"worklog/internal/config"
	"worklog/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	store := api.New(repo, clock.System{})
	app := cli.NewApp(store, cfg)

	if err := cli.NewRootCommand(app, cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
