package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/kbtrack/internal/cli"
	"github.com/alexanderramin/kbtrack/internal/config"
	"github.com/alexanderramin/kbtrack/internal/db"
	"github.com/alexanderramin/kbtrack/internal/repository"
	"github.com/alexanderramin/kbtrack/internal/service"
	"github.com/alexanderramin/kbtrack/internal/template"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logOut, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logOut.Close()

	firstWorkout, err := cfg.Workout()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := repository.NewSQLiteSlotStore(database)
	templates := template.Default()

	ctx := context.Background()
	tracker, err := service.NewTracker(ctx, service.TrackerDeps{
		Store:     store,
		Drafts:    store,
		Templates: templates,
	},
		service.WithObserver(service.NewLogUseCaseObserver(logger)),
		service.WithFirstWorkout(firstWorkout),
	)
	if err != nil {
		return err
	}

	app := &cli.App{
		Tracker:   tracker,
		Templates: templates,
		BeforeTUI: logOut.DetachTerminal,
	}

	// Detect interactive terminal for the bare "kbtrack" entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
