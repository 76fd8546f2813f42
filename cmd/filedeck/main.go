package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filedeck/internal/config"
	"filedeck/internal/layoutstore"
	"filedeck/internal/telemetry"
	"filedeck/internal/ui"
)

func main() {
	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx)
	if err != nil {
		log.Printf("telemetry: %v", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "filedeck: %v\n", err)
		os.Exit(1)
	}

	store, err := layoutstore.NewStore(cfg.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filedeck: layout store: %v\n", err)
		os.Exit(1)
	}

	model := ui.NewAppModel(cfg, store)
	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, runErr := p.Run()

	model.Shutdown()
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
