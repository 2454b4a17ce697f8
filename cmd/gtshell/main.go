package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"gtshell/internal/config"
	"gtshell/internal/trace"
	"gtshell/internal/ui"
)

func run(args []string) error {
	cfg, err := config.Parse(args, os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; log to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "gtshell")
		if err != nil {
			return errors.Wrapf(err, "open debug log %s", cfg.DebugLog)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	provider, err := trace.NewProvider(ctx, os.Getenv)
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer func() {
		if err := provider.Shutdown(ctx); err != nil {
			log.Printf("main: %v", err)
		}
	}()

	tracer := trace.NewNavigation(provider)
	log.Printf("main: session %s, tracing enabled=%v", tracer.SessionID(), provider.Enabled())

	model := ui.NewAppModel(cfg, tracer).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gtshell: %v\n", err)
		os.Exit(1)
	}
}
