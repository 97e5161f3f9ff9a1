package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/detective-quest/internal/config"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var cs store.CaseStore
	switch cfg.CaseStore {
	case config.StoreRedis:
		rs, err := store.NewRedisStore(cfg.RedisURL, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create case store: %v\n", err)
			os.Exit(1)
		}
		cs = rs
	case config.StoreFS:
		cs = store.NewFSStore(cfg.DataDir, log)
	default:
		fmt.Fprintf(os.Stderr, "Invalid CASE_STORE %q (use fs or redis)\n", cfg.CaseStore)
		os.Exit(1)
	}
	defer func() {
		_ = cs.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := cs.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Case store unavailable: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(cs, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
