package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create save directory: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go next to the saves.
	logFile, err := os.OpenFile(filepath.Join(cfg.SaveDir, "console.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.New(logFile, cfg)

	store, err := storage.NewFileStorage(cfg.SaveDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open save directory: %v\n", err)
		os.Exit(1)
	}

	w := world.Default()
	if cfg.WorldFile != "" {
		if w, err = world.LoadFile(cfg.WorldFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load world: %v\n", err)
			os.Exit(1)
		}
	}

	seed := cfg.DiceSeed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed dice: %v\n", err)
			os.Exit(1)
		}
	}
	log.Info("Dice seeded", "seed", seed)
	engine := state.NewEngine(w, dice.NewRand(seed), log)

	ctx := context.Background()
	game, opening, err := OpenGame(ctx, engine, store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(game, opening),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	_, runErr := p.Run()

	if err := game.Save(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save game: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println("Game saved. Farewell, adventurer.")
}
