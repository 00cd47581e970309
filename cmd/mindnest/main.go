package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"mindnest/internal/chat"
	"mindnest/internal/config"
	"mindnest/internal/logging"
	"mindnest/internal/store"
	"mindnest/internal/ui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Build(cfg.Log.Path, cfg.Log.Debug)
	defer logger.Sync() //nolint:errcheck

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Data.HistoryPath), 0o755); err != nil {
		log.Fatalf("mkdir history dir: %v", err)
	}

	flags := store.OpenFlags(filepath.Join(cfg.Data.Dir, "flags"))

	history, err := store.OpenHistory(cfg.Data.HistoryPath)
	if err != nil {
		log.Fatalf("open history: %v", err)
	}
	defer history.Close()

	provider := chatProvider(ctx, cfg)

	app := ui.NewApp(cfg, provider, history, flags, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mindnest: %v\n", err)
		os.Exit(1)
	}
}

// chatProvider picks the configured check-in backend, falling back to the
// offline heuristic when gemini is unconfigured or fails to initialize.
func chatProvider(ctx context.Context, cfg config.Config) chat.Provider {
	if cfg.Chat.Provider == "gemini" {
		if key := cfg.APIKey(); key != "" {
			p, err := chat.NewGeminiProvider(ctx, key, cfg.Chat.Model)
			if err == nil {
				return p
			}
			log.Printf("warn: gemini unavailable, using offline replies: %v", err)
		} else {
			log.Printf("warn: %s unset, using offline replies", cfg.Chat.APIKeyEnv)
		}
	}
	return chat.NewHeuristicProvider()
}
