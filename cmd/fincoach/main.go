package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/api"
	"github.com/santoshipatro12/ai-financial-coach/internal/config"
	"github.com/santoshipatro12/ai-financial-coach/internal/controller"
	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/tui"
	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.Log)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), logger)
	store := state.NewStore()
	chat := state.NewTranscript()
	surface := tui.NewSurface()

	// The synchronizer is subscribed to the store, so every committed
	// mutation re-renders onto the surface before the flow reports back.
	sync := view.NewSynchronizer(surface, surface, surface, cfg.UI.CurrencySymbol, logger)
	store.Subscribe(sync.Render)
	sync.Render(store.Snapshot()) // initial paint of the zero state

	ctrl := controller.New(client, store, chat, surface, logger)

	m := tui.New(ctrl, store, chat, surface, tui.Options{
		ExportDir: cfg.Export.Dir,
		UploadDir: ".",
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger sends logs to the configured file; stdout belongs to the UI.
// A broken log path degrades to a silent logger rather than failing startup.
func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	logger.SetOutput(f)
	return logger
}
