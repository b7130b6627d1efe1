// Package app wires the pieces together and owns the process lifecycle.
package app

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yusufakg/AmiiboGenerator/internal/amiibo"
	"github.com/yusufakg/AmiiboGenerator/internal/browser"
	"github.com/yusufakg/AmiiboGenerator/internal/cli"
	"github.com/yusufakg/AmiiboGenerator/internal/config"
	"github.com/yusufakg/AmiiboGenerator/internal/db"
	"github.com/yusufakg/AmiiboGenerator/internal/input"
	"github.com/yusufakg/AmiiboGenerator/internal/media"
	"github.com/yusufakg/AmiiboGenerator/internal/ui"
)

// logMaxBytes caps the log file before it gets rotated aside.
const logMaxBytes = 1024 * 1024

// Run dispatches CLI commands and otherwise starts the interactive browser.
func Run() {
	// 1. Try to handle as a CLI command (e.g. "amiibogen sync"). Either way
	// there is no TUI afterwards.
	if cli.HandleCLI() {
		return
	}

	// 2. If we are here, we are launching the browser.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "could not create data dir: %v\n", err)
		os.Exit(1)
	}

	// Logging goes to a file so it never fights the terminal UI.
	logPath := cfg.LogPath()
	RotateLogIfNeeded(logPath, logMaxBytes)

	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)

	log.Printf("%s %s starting", config.AppName, config.Version)

	// Make sure a database exists before the browser comes up; the first run
	// downloads it.
	store := db.NewStore(cfg.DatabasePath(), cfg.APIURL)
	if err := store.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "could not fetch amiibo database: %v\n", err)
		os.Exit(1)
	}
	cat, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load amiibo database: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %d amiibos from %s", cat.Len(), cfg.DatabasePath())

	session := browser.NewSession(cat, cfg.VisibleItems)
	if cfg.ImagesDefault && !session.ImagesEnabled() {
		session.ToggleImages()
	}

	records := amiibo.NewManager(cfg.AmiiboDir(), media.NewFetcher(cfg.ImageHeight))
	model := ui.NewModel(cfg, session, store, records, input.Nop{})

	program := tea.NewProgram(model, tea.WithAltScreen())
	result, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	if state, ok := result.(ui.Model); ok && state.ExitErr != nil {
		fmt.Fprintf(os.Stderr, "database refresh failed: %v\n", state.ExitErr)
		os.Exit(1)
	}
}
