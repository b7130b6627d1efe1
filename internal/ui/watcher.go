package ui

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// WatchDatabaseCmd returns a command that blocks until the database file
// changes on disk, then reports it. Another tool (or a second session) may
// replace the file while the browser is open; the footer shows a hint so the
// user knows a refresh is worth it.
func WatchDatabaseCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("Failed to create file watcher: %v", err)
			return nil
		}

		dir := filepath.Dir(dbPath)
		if err := watcher.Add(dir); err != nil {
			log.Printf("Failed to watch data directory: %v", err)
			watcher.Close()
			return nil
		}

		log.Printf("Watching for database changes in: %s", dir)

		// Block and wait for the next relevant event
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					watcher.Close()
					return nil
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
					continue
				}

				// Only the database file itself matters, not the log or config
				if filepath.Base(event.Name) != filepath.Base(dbPath) {
					continue
				}

				log.Printf("Detected change in: %s", event.Name)
				watcher.Close()
				return DatabaseChangedMsg{Path: event.Name}

			case err, ok := <-watcher.Errors:
				if !ok {
					watcher.Close()
					return nil
				}
				log.Printf("File watcher error: %v", err)
			}
		}
	}
}
