// Package cli implements the non-interactive commands: refreshing the
// database, purging generated records and printing version info. Anything
// else falls through to the browser.
package cli

import (
	"fmt"
	"os"

	"github.com/yusufakg/AmiiboGenerator/internal/config"
)

// HandleCLI checks if the program was invoked with CLI arguments (not TUI mode).
// Returns true if a CLI command was handled, false if it should proceed to TUI.
func HandleCLI() bool {
	if len(os.Args) <= 1 {
		return false
	}

	command := os.Args[1]

	switch command {
	case "sync", "--sync":
		HandleSyncCommand()
		return true
	case "purge", "--purge":
		HandlePurgeCommand()
		return true
	case "version", "--version", "-v":
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return true
	case "help", "--help", "-h":
		PrintUsage()
		return true
	default:
		return false
	}
}

// PrintUsage prints the top-level command overview.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, "Usage: amiibogen [command]\n")
	fmt.Fprintf(os.Stderr, "\nWithout a command the interactive browser starts.\n")
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  sync       download a fresh amiibo database\n")
	fmt.Fprintf(os.Stderr, "  purge      remove all generated amiibo records\n")
	fmt.Fprintf(os.Stderr, "  version    print the version\n")
	fmt.Fprintf(os.Stderr, "  help       show this help\n")
}

// loadConfigOrExit loads the runtime config, exiting with an error message
// when the config file on disk is malformed.
func loadConfigOrExit() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
