package cli

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// HandlePurgeCommand processes the 'amiibogen purge' command from os.Args.
func HandlePurgeCommand() {
	force := false
	for _, arg := range os.Args[2:] {
		switch arg {
		case "--yes", "-y":
			force = true
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown flag %q\n", arg)
			printPurgeUsage()
			os.Exit(1)
		}
	}

	cfg := loadConfigOrExit()
	if err := ExecutePurge(cfg.AmiiboDir(), force); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func printPurgeUsage() {
	fmt.Fprintf(os.Stderr, "Usage: amiibogen purge [--yes]\n")
	fmt.Fprintf(os.Stderr, "\nRemoves every generated amiibo record under the data directory.\n")
	fmt.Fprintf(os.Stderr, "The database and config are left alone.\n")
}

// ExecutePurge deletes all generated records under amiiboDir. Shows a preview
// and requires confirmation unless force is set.
func ExecutePurge(amiiboDir string, force bool) error {
	log.Printf("Starting purge for: %s", amiiboDir)

	entries, err := os.ReadDir(amiiboDir)
	if os.IsNotExist(err) {
		fmt.Println("✓ Nothing to purge, no records have been generated")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	var seriesDirs []string
	for _, e := range entries {
		if e.IsDir() {
			seriesDirs = append(seriesDirs, e.Name())
		}
	}
	if len(seriesDirs) == 0 {
		fmt.Println("✓ Nothing to purge, no records have been generated")
		return nil
	}
	sort.Strings(seriesDirs)

	fmt.Printf("The following record directories will be DELETED from %s:\n\n", amiiboDir)
	for _, name := range seriesDirs {
		fmt.Printf("  %s/\n", name)
	}
	fmt.Println()

	if !force && !confirmAction("Proceed with purge?") {
		fmt.Println("Purge cancelled")
		log.Printf("Purge cancelled by user")
		return nil
	}

	if err := os.RemoveAll(amiiboDir); err != nil {
		return fmt.Errorf("failed to remove records: %w", err)
	}

	log.Printf("Purged %d series directories from %s", len(seriesDirs), amiiboDir)
	fmt.Printf("✓ Removed %d series directories\n", len(seriesDirs))
	return nil
}

// confirmAction prompts the user to confirm an action.
func confirmAction(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
