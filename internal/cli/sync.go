package cli

import (
	"fmt"
	"os"

	"github.com/yusufakg/AmiiboGenerator/internal/config"
	"github.com/yusufakg/AmiiboGenerator/internal/db"
)

// HandleSyncCommand processes the 'amiibogen sync' command.
func HandleSyncCommand() {
	cfg := loadConfigOrExit()

	fmt.Printf("Downloading database from %s...\n", cfg.APIURL)
	count, err := ExecuteSync(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Database saved to %s (%d amiibos)\n", cfg.DatabasePath(), count)
	os.Exit(0)
}

// ExecuteSync downloads a fresh database and reports how many entries it
// holds. It is exported so internal commands can call it without spawning a
// subprocess.
func ExecuteSync(cfg config.Config) (int, error) {
	store := db.NewStore(cfg.DatabasePath(), cfg.APIURL)
	if err := store.Update(); err != nil {
		return 0, err
	}
	cat, err := store.Load()
	if err != nil {
		return 0, err
	}
	return cat.Len(), nil
}
