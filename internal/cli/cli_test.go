package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yusufakg/AmiiboGenerator/internal/config"
)

func TestExecuteSync(t *testing.T) {
	payload := `{"amiibo": [{"name": "Mario", "amiiboSeries": "Super Smash Bros.", "head": "00000000", "tail": "00340102"}]}` + strings.Repeat(" ", 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.APIURL = srv.URL

	count, err := ExecuteSync(cfg)
	if err != nil {
		t.Fatalf("ExecuteSync: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !config.FileExists(cfg.DatabasePath()) {
		t.Error("database file not written")
	}
}

func TestExecuteSync_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.APIURL = srv.URL

	if _, err := ExecuteSync(cfg); err == nil {
		t.Fatal("ExecuteSync succeeded against failing server")
	}
}

func TestExecutePurge(t *testing.T) {
	amiiboDir := filepath.Join(t.TempDir(), "amiibo")
	recordDir := filepath.Join(amiiboDir, "Super Smash Bros", "Mario_0000000000340102")
	if err := os.MkdirAll(recordDir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := ExecutePurge(amiiboDir, true); err != nil {
		t.Fatalf("ExecutePurge: %v", err)
	}
	if _, err := os.Stat(amiiboDir); !os.IsNotExist(err) {
		t.Errorf("records survived purge, stat err = %v", err)
	}
}

func TestExecutePurge_NothingToDo(t *testing.T) {
	if err := ExecutePurge(filepath.Join(t.TempDir(), "absent"), true); err != nil {
		t.Fatalf("ExecutePurge on missing dir: %v", err)
	}
}
