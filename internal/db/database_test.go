package db

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// validPayload is a minimal catalog body padded past the size floor.
func validPayload() string {
	padding := strings.Repeat(" ", 200)
	return `{"amiibo": [{"name": "Mario", "amiiboSeries": "Super Smash Bros.", "head": "00000000", "tail": "00340102"}]}` + padding
}

func testStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStore(filepath.Join(t.TempDir(), "amiibos.json"), srv.URL)
}

func TestCheck_DownloadsWhenMissing(t *testing.T) {
	var gotUA string
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, validPayload())
	}))

	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if gotUA != "AmiiboGenerator/2.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	cat, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("Len = %d, want 1", cat.Len())
	}
}

func TestCheck_KeepsExistingFile(t *testing.T) {
	hits := 0
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, validPayload())
	}))

	if err := os.WriteFile(s.Path, []byte(validPayload()), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if hits != 0 {
		t.Errorf("server hit %d times, want 0", hits)
	}
}

func TestCheck_RedownloadsTinyFile(t *testing.T) {
	hits := 0
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, validPayload())
	}))

	if err := os.WriteFile(s.Path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestUpdate_ReplacesFile(t *testing.T) {
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, validPayload())
	}))

	if err := os.WriteFile(s.Path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != validPayload() {
		t.Error("file was not replaced")
	}
}

func TestDownload_RejectsBadStatus(t *testing.T) {
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))

	if err := s.Download(); err == nil {
		t.Fatal("Download succeeded on 404")
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind, stat err = %v", err)
	}
}

func TestDownload_RejectsTinyBody(t *testing.T) {
	s := testStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{}")
	}))

	if err := s.Download(); err == nil {
		t.Fatal("Download succeeded on tiny body")
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind, stat err = %v", err)
	}
	if _, err := os.Stat(s.Path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind, stat err = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.json"), "http://unused")
	if _, err := s.Load(); err == nil {
		t.Fatal("Load succeeded on missing file")
	}
}
