// Package db keeps the local copy of the amiibo catalog database fresh.
package db

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/yusufakg/AmiiboGenerator/internal/catalog"
	"github.com/yusufakg/AmiiboGenerator/internal/config"
)

// minSize is the smallest plausible payload. Anything shorter is an error
// page or a truncated download, not a catalog.
const minSize = 100

const userAgent = config.AppName + "/2.0"

// Store manages the database file on disk: downloading it, refreshing it
// and loading it into a catalog.
type Store struct {
	Path   string
	URL    string
	Client *http.Client
}

// NewStore creates a Store for the given file path and API URL.
func NewStore(path, url string) *Store {
	return &Store{
		Path: path,
		URL:  url,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Check ensures a usable database file exists, downloading one if the file
// is missing or too small to be real.
func (s *Store) Check() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if info, err := os.Stat(s.Path); err == nil && info.Size() > minSize {
		return nil
	}

	return s.Download()
}

// Update discards the current database file and downloads a fresh one.
func (s *Store) Update() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old database: %w", err)
	}
	return s.Download()
}

// Load parses the database file into a catalog.
func (s *Store) Load() (*catalog.Catalog, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer f.Close()

	cat, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database: %w", err)
	}
	return cat, nil
}

// Download fetches the database over HTTP and writes it atomically via a
// temp file. A failed download never leaves a partial file behind.
func (s *Store) Download() error {
	log.Printf("downloading database from %s", s.URL)

	req, err := http.NewRequest("GET", s.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	tmpPath := s.Path + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write database: %w", err)
	}
	if written < minSize {
		os.Remove(tmpPath)
		return fmt.Errorf("downloaded file too small (%d bytes)", written)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move database into place: %w", err)
	}

	log.Printf("database saved to %s (%d bytes)", s.Path, written)
	return nil
}
