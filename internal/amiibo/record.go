package amiibo

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yusufakg/AmiiboGenerator/internal/catalog"
)

const (
	flagFilename       = "amiibo.flag"
	descriptorFilename = "amiibo.json"
	thumbnailFilename  = "amiibo.png"
)

// Thumbnailer fetches a remote image and writes it to disk. Thumbnail
// problems never fail a generation; they only cost the picture.
type Thumbnailer interface {
	SaveThumbnail(url, path string) error
}

// writeDate is the {y,m,d} object emuiibo stores for first/last write.
type writeDate struct {
	Y int `json:"y"`
	M int `json:"m"`
	D int `json:"d"`
}

type descriptorID struct {
	GameCharacterID  uint16 `json:"game_character_id"`
	CharacterVariant uint8  `json:"character_variant"`
	FigureType       uint8  `json:"figure_type"`
	Series           uint8  `json:"series"`
	ModelNumber      uint16 `json:"model_number"`
}

// descriptor is the fixed-schema amiibo.json payload.
type descriptor struct {
	Name            string       `json:"name"`
	WriteCounter    int          `json:"write_counter"`
	Version         int          `json:"version"`
	FirstWriteDate  writeDate    `json:"first_write_date"`
	LastWriteDate   writeDate    `json:"last_write_date"`
	MiiCharinfoFile string       `json:"mii_charinfo_file"`
	ID              descriptorID `json:"id"`
	UUID            [10]byte     `json:"uuid"`
}

// Manager is both the record generator and the record eraser for a single
// emuiibo base directory.
type Manager struct {
	BaseDir string
	Thumbs  Thumbnailer

	// seams for tests
	now      func() time.Time
	randByte func() byte
}

// NewManager creates a Manager rooted at the emuiibo amiibo directory.
// thumbs may be nil when image generation is disabled entirely.
func NewManager(baseDir string, thumbs Thumbnailer) *Manager {
	return &Manager{
		BaseDir:  baseDir,
		Thumbs:   thumbs,
		now:      time.Now,
		randByte: func() byte { return byte(rand.Intn(256)) },
	}
}

// SanitizeName strips characters the console filesystem chokes on: anything
// non-ASCII plus ! ? . , ' \ and path separators.
func SanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 128:
		case strings.ContainsRune(`!?.,'\`, r):
		case r == '/':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RecordDir returns the on-disk directory for an entry's record, or "" when
// the entry is missing the fields the path is built from.
func (m *Manager) RecordDir(e *catalog.Entry) string {
	id := e.ID()
	if id == "" || e.AmiiboSeries == "" || e.Name == "" {
		return ""
	}
	series := SanitizeName(e.AmiiboSeries)
	name := SanitizeName(e.Name)
	return filepath.Join(m.BaseDir, series, name+"_"+id)
}

// Exists reports whether the entry's record directory is present.
func (m *Manager) Exists(e *catalog.Entry) bool {
	dir := m.RecordDir(e)
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// Generate writes one record: directory, empty flag file, descriptor JSON
// and, when requested, the thumbnail. It returns false on any failure that
// leaves the record unusable; a failed thumbnail download is only a warning.
// Generating over an existing record is refused.
func (m *Manager) Generate(e *catalog.Entry, withImage bool) bool {
	id, err := ParseID(e.ID())
	if err != nil {
		log.Printf("generate %s: %v", e.DisplayName(), err)
		return false
	}

	dir := m.RecordDir(e)
	if dir == "" {
		log.Printf("generate %s: missing series or name", e.DisplayName())
		return false
	}
	if m.Exists(e) {
		log.Printf("generate %s: record already exists", e.DisplayName())
		return false
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("generate %s: mkdir: %v", e.DisplayName(), err)
		return false
	}

	if err := os.WriteFile(filepath.Join(dir, flagFilename), nil, 0o644); err != nil {
		log.Printf("generate %s: flag file: %v", e.DisplayName(), err)
		return false
	}

	data, err := json.MarshalIndent(m.buildDescriptor(e, id), "", "  ")
	if err != nil {
		log.Printf("generate %s: marshal descriptor: %v", e.DisplayName(), err)
		return false
	}
	if err := os.WriteFile(filepath.Join(dir, descriptorFilename), data, 0o644); err != nil {
		log.Printf("generate %s: descriptor: %v", e.DisplayName(), err)
		return false
	}

	if withImage && e.Image != "" && m.Thumbs != nil {
		if err := m.Thumbs.SaveThumbnail(e.Image, filepath.Join(dir, thumbnailFilename)); err != nil {
			log.Printf("generate %s: thumbnail: %v", e.DisplayName(), err)
		}
	}

	return true
}

func (m *Manager) buildDescriptor(e *catalog.Entry, id ID) descriptor {
	today := m.now().UTC()

	d := descriptor{
		Name:            e.Name,
		MiiCharinfoFile: "mii-charinfo.bin",
		FirstWriteDate:  writeDate{Y: today.Year(), M: int(today.Month()), D: today.Day()},
		ID: descriptorID{
			GameCharacterID:  id.GameCharacterID,
			CharacterVariant: id.CharacterVariant,
			FigureType:       id.FigureType,
			Series:           id.Series,
			ModelNumber:      id.ModelNumber,
		},
	}
	d.LastWriteDate = d.FirstWriteDate

	// Seven random bytes, three zero bytes.
	for i := 0; i < 7; i++ {
		d.UUID[i] = m.randByte()
	}
	return d
}

// Erase removes an entry's record directory recursively.
func (m *Manager) Erase(e *catalog.Entry) bool {
	dir := m.RecordDir(e)
	if dir == "" {
		log.Printf("erase %s: missing series or name", e.DisplayName())
		return false
	}
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("erase %s: %v", e.DisplayName(), err)
		return false
	}
	return true
}

// Prune removes series directories a delete batch emptied out.
// Best effort: errors are ignored.
func (m *Manager) Prune() {
	entries, err := os.ReadDir(m.BaseDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(m.BaseDir, entry.Name())
		children, err := os.ReadDir(dir)
		if err != nil || len(children) > 0 {
			continue
		}
		_ = os.Remove(dir)
	}
}
