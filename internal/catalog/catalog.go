// Package catalog holds the downloaded amiibo catalog: an ordered list of
// entries plus the selection state the browser mutates. Entries come from an
// external document whose schema we only partially control, so the known
// fields are typed and everything else is kept opaque in Extra.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrFormat is returned when the document lacks the expected top-level
// "amiibo" container. Individual malformed entries never produce it; they
// degrade to defaults instead.
var ErrFormat = errors.New("invalid database format: missing 'amiibo' key")

const unknownLabel = "Unknown"

// Entry is one catalog record. Fields the browser or the record generator
// read are typed; unrecognized document fields are preserved in Extra so a
// newer API schema does not break loading. Selected is browser state and is
// never sourced from the document.
type Entry struct {
	Name         string
	AmiiboSeries string
	GameSeries   string
	Character    string
	Type         string
	Head         string
	Tail         string
	Image        string

	Extra map[string]json.RawMessage

	Selected bool
}

// knownKeys lists document fields that map onto typed Entry fields.
var knownKeys = map[string]bool{
	"name":         true,
	"amiiboSeries": true,
	"gameSeries":   true,
	"character":    true,
	"type":         true,
	"head":         true,
	"tail":         true,
	"image":        true,
}

// UnmarshalJSON decodes an entry tolerantly: a missing or wrongly-typed field
// leaves the zero value in place rather than failing the whole document.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Name = stringField(raw, "name")
	e.AmiiboSeries = stringField(raw, "amiiboSeries")
	e.GameSeries = stringField(raw, "gameSeries")
	e.Character = stringField(raw, "character")
	e.Type = stringField(raw, "type")
	e.Head = stringField(raw, "head")
	e.Tail = stringField(raw, "tail")
	e.Image = stringField(raw, "image")

	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		if e.Extra == nil {
			e.Extra = make(map[string]json.RawMessage)
		}
		e.Extra[k] = v
	}
	return nil
}

// stringField extracts a string value or returns "" when the key is absent or
// not a string. This is the only sanctioned way entry fields are read off the
// wire; it never fails.
func stringField(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

// ID returns the 16-hex-digit record identifier, or "" when head/tail are
// missing.
func (e *Entry) ID() string {
	if e.Head == "" || e.Tail == "" {
		return ""
	}
	return e.Head + e.Tail
}

// DisplayName returns the entry name with the Unknown fallback.
func (e *Entry) DisplayName() string {
	if e.Name == "" {
		return unknownLabel
	}
	return e.Name
}

// DisplaySeries returns the amiibo series with the Unknown fallback.
func (e *Entry) DisplaySeries() string {
	if e.AmiiboSeries == "" {
		return unknownLabel
	}
	return e.AmiiboSeries
}

// Catalog is the ordered entry list. Order changes only through SortBy;
// per-entry state changes only through the selection methods.
type Catalog struct {
	entries       []Entry
	selectedCount int
}

// Load parses a catalog document. The document must carry the entry list
// under the top-level "amiibo" key; anything else is ErrFormat.
func Load(r io.Reader) (*Catalog, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse database: %w", err)
	}

	list, ok := doc["amiibo"]
	if !ok {
		return nil, ErrFormat
	}

	var entries []Entry
	if err := json.Unmarshal(list, &entries); err != nil {
		return nil, fmt.Errorf("parse amiibo list: %w", err)
	}

	return &Catalog{entries: entries}, nil
}

// New builds a catalog from already-decoded entries. Selection flags on the
// input are honored and counted.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: entries}
	for i := range c.entries {
		if c.entries[i].Selected {
			c.selectedCount++
		}
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the entry at index i, or nil when i is out of range.
func (c *Catalog) At(i int) *Entry {
	if c == nil || i < 0 || i >= len(c.entries) {
		return nil
	}
	return &c.entries[i]
}

// SelectedCount returns how many entries are currently selected.
func (c *Catalog) SelectedCount() int {
	if c == nil {
		return 0
	}
	return c.selectedCount
}
