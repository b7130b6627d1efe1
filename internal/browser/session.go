package browser

import (
	"log"

	"github.com/yusufakg/AmiiboGenerator/internal/catalog"
)

// jumpStride is how many entries a coarse jump moves per press.
const jumpStride = 10

// Phase is the session state. Browsing accepts every action; Busy ignores
// input until the running batch or reload finishes; Exiting stops the loop.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseBusy
	PhaseExiting
)

// Generator writes one emulated figurine record. It reports failure through
// the bool; it never aborts the batch.
type Generator interface {
	Generate(e *catalog.Entry, withImage bool) bool
}

// Eraser removes one figurine record from storage. Exists lets the delete
// batch count absent records as skipped instead of failed; Prune runs once
// after the batch to clean up directories the deletions emptied.
type Eraser interface {
	Exists(e *catalog.Entry) bool
	Erase(e *catalog.Entry) bool
	Prune()
}

// BatchSummary accumulates the outcome of a generate or delete pass.
type BatchSummary struct {
	Processed int
	Generated int
	Deleted   int
	Skipped   int
	Failed    int
}

// Session owns the catalog and all browser state for its lifetime.
type Session struct {
	cat  *catalog.Catalog
	view Viewport

	cursor        int
	scroll        int
	sortIndex     int
	imagesEnabled bool
	exitRequested bool
	phase         Phase
}

// NewSession wraps a loaded catalog. The catalog starts sorted by the first
// option in the cycle, matching what the list shows.
func NewSession(cat *catalog.Catalog, visible int) *Session {
	s := &Session{cat: cat, view: Viewport{Visible: visible}}
	s.cat.SortBy(catalog.SortOptions[0])
	return s
}

func (s *Session) Catalog() *catalog.Catalog { return s.cat }
func (s *Session) Cursor() int               { return s.cursor }
func (s *Session) Scroll() int               { return s.scroll }
func (s *Session) Visible() int              { return s.view.Visible }
func (s *Session) SortIndex() int            { return s.sortIndex }
func (s *Session) ImagesEnabled() bool       { return s.imagesEnabled }
func (s *Session) ExitRequested() bool       { return s.exitRequested }
func (s *Session) Phase() Phase              { return s.phase }

// SortOption returns the active entry of the sort cycle.
func (s *Session) SortOption() catalog.SortOption {
	return catalog.SortOptions[s.sortIndex]
}

// MoveCursor shifts the cursor by delta, clamped to the catalog bounds, and
// realigns the scroll offset. Returns true when anything changed, which is
// the signal to redraw.
func (s *Session) MoveCursor(delta int) bool {
	total := s.cat.Len()
	if total == 0 {
		return false
	}

	next := clamp(s.cursor+delta, 0, total-1)
	if next == s.cursor {
		return false
	}
	s.cursor = next
	s.scroll = s.view.AdjustScroll(s.cursor, s.scroll, total)
	return true
}

// JumpCursor is coarse paging: ten entries per press.
func (s *Session) JumpCursor(delta int) bool {
	return s.MoveCursor(delta * jumpStride)
}

// PageCursor moves a whole visible window at a time.
func (s *Session) PageCursor(dir int) bool {
	return s.MoveCursor(dir * s.view.Visible)
}

// ToggleCurrent flips selection on the entry under the cursor.
func (s *Session) ToggleCurrent() bool {
	return s.cat.Toggle(s.cursor)
}

// ToggleAll flips every entry's selection (see catalog.ToggleAll for the
// flip-all semantics).
func (s *Session) ToggleAll() {
	s.cat.ToggleAll()
}

// ToggleImages flips whether generation also fetches thumbnails.
func (s *Session) ToggleImages() {
	s.imagesEnabled = !s.imagesEnabled
}

// AdvanceSort steps to the next option in the cycle and re-sorts the catalog.
// The cursor keeps its index, so the highlighted row may change identity; the
// scroll offset stays valid because the length is unchanged.
func (s *Session) AdvanceSort() {
	s.sortIndex = (s.sortIndex + 1) % len(catalog.SortOptions)
	s.cat.SortBy(catalog.SortOptions[s.sortIndex])
}

// RequestExit marks the session for termination; the loop checks it each tick.
func (s *Session) RequestExit() {
	s.exitRequested = true
	s.phase = PhaseExiting
}

// BeginBusy moves Browsing->Busy. Returns false if the session is not
// browsing, in which case the caller must not start a blocking action.
func (s *Session) BeginBusy() bool {
	if s.phase != PhaseBrowsing {
		return false
	}
	s.phase = PhaseBusy
	return true
}

// EndBusy returns the session to Browsing unless an exit has been requested.
func (s *Session) EndBusy() {
	if s.phase == PhaseBusy {
		s.phase = PhaseBrowsing
	}
	if s.exitRequested {
		s.phase = PhaseExiting
	}
}

// GenerateSelected walks the catalog once in order and generates a record for
// every selected entry. Each entry's flag is cleared no matter how the
// generation went, and the whole selection is cleared at the end. An empty
// selection produces a zero summary without touching the generator.
func (s *Session) GenerateSelected(gen Generator) BatchSummary {
	var sum BatchSummary
	if s.cat.SelectedCount() == 0 {
		return sum
	}

	for i := 0; i < s.cat.Len(); i++ {
		e := s.cat.At(i)
		if !e.Selected {
			continue
		}
		sum.Processed++
		if gen.Generate(e, s.imagesEnabled) {
			sum.Generated++
		} else {
			sum.Failed++
			log.Printf("generate failed: %s - %s", e.DisplaySeries(), e.DisplayName())
		}
		e.Selected = false
	}

	s.cat.ClearAll()
	return sum
}

// DeleteSelected mirrors GenerateSelected for removal. Records whose on-disk
// directory is already gone count as skipped, not failed. Series directories
// the batch emptied are pruned afterwards.
func (s *Session) DeleteSelected(er Eraser) BatchSummary {
	var sum BatchSummary
	if s.cat.SelectedCount() == 0 {
		return sum
	}

	for i := 0; i < s.cat.Len(); i++ {
		e := s.cat.At(i)
		if !e.Selected {
			continue
		}
		sum.Processed++
		switch {
		case !er.Exists(e):
			sum.Skipped++
		case er.Erase(e):
			sum.Deleted++
		default:
			sum.Failed++
			log.Printf("delete failed: %s - %s", e.DisplaySeries(), e.DisplayName())
		}
		e.Selected = false
	}

	s.cat.ClearAll()
	er.Prune()
	return sum
}

// Replace swaps in a freshly loaded catalog and resets cursor, scroll,
// selection and sort key to their defaults. The list keeps the document's
// order until the user sorts again; the images flag survives the reload.
func (s *Session) Replace(cat *catalog.Catalog) {
	s.cat = cat
	s.cursor = 0
	s.scroll = 0
	s.sortIndex = 0
}
