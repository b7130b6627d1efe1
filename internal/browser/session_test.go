package browser

import (
	"testing"

	"github.com/yusufakg/AmiiboGenerator/internal/catalog"
)

func sessionWith(n int) *Session {
	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i].Name = string(rune('a' + i%26))
		entries[i].AmiiboSeries = "Series"
	}
	return NewSession(catalog.New(entries), 38)
}

// stubGenerator records calls and fails for entries listed in failFor.
type stubGenerator struct {
	calls     []string
	withImage []bool
	failFor   map[string]bool
}

func (g *stubGenerator) Generate(e *catalog.Entry, withImage bool) bool {
	g.calls = append(g.calls, e.Name)
	g.withImage = append(g.withImage, withImage)
	return !g.failFor[e.Name]
}

// stubEraser reports missing/failing entries by name.
type stubEraser struct {
	calls   []string
	pruned  int
	missing map[string]bool
	failFor map[string]bool
}

func (e *stubEraser) Exists(entry *catalog.Entry) bool { return !e.missing[entry.Name] }
func (e *stubEraser) Erase(entry *catalog.Entry) bool {
	e.calls = append(e.calls, entry.Name)
	return !e.failFor[entry.Name]
}
func (e *stubEraser) Prune() { e.pruned++ }

func TestMoveCursor_ClampAndScroll(t *testing.T) {
	s := sessionWith(50)

	// The scenario from the reference behavior: 50 entries, window of 38,
	// one big jump to the end.
	if !s.MoveCursor(49) {
		t.Fatal("MoveCursor(+49) reported no change")
	}
	if s.Cursor() != 49 {
		t.Errorf("cursor = %d, want 49", s.Cursor())
	}
	if s.Scroll() != 12 {
		t.Errorf("scroll = %d, want 12", s.Scroll())
	}

	// Moving past the end clamps and is then a no-op.
	if s.MoveCursor(10) {
		t.Error("move past the end should be a no-op")
	}
}

func TestMoveCursor_InvariantUnderRandomWalk(t *testing.T) {
	s := sessionWith(97)
	deltas := []int{1, -3, 50, -200, 7, 38, -1, 96, -96, 10}
	for _, d := range deltas {
		s.MoveCursor(d)
		if s.Cursor() < 0 || s.Cursor() >= s.Catalog().Len() {
			t.Fatalf("cursor %d escaped catalog bounds", s.Cursor())
		}
		if s.Cursor() < s.Scroll() || s.Cursor() >= s.Scroll()+s.Visible() {
			t.Fatalf("cursor %d outside window at scroll %d", s.Cursor(), s.Scroll())
		}
	}
}

func TestMoveCursor_EmptyCatalog(t *testing.T) {
	s := sessionWith(0)
	if s.MoveCursor(1) || s.MoveCursor(-1) {
		t.Error("moves on an empty catalog must be no-ops")
	}
	if s.Cursor() != 0 || s.Scroll() != 0 {
		t.Errorf("state drifted: cursor=%d scroll=%d", s.Cursor(), s.Scroll())
	}
}

func TestJumpCursor(t *testing.T) {
	s := sessionWith(50)
	s.JumpCursor(1)
	if s.Cursor() != 10 {
		t.Errorf("cursor = %d, want 10", s.Cursor())
	}
	s.JumpCursor(-1)
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
}

func TestPageCursor(t *testing.T) {
	s := sessionWith(100)
	s.PageCursor(1)
	if s.Cursor() != 38 {
		t.Errorf("cursor = %d, want 38", s.Cursor())
	}
}

func TestAdvanceSort_CyclesBackToStart(t *testing.T) {
	s := sessionWith(5)
	for i := 0; i < len(catalog.SortOptions); i++ {
		s.AdvanceSort()
	}
	if s.SortIndex() != 0 {
		t.Errorf("sort index = %d after a full cycle, want 0", s.SortIndex())
	}
}

func TestPhaseTransitions(t *testing.T) {
	s := sessionWith(3)
	if s.Phase() != PhaseBrowsing {
		t.Fatalf("initial phase = %v", s.Phase())
	}
	if !s.BeginBusy() {
		t.Fatal("BeginBusy from Browsing should succeed")
	}
	if s.BeginBusy() {
		t.Error("BeginBusy while Busy should be rejected")
	}
	s.EndBusy()
	if s.Phase() != PhaseBrowsing {
		t.Errorf("phase after EndBusy = %v", s.Phase())
	}

	s.RequestExit()
	if s.Phase() != PhaseExiting || !s.ExitRequested() {
		t.Error("RequestExit did not mark the session terminal")
	}
	if s.BeginBusy() {
		t.Error("BeginBusy after exit request should be rejected")
	}
}

func TestGenerateSelected_EmptySelection(t *testing.T) {
	s := sessionWith(10)
	gen := &stubGenerator{}
	sum := s.GenerateSelected(gen)

	if sum != (BatchSummary{}) {
		t.Errorf("summary = %+v, want zero", sum)
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator was called %d times for an empty selection", len(gen.calls))
	}
}

func TestGenerateSelected_CountsAndClears(t *testing.T) {
	s := sessionWith(5)
	s.Catalog().Toggle(0)
	s.Catalog().Toggle(2)
	s.Catalog().Toggle(4)
	s.ToggleImages()

	gen := &stubGenerator{failFor: map[string]bool{s.Catalog().At(2).Name: true}}
	sum := s.GenerateSelected(gen)

	if sum.Processed != 3 || sum.Generated != 2 || sum.Failed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if len(gen.calls) != 3 {
		t.Errorf("generator called %d times, want 3", len(gen.calls))
	}
	for i, with := range gen.withImage {
		if !with {
			t.Errorf("call %d did not carry the images flag", i)
		}
	}
	if s.Catalog().SelectedCount() != 0 {
		t.Errorf("selection not cleared, count = %d", s.Catalog().SelectedCount())
	}
}

func TestDeleteSelected_SkippedAndFailed(t *testing.T) {
	s := sessionWith(4)
	for i := 0; i < 4; i++ {
		s.Catalog().Toggle(i)
	}
	names := make([]string, 4)
	for i := range names {
		names[i] = s.Catalog().At(i).Name
	}

	er := &stubEraser{
		missing: map[string]bool{names[1]: true},
		failFor: map[string]bool{names[3]: true},
	}
	sum := s.DeleteSelected(er)

	if sum.Processed != 4 || sum.Deleted != 2 || sum.Skipped != 1 || sum.Failed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	// Missing records must not reach Erase.
	for _, call := range er.calls {
		if call == names[1] {
			t.Error("Erase was called for a record that does not exist")
		}
	}
	if s.Catalog().SelectedCount() != 0 {
		t.Errorf("selection not cleared, count = %d", s.Catalog().SelectedCount())
	}
	if er.pruned != 1 {
		t.Errorf("prune ran %d times after the batch, want 1", er.pruned)
	}
}

func TestDeleteSelected_EmptySelection(t *testing.T) {
	s := sessionWith(10)
	er := &stubEraser{}
	sum := s.DeleteSelected(er)

	if sum != (BatchSummary{}) {
		t.Errorf("summary = %+v, want zero", sum)
	}
	if len(er.calls) != 0 || er.pruned != 0 {
		t.Errorf("eraser touched for an empty selection: calls=%d pruned=%d", len(er.calls), er.pruned)
	}
}

func TestReplace_ResetsState(t *testing.T) {
	s := sessionWith(50)
	s.MoveCursor(40)
	s.Catalog().Toggle(3)
	s.AdvanceSort()
	s.ToggleImages()

	s.Replace(catalog.New(make([]catalog.Entry, 10)))

	if s.Cursor() != 0 || s.Scroll() != 0 || s.SortIndex() != 0 {
		t.Errorf("state not reset: cursor=%d scroll=%d sort=%d", s.Cursor(), s.Scroll(), s.SortIndex())
	}
	if s.Catalog().SelectedCount() != 0 {
		t.Errorf("new catalog inherited a selection count")
	}
	if !s.ImagesEnabled() {
		t.Error("images flag should survive a reload")
	}
}
