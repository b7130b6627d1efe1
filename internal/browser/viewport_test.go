package browser

import "testing"

func TestAdjustScroll(t *testing.T) {
	v := Viewport{Visible: 38}

	tests := []struct {
		name   string
		cursor int
		scroll int
		total  int
		want   int
	}{
		{"cursor inside window", 5, 0, 100, 0},
		{"cursor above window scrolls up", 3, 10, 100, 3},
		{"cursor below window scrolls down", 50, 0, 100, 50 - 38 + 1},
		{"scroll clamped to max", 99, 99, 100, 100 - 38},
		{"catalog shorter than window", 5, 3, 10, 0},
		{"empty catalog", 0, 0, 0, 0},
		{"last entry visible", 49, 12, 50, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.AdjustScroll(tt.cursor, tt.scroll, tt.total)
			if got != tt.want {
				t.Errorf("AdjustScroll(%d, %d, %d) = %d, want %d",
					tt.cursor, tt.scroll, tt.total, got, tt.want)
			}
		})
	}
}

func TestAdjustScroll_Idempotent(t *testing.T) {
	v := Viewport{Visible: 38}
	for cursor := 0; cursor < 100; cursor += 7 {
		once := v.AdjustScroll(cursor, 0, 100)
		twice := v.AdjustScroll(cursor, once, 100)
		if once != twice {
			t.Fatalf("not idempotent at cursor %d: %d then %d", cursor, once, twice)
		}
	}
}

// TestAdjustScroll_Invariant sweeps cursor positions and checks the window
// invariant holds for every one of them.
func TestAdjustScroll_Invariant(t *testing.T) {
	v := Viewport{Visible: 38}
	const total = 120
	scroll := 0
	for cursor := 0; cursor < total; cursor++ {
		scroll = v.AdjustScroll(cursor, scroll, total)
		if scroll < 0 || scroll > total-v.Visible {
			t.Fatalf("scroll %d out of range at cursor %d", scroll, cursor)
		}
		if cursor < scroll || cursor >= scroll+v.Visible {
			t.Fatalf("cursor %d not inside window [%d, %d)", cursor, scroll, scroll+v.Visible)
		}
	}
}
