// Package browser implements the catalog browser: a viewport that keeps the
// cursor on screen and a session that turns input actions into catalog and
// state mutations. It knows nothing about terminals or gamepads; the ui
// package feeds it.
package browser

// Viewport maps a cursor position onto a scroll offset for a fixed-size
// visible window.
type Viewport struct {
	Visible int
}

// AdjustScroll returns the scroll offset that keeps cursor inside the window.
// It is idempotent for the same inputs and must be applied after every cursor
// change. The result always satisfies
// 0 <= scroll <= max(0, total-Visible) and scroll <= cursor < scroll+Visible.
func (v Viewport) AdjustScroll(cursor, scroll, total int) int {
	if cursor < scroll {
		scroll = cursor
	} else if cursor >= scroll+v.Visible {
		scroll = cursor - v.Visible + 1
	}

	maxScroll := total - v.Visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	return clamp(scroll, 0, maxScroll)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
