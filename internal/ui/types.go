package ui

import (
	"time"

	gopsutil_net "github.com/shirou/gopsutil/v3/net"

	"github.com/yusufakg/AmiiboGenerator/internal/browser"
	"github.com/yusufakg/AmiiboGenerator/internal/catalog"
)

// The browser is built on Bubble Tea, which follows the Elm Architecture
// (Model-View-Update). These shared types describe the messages that move
// through that loop.

type (
	// pollMsg fires the analog stick poll, fifty times a second.
	pollMsg time.Time

	networkStatusMsg struct {
		online   bool
		counters gopsutil_net.IOCountersStat
		t        time.Time
		err      error
	}

	// batchDoneMsg carries the outcome of a generate or delete pass.
	batchDoneMsg struct {
		action  string
		summary browser.BatchSummary
	}

	// reloadDoneMsg carries the result of a database refresh.
	reloadDoneMsg struct {
		cat *catalog.Catalog
		err error
	}

	// settleDoneMsg ends the short pause shown after a successful refresh.
	settleDoneMsg struct{}

	statusClearMsg struct {
		id int
	}
)

// DatabaseChangedMsg signals that the database file changed on disk outside
// of the running session.
type DatabaseChangedMsg struct {
	Path string
}

// summaryState holds a finished batch until the user dismisses it.
type summaryState struct {
	action  string
	summary browser.BatchSummary
}
