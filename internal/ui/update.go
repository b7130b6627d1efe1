package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yusufakg/AmiiboGenerator/internal/input"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		checkNetworkStatus(),
		m.spinner.Tick,
		WatchDatabaseCmd(m.store.Path),
		pollTick(),
	)
}

// pollTick drives the analog stick sampling loop.
func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func settleTick() tea.Cmd {
	return tea.Tick(settleDuration, func(time.Time) tea.Msg {
		return settleDoneMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pollMsg:
		if !m.busy {
			if step := input.Step(m.poller.Poll()); step != 0 {
				m.session.MoveCursor(step)
			}
		}
		return m, pollTick()

	case DatabaseChangedMsg:
		log.Printf("Database file change detected: %s", msg.Path)
		if !m.busy {
			m.dbHint = "database changed on disk, press '" + m.Config.Keys.Update + "' to refresh"
		}
		// Restart the watcher for the next change
		return m, WatchDatabaseCmd(m.store.Path)

	case batchDoneMsg:
		// The batch goroutine is done with the session; hold the summary
		// until the user dismisses it.
		m.summary = &summaryState{action: msg.action, summary: msg.summary}
		m.busyLabel = ""
		return m, nil

	case reloadDoneMsg:
		if msg.err != nil {
			log.Printf("database refresh failed: %v", msg.err)
			m.session.RequestExit()
			m.ExitErr = msg.err
			m.Quitting = true
			return m, tea.Quit
		}
		m.session.Replace(msg.cat)
		m.dbHint = ""
		m.busyLabel = fmt.Sprintf("database refreshed, %d amiibos loaded", msg.cat.Len())
		return m, settleTick()

	case settleDoneMsg:
		m.busy = false
		m.busyLabel = ""
		m.session.EndBusy()
		return m, m.setStatus("Database refreshed", true)

	case statusClearMsg:
		if msg.id != m.statusTimerID {
			return m, nil
		}
		m.statusTimerID = 0
		m.statusMessage = ""
		return m, nil

	case networkStatusMsg:
		m = m.applyNetworkStatus(msg)
		return m, networkTick()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	log.Printf("Key pressed: %q", key)

	// Global emergency exit, even mid-batch
	if key == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.busy {
		// A finished batch waits behind its summary screen; everything else
		// in flight ignores input entirely.
		if m.summary != nil && IsContinue(m.Config.Keys, msg) {
			m.summary = nil
			m.busy = false
			m.session.EndBusy()
		}
		return m, nil
	}

	keys := m.Config.Keys
	switch {
	case IsExit(keys, msg):
		m.session.RequestExit()
		m.Quitting = true
		return m, tea.Quit

	case IsUp(keys, msg):
		m.session.MoveCursor(-1)
	case IsDown(keys, msg):
		m.session.MoveCursor(1)
	case IsJumpUp(keys, msg):
		m.session.JumpCursor(-1)
	case IsJumpDown(keys, msg):
		m.session.JumpCursor(1)
	case IsPageUp(keys, msg):
		m.session.PageCursor(-1)
	case IsPageDown(keys, msg):
		m.session.PageCursor(1)

	case IsToggle(keys, msg):
		m.session.ToggleCurrent()

	case IsToggleAll(keys, msg):
		m.session.ToggleAll()
		return m, m.setStatus(fmt.Sprintf("%d amiibos selected", m.session.Catalog().SelectedCount()), true)

	case IsImages(keys, msg):
		m.session.ToggleImages()
		if m.session.ImagesEnabled() {
			return m, m.setStatus("Images enabled", true)
		}
		return m, m.setStatus("Images disabled", false)

	case IsSort(keys, msg):
		m.session.AdvanceSort()
		return m, m.setStatus("Sort: "+m.session.SortOption().Label(), true)

	case IsGenerate(keys, msg):
		return m.startBatch("generate")

	case IsDelete(keys, msg):
		return m.startBatch("delete")

	case IsUpdate(keys, msg):
		return m.startReload()
	}

	return m, nil
}

// startBatch moves the session into its busy phase and hands it to a command
// goroutine for the duration of the run.
func (m Model) startBatch(action string) (tea.Model, tea.Cmd) {
	if m.session.Catalog().SelectedCount() == 0 {
		return m, m.setStatus("No amiibos selected", false)
	}
	if !m.session.BeginBusy() {
		return m, nil
	}
	m.busy = true

	session := m.session
	if action == "delete" {
		m.busyLabel = "deleting amiibos..."
		eraser := m.eraser
		return m, func() tea.Msg {
			return batchDoneMsg{action: action, summary: session.DeleteSelected(eraser)}
		}
	}

	m.busyLabel = "generating amiibos..."
	gen := m.records
	return m, func() tea.Msg {
		return batchDoneMsg{action: action, summary: session.GenerateSelected(gen)}
	}
}

// startReload downloads a fresh database in the background. The session is
// untouched until the result message comes back.
func (m Model) startReload() (tea.Model, tea.Cmd) {
	if !m.session.BeginBusy() {
		return m, nil
	}
	m.busy = true
	m.busyLabel = "downloading database..."

	store := m.store
	return m, func() tea.Msg {
		if err := store.Update(); err != nil {
			return reloadDoneMsg{err: err}
		}
		cat, err := store.Load()
		return reloadDoneMsg{cat: cat, err: err}
	}
}

// applyNetworkStatus turns the raw counter sample into the footer readout.
// The rate is the delta against the previous sample; the footer only needs
// to show whether a download is actually moving.
func (m Model) applyNetworkStatus(msg networkStatusMsg) Model {
	if msg.err != nil {
		m.traffic = themeNameStyle.Render("error")
		return m
	}

	isActive := false
	switch {
	case !m.havePrev:
		m.traffic = themeNameStyle.Render("calculating...")
	case !msg.t.After(m.prevTime):
		m.traffic = themeNameStyle.Render("---")
	default:
		elapsed := msg.t.Sub(m.prevTime).Seconds()
		sentBps := float64(msg.counters.BytesSent-m.prevSent) / elapsed
		recvBps := float64(msg.counters.BytesRecv-m.prevRecv) / elapsed
		m.traffic = themeNameStyle.Render(fmt.Sprintf("↓ %s ↑ %s", formatTraffic(recvBps), formatTraffic(sentBps)))
		if sentBps > 2*1024 || recvBps > 2*1024 {
			isActive = true
		}
	}

	m.prevSent = msg.counters.BytesSent
	m.prevRecv = msg.counters.BytesRecv
	m.prevTime = msg.t
	m.havePrev = true

	if msg.online {
		if isActive {
			m.onlineStatus = onlineStyle.Render("online (active)")
		} else {
			m.onlineStatus = onlineStyle.Render("online (idle)")
		}
	} else {
		m.onlineStatus = offlineStyle.Render("offline")
	}
	return m
}
