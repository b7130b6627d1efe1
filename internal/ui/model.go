package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yusufakg/AmiiboGenerator/internal/browser"
	"github.com/yusufakg/AmiiboGenerator/internal/config"
	"github.com/yusufakg/AmiiboGenerator/internal/db"
	"github.com/yusufakg/AmiiboGenerator/internal/input"
)

const (
	pollInterval   = 50 * time.Millisecond
	settleDuration = 3 * time.Second
	statusDuration = 3 * time.Second
)

// Model drives the figurine browser. The catalog, cursor and selection state
// live in the browser session; the model adds the terminal plumbing around it.
type Model struct {
	session *browser.Session
	store   *db.Store
	records browser.Generator
	eraser  browser.Eraser
	poller  input.Poller

	Config config.Config

	spinner    spinner.Model
	termWidth  int
	termHeight int

	// busy mirrors the session phase so the update loop never touches the
	// session while a batch command owns it in another goroutine.
	busy      bool
	busyLabel string
	summary   *summaryState

	statusMessage  string
	statusPositive bool
	nextTimerID    int
	statusTimerID  int

	dbHint string

	onlineStatus string
	traffic      string
	prevSent     uint64
	prevRecv     uint64
	prevTime     time.Time
	havePrev     bool

	Quitting bool
	ExitErr  error
}

// RecordStore is the pair of batch backends the browser drives.
type RecordStore interface {
	browser.Generator
	browser.Eraser
}

// NewModel assembles the browser around a running session.
func NewModel(cfg config.Config, session *browser.Session, store *db.Store, records RecordStore, poller input.Poller) Model {
	applyThemeStyles(cfg.Theme)

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	if poller == nil {
		poller = input.Nop{}
	}

	return Model{
		session:      session,
		store:        store,
		records:      records,
		eraser:       records,
		poller:       poller,
		Config:       cfg,
		spinner:      s,
		onlineStatus: "checking...",
		traffic:      "calculating...",
	}
}

// Session exposes the underlying browser state, mainly for the exit path.
func (m Model) Session() *browser.Session { return m.session }

func (m *Model) scheduleStatusClearTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.statusTimerID = id
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m *Model) setStatus(message string, positive bool) tea.Cmd {
	m.statusMessage = message
	m.statusPositive = positive
	if strings.TrimSpace(message) == "" {
		m.statusTimerID = 0
		return nil
	}
	return m.scheduleStatusClearTimer()
}
