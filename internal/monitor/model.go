package monitor

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/ui"
)

// Width breakpoints for layout adjustments
const (
	BreakpointCompact = 80
	BreakpointWide    = 120
)

// collectTimeout bounds a single collection cycle.
const collectTimeout = 8 * time.Second

// Model is the Bubble Tea model for the full-screen dashboard.
type Model struct {
	cfg       config.MonitorConfig
	collector *Collector
	history   *History
	host      string

	snapshot   *Snapshot
	lastUpdate time.Time
	lastErr    string

	procTable  table.Model
	tableReady bool

	width    int
	height   int
	interval time.Duration
	paused   bool
	quitting bool
	showHelp bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a fresh snapshot (or a collection error) from the collector.
type snapshotMsg struct {
	snap *Snapshot
	err  error
	time time.Time
}

// NewModel creates a dashboard model polling at the configured interval.
func NewModel(collector *Collector, cfg config.MonitorConfig) Model {
	interval := cfg.Interval
	if interval < config.MinInterval {
		interval = config.DefaultInterval
	}

	host, _ := os.Hostname()

	return Model{
		cfg:       cfg,
		collector: collector,
		history:   NewHistory(DefaultHistorySize),
		host:      host,
		interval:  interval,
	}
}

// Init starts the tick timer and triggers an initial collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.collectCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case snapshotMsg:
		m.applySnapshot(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that collects one snapshot in the background.
func (m Model) collectCmd() tea.Cmd {
	collector := m.collector
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()

		snap, err := collector.Collect(ctx)
		return snapshotMsg{snap: snap, err: err, time: time.Now()}
	}
}

// applySnapshot folds a collection result into the model. Errors keep the
// previous snapshot on screen and surface the message in the header.
func (m *Model) applySnapshot(msg snapshotMsg) {
	m.lastUpdate = msg.time

	if msg.err != nil {
		m.lastErr = msg.err.Error()
		return
	}

	m.lastErr = ""
	m.snapshot = msg.snap
	m.history.Push(msg.snap)
	m.rebuildProcessTable()
}

// rebuildProcessTable refreshes the process table rows, preserving the cursor.
func (m *Model) rebuildProcessTable() {
	if m.snapshot == nil || len(m.snapshot.Processes) == 0 {
		m.tableReady = false
		return
	}

	cursor := 0
	if m.tableReady {
		cursor = m.procTable.Cursor()
	}

	columns := []ui.TableColumn{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 10},
		{Title: "CPU%", Width: 6},
		{Title: "MEM%", Width: 6},
		{Title: "TIME", Width: 9},
		{Title: "COMMAND", Width: m.commandColumnWidth()},
	}

	rows := make([]table.Row, 0, len(m.snapshot.Processes))
	for _, p := range m.snapshot.Processes {
		rows = append(rows, table.Row{
			strconv.Itoa(p.PID),
			p.User,
			fmt.Sprintf("%.1f", p.CPU),
			fmt.Sprintf("%.1f", p.Memory),
			p.Time,
			p.Command,
		})
	}

	m.procTable = ui.NewTable(columns, rows)
	if cursor > 0 && cursor < len(rows) {
		m.procTable.SetCursor(cursor)
	}
	m.tableReady = true
}

// commandColumnWidth sizes the COMMAND column to the remaining width.
func (m Model) commandColumnWidth() int {
	// Fixed columns plus cell padding take roughly 50 cells.
	w := m.contentWidth() - 50
	if w < 16 {
		w = 16
	}
	return w
}

// contentWidth returns the usable dashboard width.
func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = BreakpointCompact
	}
	if w > BreakpointWide {
		w = BreakpointWide
	}
	return w
}

// SecondsSinceUpdate returns how many seconds have passed since the last update.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
