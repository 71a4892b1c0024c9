package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dannynguyen3011/tally/internal/counter"
	"github.com/dannynguyen3011/tally/internal/selector"
)

// tickMsg is sent when the redraw timer ticks.
type tickMsg time.Time

// CounterModel is the bubbletea model for the interactive counter.
// Every keybinding turns into a dispatched action; everything on screen
// is read back through the selector views.
type CounterModel struct {
	store *counter.Store
	views *selector.Views

	// UI state
	width      int
	height     int
	message    string
	messageExp time.Time

	// entry is the action kind awaiting an amount, empty when idle.
	entry  counter.Kind
	buffer string

	// Configuration
	refreshInterval time.Duration
	historyRows     int
}

// CounterConfig holds configuration for the counter dashboard.
type CounterConfig struct {
	Store           *counter.Store
	Views           *selector.Views
	RefreshInterval time.Duration
	HistoryRows     int
}

// NewCounterModel creates a new counter dashboard model.
func NewCounterModel(config CounterConfig) *CounterModel {
	if config.Store == nil {
		config.Store = counter.NewStore()
	}
	if config.Views == nil {
		config.Views = selector.New()
	}
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.HistoryRows == 0 {
		config.HistoryRows = 10
	}

	return &CounterModel{
		store:           config.Store,
		views:           config.Views,
		refreshInterval: config.RefreshInterval,
		historyRows:     config.HistoryRows,
	}
}

// Init initializes the model.
func (m *CounterModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *CounterModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entry != "" {
		return m.handleEntryKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "+", "=", "up":
		m.store.Dispatch(counter.Increment())

	case "-", "_", "down":
		m.store.Dispatch(counter.Decrement())

	case "i":
		m.startEntry(counter.KindIncrementByAmount)

	case "d":
		m.startEntry(counter.KindDecrementByAmount)

	case "s":
		m.startEntry(counter.KindSetStep)

	case "v":
		m.startEntry(counter.KindSetCounterValue)

	case "u":
		if m.views.CanUndo(m.store.State()) {
			m.store.Dispatch(counter.Undo())
		} else {
			m.setMessage("Nothing to undo", 2*time.Second)
		}

	case "r":
		m.store.Dispatch(counter.Reset())
		m.setMessage("Counter reset", 2*time.Second)
	}

	return m, nil
}

// handleEntryKey handles keys while an amount is being typed.
func (m *CounterModel) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.entry = ""
		m.buffer = ""

	case "enter":
		m.commitEntry()

	case "backspace":
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}

	case "-":
		if m.buffer == "" {
			m.buffer = "-"
		}

	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.buffer += s
		}
	}

	return m, nil
}

// startEntry switches into amount entry for the given action kind.
func (m *CounterModel) startEntry(kind counter.Kind) {
	m.entry = kind
	m.buffer = ""
}

// commitEntry parses the typed amount and dispatches the pending action.
func (m *CounterModel) commitEntry() {
	n, err := strconv.Atoi(m.buffer)
	if err != nil {
		m.setMessage("Enter a whole number", 2*time.Second)
		return
	}

	m.store.Dispatch(counter.Action{Kind: m.entry, Amount: n})
	m.entry = ""
	m.buffer = ""
}

// View renders the dashboard.
func (m *CounterModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.store.State()
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderCounter(s))

	if m.entry != "" {
		sections = append(sections, m.renderPrompt())
	}

	sections = append(sections, m.renderStats(s))
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *CounterModel) renderHeader() string {
	title := StyleTitle.Render("Tally")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// renderCounter renders the value box with the narrative band.
func (m *CounterModel) renderCounter(s counter.State) string {
	valueStyle := StyleValueZero
	switch m.views.Status(s) {
	case selector.StatusPositive:
		valueStyle = StyleValuePositive
	case selector.StatusNegative:
		valueStyle = StyleValueNegative
	}

	line := fmt.Sprintf("%s  %s",
		valueStyle.Render(fmt.Sprintf("%d", s.Value)),
		m.views.Emoji(s))
	narrative := StyleMessage.Render(m.views.Message(s))

	return StyleCounterBox.Render(line + "\n" + narrative)
}

// renderPrompt renders the amount entry prompt.
func (m *CounterModel) renderPrompt() string {
	return StylePromptBox.Render(fmt.Sprintf("%s: %s▌", m.entry, m.buffer))
}

// renderStats renders the analytics section.
func (m *CounterModel) renderStats(s counter.State) string {
	stats := m.views.Stats(s)
	rng := m.views.Range(s)

	last := stats.LastAction
	if last == "" {
		last = "—"
	}

	rows := []string{
		fmt.Sprintf("%s %s", StyleLabel.Render("status  "), m.views.Status(s)),
		fmt.Sprintf("%s %s", StyleLabel.Render("category"), m.views.Category(s)),
		fmt.Sprintf("%s %s", StyleLabel.Render("trend   "), m.views.Trend(s)),
		fmt.Sprintf("%s %d..%d (spread %d)", StyleLabel.Render("range   "), rng.Min, rng.Max, rng.Range),
		fmt.Sprintf("%s %d", StyleLabel.Render("step    "), stats.CurrentStep),
		fmt.Sprintf("%s %d", StyleLabel.Render("clicks  "), stats.TotalClicks),
		fmt.Sprintf("%s %.2f", StyleLabel.Render("avg Δ   "), stats.AverageChange),
		fmt.Sprintf("%s %s", StyleLabel.Render("last    "), last),
		fmt.Sprintf("%s %s", StyleLabel.Render("history "), m.historyStrip(s)),
	}

	return StyleStatsBox.Render(strings.Join(rows, "\n"))
}

// historyStrip renders the recent history entries, oldest first.
func (m *CounterModel) historyStrip(s counter.State) string {
	entries := s.History
	clipped := false
	if len(entries) > m.historyRows {
		entries = entries[len(entries)-m.historyRows:]
		clipped = true
	}

	parts := make([]string, len(entries))
	for i, v := range entries {
		parts[i] = strconv.Itoa(v)
	}
	strip := strings.Join(parts, " → ")
	if clipped {
		strip = "… " + strip
	}
	return strip
}

// setMessage sets a temporary message.
func (m *CounterModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that ticks after the refresh interval.
func (m *CounterModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
