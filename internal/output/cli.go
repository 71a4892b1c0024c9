package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dannynguyen3011/tally/internal/errors"
	"github.com/dannynguyen3011/tally/internal/selector"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorPos     = lipgloss.Color("#10B981") // Green
	colorNeg     = lipgloss.Color("#EF4444") // Red

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleValue = lipgloss.NewStyle().
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	stylePositive = lipgloss.NewStyle().
			Foreground(colorPos)

	styleNegative = lipgloss.NewStyle().
			Foreground(colorNeg)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Muted prints a low-emphasis message.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message, with the suggestion line for user
// errors.
func (c *CLIFormatter) Error(err error) {
	c.Println(c.render(styleError, "✗ "+err.Error()))
	if ue, ok := errors.AsUserError(err); ok && ue.Suggestion != "" {
		c.Muted("  " + ue.Suggestion)
	}
}

// statusStyle picks a color for the value by its sign.
func statusStyle(status selector.Status) lipgloss.Style {
	switch status {
	case selector.StatusPositive:
		return stylePositive
	case selector.StatusNegative:
		return styleNegative
	default:
		return styleMuted
	}
}

// PrintSummary renders the composed summary view.
func (c *CLIFormatter) PrintSummary(sum selector.Summary, status selector.Status, trend selector.Trend, rng selector.Range) {
	c.Title("Counter")
	c.Printf("  %s  %s\n",
		c.render(styleValue.Inherit(statusStyle(status)), fmt.Sprintf("%d", sum.Value)),
		sum.Emoji)
	c.Println("  " + sum.Message)
	c.Println()

	c.Printf("  status    %s\n", status)
	c.Printf("  category  %s\n", sum.Category)
	c.Printf("  trend     %s\n", trend)
	c.Printf("  range     %d..%d (spread %d)\n", rng.Min, rng.Max, rng.Range)
	c.Println()

	c.PrintStats(sum.Stats)
	if !sum.CanUndo {
		c.Muted("  nothing to undo")
	}
}

// PrintStats renders the aggregate stats block.
func (c *CLIFormatter) PrintStats(stats selector.Stats) {
	last := stats.LastAction
	if last == "" {
		last = "—"
	}
	c.Printf("  step      %d\n", stats.CurrentStep)
	c.Printf("  clicks    %d\n", stats.TotalClicks)
	c.Printf("  entries   %d\n", stats.HistoryLength)
	c.Printf("  avg Δ     %.2f\n", stats.AverageChange)
	c.Printf("  last      %s\n", last)
}

// PrintHistory renders the most recent history entries as one strip,
// oldest first, clipped to the terminal width and to rows entries.
func (c *CLIFormatter) PrintHistory(history []int, rows int) {
	entries := history
	if rows > 0 && len(entries) > rows {
		entries = entries[len(entries)-rows:]
	}

	parts := make([]string, len(entries))
	for i, v := range entries {
		parts[i] = fmt.Sprintf("%d", v)
	}
	strip := strings.Join(parts, " → ")
	if len(entries) < len(history) {
		strip = "… " + strip
	}

	if width := c.Width(80); len([]rune(strip)) > width-2 {
		runes := []rune(strip)
		strip = "…" + string(runes[len(runes)-(width-3):])
	}
	c.Println("  " + c.render(styleMuted, strip))
}

// PrintTrace renders one per-dispatch line for apply --trace.
func (c *CLIFormatter) PrintTrace(step int, label string, value int, trend selector.Trend) {
	c.Printf("  %2d. %-24s value=%-6d trend=%s\n", step, label, value, trend)
}
