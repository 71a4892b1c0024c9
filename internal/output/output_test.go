package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannynguyen3011/tally/internal/counter"
	"github.com/dannynguyen3011/tally/internal/errors"
	"github.com/dannynguyen3011/tally/internal/selector"
)

func newTestFormatter() (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever
	return f, &buf
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := newTestFormatter()

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto with a non-file writer falls back to no color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestWidthFallback(t *testing.T) {
	f, _ := newTestFormatter()
	assert.Equal(t, 80, f.Width(80))
}

func TestJSONOutput(t *testing.T) {
	f, buf := newTestFormatter()

	resp := SummaryResponse{
		Status:  selector.StatusPositive,
		Trend:   selector.TrendIncreasing,
		Range:   selector.Range{Min: 0, Max: 7, Range: 7},
		History: []int{0, 3, 7},
	}
	require.NoError(t, f.JSON(resp))

	var decoded SummaryResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, resp.Range, decoded.Range)
	assert.Equal(t, []int{0, 3, 7}, decoded.History)
}

func TestPrintSummary(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)
	views := selector.New()

	s := counter.Apply(counter.Initial(), counter.IncrementBy(7))
	cli.PrintSummary(views.Summary(s), views.Status(s), views.Trend(s), views.Range(s))

	out := buf.String()
	assert.Contains(t, out, "Counter")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "Making good progress!")
	assert.Contains(t, out, "status    positive")
	assert.Contains(t, out, "category  beginner")
	assert.Contains(t, out, "last      incrementByAmount(7)")
	assert.NotContains(t, out, "nothing to undo")
}

func TestPrintSummaryFreshState(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)
	views := selector.New()

	s := counter.Initial()
	cli.PrintSummary(views.Summary(s), views.Status(s), views.Trend(s), views.Range(s))

	out := buf.String()
	assert.Contains(t, out, "nothing to undo")
	assert.Contains(t, out, "last      —")
	assert.Contains(t, out, "trend     insufficient-data")
}

func TestPrintHistory(t *testing.T) {
	t.Run("short_history_in_full", func(t *testing.T) {
		f, buf := newTestFormatter()
		cli := NewCLIFormatter(f)
		cli.PrintHistory([]int{0, 5, -5}, 10)
		assert.Contains(t, buf.String(), "0 → 5 → -5")
	})

	t.Run("clipped_to_rows", func(t *testing.T) {
		f, buf := newTestFormatter()
		cli := NewCLIFormatter(f)
		cli.PrintHistory([]int{0, 1, 2, 3, 4, 5}, 3)

		out := buf.String()
		assert.Contains(t, out, "…")
		assert.Contains(t, out, "3 → 4 → 5")
		assert.False(t, strings.Contains(out, "0 → 1"))
	})
}

func TestErrorRendering(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	cli.Error(errors.NewUserErrorWithField("action", "bump", "unknown action", "run 'tally actions'"))

	out := buf.String()
	assert.Contains(t, out, "unknown action: 'bump'")
	assert.Contains(t, out, "run 'tally actions'")
}
