package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dannynguyen3011/tally/internal/counter"
	"github.com/dannynguyen3011/tally/internal/output"
)

func newContext(t *testing.T, configYAML string) *Context {
	t.Helper()
	opts := DefaultOptions()
	if configYAML != "" {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))
		opts.ConfigPath = path
	} else {
		opts.ConfigPath = filepath.Join(t.TempDir(), "missing.yml")
	}
	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestNewDefaults(t *testing.T) {
	ctx := newContext(t, "")

	assert.NotNil(t, ctx.Store)
	assert.NotNil(t, ctx.Views)
	assert.NotEmpty(t, ctx.SessionID)
	assert.Equal(t, output.FormatCLI, ctx.Formatter.Format)

	s := ctx.Store.State()
	assert.Equal(t, 0, s.Value)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, "", s.LastAction)
}

func TestConfiguredStepSeedsState(t *testing.T) {
	ctx := newContext(t, "initial_step: 5\n")

	s := ctx.Store.State()
	assert.Equal(t, 5, s.Step)
	assert.Equal(t, "", s.LastAction, "seeding must not count as an action")
	assert.Equal(t, []int{0}, s.History)

	s = ctx.Store.Dispatch(counter.Increment())
	assert.Equal(t, 5, s.Value)
}

func TestFlagsWinOverConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = output.FormatJSON
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: plain\n"), 0o600))
	opts.ConfigPath = path

	ctx, err := New(opts)
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, ctx.Formatter.Format)
	assert.True(t, ctx.IsJSON())
}

func TestInvalidConfigFails(t *testing.T) {
	opts := DefaultOptions()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))
	opts.ConfigPath = path

	_, err := New(opts)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	ctx := newContext(t, "")
	ctx.Store.Dispatch(counter.IncrementBy(3))
	ctx.Store.Dispatch(counter.IncrementBy(4))

	resp := ctx.Summarize()
	assert.Equal(t, 7, resp.Summary.Value)
	assert.Equal(t, []int{0, 3, 7}, resp.History)
	assert.Equal(t, "increasing", string(resp.Trend))
	assert.True(t, resp.Summary.CanUndo)
}
