// Package runtime provides the application runtime context for Tally.
package runtime

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dannynguyen3011/tally/internal/config"
	"github.com/dannynguyen3011/tally/internal/counter"
	"github.com/dannynguyen3011/tally/internal/logging"
	"github.com/dannynguyen3011/tally/internal/output"
	"github.com/dannynguyen3011/tally/internal/selector"
)

// Context holds the application runtime context: the counter store, the
// derived views, output formatting and configuration. State lives only
// for the lifetime of the Context; nothing is persisted.
type Context struct {
	Store     *counter.Store
	Views     *selector.Views
	Formatter *output.Formatter
	Config    config.Config

	// SessionID tags this process's debug logs.
	SessionID string

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string // empty = config.Path()
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
}

// DefaultOptions returns default runtime options. Format and ColorMode
// are left empty so the config file's values apply; a set value wins.
func DefaultOptions() Options {
	return Options{}
}

// New creates a new runtime context. Command-line flags win over the
// config file, which wins over the built-in defaults.
func New(opts Options) (*Context, error) {
	if opts.Debug {
		logging.InitDebug()
	} else {
		logging.Init(logging.Config{Level: slog.LevelWarn})
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = output.Format(cfg.Format)
	}
	colorMode := opts.ColorMode
	if colorMode == "" {
		colorMode = output.ColorMode(cfg.Color)
	}

	formatter := output.NewFormatter()
	formatter.Format = format
	formatter.ColorMode = colorMode

	// The configured step seeds the snapshot directly rather than going
	// through a setStep dispatch, so LastAction stays empty until the
	// user's first action.
	seed := counter.Initial()
	seed.Step = cfg.InitialStep
	store := counter.NewStoreFrom(seed)

	ctx := &Context{
		Store:     store,
		Views:     selector.New(),
		Formatter: formatter,
		Config:    cfg,
		SessionID: uuid.NewString(),
		Debug:     opts.Debug,
	}

	logging.DebugLog("runtime ready",
		logging.KeySessionID, ctx.SessionID,
		logging.KeyConfigPath, path,
		logging.KeyStep, cfg.InitialStep,
	)
	return ctx, nil
}

// Close releases the runtime context. The counter is in-memory only, so
// there is nothing to flush; the hook exists so commands can defer it
// symmetrically with setup.
func (c *Context) Close() error {
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Summarize reads every derived view for the current state in one call.
func (c *Context) Summarize() output.SummaryResponse {
	s := c.Store.State()
	return output.SummaryResponse{
		Summary: c.Views.Summary(s),
		Status:  c.Views.Status(s),
		Trend:   c.Views.Trend(s),
		Range:   c.Views.Range(s),
		History: s.History,
	}
}
