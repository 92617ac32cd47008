package quadgfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for quadgfx and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by quadgfx:
//   - [slog.LevelDebug]: per-texture diagnostics (only with Config.Debug)
//   - [slog.LevelInfo]: lifecycle events (graphics init, shutdown)
//   - [slog.LevelWarn]: absorbed failures (decode errors, table exhaustion)
//   - [slog.LevelError]: drawing scope violations, right before the assert policy runs
//
// Example:
//
//	quadgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (gfx, input) call this to
// share one logger configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
