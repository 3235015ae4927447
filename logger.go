package fbdraw

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/fbdraw/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while another goroutine's engine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for fbdraw and its sub-packages.
// By default fbdraw produces no log output. Pass nil to restore that.
//
// Log levels used by fbdraw:
//   - [slog.LevelDebug]: per-operation diagnostics (text layout, device geometry)
//   - [slog.LevelInfo]: lifecycle events (device opened, script finished)
//   - [slog.LevelWarn]: recoverable anomalies (missing glyphs, dropped rows)
//
// Example:
//
//	fbdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to the font collaborator, which cannot import this package.
	text.SetLogger(l)
}

// Logger returns the current logger used by fbdraw.
// Sub-packages (fbdev/, script/) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
