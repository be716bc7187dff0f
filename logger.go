package sketch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func silent() *slog.Logger { return slog.New(nopHandler{}) }

// current is read by NewSession; each session keeps the logger it was
// created with.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent())
}

// SetLogger installs l as the package logger. Sessions created afterwards
// log through l; existing sessions keep theirs. A nil l silences logging
// again, which is also the initial state. SetLogger may be called from any
// goroutine.
//
// Log levels used by sketch:
//   - [slog.LevelDebug]: mode transitions, pen changes, commits
//   - [slog.LevelInfo]: session creation, canvas clear
//   - [slog.LevelWarn]: ignored input (thickness below 1, unknown tool)
//
// Example:
//
//	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	current.Store(l)
}

// Logger returns the package logger. It never returns nil.
func Logger() *slog.Logger {
	return current.Load()
}
