// SPDX-License-Identifier: MIT
package lp

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip record construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger; accessed atomically so SetLogger can
// race with solves running on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by every engine. By default nothing
// is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: one record per iterate, only for solves with Verbose set
//   - [slog.LevelInfo]: one summary record per finished solve
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func emitIterate(engine string, iter int, line string) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(line, slog.String("engine", engine), slog.Int("iter", iter))
}

func emitSummary(engine string, status Status, iterations int, elapsed time.Duration, line string) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	l.Info(line,
		slog.String("engine", engine),
		slog.String("status", status.String()),
		slog.Int("iterations", iterations),
		slog.Duration("elapsed", elapsed),
	)
}
