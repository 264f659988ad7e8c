package svt

import (
	"log/slog"
	"sync/atomic"
)

// logger is shared by svt, plot, the job loader and svtplot.
var logger atomic.Pointer[slog.Logger]

func init() { SetLogger(nil) }

// SetLogger sets the logger used by svt and its sub-packages (plot, the
// job loader and the svtplot command). svt is silent until SetLogger is
// called. Passing nil restores the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: unit matching, common axes, resampling, figure layout
//   - [slog.LevelInfo]: files written by the command-line tool
//   - [slog.LevelWarn]: samples skipped because their x or y is not finite
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger currently installed with SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
