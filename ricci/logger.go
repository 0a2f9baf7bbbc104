package ricci

import (
	"io"
	"log/slog"
	"math"
	"sync/atomic"
)

// levelOff is above every level the package emits, so a handler set to it
// reports Enabled false and records are never built.
const levelOff = slog.Level(math.MaxInt32)

// silent returns a logger that drops everything.
func silent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelOff}))
}

var current = func() *atomic.Pointer[slog.Logger] {
	p := new(atomic.Pointer[slog.Logger])
	p.Store(silent())
	return p
}()

// SetLogger routes RicciFlow diagnostics to l; nil silences them again.
// RicciFlow writes its header, per-iteration progress and completion
// records at Info when Settings.Verbose is set and at Debug otherwise.
// Rejected targets and dropped updates are always Warn.
//
//	ricci.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return current.Load() }
