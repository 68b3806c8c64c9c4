// Package testutil provides shared helpers for package tests: a logger that
// writes through testing.T and a fixed reference clock.
package testutil

import (
	"log/slog"
	"testing"
	"time"
)

// FixedNow is the reference "now" used when resolving dates and ages in tests.
var FixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

// Clock returns a clock function that always reports now.
func Clock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		// t.Log already stamps each line.
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
