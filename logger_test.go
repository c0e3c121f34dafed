package dotfx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes dotfx logging into a buffer at level for the rest of
// the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
	// Resolving an invalid color with the silent logger must not panic.
	NewColorCapability(nil, Literal("bogus")).Initialize()
}

func TestGradientRecomputeLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	b := NewLinearGradient(Corners(Pt(0, 0), Pt(10, 10)), redBlue...)
	out := buf.String()
	if !strings.Contains(out, "gradient recomputed") || !strings.Contains(out, "kind=linear") {
		t.Errorf("construction log = %q, want a linear recompute record", out)
	}

	buf.Reset()
	b.Value()
	if buf.Len() != 0 {
		t.Errorf("memoized read logged %q", buf.String())
	}
	b.SetRotation(30)
	if !strings.Contains(buf.String(), "rotation=30") {
		t.Errorf("rotation change log = %q", buf.String())
	}
}

func TestTemplateWithoutOwnerWarns(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	NewColorCapability(nil, NewGradientTemplate(GradientConic, 0, redBlue...)).Initialize()
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "no owner") {
		t.Errorf("log = %q, want a warning about the missing owner", out)
	}
	if !strings.Contains(out, "conic-gradient") {
		t.Errorf("log = %q, want the template described", out)
	}
}

func TestWarnLevelHidesDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	cc := NewColorCapability(nil, Literal("red"))
	cc.Initialize()
	NewLinearGradient(Corners(Pt(0, 0), Pt(1, 1)), redBlue...)
	if buf.Len() != 0 {
		t.Errorf("debug records leaked at warn level: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	SetLogger(nil)

	NewColorCapability(nil, Literal("bogus")).Initialize()
	if buf.Len() != 0 {
		t.Errorf("output after SetLogger(nil): %q", buf.String())
	}
}

func TestSetLoggerWhileResolving(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 50 {
				if i%2 == 0 {
					SetLogger(l)
				} else {
					SetLogger(nil)
				}
				_ = Logger()
			}
		}(i)
	}
	wg.Wait()
}
