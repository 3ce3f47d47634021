package viz

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefault verifies logging is silent out of the box.
func TestLoggerDefault(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("default logger is nil")
	}
	// Must not panic.
	l.Warn("ignored")
}

// TestSetLogger verifies an installed logger receives package warnings.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	// A degenerate fill emits a warning.
	c := NewPixelCanvas(10, 10, White, 8)
	c.FillHorizontal(5, Red)

	if !strings.Contains(buf.String(), "margin exceeds canvas width") {
		t.Errorf("warning not logged, got: %q", buf.String())
	}
}

// TestSetLogger_Nil verifies nil restores the silent default.
func TestSetLogger_Nil(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Warn("should vanish")
	if buf.Len() != 0 {
		t.Errorf("nil logger still writes: %q", buf.String())
	}
}
