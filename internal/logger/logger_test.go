package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vsa.log")
	l, f, err := New(path, "debug")
	if err != nil {
		t.Fatalf("expected no error but found '%v'", err)
	}
	l.Debug("results viewer opened", "id", "regional")
	f.Close()

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "id=regional") {
		t.Errorf("expected log file to contain the record but found '%s'", raw)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, expected := range cases {
		if ParseLevel(in) != expected {
			t.Errorf("expected level %v for '%s' but found %v", expected, in, ParseLevel(in))
		}
	}
}
