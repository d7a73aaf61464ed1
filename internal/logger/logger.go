// Package logger builds the file-backed slog logger; the TUI owns stdout so nothing is logged
// to the terminal.
package logger

import (
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// New opens path for appending and returns a text logger writing to it at the given level.
// The returned file must be closed by the caller.
func New(path, level string) (*slog.Logger, *os.File, error) {
	// LogToFile also points the standard library logger at the same file
	file, err := tea.LogToFile(path, "vsa")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", path)
	}

	// Create a text handler that writes to the file
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	return slog.New(handler), file, nil
}

// ParseLevel maps debug, info, warn and error onto slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
