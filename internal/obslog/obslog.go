// Package obslog configures the module's structured logging, replacing the
// source material's printf-based logger.logger with log/slog.
package obslog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a slog.Logger writing leveled, structured lines to file (or
// os.Stderr if file is empty). Unlike a process-global slog.SetDefault, it
// returns the logger as a value: the solver core stays side-effect-free and
// testable, and a CLI invocation can hand a single logger down to whichever
// components want one.
func Setup(level, file string) (*slog.Logger, error) {
	w := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", file, err)
		}
		w = f
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})), nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
