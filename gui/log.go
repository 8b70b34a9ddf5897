package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel gates all GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables debug logging for GUI components.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// LogLevel returns the level SetVerbose switches. Handlers built with it
// follow the same switch as the GUI's own logging.
func LogLevel() slog.Leveler {
	return guiLogLevel
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}
