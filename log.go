package editorui

import (
	"log/slog"
	"os"
)

// editorLogLevel controls the log level for editor debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var editorLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the editor
// surface. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		editorLogLevel.Set(slog.LevelDebug)
	} else {
		editorLogLevel.Set(slog.LevelInfo)
	}
}

// editorVerbose returns true if debug logging is enabled.
func editorVerbose() bool {
	return editorLogLevel.Level() <= slog.LevelDebug
}

// editorLogger is the logger for editor surface events.
var editorLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: editorLogLevel}))
