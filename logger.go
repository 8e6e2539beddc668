package imui

import (
	"context"
	"log/slog"
	"os"
)

// logLevel controls the level of the default logger.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for contexts that use
// the default logger. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// debugEnabled reports whether l records debug messages. Records that cost
// something to assemble are guarded by it.
func debugEnabled(l *slog.Logger) bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// defaultLogger is shared by every Context created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
