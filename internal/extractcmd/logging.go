package extractcmd

import (
	"log/slog"
	"os"
)

// setupLogging installs the default logger. Verbose runs log at debug level,
// which includes per-node skip reasons and cache activity.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
