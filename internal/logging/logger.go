package logging

import (
	"log/slog"
	"os"
)

// Setup installs JSON logging to stdout. Debug records are kept outside production.
func Setup(appEnv string) slog.Handler {
	level := slog.LevelInfo
	if appEnv == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return handler
}

// Attach fans the current stdout handler out to sink as well.
func Attach(stdout slog.Handler, sink slog.Handler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdout, sink)))
}
