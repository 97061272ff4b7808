package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the stdlib logger so library code can log before Init
// runs (and in tests). Init swaps in the JSON handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
