// Package logging holds the server's slog pipeline: JSON lines on stdout
// for everything at INFO and above, with errors mirrored to dated files
// under the log dir so demo incidents survive a restart. FileHandler is the
// file sink, MultiHandler pairs it with the stdout handler, and
// StartCleanup prunes old files.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON logger. The file sink attaches later in
// main, once config says where the log dir is.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
