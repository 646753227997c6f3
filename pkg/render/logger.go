package render

import (
	"log/slog"

	"github.com/taigrr/scanline/internal/logging"
)

// SetLogger configures the logger used by render and models. By default
// nothing is logged. Pass nil to silence it again.
//
// Debug records describe loaded resources and per-frame statistics.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
