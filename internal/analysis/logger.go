package analysis

import (
	"log/slog"
	"sync"

	"github.com/avesong/perch-go/internal/logging"
)

var (
	serviceLogger *slog.Logger
	loggerOnce    sync.Once
)

// getLogger returns the package logger scoped to the analysis service.
func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		serviceLogger = logging.ForService("analysis")
	})
	return serviceLogger
}
