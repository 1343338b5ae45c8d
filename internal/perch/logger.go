package perch

import (
	"log/slog"
	"sync"

	"github.com/avesong/perch-go/internal/logging"
)

var (
	serviceLogger *slog.Logger
	loggerOnce    sync.Once
)

// getLogger returns the package logger scoped to the perch service.
func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		serviceLogger = logging.ForService("perch")
	})
	return serviceLogger
}
