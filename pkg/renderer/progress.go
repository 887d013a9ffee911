package renderer

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ProgressSink receives a notification after each completed scanline.
// Purely observational: sinks must not influence pixel values.
type ProgressSink interface {
	ScanlineComplete(completed, total int)
}

// NopProgress discards progress events
type NopProgress struct{}

func (NopProgress) ScanlineComplete(completed, total int) {}

// LogProgress reports remaining scanlines through a Logger
type LogProgress struct {
	logger core.Logger
}

// NewLogProgress creates a progress sink writing to the given logger
func NewLogProgress(logger core.Logger) *LogProgress {
	return &LogProgress{logger: logger}
}

func (lp *LogProgress) ScanlineComplete(completed, total int) {
	lp.logger.Printf("\rScanlines remaining: %d ", total-completed)
	if completed == total {
		lp.logger.Printf("\nDone.\n")
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
