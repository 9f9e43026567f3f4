package otp

import (
	"fmt"

	kitlog "github.com/go-kit/kit/log"
)

// LogReporter reports progress of long generation or search runs as logfmt
// lines, one per completed decile.
type LogReporter struct {
	logger     kitlog.Logger
	total      int
	done       int
	lastDecile int
}

// NewLogReporter returns a reporter that logs under the given stage key.
func NewLogReporter(logger kitlog.Logger, stage string) *LogReporter {
	return &LogReporter{logger: kitlog.With(logger, "stage", stage)}
}

// Start resets the reporter for a run of total increments.
func (r *LogReporter) Start(total int) {
	r.total = total
	r.done = 0
	r.lastDecile = 0
}

// Increment records one unit of work and logs when a new decile is reached.
func (r *LogReporter) Increment() {
	r.done++
	if r.total <= 0 {
		return
	}
	decile := (10 * r.done) / r.total
	if decile > r.lastDecile {
		r.lastDecile = decile
		r.logger.Log("progress", fmt.Sprintf("%d%%", decile*10), "done", r.done, "total", r.total)
	}
}
