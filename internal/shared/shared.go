// package shared defines the profile store, sentinel errors and small helpers used across playmate
package shared

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger returns a logger writing to w, or [os.Stderr] when w is nil.
//
// Entries carry the app name as prefix and a wall-clock time. The level starts at info.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          AppName,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	})
}

// Verbose lowers l to debug level and starts reporting call sites.
func Verbose(l *log.Logger) {
	l.SetLevel(log.DebugLevel)
	l.SetReportCaller(true)
}

// GenerateID returns a random v4 UUID, used as the OAuth state.
func GenerateID() string {
	return uuid.NewString()
}
