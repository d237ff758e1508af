package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging scoped to a seed run
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// ForRun creates a logger carrying the run identifier so output from
// repeated seed runs against shared environments can be told apart.
func ForRun(runID string) *Logger {
	return New().WithField("run_id", runID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
