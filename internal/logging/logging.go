// Package logging provides component-scoped loggers for the CurveNav
// packages. The log level is read once from the CURVENAV_LOG_LEVEL
// environment variable ("debug", "info", "warn", "error"); the default is
// warn so interactive hosts stay quiet.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var configureOnce sync.Once

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) *logrus.Entry {
	configureOnce.Do(configure)
	return logrus.WithField("component", component)
}

func configure() {
	logrus.SetOutput(os.Stderr)

	level := logrus.WarnLevel
	if v := os.Getenv("CURVENAV_LOG_LEVEL"); v != "" {
		if parsed, err := logrus.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	logrus.SetLevel(level)
}

// SetOutput redirects all loggers to w. Interactive hosts that own the
// terminal use this to keep log lines off the screen.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}
