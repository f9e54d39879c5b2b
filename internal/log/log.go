// Package log configures the process-wide logrus logger and proxies to it.
package log

import (
	"io"
	"os"

	logrus "github.com/sirupsen/logrus"
)

// Options selects verbosity and format.
type Options struct {
	Debug bool
	JSON  bool
}

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

// Setup configures level and formatter. Output goes to stderr so stdout stays
// clean for results.
func Setup(opts Options) {
	logrus.SetOutput(os.Stderr)

	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if opts.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
