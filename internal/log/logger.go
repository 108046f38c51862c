// Package log configures the process-wide logger. The presenter owns the
// terminal while running, so log output goes to a file rather than the
// screen.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Setup directs log output to the given file (or the default location
// under the user cache dir when path is empty) and sets the level.
func Setup(path string, verbose bool) error {
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("resolving cache dir: %w", err)
		}
		path = filepath.Join(cacheDir, "termdeck", "termdeck.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 - path comes from config or the user cache dir
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	logger.SetOutput(f)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return nil
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
