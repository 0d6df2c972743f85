// Package logging builds the process logger and holds small helpers that keep
// log lines uniform across packages.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logrus logger writing to out at the given level and format.
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}

	return logger, nil
}

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive).
// An empty string means info.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

// LogError logs msg at error level with err attached under logrus.ErrorKey.
func LogError(logger logrus.FieldLogger, msg string, err error) {
	logger.WithError(err).Error(msg)
}

// LogWarn logs msg at warn level.
func LogWarn(logger logrus.FieldLogger, msg string) {
	logger.Warn(msg)
}

// LogInfo logs msg at info level.
func LogInfo(logger logrus.FieldLogger, msg string) {
	logger.Info(msg)
}
