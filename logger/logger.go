package logger

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var globalLogger *logrus.Logger

// InitLogger configures the process-wide logger. Valid levels are debug,
// info, warn and error.
func InitLogger(level string) error {
	var lvl logrus.Level
	switch level {
	case "debug":
		lvl = logrus.DebugLevel
	case "info":
		lvl = logrus.InfoLevel
	case "warn":
		lvl = logrus.WarnLevel
	case "error":
		lvl = logrus.ErrorLevel
	default:
		return errors.Errorf("invalid log level: %s", level)
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	globalLogger = l
	return nil
}

func GetLogger() *logrus.Logger {
	if globalLogger == nil {
		return logrus.StandardLogger()
	}
	return globalLogger
}
