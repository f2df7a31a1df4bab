package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger and returns it
func Init(level string, json bool) *logrus.Logger {
	return setup(logrus.StandardLogger(), os.Stderr, level, json)
}

func setup(l *logrus.Logger, out io.Writer, level string, json bool) *logrus.Logger {
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})
	}
	return l
}
