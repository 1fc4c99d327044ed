package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global logrus logger: full-timestamp text output to
// both stdout and a size-rotated log file.
func Init() {
	logrus.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))

	rotator := &lumberjack.Logger{
		Filename:   "app.log",
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
