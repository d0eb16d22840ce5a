package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	// Packages log through these before main runs; tests never call InitLogger.
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()
}

func InitLogger() {
	InitLoggerWithLevel("info")
}

// InitLoggerWithLevel configures both loggers. Unknown levels fall back to info.
func InitLoggerWithLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// info to stdout, warnings and errors to stderr
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(lvl)
	ErrorLogger.SetLevel(logrus.WarnLevel)
}
