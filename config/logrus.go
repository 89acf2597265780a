package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	if os.Getenv("GIN_MODE") == "release" {
		logg.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logg.SetOutput(os.Stdout)

	switch os.Getenv("LOG_LEVEL") {
	case "DEBUG":
		logg.SetLevel(logrus.DebugLevel)
	case "WARN", "WARNING":
		logg.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logg.SetLevel(logrus.ErrorLevel)
	default:
		logg.SetLevel(logrus.InfoLevel)
	}
}

// LogError logs an error with the module/function context fields used
// across the codebase.
func LogError(moduleName, funcName, context string, err error) {
	logg.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}).Error(err.Error())
}
