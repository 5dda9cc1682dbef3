package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	formatter := &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       os.Stdout,
		Level:     logrus.InfoLevel,
	}

	// Package-level logrus calls (main, migration script) should emit the
	// same JSON shape as the instance logger.
	logrus.SetFormatter(formatter)
	logrus.SetOutput(os.Stdout)

	return &logger
}
