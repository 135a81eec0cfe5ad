package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

const ProdEnv = "production"

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests do not go through main, so the logger must be usable without an explicit init.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	env := os.Getenv("APP_ENV")
	if env == ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	Log = logger.WithFields(logrus.Fields{
		"service": "columns-cms",
		"env":     env,
	})
}
