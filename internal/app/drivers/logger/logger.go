package logger

import (
	"medxbay-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the process-level logger used during bootstrap; request
// logging goes through the zap logger instead.
func NewLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(utilLevel(internalConfig))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

func utilLevel(internalConfig *config.InternalConfig) string {
	if internalConfig.App.Env == "production" {
		return "info"
	}
	return "debug"
}
