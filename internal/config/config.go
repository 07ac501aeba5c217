// Package config provides environment bootstrap and the application
// configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	envOnce sync.Once

	// Logger is the shared logrus instance used before and during bootstrap.
	Logger = logrus.New()
)

// ConfigureLogging applies LOG_LEVEL and LOG_FORMAT from the environment to
// the shared logger and returns it. Unknown levels fall back to info.
func ConfigureLogging() *logrus.Logger {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}

	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", levelStr)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return Logger
}

// FindEnvFile returns the path of the nearest .env file, checking the working
// directory and then its parent, or "" when neither exists.
func FindEnvFile() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadEnv loads environment variables from the nearest .env file, once per
// process, and reapplies the logging configuration on success.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := FindEnvFile()
		if envFile == "" {
			Logger.Info("No .env file found, using environment variables")
			return
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Infof("Loaded environment variables from %s", envFile)

		ConfigureLogging()
	})
}
