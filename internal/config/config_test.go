package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging_DefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	logger := ConfigureLogging()

	require.NotNil(t, logger)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestConfigureLogging_DebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := ConfigureLogging()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestConfigureLogging_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "shouting")

	logger := ConfigureLogging()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestConfigureLogging_JSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()

	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
