package main

import (
	"fmt"
	"os"
	"strings"

	"finsight/statement-csv/cmd/batch"
	"finsight/statement-csv/cmd/categorize"
	"finsight/statement-csv/cmd/extract"
	"finsight/statement-csv/cmd/root"
	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on all existing and future loggers
	logging.SetAllLogLevels(logLevel)

	// 4. Now that logging is properly configured, initialize root command
	root.Init()

	// 5. Add all subcommands
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	if envFile := config.FindEnvFile(); envFile != "" {
		_ = godotenv.Load(envFile)
	}
}

// configureLogLevelDirectly reads LOG_LEVEL and returns the parsed level,
// defaulting to info.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
