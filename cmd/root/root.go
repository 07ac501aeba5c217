// Package root contains the root command for the application
package root

import (
	"os"

	"finsight/statement-csv/internal/common"
	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// SharedFlags holds the persistent flag values
	SharedFlags CommonFlags

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-csv",
		Short: "A CLI tool to extract transactions from scanned statement text.",
		Long: `statement-csv recovers transaction records from the noisy text of scanned
financial documents (bank statements, receipts, bills) and exports them as
CSV or JSON. Text is acquired from plain-text, PDF, or image input and run
through a heuristic pattern-matching engine.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetDefaultLogger(adapter)
			common.SetLogger(adapter)
			store.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			} else if cfg := config.GetConfig(); cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "csv", "Output format (csv or json)")
}

// GetLogrusAdapter returns the shared command logger wrapped in the
// logging.Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Execute runs the root command.
func Execute() error {
	return Cmd.Execute()
}
