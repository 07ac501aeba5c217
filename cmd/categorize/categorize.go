// Package categorize handles transaction categorization commands
package categorize

import (
	"finsight/statement-csv/cmd/root"
	"finsight/statement-csv/internal/categorizer"
	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/extractor"

	"github.com/spf13/cobra"
)

var line string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction line",
	Long: `Run the keyword taxonomy over a single transaction line and print the
resulting category and direction. Useful for checking how a statement row
would be labeled without running a full extraction.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&line, "line", "l", "", "Transaction line to categorize")
	if err := Cmd.MarkFlagRequired("line"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Categorize command called")

	// Ensure the environment variables are loaded
	config.LoadEnv()

	if line == "" {
		root.Log.Error("A transaction line is required for categorization")
		return
	}

	category := categorizer.TagLine(line)
	root.Log.Infof("Category: %s", category)

	records := extractor.ExtractTransactions(line)
	if len(records) == 0 {
		root.Log.Info("Line would not yield a transaction (no plausible amount found)")
		return
	}

	record := records[0]
	root.Log.Infof("Direction: %s", record.Direction)
	root.Log.Infof("Amount: %s", record.Amount.StringFixed(2))
	if record.Date != "" {
		root.Log.Infof("Date: %s", record.Date)
	}
	if record.Merchant != "" {
		root.Log.Infof("Merchant: %s", record.Merchant)
	}
}
