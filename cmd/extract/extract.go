// Package extract handles single-document extraction commands
package extract

import (
	cmdcommon "finsight/statement-csv/cmd/common"
	"finsight/statement-csv/cmd/root"
	"finsight/statement-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from a document",
	Long: `Extract transaction records from a single document (plain text, PDF,
or image) and write them as CSV or JSON.

Example:
  statement-csv extract -i statement.pdf -o transactions.csv`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Extract command called")
	logger.Info("Processing document",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	if err := cmdcommon.ProcessFile(root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Format, logger); err != nil {
		logger.Fatalf("Error extracting transactions: %v", err)
	}
	root.Log.Info("Extraction completed successfully!")
}
