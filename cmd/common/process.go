// Package common contains shared functionality for command handlers
package common

import (
	"strings"

	"finsight/statement-csv/internal/common"
	"finsight/statement-csv/internal/extractor"
	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/textsource"
)

// ProcessFile acquires text from a single document, runs the extraction
// engine over it, and writes the records in the requested format.
func ProcessFile(inputFile, outputFile, format string, log logging.Logger) error {
	source, err := textsource.ForFile(inputFile)
	if err != nil {
		return err
	}

	log.Info("Acquiring text",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldSource, Value: source.Name()})

	text, err := source.ExtractText(inputFile)
	if err != nil {
		return err
	}

	transactions := extractor.ExtractTransactions(text)
	if len(transactions) == 0 {
		// A semantic outcome, not an error: the document held no
		// recognizable transaction rows.
		log.Warn("No transactions detected",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
	}

	if strings.EqualFold(format, "json") {
		return common.WriteTransactionsToJSON(transactions, outputFile)
	}
	return common.WriteTransactionsToCSV(transactions, outputFile)
}
