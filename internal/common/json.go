package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/models"
)

// extractionResult is the JSON export envelope. The shape matches what the
// downstream dashboard importer consumes.
type extractionResult struct {
	Transactions []models.TransactionRecord `json:"transactions"`
	Message      string                     `json:"message"`
}

// WriteTransactionsToJSON writes transaction records to a JSON file. An empty
// result carries an explanatory message so "no transactions detected" stays
// distinguishable from an extraction failure.
func WriteTransactionsToJSON(transactions []models.TransactionRecord, jsonFile string) error {
	if transactions == nil {
		transactions = []models.TransactionRecord{}
	}

	result := extractionResult{
		Transactions: transactions,
		Message:      fmt.Sprintf("Successfully extracted %d transaction(s)", len(transactions)),
	}
	if len(transactions) == 0 {
		result.Message = "No transactions detected in the document. " +
			"Please ensure the document contains clear transaction information with amounts."
	}

	dir := filepath.Dir(jsonFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling transactions to JSON: %w", err)
	}

	if err := os.WriteFile(jsonFile, data, 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: jsonFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to JSON file")

	return nil
}
