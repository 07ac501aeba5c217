// Package common provides the shared export functionality for extracted
// transaction records.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the global CSV delimiter, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteTransactionsToCSV writes transaction records to a CSV file in a
// standardized format. An empty slice produces a header-only file.
func WriteTransactionsToCSV(transactions []models.TransactionRecord, csvFile string) error {
	if transactions == nil {
		transactions = []models.TransactionRecord{}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	// Fix amounts to 2 decimal places for a stable output format
	for i := range transactions {
		transactions[i].Amount = transactions[i].Amount.Round(2)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV file")

	return nil
}
