package common

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/parsererror"
)

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProcessFile_CSVOutput(t *testing.T) {
	input := writeStatement(t, "15/03/2024 Swiggy order Rs. 450.00 Dr\nSalary credited 50,000.00\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	err := ProcessFile(input, output, "csv", logging.NewMockLogger())

	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBIT,450")
	assert.Contains(t, string(data), "CREDIT,50000")
}

func TestProcessFile_JSONOutput(t *testing.T) {
	input := writeStatement(t, "Uber trip Rs. 230.50\n")
	output := filepath.Join(t.TempDir(), "out.json")

	err := ProcessFile(input, output, "json", logging.NewMockLogger())

	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var result struct {
		Transactions []map[string]interface{} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Transport", result.Transactions[0]["category"])
}

func TestProcessFile_NoTransactionsWarnsAndSucceeds(t *testing.T) {
	input := writeStatement(t, "Bank Statement for March 2024\nPage 1 of 1\n")
	output := filepath.Join(t.TempDir(), "out.csv")
	logger := logging.NewMockLogger()

	err := ProcessFile(input, output, "csv", logger)

	require.NoError(t, err)
	assert.True(t, logger.HasEntry("WARN", "No transactions detected"))

	// Header-only output, so downstream tooling still gets a valid file.
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Direction")
}

func TestProcessFile_UnsupportedInput(t *testing.T) {
	err := ProcessFile("ledger.docx", filepath.Join(t.TempDir(), "out.csv"), "csv", logging.NewMockLogger())

	require.Error(t, err)
	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestProcessFile_MissingInput(t *testing.T) {
	err := ProcessFile(filepath.Join(t.TempDir(), "absent.txt"),
		filepath.Join(t.TempDir(), "out.csv"), "csv", logging.NewMockLogger())

	require.Error(t, err)
	var extractionErr *parsererror.DataExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}
