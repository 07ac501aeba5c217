package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-csv/internal/models"
)

func sampleTransactions() []models.TransactionRecord {
	return []models.TransactionRecord{
		{
			Direction:   models.DirectionDebit,
			Amount:      decimal.NewFromFloat(450.00),
			Description: "Swiggy order Rs. 450.00 Dr",
			Category:    models.CategoryFood,
			Date:        "15/03/2024",
			Merchant:    "Swiggy",
		},
		{
			Direction:   models.DirectionCredit,
			Amount:      decimal.NewFromFloat(50000),
			Description: "Salary credited 50,000.00",
			Category:    models.CategoryOther,
		},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), csvFile)

	require.NoError(t, err)
	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Direction,Amount,Description,Category,Date,Merchant", lines[0])
	assert.Equal(t, "DEBIT,450,Swiggy order Rs. 450.00 Dr,Food,15/03/2024,Swiggy", lines[1])
	assert.Contains(t, lines[2], "CREDIT,50000")
}

func TestWriteTransactionsToCSV_EmptyProducesHeaderOnly(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "empty.csv")

	err := WriteTransactionsToCSV(nil, csvFile)

	require.NoError(t, err)
	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "Direction,Amount,Description,Category,Date,Merchant", strings.TrimSpace(string(data)))
}

func TestWriteTransactionsToCSV_CreatesParentDirectory(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")

	err := WriteTransactionsToCSV(sampleTransactions(), csvFile)

	require.NoError(t, err)
	_, err = os.Stat(csvFile)
	assert.NoError(t, err)
}

func TestWriteTransactionsToCSV_CustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	csvFile := filepath.Join(t.TempDir(), "semi.csv")
	err := WriteTransactionsToCSV(sampleTransactions(), csvFile)

	require.NoError(t, err)
	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Direction;Amount;Description"))
}

func TestWriteTransactionsToCSV_RoundsAmounts(t *testing.T) {
	records := []models.TransactionRecord{{
		Direction:   models.DirectionDebit,
		Amount:      decimal.RequireFromString("99.999"),
		Description: "rounding check",
		Category:    models.CategoryOther,
	}}
	csvFile := filepath.Join(t.TempDir(), "round.csv")

	err := WriteTransactionsToCSV(records, csvFile)

	require.NoError(t, err)
	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "100")
	assert.NotContains(t, string(data), "99.999")
}
