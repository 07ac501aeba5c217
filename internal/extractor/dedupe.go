package extractor

import (
	"github.com/shopspring/decimal"

	"finsight/statement-csv/internal/models"
)

// duplicateTolerance is the amount distance under which two detections are
// considered the same line item.
var duplicateTolerance = decimal.NewFromFloat(0.01)

// deduplicate removes records that likely refer to the same real-world line
// item detected more than once: amounts within the tolerance and identical
// description prefixes. The first occurrence wins and order is preserved.
// The pairwise scan is quadratic, which is fine for documents bounded by the
// pages of a scanned statement.
func deduplicate(records []models.TransactionRecord, prefixLength int) []models.TransactionRecord {
	if len(records) <= 1 {
		return records
	}

	result := make([]models.TransactionRecord, 0, len(records))
	for _, candidate := range records {
		if !containsDuplicate(result, candidate, prefixLength) {
			result = append(result, candidate)
		}
	}
	return result
}

func containsDuplicate(kept []models.TransactionRecord, candidate models.TransactionRecord, prefixLength int) bool {
	candidatePrefix := descriptionPrefix(candidate.Description, prefixLength)
	for _, existing := range kept {
		if existing.Amount.Sub(candidate.Amount).Abs().LessThan(duplicateTolerance) &&
			descriptionPrefix(existing.Description, prefixLength) == candidatePrefix {
			return true
		}
	}
	return false
}

// descriptionPrefix returns the first prefixLength runes of a description.
func descriptionPrefix(description string, prefixLength int) string {
	runes := []rune(description)
	if len(runes) <= prefixLength {
		return string(runes)
	}
	return string(runes[:prefixLength])
}
