package extractor

import (
	"strings"
	"unicode/utf8"
)

// structuralMarkers reliably indicate document scaffolding (headers, running
// balances, pagination) rather than transaction rows. Matching is a substring
// check on the lowercased line.
var structuralMarkers = []string{
	"statement",
	"opening balance",
	"closing balance",
	"account number",
	"page",
}

// keepLine decides whether a line can possibly describe a transaction.
// Lines shorter than minLength are stray OCR fragments; lines carrying a
// structural marker are document scaffolding. The decision is binary.
func keepLine(line string, minLength int) bool {
	if utf8.RuneCountInString(line) < minLength {
		return false
	}
	lowerLine := strings.ToLower(line)
	for _, marker := range structuralMarkers {
		if strings.Contains(lowerLine, marker) {
			return false
		}
	}
	return true
}
