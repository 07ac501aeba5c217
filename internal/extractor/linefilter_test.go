package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"typical transaction row", "Swiggy order Rs. 450.00 Dr", true},
		{"nine characters rejected", "123456789", false},
		{"ten characters kept", "1234567890", true},
		{"empty line rejected", "", false},
		{"statement header", "Bank Statement for March 2024", false},
		{"opening balance row", "Opening Balance 10,000.00", false},
		{"closing balance row", "Closing Balance 8,450.00", false},
		{"account number row", "Account Number: 1234567890", false},
		{"pagination footer", "Page 2 of 5 continued below", false},
		{"marker is case insensitive", "OPENING BALANCE 10,000.00", false},
		{"marker inside a longer word", "overhead pageant tickets 900.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keepLine(tt.line, 10))
		})
	}
}

func TestKeepLine_MultibyteRunesCountOnce(t *testing.T) {
	// Nine runes even though the rupee sign is three bytes.
	assert.False(t, keepLine("₹45 chai.", 10))
	assert.True(t, keepLine(strings.Repeat("₹", 10), 10))
}
