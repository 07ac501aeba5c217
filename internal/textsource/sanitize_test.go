package textsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOCRText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"semicolon decimal", "Total 1,234;56 due", "Total 1,234.56 due"},
		{"semicolon with space", "Total 1,234; 56 due", "Total 1,234.56 due"},
		{"colon decimal", "Amount 1,234:56 paid", "Amount 1,234.56 paid"},
		{"trailing colon", "balance 500: remaining", "balance 500 remaining"},
		{"trailing colon at end", "balance 500:", "balance 500"},
		{"clean text untouched", "Swiggy order Rs. 450.00 Dr", "Swiggy order Rs. 450.00 Dr"},
		{"label colon untouched", "Total: 500.00", "Total: 500.00"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeOCRText(tt.input))
		})
	}
}
