package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// merchantPrepositionRe looks for a preposition followed by a capitalized
// word sequence, e.g. "order at Swiggy" or "transfer from Ramesh Kumar".
var merchantPrepositionRe = regexp.MustCompile(`(?:(?i:at|from|to)|@)\s+([A-Z][a-zA-Z\s&'-]+)`)

// findMerchant extracts a best-effort counterparty name from a line. The
// preposition pattern is tried first; failing that, the first capitalized
// token longer than 3 characters that is not a currency marker and not
// numeric is used. The fallback is noisy on OCR'd text where case is
// frequently misrecognized, so the result is advisory only.
func findMerchant(line string) (string, bool) {
	if m := merchantPrepositionRe.FindStringSubmatch(line); m != nil {
		merchant := strings.TrimSpace(m[1])
		if merchant != "" {
			return merchant, true
		}
	}

	for _, word := range strings.Fields(line) {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) {
			continue
		}
		if strings.Contains(word, "Rs") || strings.Contains(word, "INR") {
			continue
		}
		return word, true
	}

	return "", false
}
