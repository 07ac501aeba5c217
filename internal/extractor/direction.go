package extractor

import (
	"regexp"
	"strings"

	"finsight/statement-csv/internal/models"
)

// creditKeywords upgrade a line from the default debit classification.
// Matching is substring presence on the lowercased line, with no negation
// handling: a line containing both "debit" and "credit" classifies as
// credit.
var creditKeywords = []string{
	"credit",
	"salary",
	"received",
	"refund",
	"deposit",
	"income",
}

// crTokenRe matches a standalone "cr" token or "cr." abbreviation without
// firing inside unrelated words.
var crTokenRe = regexp.MustCompile(`(?i)\bcr\b`)

// classifyDirection decides credit versus debit from contextual keywords.
// Debit is the default.
func classifyDirection(line string) models.Direction {
	lowerLine := strings.ToLower(line)
	for _, keyword := range creditKeywords {
		if strings.Contains(lowerLine, keyword) {
			return models.DirectionCredit
		}
	}
	if crTokenRe.MatchString(line) {
		return models.DirectionCredit
	}
	return models.DirectionDebit
}
