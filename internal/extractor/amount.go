package extractor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CandidateAmount is a monetary value located on a line, together with the
// span of the numeric substring that produced it.
type CandidateAmount struct {
	Value   decimal.Decimal
	Start   int
	End     int
	Pattern string
}

// amountMatcher is one entry of the ordered amount pattern battery. Each
// regexp captures the numeric part (with optional thousands separators and
// exactly 0 or 2 decimal places) in group 1.
type amountMatcher struct {
	name string
	re   *regexp.Regexp
}

// amountMatchers are tried in order; the battery stops at the first matcher
// whose first match on the line parses to a plausible value. The bare number
// matcher carries the highest false-positive risk and is only reached when
// every labeled pattern failed.
var amountMatchers = []amountMatcher{
	{"currency-prefix", regexp.MustCompile(`(?i)(?:Rs\.?|INR|₹)\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)},
	{"currency-suffix", regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:Rs\.?|INR|₹)`)},
	{"total-label", regexp.MustCompile(`(?i)Total[:\s]+(?:Rs\.?|INR|₹)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)},
	{"amount-label", regexp.MustCompile(`(?i)Amount[:\s]+(?:Rs\.?|INR|₹)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)},
	{"debit-credit-marker", regexp.MustCompile(`(?i)(?:^|\s)(\d+(?:,\d{3})*(?:\.\d{2})?)\s*(?:Dr|Cr|Debit|Credit)`)},
	{"bare-number", regexp.MustCompile(`(?:^|\s)(\d+(?:,\d{3})*(?:\.\d{2})?)(?:\s|$)`)},
}

// locateAmount applies the ordered pattern battery to a line and returns the
// first plausible candidate amount. Within a pattern only the first match is
// considered, so a balance-after-transaction figure on the same line never
// yields a second candidate; an implausible or unparseable first match makes
// the locator fall through to the next pattern.
func locateAmount(line string, maxAmount decimal.Decimal) (CandidateAmount, bool) {
	for _, matcher := range amountMatchers {
		loc := matcher.re.FindStringSubmatchIndex(line)
		if loc == nil || loc[2] < 0 {
			continue
		}

		raw := line[loc[2]:loc[3]]
		value, err := parseAmountToken(raw)
		if err != nil {
			continue
		}
		if !plausibleAmount(value, maxAmount) {
			continue
		}

		return CandidateAmount{
			Value:   value,
			Start:   loc[2],
			End:     loc[3],
			Pattern: matcher.name,
		}, true
	}

	return CandidateAmount{}, false
}

// parseAmountToken strips thousands separators and parses the remaining
// numeric token into a decimal value.
func parseAmountToken(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
}

// plausibleAmount bounds candidate values to (0, maxAmount). Values outside
// this range are account numbers, reference codes, or OCR damage.
func plausibleAmount(value, maxAmount decimal.Decimal) bool {
	return value.IsPositive() && value.LessThan(maxAmount)
}
