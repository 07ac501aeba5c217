package extractor

import "regexp"

// Date patterns tried in order; the first match wins. The matched string is
// preserved verbatim: no normalization and no calendar validation happen at
// this layer, so "32/13/2024" passes through untouched.
var datePatterns = []*regexp.Regexp{
	// DD/MM/YYYY or DD/MM/YY with '-' or '/' separators
	regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
	// YYYY/MM/DD
	regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
	// D Mon YYYY style month-name dates
	regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})\b`),
}

// findDate returns the first date-looking substring on the line.
func findDate(line string) (string, bool) {
	for _, pattern := range datePatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
