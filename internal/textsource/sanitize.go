package textsource

import "regexp"

// OCR engines often misread the decimal point in amounts as a semicolon or
// colon. These repairs run on acquired text only, before it reaches the
// extraction engine, so the engine's own pattern semantics stay untouched.
var (
	semicolonDecimalRe = regexp.MustCompile(`(\d);(\s*)(\d)`)
	colonDecimalRe     = regexp.MustCompile(`(\d):(\d)`)
	trailingColonRe    = regexp.MustCompile(`(\d):(\s|$)`)
)

// SanitizeOCRText fixes common OCR punctuation damage in numbers, e.g.
// "1,234; 56" and "1,234:56" both become "1,234.56".
func SanitizeOCRText(text string) string {
	text = semicolonDecimalRe.ReplaceAllString(text, "$1.$3")
	text = colonDecimalRe.ReplaceAllString(text, "$1.$2")
	text = trailingColonRe.ReplaceAllString(text, "$1$2")
	return text
}
