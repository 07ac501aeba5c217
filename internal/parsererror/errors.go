// Package parsererror defines the typed errors used by the text acquisition
// adapters. The extraction engine itself never fails; these errors belong to
// the components that turn documents into text.
package parsererror

import "fmt"

// InvalidFormatError represents an error where the input file does not conform
// to the format expected by a specific text source.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents a failure to recover text from a document,
// even if the document format itself is valid.
type DataExtractionError struct {
	FilePath string
	Source   string
	Reason   string
	Err      error
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for '%s' using %s: %s: %v",
		e.FilePath, e.Source, e.Reason, e.Err)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
