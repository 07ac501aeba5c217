package textsource

import (
	"os"

	"finsight/statement-csv/internal/parsererror"
)

// PlainTextSource reads already-extracted text, e.g. the saved output of an
// external OCR service.
type PlainTextSource struct{}

// NewPlainTextSource creates a plain text adapter.
func NewPlainTextSource() *PlainTextSource {
	return &PlainTextSource{}
}

// Name identifies the adapter.
func (s *PlainTextSource) Name() string {
	return "plaintext"
}

// ExtractText returns the file content as-is. Encoding artifacts are left
// untouched; the engine treats invalid sequences as opaque characters.
func (s *PlainTextSource) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "failed to read file",
			Err:      err,
		}
	}
	return string(data), nil
}
