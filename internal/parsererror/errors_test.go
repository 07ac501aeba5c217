package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "scan.docx",
		ExpectedFormat: "txt, pdf, or image",
		Msg:            "unsupported file extension",
	}

	assert.Contains(t, err.Error(), "scan.docx")
	assert.Contains(t, err.Error(), "unsupported file extension")
	assert.Contains(t, err.Error(), "txt, pdf, or image")
}

func TestDataExtractionError_Unwrap(t *testing.T) {
	cause := errors.New("exec: \"pdftotext\": executable file not found in $PATH")
	err := &DataExtractionError{
		FilePath: "statement.pdf",
		Source:   "pdftotext",
		Reason:   "tool unavailable",
		Err:      cause,
	}

	assert.Contains(t, err.Error(), "statement.pdf")
	assert.Contains(t, err.Error(), "pdftotext")
	assert.ErrorIs(t, err, cause)
}
