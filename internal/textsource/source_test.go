package textsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-csv/internal/parsererror"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedName string
	}{
		{"txt file", "statement.txt", "plaintext"},
		{"text file", "notes.text", "plaintext"},
		{"uppercase extension", "STATEMENT.TXT", "plaintext"},
		{"pdf", "statement.pdf", "pdftotext"},
		{"png image", "scan.png", "tesseract"},
		{"jpeg image", "scan.jpeg", "tesseract"},
		{"jpg image", "photo.JPG", "tesseract"},
		{"tiff image", "scan.tiff", "tesseract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := ForFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, source.Name())
		})
	}
}

func TestForFile_UnsupportedExtension(t *testing.T) {
	tests := []string{"data.csv", "doc.docx", "archive.zip", "noextension"}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := ForFile(path)
			require.Error(t, err)

			var formatErr *parsererror.InvalidFormatError
			assert.True(t, errors.As(err, &formatErr))
		})
	}
}
