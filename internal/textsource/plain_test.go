package textsource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/statement-csv/internal/parsererror"
)

func TestPlainTextSource_ExtractText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "15/03/2024 Swiggy order Rs. 450.00 Dr\nUber trip Rs. 230.50\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	text, err := NewPlainTextSource().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestPlainTextSource_PreservesInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbled.txt")
	raw := []byte{0xff, 0xfe, ' ', 'o', 'k'}
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	text, err := NewPlainTextSource().ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, string(raw), text)
}

func TestPlainTextSource_MissingFile(t *testing.T) {
	_, err := NewPlainTextSource().ExtractText(filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)
	var extractionErr *parsererror.DataExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "plaintext", extractionErr.Source)
}
