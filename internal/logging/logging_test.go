package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapter_ImplementsLogger(t *testing.T) {
	var _ Logger = NewLogrusAdapter("info", "text")
	var _ Logger = NewLogrusAdapterFromLogger(logrus.New())
	var _ Logger = NewMockLogger()
}

func TestLogrusAdapter_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	adapter := NewLogrusAdapterFromLogger(base)

	adapter.WithField(FieldFile, "statement.pdf").Info("processing file",
		Field{Key: FieldCount, Value: 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "processing file", entry["msg"])
	assert.Equal(t, "statement.pdf", entry[FieldFile])
	assert.Equal(t, float64(3), entry[FieldCount])
}

func TestLogrusAdapter_WithErrorAttachesCause(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	adapter := NewLogrusAdapterFromLogger(base)

	adapter.WithError(errors.New("pdftotext exited 1")).Warn("falling back to OCR")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pdftotext exited 1", entry["error"])
}

func TestLogrusAdapter_InvalidLevelFallsBackToInfo(t *testing.T) {
	adapter, ok := NewLogrusAdapter("chatty", "text").(*LogrusAdapter)

	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.entry.Logger.GetLevel())
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := NewMockLogger()
	SetDefaultLogger(mock)
	assert.Same(t, Logger(mock), GetLogger())

	// nil is ignored.
	SetDefaultLogger(nil)
	assert.Same(t, Logger(mock), GetLogger())
}

func TestMockLogger_SharedEntrySink(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("direct message")
	mock.WithError(errors.New("boom")).Warn("derived message")
	mock.WithField(FieldSource, "tesseract").Debug("field message")

	assert.True(t, mock.HasEntry("INFO", "direct message"))
	assert.True(t, mock.HasEntry("WARN", "derived message"))
	assert.True(t, mock.HasEntry("DEBUG", "field message"))
	assert.Len(t, mock.Entries(), 3)
}

func TestMockLogger_FieldsAndError(t *testing.T) {
	mock := NewMockLogger()
	cause := errors.New("boom")

	mock.WithError(cause).WithField(FieldFile, "scan.png").Error("extraction failed")

	entries := mock.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, cause, entries[0].Error)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, FieldFile, entries[0].Fields[0].Key)
}
