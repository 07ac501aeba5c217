package textsource

import (
	"os"
	"os/exec"
	"strings"

	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/parsererror"
)

// PDFSource extracts text from PDF statements using the pdftotext
// command-line tool, falling back to OCR when the PDF has no text layer.
type PDFSource struct {
	binary string
	ocr    *OCRSource
	logger logging.Logger
}

// NewPDFSource creates a PDF adapter using the configured pdftotext binary.
func NewPDFSource() *PDFSource {
	cfg := config.GetConfig()
	return &PDFSource{
		binary: cfg.Sources.PdftotextBinary,
		ocr:    NewOCRSource(),
		logger: logging.GetLogger().WithField(logging.FieldSource, "pdf"),
	}
}

// Name identifies the adapter.
func (s *PDFSource) Name() string {
	return "pdftotext"
}

// ExtractText runs pdftotext in layout mode and reads the result. A PDF
// that yields no text at all is assumed to be a scan and is retried through
// the OCR adapter.
func (s *PDFSource) ExtractText(path string) (string, error) {
	if _, err := exec.LookPath(s.binary); err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "pdftotext not available (install poppler-utils)",
			Err:      err,
		}
	}

	tempFile, err := os.CreateTemp("", "*.txt")
	if err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "failed to create temporary output file",
			Err:      err,
		}
	}
	tempPath := tempFile.Name()
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			s.logger.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempPath})
		}
	}()
	if err := tempFile.Close(); err != nil {
		s.logger.WithError(err).Warn("Failed to close temporary file",
			logging.Field{Key: logging.FieldFile, Value: tempPath})
	}

	cmd := exec.Command(s.binary, "-layout", path, tempPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "pdftotext failed: " + strings.TrimSpace(string(out)),
			Err:      err,
		}
	}

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "failed to read extracted text",
			Err:      err,
		}
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		s.logger.Info("PDF has no text layer, retrying with OCR",
			logging.Field{Key: logging.FieldFile, Value: path})
		return s.ocr.ExtractText(path)
	}

	return text, nil
}
