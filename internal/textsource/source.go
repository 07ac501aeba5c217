// Package textsource provides the adapters that turn documents into the raw
// text the extraction engine consumes. The engine is agnostic to which
// adapter produced the text; adapters own all I/O and all failure modes
// (unreachable tool, corrupt file), which are kept distinct from the
// engine's "no transactions found" outcome.
package textsource

import (
	"path/filepath"
	"strings"

	"finsight/statement-csv/internal/parsererror"
)

// Source turns a document file into raw text for the extraction engine.
type Source interface {
	// Name identifies the adapter for logging and error context.
	Name() string

	// ExtractText recovers the text content of the file at path.
	ExtractText(path string) (string, error)
}

// imageExtensions are the raster formats handed to the OCR adapter.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// ForFile selects a text source based on the file extension: plain text
// passes through, PDFs go through pdftotext with an OCR fallback for scanned
// documents, and images go straight to OCR.
func ForFile(path string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt" || ext == ".text":
		return NewPlainTextSource(), nil
	case ext == ".pdf":
		return NewPDFSource(), nil
	case imageExtensions[ext]:
		return NewOCRSource(), nil
	default:
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "txt, pdf, or image (png, jpeg, webp, bmp, tiff)",
			Msg:            "unsupported file extension",
		}
	}
}
