package textsource

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/parsererror"
)

// OCRSource recovers text from scanned documents by rasterizing PDF pages
// with pdftoppm and running tesseract over the page images. Image files are
// fed to tesseract directly.
type OCRSource struct {
	pdftoppmBinary  string
	tesseractBinary string
	dpi             int
	logger          logging.Logger
}

// NewOCRSource creates an OCR adapter using the configured tool binaries.
func NewOCRSource() *OCRSource {
	cfg := config.GetConfig()
	return &OCRSource{
		pdftoppmBinary:  cfg.Sources.PdftoppmBinary,
		tesseractBinary: cfg.Sources.TesseractBinary,
		dpi:             cfg.Sources.OCRDPI,
		logger:          logging.GetLogger().WithField(logging.FieldSource, "ocr"),
	}
}

// Name identifies the adapter.
func (s *OCRSource) Name() string {
	return "tesseract"
}

// ExtractText OCRs the document at path. The recovered text is passed
// through a sanitization pre-pass that repairs common OCR punctuation damage
// in numbers before it reaches the extraction engine.
func (s *OCRSource) ExtractText(path string) (string, error) {
	if _, err := exec.LookPath(s.tesseractBinary); err != nil {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "tesseract not available (install tesseract-ocr)",
			Err:      err,
		}
	}

	var images []string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		tmpDir, pages, err := s.rasterize(path)
		if err != nil {
			return "", err
		}
		defer func() {
			if err := os.RemoveAll(tmpDir); err != nil {
				s.logger.WithError(err).Warn("Failed to remove temporary directory")
			}
		}()
		images = pages
	} else {
		images = []string{path}
	}

	var pages []string
	for _, image := range images {
		text, err := s.ocrImage(image)
		if err != nil {
			// Some pages might still work; log and continue
			s.logger.WithError(err).Warn("OCR failed for page image",
				logging.Field{Key: logging.FieldFile, Value: image})
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   fmt.Sprintf("OCR produced no text from %d page image(s)", len(images)),
			Err:      os.ErrInvalid,
		}
	}

	return SanitizeOCRText(strings.Join(pages, "\n")), nil
}

// rasterize converts PDF pages to PNG images and returns the temp directory
// holding them plus the sorted image paths.
func (s *OCRSource) rasterize(path string) (string, []string, error) {
	if _, err := exec.LookPath(s.pdftoppmBinary); err != nil {
		return "", nil, &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "pdftoppm not available (install poppler-utils)",
			Err:      err,
		}
	}

	tmpDir, err := os.MkdirTemp("", "ocr-pages-*")
	if err != nil {
		return "", nil, &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "failed to create temp dir",
			Err:      err,
		}
	}

	imgPrefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command(s.pdftoppmBinary, "-r", fmt.Sprintf("%d", s.dpi), "-png", path, imgPrefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", nil, &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "pdftoppm failed: " + strings.TrimSpace(string(out)),
			Err:      err,
		}
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", nil, &parsererror.DataExtractionError{
			FilePath: path,
			Source:   s.Name(),
			Reason:   "failed to read temp dir",
			Err:      err,
		}
	}

	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, e.Name()))
		}
	}
	sort.Strings(images)

	return tmpDir, images, nil
}

// ocrImage runs tesseract over one image and returns the recovered text.
// PSM 4 assumes a single column of text of variable sizes, which suits
// statement layouts.
func (s *OCRSource) ocrImage(image string) (string, error) {
	outBase := strings.TrimSuffix(image, filepath.Ext(image)) + "-ocr"
	cmd := exec.Command(s.tesseractBinary, image, outBase, "-l", "eng", "--psm", "4")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tesseract failed: %s: %w", strings.TrimSpace(string(out)), err)
	}

	outFile := outBase + ".txt"
	data, err := os.ReadFile(outFile)
	if err != nil {
		return "", fmt.Errorf("failed to read tesseract output: %w", err)
	}
	if err := os.Remove(outFile); err != nil {
		s.logger.WithError(err).Warn("Failed to remove tesseract output file")
	}

	return strings.TrimSpace(string(data)), nil
}
