// Package batch handles batch processing of documents
package batch

import (
	"os"
	"path/filepath"
	"strings"

	cmdcommon "finsight/statement-csv/cmd/common"
	"finsight/statement-csv/cmd/root"
	"finsight/statement-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process documents from a directory",
	Long: `Batch process all supported documents in an input directory and write the
extracted transactions to an output directory, one result file per document.
Each document is processed independently; a failing document does not stop
the rest of the batch.

Example:
  statement-csv batch -i scans/ -o results/`,
	Run: batchFunc,
}

// supportedExtensions are the document types the batch sweep picks up.
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	format := root.SharedFlags.Format

	logger := root.GetLogrusAdapter()
	logger.Info("Batch processing",
		logging.Field{Key: logging.FieldInputFile, Value: inputDir},
		logging.Field{Key: logging.FieldOutputFile, Value: outputDir})

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		logger.Fatalf("Failed to read input directory: %v", err)
	}

	processed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedExtensions[ext] {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		outputFile := filepath.Join(outputDir, outputName(entry.Name(), format))

		if err := cmdcommon.ProcessFile(inputFile, outputFile, format, logger); err != nil {
			logger.WithError(err).Error("Failed to process document",
				logging.Field{Key: logging.FieldInputFile, Value: inputFile})
			failed++
			continue
		}
		processed++
	}

	logger.Info("Batch processing finished",
		logging.Field{Key: "processed", Value: processed},
		logging.Field{Key: "failed", Value: failed})
	if processed == 0 && failed == 0 {
		logger.Warn("No supported documents found in input directory")
	}
}

// outputName derives the result filename for a document.
func outputName(name, format string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.EqualFold(format, "json") {
		return base + ".json"
	}
	return base + ".csv"
}
