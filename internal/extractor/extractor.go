// Package extractor converts raw text recovered from scanned financial
// documents into a normalized sequence of transaction records. It is a
// layered pattern-matching pipeline: a line classifier discards document
// scaffolding, an ordered battery of amount patterns locates a monetary
// value per line, and keyword heuristics annotate direction, category,
// merchant, and date before a deduplication pass produces the final
// ordered sequence.
//
// The engine is a pure, synchronous computation over an in-memory string.
// It holds no state across calls and never fails: malformed input can only
// reduce recall, so absence of structure simply yields zero records.
package extractor

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"finsight/statement-csv/internal/categorizer"
	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/models"
)

// Engine extracts transaction records from statement text. Engines are
// immutable after construction and safe for concurrent use on independent
// documents.
type Engine struct {
	minLineLength    int
	maxAmount        decimal.Decimal
	descriptionLimit int
	dedupPrefixLen   int
	categorizer      *categorizer.Categorizer
	logger           logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-line debug output.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCategorizer sets the category tagger.
func WithCategorizer(c *categorizer.Categorizer) Option {
	return func(e *Engine) {
		if c != nil {
			e.categorizer = c
		}
	}
}

// WithMaxAmount overrides the upper plausibility bound for candidate amounts.
func WithMaxAmount(max decimal.Decimal) Option {
	return func(e *Engine) {
		if max.IsPositive() {
			e.maxAmount = max
		}
	}
}

// NewEngine creates an extraction engine using the application configuration
// for its bounds, applying any options on top.
func NewEngine(opts ...Option) *Engine {
	cfg := config.GetConfig()
	e := &Engine{
		minLineLength:    cfg.Extractor.MinLineLength,
		maxAmount:        decimal.NewFromFloat(cfg.Extractor.MaxAmount),
		descriptionLimit: cfg.Extractor.DescriptionLimit,
		dedupPrefixLen:   cfg.Extractor.DedupPrefixLength,
		categorizer:      categorizer.Default(),
		logger:           logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractTransactions converts newline-delimited statement text into an
// ordered sequence of transaction records. The result is possibly empty and
// identical across repeated calls on the same input.
func (e *Engine) ExtractTransactions(text string) []models.TransactionRecord {
	var records []models.TransactionRecord

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !keepLine(line, e.minLineLength) {
			continue
		}

		candidate, found := locateAmount(line, e.maxAmount)
		if !found {
			continue
		}

		record := e.assemble(line, candidate)
		e.logger.WithFields(
			logging.Field{Key: logging.FieldPattern, Value: candidate.Pattern},
			logging.Field{Key: logging.FieldAmount, Value: record.Amount.String()},
			logging.Field{Key: logging.FieldDirection, Value: string(record.Direction)},
			logging.Field{Key: logging.FieldCategory, Value: record.Category},
		).Debug("Line yielded a transaction")

		// One record per line at most: the first accepted amount wins and
		// the remaining patterns are never consulted for this line.
		records = append(records, record)
	}

	deduped := deduplicate(records, e.dedupPrefixLen)
	e.logger.WithField(logging.FieldCount, len(deduped)).Debug("Extraction finished")
	return deduped
}

// assemble builds the final record for a line whose amount has been located.
func (e *Engine) assemble(line string, candidate CandidateAmount) models.TransactionRecord {
	record := models.TransactionRecord{
		Direction:   classifyDirection(line),
		Amount:      candidate.Value,
		Description: truncateDescription(strings.TrimSpace(line), e.descriptionLimit),
		Category:    e.categorizer.Tag(line),
	}

	if date, ok := findDate(line); ok {
		record.Date = date
	}
	if merchant, ok := findMerchant(line); ok {
		record.Merchant = merchant
	}

	return record
}

// truncateDescription caps a description at limit runes, replacing the tail
// with an ellipsis marker when it overflows.
func truncateDescription(description string, limit int) string {
	if utf8.RuneCountInString(description) <= limit {
		return description
	}
	runes := []rune(description)
	return string(runes[:limit-3]) + "..."
}

// defaultEngine backs the package-level convenience entry point. Construction
// is deferred so configuration and the category taxonomy load first.
var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// ExtractTransactions extracts transaction records using a shared engine
// with the application configuration.
func ExtractTransactions(text string) []models.TransactionRecord {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine.ExtractTransactions(text)
}
