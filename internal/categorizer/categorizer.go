package categorizer

import (
	"sync"

	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/models"
	"finsight/statement-csv/internal/store"
)

// Categorizer runs an ordered list of strategies over a transaction line and
// returns the first match, falling back to the Other category.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// NewCategorizer creates a Categorizer with the given strategies, tried in order.
func NewCategorizer(logger logging.Logger, strategies ...Strategy) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		strategies: strategies,
		logger:     logger,
	}
}

// Tag assigns a category to a transaction line. It always returns a member
// of the closed category set; lines no strategy recognizes map to Other.
func (c *Categorizer) Tag(line string) string {
	for _, strategy := range c.strategies {
		if category, found := strategy.Categorize(line); found {
			return category
		}
	}
	return models.CategoryOther
}

var (
	defaultCategorizer *Categorizer
	defaultOnce        sync.Once
)

// Default returns the shared Categorizer backed by the keyword strategy and
// the standard category store. The taxonomy is loaded once per process.
func Default() *Categorizer {
	defaultOnce.Do(func() {
		logger := logging.GetLogger()
		keyword := NewKeywordStrategy(store.NewCategoryStore(""), logger)
		defaultCategorizer = NewCategorizer(logger, keyword)
	})
	return defaultCategorizer
}

// TagLine categorizes a line using the shared default Categorizer.
func TagLine(line string) string {
	return Default().Tag(line)
}
