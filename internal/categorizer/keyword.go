package categorizer

import (
	"strings"

	"finsight/statement-csv/internal/logging"
	"finsight/statement-csv/internal/models"
)

// KeywordStrategy implements categorization using keyword substring matching
// against the built-in taxonomy, optionally extended by category
// configuration loaded from a YAML file.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	store      CategoryStoreInterface
	logger     logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy instance. The store may be
// nil, in which case only the built-in taxonomy is used.
func NewKeywordStrategy(store CategoryStoreInterface, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	strategy := &KeywordStrategy{
		store:  store,
		logger: logger,
	}
	strategy.loadCategories()
	return strategy
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize matches the lowercased line against each category's keyword set
// in priority order and returns the first category with a substring hit.
func (s *KeywordStrategy) Categorize(line string) (string, bool) {
	lowerLine := strings.ToLower(line)

	for _, categoryConfig := range s.categories {
		for _, keyword := range categoryConfig.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lowerLine, keyword) {
				s.logger.WithFields(
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: categoryConfig.Name},
				).Debug("Line categorized using keyword matching")
				return categoryConfig.Name, true
			}
		}
	}

	return "", false
}

// ReloadCategories reloads the categories from the store. This can be called
// when the underlying YAML file has been updated.
func (s *KeywordStrategy) ReloadCategories() {
	s.loadCategories()
}

// loadCategories merges store-provided keyword sets into the built-in
// taxonomy, keeping the fixed priority order of category names.
func (s *KeywordStrategy) loadCategories() {
	merged := DefaultTaxonomy()

	if s.store != nil {
		loaded, err := s.store.LoadCategories()
		if err != nil {
			s.logger.WithError(err).Warn("Failed to load categories for KeywordStrategy")
		} else {
			merged = mergeTaxonomies(merged, loaded)
			s.logger.WithField(logging.FieldCount, len(loaded)).Debug("Merged categories from store")
		}
	}

	s.categories = merged
}

// mergeTaxonomies appends user keywords to the matching built-in category.
// Priority order follows models.CategoryNames regardless of file order.
func mergeTaxonomies(base, extra []models.CategoryConfig) []models.CategoryConfig {
	byName := make(map[string]int, len(base))
	for i, c := range base {
		byName[c.Name] = i
	}

	for _, c := range extra {
		if i, ok := byName[c.Name]; ok {
			base[i].Keywords = append(base[i].Keywords, c.Keywords...)
			continue
		}
		if models.IsValidCategory(c.Name) {
			byName[c.Name] = len(base)
			base = append(base, c)
		}
	}

	ordered := make([]models.CategoryConfig, 0, len(base))
	for _, name := range models.CategoryNames {
		if i, ok := byName[name]; ok {
			ordered = append(ordered, base[i])
		}
	}
	return ordered
}
