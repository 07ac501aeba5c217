// Package categorizer assigns one of a fixed set of category labels to a
// transaction line using keyword taxonomies.
package categorizer

import "finsight/statement-csv/internal/models"

// Strategy defines a single categorization approach. Strategies are tried
// in priority order; the first one that reports a match wins.
type Strategy interface {
	// Name returns the name of this strategy for logging and debugging.
	Name() string

	// Categorize attempts to assign a category to the given transaction line.
	// It returns the category name and true on a match, or "" and false
	// when this strategy has no opinion.
	Categorize(line string) (string, bool)
}

// CategoryStoreInterface abstracts the source of user-provided category
// configuration so strategies can be tested without touching the filesystem.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}
