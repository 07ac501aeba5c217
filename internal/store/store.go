// Package store provides loading of the category taxonomy from YAML files.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"finsight/statement-csv/internal/config"
	"finsight/statement-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from the config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading of category keyword data.
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for category data. An empty filename
// falls back to "categories.yaml".
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/statement-csv/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "statement-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads category keyword sets from the YAML file. A missing
// file is not an error: the caller falls back to the built-in taxonomy.
// Entries naming a category outside the closed set are dropped with a warning
// so the engine's output labels stay within the fixed set.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Categories file not found: %s", filename)
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	categories, err := parseCategories(data)
	if err != nil {
		return nil, err
	}

	valid := categories[:0]
	for _, c := range categories {
		if !models.IsValidCategory(c.Name) {
			log.Warnf("Ignoring unknown category '%s' in %s", c.Name, filePath)
			continue
		}
		valid = append(valid, c)
	}

	log.Debugf("Loaded %d categories from %s", len(valid), filePath)
	return valid, nil
}

// parseCategories unmarshals the categories file, accepting either the
// "categories: [...]" structure or a bare list of entries.
func parseCategories(data []byte) ([]models.CategoryConfig, error) {
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		return normalizeKeywords(categoriesConfig.Categories), nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil && len(categories) > 0 {
		return normalizeKeywords(categories), nil
	}

	return nil, fmt.Errorf("error parsing categories file: unrecognized structure")
}

// normalizeKeywords lowercases all keywords so matching stays case-insensitive.
func normalizeKeywords(categories []models.CategoryConfig) []models.CategoryConfig {
	for i := range categories {
		for j, kw := range categories[i].Keywords {
			categories[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return categories
}
