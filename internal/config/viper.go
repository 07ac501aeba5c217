// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Extractor struct {
		MinLineLength     int     `mapstructure:"min_line_length" yaml:"min_line_length"`
		MaxAmount         float64 `mapstructure:"max_amount" yaml:"max_amount"`
		DescriptionLimit  int     `mapstructure:"description_limit" yaml:"description_limit"`
		DedupPrefixLength int     `mapstructure:"dedup_prefix_length" yaml:"dedup_prefix_length"`
	} `mapstructure:"extractor" yaml:"extractor"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Sources struct {
		PdftotextBinary string `mapstructure:"pdftotext_binary" yaml:"pdftotext_binary"`
		PdftoppmBinary  string `mapstructure:"pdftoppm_binary" yaml:"pdftoppm_binary"`
		TesseractBinary string `mapstructure:"tesseract_binary" yaml:"tesseract_binary"`
		OCRDPI          int    `mapstructure:"ocr_dpi" yaml:"ocr_dpi"`
	} `mapstructure:"sources" yaml:"sources"`
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config file, then STMT_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-csv")
	v.AddConfigPath(".statement-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetConfig returns the global configuration, initializing it on first use.
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := InitializeConfig()
		if err != nil {
			Logger.Warnf("configuration error, using defaults: %v", err)
			cfg = defaultConfig()
		}
		globalConfig = cfg
	})
	return globalConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("extractor.min_line_length", 10)
	v.SetDefault("extractor.max_amount", 10_000_000)
	v.SetDefault("extractor.description_limit", 100)
	v.SetDefault("extractor.dedup_prefix_length", 50)

	v.SetDefault("categories.file", "categories.yaml")

	v.SetDefault("sources.pdftotext_binary", "pdftotext")
	v.SetDefault("sources.pdftoppm_binary", "pdftoppm")
	v.SetDefault("sources.tesseract_binary", "tesseract")
	v.SetDefault("sources.ocr_dpi", 300)
}

func defaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		Logger.Fatalf("failed to build default configuration: %v", err)
	}
	return &cfg
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format '%s' (must be 'text' or 'json')", config.Log.Format)
	}
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got '%s'", config.CSV.Delimiter)
	}
	if config.Extractor.MinLineLength < 0 {
		return fmt.Errorf("extractor min_line_length must not be negative")
	}
	if config.Extractor.MaxAmount <= 0 {
		return fmt.Errorf("extractor max_amount must be positive")
	}
	if config.Extractor.DescriptionLimit <= 3 {
		return fmt.Errorf("extractor description_limit must leave room for the ellipsis marker")
	}
	if config.Extractor.DedupPrefixLength <= 0 {
		return fmt.Errorf("extractor dedup_prefix_length must be positive")
	}
	if config.Sources.OCRDPI < 72 {
		return fmt.Errorf("sources ocr_dpi must be at least 72")
	}
	return nil
}
