package models

// CategoryConfig represents a single category entry from the taxonomy file.
// Keywords are lowercase fragments matched as substrings against the
// lowercased transaction line.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of categories.yaml.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
