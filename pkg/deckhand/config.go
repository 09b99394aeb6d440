package deckhand

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the classification and mutation defaults for a deck session.
// The layout names and title prefix are the classification signals; the
// remaining fields feed title-slide updates.
type Config struct {
	// SectionHeaderLayout is the layout name marking section-header slides.
	SectionHeaderLayout string `yaml:"section_header_layout"`
	// TitleOnlyLayout is the layout name required for summary slides.
	TitleOnlyLayout string `yaml:"title_only_layout"`
	// SummaryTitlePrefix is the case-insensitive title prefix marking summary
	// slides. Compared against the lowercased title.
	SummaryTitlePrefix string `yaml:"summary_title_prefix"`
	// DefaultAttribution is used by title-slide updates when no attribution
	// text is supplied.
	DefaultAttribution string `yaml:"default_attribution"`
	// TitleDateFormat is the Go time layout for the date in default titles.
	TitleDateFormat string `yaml:"title_date_format"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		SectionHeaderLayout: "Section Header",
		TitleOnlyLayout:     "Title Only",
		SummaryTitlePrefix:  "summary:",
		DefaultAttribution:  "Updated automatically",
		TitleDateFormat:     "01-02-2006",
	}
}

// LoadConfig reads a YAML config file and applies defaults for unset fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.SectionHeaderLayout == "" {
		cfg.SectionHeaderLayout = def.SectionHeaderLayout
	}
	if cfg.TitleOnlyLayout == "" {
		cfg.TitleOnlyLayout = def.TitleOnlyLayout
	}
	if cfg.SummaryTitlePrefix == "" {
		cfg.SummaryTitlePrefix = def.SummaryTitlePrefix
	}
	if cfg.DefaultAttribution == "" {
		cfg.DefaultAttribution = def.DefaultAttribution
	}
	if cfg.TitleDateFormat == "" {
		cfg.TitleDateFormat = def.TitleDateFormat
	}
}
