package rsmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries all settings for parsing and HTML generation. It is
// passed explicitly to Parser and Renderer; there is no global state.
type Config struct {
	Lexer LexerConfig `yaml:"lexer"`
	HTML  HTMLConfig  `yaml:"html"`
}

// LexerConfig configures tokenization.
type LexerConfig struct {
	// TabSize is the number of leading spaces that count as one level
	// of list indentation. A literal tab always counts as one level.
	TabSize int `yaml:"tab_size"`
}

// HTMLConfig configures HTML generation.
type HTMLConfig struct {
	// CSSFile is either "default" (write the selected theme) or a path
	// to a custom stylesheet copied into the output directory.
	CSSFile     string `yaml:"css_file"`
	Theme       string `yaml:"theme"`
	FaviconFile string `yaml:"favicon_file"`
	// UsePrism links PrismJS assets and emits language-* classes on
	// code blocks instead of the non_prism classes.
	UsePrism     bool   `yaml:"use_prism"`
	PrismTheme   string `yaml:"prism_theme"`
	SanitizeHTML bool   `yaml:"sanitize_html"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Lexer: LexerConfig{TabSize: 4},
		HTML: HTMLConfig{
			CSSFile:    "default",
			Theme:      DefaultTheme().Name,
			PrismTheme: "vsc-dark-plus",
		},
	}
}

// LoadConfig reads a YAML config file. An empty path returns the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Lexer.TabSize <= 0 {
		cfg.Lexer.TabSize = 4
	}
	if cfg.HTML.CSSFile == "" {
		cfg.HTML.CSSFile = "default"
	}
	if cfg.HTML.Theme == "" {
		cfg.HTML.Theme = DefaultTheme().Name
	}
	return cfg, nil
}
