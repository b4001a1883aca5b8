// Package config provides configuration loading and validation for the content builder.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/idg-content-builder/internal/content"
	"github.com/jonathan/idg-content-builder/internal/types"
)

// Config represents the build configuration that can be loaded from a JSON or YAML file.
// All fields are optional in the file; missing values use defaults or come from the
// environment and CLI flags.
type Config struct {
	// Paths
	ContentDir string `json:"content_dir,omitempty" yaml:"content_dir,omitempty" validate:"required"` // Directory with one subdirectory per collection
	WidgetData string `json:"widget_data,omitempty" yaml:"widget_data,omitempty"`                     // Widget relevancy dataset, "none" skips it
	Output     string `json:"output,omitempty" yaml:"output,omitempty" validate:"required"`           // Bundle written by the build

	// Content selection
	DefaultLanguage string   `json:"default_language,omitempty" yaml:"default_language,omitempty" validate:"required,language"`
	Languages       []string `json:"languages,omitempty" yaml:"languages,omitempty" validate:"required,min=1,unique,dive,language"`
	Collections     []string `json:"collections,omitempty" yaml:"collections,omitempty" validate:"required,min=1,unique,dive,collection"`
	Singletons      []string `json:"singletons,omitempty" yaml:"singletons,omitempty" validate:"unique,dive,singleton"`

	// Output
	AssetPrefix string `json:"asset_prefix,omitempty" yaml:"asset_prefix,omitempty"` // Removed from asset URLs
	Indent      int    `json:"indent,omitempty" yaml:"indent,omitempty" validate:"gte=0,lte=8"`
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// WidgetDataNone turns off the widget relevancy join when used as WidgetData.
const WidgetDataNone = "none"

// Default returns the configuration used by a plain build. Only English is built since no
// other translations are available yet.
func Default() Config {
	collections := make([]string, 0, len(types.DefaultCollections))
	for _, c := range types.DefaultCollections {
		collections = append(collections, string(c))
	}
	return Config{
		ContentDir:      filepath.Join("content", "src"),
		WidgetData:      filepath.Join("static", "widget-data.json"),
		Output:          filepath.Join("static", "content.json"),
		DefaultLanguage: string(types.English),
		Languages:       []string{string(types.English)},
		Collections:     collections,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Language tags are
// canonicalized first, so "EN" and "sv-SE" are accepted.
func (c *Config) Validate() error {
	c.canonicalize()

	validate := validator.New()
	if err := registerValidations(validate); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if path := c.WidgetDataPath(); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: widget data file not found: %s", c.WidgetData)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ContentDir == "" {
		result.ContentDir = defaults.ContentDir
	}
	if result.WidgetData == "" {
		result.WidgetData = defaults.WidgetData
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DefaultLanguage == "" {
		result.DefaultLanguage = defaults.DefaultLanguage
	}
	if result.AssetPrefix == "" {
		result.AssetPrefix = defaults.AssetPrefix
	}

	// Slices: use default if empty
	if len(result.Languages) == 0 {
		result.Languages = defaults.Languages
	}
	if len(result.Collections) == 0 {
		result.Collections = defaults.Collections
	}
	if len(result.Singletons) == 0 {
		result.Singletons = defaults.Singletons
	}

	if result.Indent == 0 {
		result.Indent = defaults.Indent
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// WidgetDataPath returns the widget dataset to load, or "" when the join is turned off.
func (c *Config) WidgetDataPath() string {
	if strings.EqualFold(c.WidgetData, WidgetDataNone) {
		return ""
	}
	return c.WidgetData
}

// SelectedLanguages returns the parsed output languages. Call after Validate.
func (c *Config) SelectedLanguages() []types.Language {
	langs, _ := types.ParseLanguages(c.Languages)
	return langs
}

// Language returns the parsed default language. Call after Validate.
func (c *Config) Language() types.Language {
	lang, _ := types.ParseLanguage(c.DefaultLanguage)
	return lang
}

// Selection returns the collections and singletons to load.
func (c *Config) Selection() content.Selection {
	collections := make([]types.Collection, 0, len(c.Collections))
	for _, name := range c.Collections {
		collections = append(collections, types.Collection(name))
	}
	return content.Selection{Collections: collections, Singletons: c.Singletons}
}

func (c *Config) canonicalize() {
	if lang, err := types.ParseLanguage(c.DefaultLanguage); err == nil {
		c.DefaultLanguage = string(lang)
	}
	for i, l := range c.Languages {
		if lang, err := types.ParseLanguage(l); err == nil {
			c.Languages[i] = string(lang)
		}
	}
	for i, name := range c.Collections {
		c.Collections[i] = strings.ToLower(strings.TrimSpace(name))
	}
}

func registerValidations(validate *validator.Validate) error {
	rules := map[string]validator.Func{
		"language": func(fl validator.FieldLevel) bool {
			_, err := types.ParseLanguage(fl.Field().String())
			return err == nil
		},
		"collection": func(fl validator.FieldLevel) bool {
			for _, c := range types.Collections {
				if string(c) == fl.Field().String() {
					return true
				}
			}
			return false
		},
		"singleton": func(fl validator.FieldLevel) bool {
			_, ok := content.SingletonFiles[fl.Field().String()]
			return ok
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}
