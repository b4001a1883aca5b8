package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv.
const (
	EnvContentDir      = "CONTENT_DIR"
	EnvWidgetData      = "WIDGET_DATA"
	EnvOutput          = "CONTENT_OUTPUT"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"
	EnvLanguages       = "CONTENT_LANGUAGES" // comma separated
	EnvAssetPrefix     = "ASSET_PREFIX"
	EnvIndent          = "CONTENT_INDENT"
)

// ApplyEnv overrides fields with the environment variables that are set.
// An unparsable CONTENT_INDENT is ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvContentDir); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv(EnvWidgetData); v != "" {
		c.WidgetData = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvDefaultLanguage); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv(EnvLanguages); v != "" {
		c.Languages = splitList(v)
	}
	if v := os.Getenv(EnvAssetPrefix); v != "" {
		c.AssetPrefix = v
	}
	if v := os.Getenv(EnvIndent); v != "" {
		if indent, err := strconv.Atoi(v); err == nil {
			c.Indent = indent
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
