package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/idg-content-builder/internal/config"
)

// contentOptions holds the flags shared by the build and check commands.
type contentOptions struct {
	contentDir      string
	widgetData      string
	out             string
	defaultLanguage string
	languages       []string
	collections     []string
	singletons      []string
	assetPrefix     string
	indent          int
}

func addContentFlags(flags *pflag.FlagSet, o *contentOptions) {
	flags.StringVarP(&o.contentDir, "content-dir", "d", "", "Directory with one subdirectory per collection (default content/src)")
	flags.StringVarP(&o.widgetData, "widget-data", "w", "", "Widget relevancy dataset, \"none\" keeps the stored scores (default static/widget-data.json)")
	flags.StringVarP(&o.out, "out", "o", "", "Path of the bundle to write (default static/content.json)")
	flags.StringVar(&o.defaultLanguage, "default-language", "", "Language holding the authoritative variants (default en)")
	flags.StringSliceVarP(&o.languages, "languages", "l", nil, "Languages to include in the bundle (default en)")
	flags.StringSliceVar(&o.collections, "collections", nil, "Collections to load (default tools,skills,categories,tags)")
	flags.StringSliceVar(&o.singletons, "singletons", nil, "Singletons to include, e.g. dimensions")
	flags.StringVar(&o.assetPrefix, "asset-prefix", "", "CMS prefix removed from asset URLs")
	flags.IntVar(&o.indent, "indent", 0, "Indent the bundle with this many spaces (0 writes compact JSON)")
}

// resolveConfig builds the configuration from, in increasing priority: defaults, the config
// file, environment variables and explicitly set flags.
func resolveConfig(cmd *cobra.Command, o *contentOptions) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Environment overrides the file
	cfg.ApplyEnv()

	// Step 3: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("content-dir") {
		cfg.ContentDir = o.contentDir
	}
	if flags.Changed("widget-data") {
		cfg.WidgetData = o.widgetData
	}
	if flags.Changed("out") {
		cfg.Output = o.out
	}
	if flags.Changed("default-language") {
		cfg.DefaultLanguage = o.defaultLanguage
	}
	if flags.Changed("languages") {
		cfg.Languages = o.languages
	}
	if flags.Changed("collections") {
		cfg.Collections = o.collections
	}
	if flags.Changed("singletons") {
		cfg.Singletons = o.singletons
	}
	if flags.Changed("asset-prefix") {
		cfg.AssetPrefix = o.assetPrefix
	}
	if flags.Changed("indent") {
		cfg.Indent = o.indent
	}
	if verbose {
		cfg.Verbose = true
	}

	// Step 4: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Default())

	// Step 5: Validate
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
