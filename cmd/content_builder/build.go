package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/idg-content-builder/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the content bundle",
	Long: `Loads every selected collection, validates and normalizes the content, splits it by
language and writes the bundle.

Configuration can be loaded from a JSON or YAML file using --config. Environment variables
(CONTENT_DIR, WIDGET_DATA, CONTENT_OUTPUT, DEFAULT_LANGUAGE, CONTENT_LANGUAGES, ASSET_PREFIX,
CONTENT_INDENT) override the file and command-line flags override both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runBuild(cmd, &buildOptions)
	},
}

var buildOptions contentOptions

func init() {
	addContentFlags(buildCmd.Flags(), &buildOptions)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, o *contentOptions) error {
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = pipeline.Run(ctx, pipeline.RunOptions{
		Config: cfg,
		Logger: logger,
		Out:    cmd.OutOrStdout(),
	})
	return err
}
