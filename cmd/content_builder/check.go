package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/idg-content-builder/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content without writing the bundle",
	Long:  "Loads and normalizes the content exactly like build does and reports the first error found. Nothing is written.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &checkOptions)
	},
}

var checkOptions contentOptions

func init() {
	addContentFlags(checkCmd.Flags(), &checkOptions)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, o *contentOptions) error {
	cfg, err := resolveConfig(cmd, o)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := pipeline.Check(ctx, pipeline.RunOptions{
		Config: cfg,
		Logger: logger,
		Out:    cmd.OutOrStdout(),
	}); err != nil {
		return fmt.Errorf("content check failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Content in %s is valid\n", cfg.ContentDir)
	return nil
}
