package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/idg-content-builder/internal/config"
	"github.com/jonathan/idg-content-builder/internal/slug"
	"github.com/jonathan/idg-content-builder/internal/types"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Print the link of a tool",
	Long: `Prints the link built from a tool name and its unique slug, the same way build does.
Links stay valid when the name changes because only the unique slug is used to look tools up.`,
	Args: cobra.NoArgs,
	RunE: runLink,
}

var (
	linkName     string
	linkSlug     string
	linkLanguage string
)

func init() {
	linkCmd.Flags().StringVarP(&linkName, "name", "n", "", "Tool name (required)")
	linkCmd.Flags().StringVarP(&linkSlug, "slug", "s", "", "Unique slug of the tool (required)")
	linkCmd.Flags().StringVar(&linkLanguage, "language", "", "Language of the name (defaults to DEFAULT_LANGUAGE or en)")

	if err := linkCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := linkCmd.MarkFlagRequired("slug"); err != nil {
		panic(fmt.Sprintf("failed to mark slug flag as required: %v", err))
	}

	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, _ []string) error {
	if linkSlug == "" {
		return fmt.Errorf("--slug must not be empty")
	}

	tag := linkLanguage
	if tag == "" {
		tag = os.Getenv(config.EnvDefaultLanguage)
	}
	if tag == "" {
		tag = string(types.English)
	}
	lang, err := types.ParseLanguage(tag)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), slug.BuildLink(linkName, linkSlug, lang))
	return nil
}
