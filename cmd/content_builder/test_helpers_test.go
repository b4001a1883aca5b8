package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/idg-content-builder/internal/config"
)

// executeCommand runs rootCmd in process with args and returns everything written to its
// output. Flags keep their values between executions, so they are reset first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// clearEnv unsets the configuration variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvContentDir, config.EnvWidgetData, config.EnvOutput, config.EnvDefaultLanguage,
		config.EnvLanguages, config.EnvAssetPrefix, config.EnvIndent,
	} {
		if _, ok := os.LookupEnv(key); ok {
			t.Setenv(key, "")
		}
	}
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// writeContent writes a valid content directory to dir/content/src and a widget dataset to
// dir/static/widget-data.json, the default locations.
func writeContent(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "content/src/tools/lean-canvas.json", `{
		"en": {"id": "t1", "name": "Lean Canvas", "slug": "lc1", "tags": ["g1"], "relevancy": [{"skill": "s1", "score": 1}]}
	}`)
	writeFile(t, dir, "content/src/skills/s1.json", `{"en": {"id": "s1", "name": "Ideation", "category": "c1"}}`)
	writeFile(t, dir, "content/src/categories/c1.json", `{"en": {"id": "c1", "name": "Doing", "color": "#00ff00"}}`)
	writeFile(t, dir, "content/src/tags/g1.json", `{"en": {"id": "g1", "name": "Workshop"}}`)
	writeFile(t, dir, "static/widget-data.json", `{"content": [{"name": "Lean Canvas", "relevancy": [{"skill": "s1", "scoreGroup": 2}]}]}`)
}
