package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/idg-content-builder/internal/config"
	"github.com/jonathan/idg-content-builder/internal/content"
	"github.com/jonathan/idg-content-builder/internal/normalize"
	"github.com/jonathan/idg-content-builder/internal/types"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

// newFixture writes a small content directory and widget dataset and returns a config for it.
func newFixture(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "content/tools/lean-canvas.json", `{
		"en": {"id": "t1", "name": "Lean Canvas", "slug": "lc1", "logo": "https://cms.example.com/uploads/lc.png",
		       "tags": ["g2", "g1"], "relevancy": [{"skill": "s1", "score": 0.1}, {"skill": "s2", "score": 0.5}]},
		"sv": {"id": "t1", "name": "Lean Canvas", "slug": "lc1", "tags": ["g1"], "relevancy": []}
	}`)
	writeFile(t, dir, "content/skills/s1.json", `{"en": {"id": "s1", "name": "Ideation", "category": "c1"}}`)
	writeFile(t, dir, "content/categories/c1.json", `{"en": {"id": "c1", "name": "Doing", "color": "#ff0000"}}`)
	writeFile(t, dir, "content/tags/g1.json", `{"en": {"id": "g1", "name": "Workshop"}}`)
	writeFile(t, dir, "content/tags/g2.json", `{"en": {"id": "g2", "name": "Canvas"}}`)
	writeFile(t, dir, "widget-data.json", `{"content": [
		{"name": "Lean Canvas", "relevancy": [{"skill": "s1", "scoreGroup": 3}, {"skill": "s2", "scoreGroup": 0}]}
	]}`)

	cfg := config.Default()
	cfg.ContentDir = filepath.Join(dir, "content")
	cfg.WidgetData = filepath.Join(dir, "widget-data.json")
	cfg.Output = filepath.Join(dir, "static", "content.json")
	cfg.AssetPrefix = "https://cms.example.com"
	return cfg
}

func TestRun_WritesBundle(t *testing.T) {
	cfg := newFixture(t)
	var out bytes.Buffer

	result, err := Run(context.Background(), RunOptions{Config: cfg, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, cfg.Output, result.Output)
	assert.NotEmpty(t, result.BuildID.String())

	var bundle types.Bundle
	require.NoError(t, content.ReadJSON(cfg.Output, &bundle))
	require.Contains(t, bundle, types.English)
	assert.NotContains(t, bundle, types.Swedish, "only the configured languages are written")

	en := bundle[types.English]
	require.Len(t, en.Tools, 1)
	tool := en.Tools[0]
	assert.Equal(t, "lean-canvas-lc1", tool.Link)
	assert.Equal(t, []string{"g2", "g1"}, tool.Tags, "tags are sorted by name")
	assert.Equal(t, []types.RelevancyScore{{Skill: "s1", Score: 3}}, tool.Relevancy)
	assert.Equal(t, "/uploads/lc.png", tool.Logo)

	require.Len(t, en.Skills, 1)
	assert.Equal(t, "#ff0000", en.Skills[0].Color)
	assert.Len(t, en.Tags, 2)
	assert.Nil(t, en.Stories)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Step 1/4: Loading content"))
	assert.True(t, strings.HasPrefix(lines[1], "Step 2/4: Normalizing"))
	assert.True(t, strings.HasPrefix(lines[2], "Step 3/4: Splitting"))
	assert.True(t, strings.HasPrefix(lines[3], "Step 4/4: Writing"))
	assert.Regexp(t, `^Finished in \d+\.\d{3} s$`, lines[4])
}

func TestRun_MultipleLanguages(t *testing.T) {
	cfg := newFixture(t)
	dir := filepath.Dir(cfg.ContentDir)
	writeFile(t, dir, "content/tags/g1.json", `{"en": {"id": "g1", "name": "Workshop"}, "sv": {"id": "g1", "name": "Verkstad"}}`)
	writeFile(t, dir, "content/tags/g2.json", `{"en": {"id": "g2", "name": "Canvas"}, "sv": {"id": "g2", "name": "Kanvas"}}`)
	cfg.Languages = []string{"en", "sv"}
	cfg.Indent = 2

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"en\": {")

	var bundle types.Bundle
	require.NoError(t, content.ReadJSON(cfg.Output, &bundle))
	require.Contains(t, bundle, types.Swedish)
	sv := bundle[types.Swedish]
	require.Len(t, sv.Tools, 1)
	assert.Equal(t, "lean-canvas-lc1", sv.Tools[0].Link)
	assert.Empty(t, sv.Tools[0].Relevancy)
	assert.Empty(t, sv.Skills, "skills without a Swedish variant are left out")
	assert.Len(t, sv.Tags, 2)
}

func TestRun_FailureWritesNothing(t *testing.T) {
	cfg := newFixture(t)
	dir := filepath.Dir(cfg.ContentDir)
	writeFile(t, dir, "content/tools/broken.json", `{"en": {"name": "Personas", "slug": "p1", "tags": ["g1", "g1"], "relevancy": []}}`)

	var out bytes.Buffer
	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &out})
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrDuplicateTag)
	assert.Contains(t, err.Error(), "normalizing content failed")

	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "no bundle should be written")
	assert.NotContains(t, out.String(), "Finished in")
}

func TestRun_LoadError(t *testing.T) {
	cfg := newFixture(t)
	dir := filepath.Dir(cfg.ContentDir)
	broken := writeFile(t, dir, "content/skills/broken.json", `{"en": `)

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)

	var loadErr *content.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, broken, loadErr.Path)
}

func TestRun_WithoutWidgetData(t *testing.T) {
	cfg := newFixture(t)
	cfg.WidgetData = ""

	result, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	tool := result.Bundle[types.English].Tools[0]
	assert.Equal(t, []types.RelevancyScore{{Skill: "s2", Score: 0.5}, {Skill: "s1", Score: 0.1}}, tool.Relevancy)
}

func TestRun_WidgetDataNone(t *testing.T) {
	cfg := newFixture(t)
	cfg.WidgetData = config.WidgetDataNone

	result, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	tool := result.Bundle[types.English].Tools[0]
	assert.Equal(t, []types.RelevancyScore{{Skill: "s2", Score: 0.5}, {Skill: "s1", Score: 0.1}}, tool.Relevancy)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := newFixture(t)
	cfg.Languages = []string{"de"}

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestRun_DoesNotModifyConfig(t *testing.T) {
	cfg := newFixture(t)
	cfg.Languages = []string{"EN"}

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"EN"}, cfg.Languages)
}

func TestRun_ProgressAndLogging(t *testing.T) {
	cfg := newFixture(t)
	core, logs := observer.New(zapcore.DebugLevel)

	var events []ProgressEvent
	result, err := Run(context.Background(), RunOptions{
		Config: cfg,
		Logger: zap.New(core),
		Out:    &bytes.Buffer{},
		OnProgress: func(event ProgressEvent) {
			events = append(events, event)
		},
	})
	require.NoError(t, err)

	require.Len(t, events, 4)
	steps := make([]string, 0, len(events))
	for _, e := range events {
		steps = append(steps, e.Step)
		assert.Equal(t, result.BuildID.String(), e.BuildID)
	}
	assert.Equal(t, []string{StepLoad, StepNormalize, StepSplit, StepWrite}, steps)

	finished := logs.FilterMessage("build finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, result.BuildID.String(), finished[0].ContextMap()["build_id"])
	assert.Equal(t, cfg.Output, finished[0].ContextMap()["output"])
}

func TestRun_Verbose(t *testing.T) {
	cfg := newFixture(t)
	cfg.Verbose = true
	var out bytes.Buffer

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "LOADED CONTENT")
	assert.Contains(t, out.String(), "BUNDLE [en]")
	assert.Contains(t, out.String(), "lean-canvas-lc1")
}

func TestRun_Canceled(t *testing.T) {
	cfg := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck(t *testing.T) {
	cfg := newFixture(t)
	var out bytes.Buffer

	result, err := Check(context.Background(), RunOptions{Config: cfg, Out: &out})
	require.NoError(t, err)
	assert.Empty(t, result.Output)
	assert.Nil(t, result.Bundle)
	require.NotNil(t, result.Content)
	assert.Equal(t, "lean-canvas-lc1", result.Content.Tools[0].Get(types.English).Link)

	_, statErr := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(statErr), "check never writes the bundle")

	assert.Contains(t, out.String(), "Step 1/2: Loading content")
	assert.Contains(t, out.String(), "Step 2/2: Normalizing")
	assert.Contains(t, out.String(), "Finished in")
}

func TestCheck_ReportsIntegrityErrors(t *testing.T) {
	cfg := newFixture(t)
	dir := filepath.Dir(cfg.ContentDir)
	writeFile(t, dir, "content/tools/no-slug.json", `{"en": {"name": "Personas", "tags": [], "relevancy": []}}`)

	_, err := Check(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrMissingSlug)

	var normErr *normalize.NormalizationError
	require.ErrorAs(t, err, &normErr)
	assert.Equal(t, "Personas", normErr.Name)
}

func TestRun_MissingTagTranslation(t *testing.T) {
	cfg := newFixture(t)
	cfg.Languages = []string{"en", "sv"}

	_, err := Run(context.Background(), RunOptions{Config: cfg, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrMissingTagTranslation)
}
