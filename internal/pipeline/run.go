// Package pipeline provides the high-level orchestration of a content build.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/idg-content-builder/internal/config"
	"github.com/jonathan/idg-content-builder/internal/content"
	"github.com/jonathan/idg-content-builder/internal/normalize"
	"github.com/jonathan/idg-content-builder/internal/observability"
	"github.com/jonathan/idg-content-builder/internal/split"
	"github.com/jonathan/idg-content-builder/internal/types"
)

// Step names reported in progress events.
const (
	StepLoad      = "load"
	StepNormalize = "normalize"
	StepSplit     = "split"
	StepWrite     = "write"
)

// ProgressEvent represents a progress update during a build
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	BuildID string `json:"build_id,omitempty"`
}

// ProgressCallback is called when build progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running a build
type RunOptions struct {
	Config     config.Config
	Logger     *zap.Logger
	Out        io.Writer // progress lines, defaults to os.Stdout
	OnProgress ProgressCallback
}

// Result describes a finished build.
type Result struct {
	BuildID  uuid.UUID
	Content  *types.TranslatedContent // normalized content before splitting
	Bundle   types.Bundle             // nil for a check
	Output   string                   // empty for a check
	Duration time.Duration
}

// run carries the per build state shared by the steps.
type run struct {
	opts    RunOptions
	cfg     config.Config
	id      uuid.UUID
	logger  *zap.Logger
	out     io.Writer
	printer *observability.Printer
	total   int
	step    int
}

func newRun(opts RunOptions, total int) (*run, error) {
	cfg := opts.Config
	// Validate canonicalizes in place; copy the slices so the caller's config is untouched.
	cfg.Languages = append([]string(nil), cfg.Languages...)
	cfg.Collections = append([]string(nil), cfg.Collections...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &run{
		opts:  opts,
		cfg:   cfg,
		id:    uuid.New(),
		out:   opts.Out,
		total: total,
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger.With(zap.String("build_id", r.id.String()))
	r.printer = observability.NewPrinter(r.out)
	return r, nil
}

// progress prints the next "Step n/total" line and emits a progress event.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (r *run) progress(step, message string) {
	r.step++
	fmt.Fprintf(r.out, "Step %d/%d: %s...\n", r.step, r.total, message)
	r.logger.Debug("build step started", zap.String("step", step))
	if r.opts.OnProgress != nil {
		r.opts.OnProgress(ProgressEvent{Step: step, Message: message, BuildID: r.id.String()})
	}
}

// Run builds the content bundle: it loads the content, normalizes it, splits it by
// language and writes the bundle. Nothing is written when an earlier step fails.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	start := time.Now()

	r, err := newRun(opts, 4)
	if err != nil {
		return nil, err
	}

	normalized, err := r.loadAndNormalize(ctx)
	if err != nil {
		return nil, err
	}

	r.progress(StepSplit, "Splitting content by language")
	languages := r.cfg.SelectedLanguages()
	bundle := split.ByLanguage(normalized, languages)
	if r.cfg.Verbose {
		r.printer.PrintBundle(bundle, languages)
	}

	r.progress(StepWrite, fmt.Sprintf("Writing %s", r.cfg.Output))
	if err := content.WriteJSON(r.cfg.Output, bundle, r.cfg.Indent); err != nil {
		return nil, fmt.Errorf("writing bundle failed: %w", err)
	}

	result := &Result{
		BuildID:  r.id,
		Content:  normalized,
		Bundle:   bundle,
		Output:   r.cfg.Output,
		Duration: time.Since(start),
	}
	r.finish(result)
	return result, nil
}

// Check loads and normalizes the content without writing anything.
func Check(ctx context.Context, opts RunOptions) (*Result, error) {
	start := time.Now()

	r, err := newRun(opts, 2)
	if err != nil {
		return nil, err
	}

	normalized, err := r.loadAndNormalize(ctx)
	if err != nil {
		return nil, err
	}
	if r.cfg.Verbose {
		r.printer.PrintNoIssues()
	}

	result := &Result{
		BuildID:  r.id,
		Content:  normalized,
		Duration: time.Since(start),
	}
	r.finish(result)
	return result, nil
}

func (r *run) loadAndNormalize(ctx context.Context) (*types.TranslatedContent, error) {
	r.progress(StepLoad, fmt.Sprintf("Loading content from %s", r.cfg.ContentDir))
	loader, err := content.NewLoader(r.cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	loaded, err := loader.Load(ctx, r.cfg.Selection())
	if err != nil {
		return nil, fmt.Errorf("loading content failed: %w", err)
	}

	var widget *types.WidgetData
	if path := r.cfg.WidgetDataPath(); path != "" {
		widget, err = loader.LoadWidgetData(path)
		if err != nil {
			return nil, fmt.Errorf("loading widget data failed: %w", err)
		}
	} else {
		r.logger.Info("no widget data configured, relevancy scores are kept as stored")
	}

	if r.cfg.Verbose {
		r.printer.PrintLoadedContent(loaded)
	}

	r.progress(StepNormalize, "Normalizing content")
	normalizer := normalize.New(normalize.Options{
		DefaultLanguage: r.cfg.Language(),
		Languages:       r.cfg.SelectedLanguages(),
		AssetPrefix:     r.cfg.AssetPrefix,
		Logger:          r.logger,
	})
	normalized, err := normalizer.Prepare(loaded, widget)
	if err != nil {
		return nil, fmt.Errorf("normalizing content failed: %w", err)
	}
	return normalized, nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (r *run) finish(result *Result) {
	fmt.Fprintf(r.out, "Finished in %.3f s\n", result.Duration.Seconds())
	r.logger.Info("build finished",
		zap.String("output", result.Output),
		zap.Duration("duration", result.Duration))
}
