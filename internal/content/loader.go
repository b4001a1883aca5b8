// Package content discovers, validates and parses the JSON content files of the toolkit.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	internalschemas "github.com/jonathan/idg-content-builder/internal/schemas"
	"github.com/jonathan/idg-content-builder/internal/types"
	"github.com/jonathan/idg-content-builder/schemas"
)

// Loader reads content files below BaseDir. Every file is checked against its embedded schema
// before it is decoded.
type Loader struct {
	BaseDir   string
	validator *internalschemas.Validator
}

// NewLoader creates a Loader for the content directory baseDir.
func NewLoader(baseDir string) (*Loader, error) {
	v, err := internalschemas.NewValidator(schemas.FS)
	if err != nil {
		return nil, fmt.Errorf("failed to compile content schemas: %w", err)
	}
	return &Loader{BaseDir: baseDir, validator: v}, nil
}

// Load reads every selected collection and singleton. Collections are read concurrently;
// Load returns once all of them are parsed or the first one fails.
func (l *Loader) Load(ctx context.Context, selected Selection) (*types.TranslatedContent, error) {
	paths, err := ContentPaths(selected, l.BaseDir)
	if err != nil {
		return nil, err
	}

	result := &types.TranslatedContent{
		Singletons: make(map[string]types.Translated[json.RawMessage], len(paths.Singletons)),
	}

	g, gCtx := errgroup.WithContext(ctx)

	for collection, files := range paths.Collections {
		schema := collectionSchemas[collection]
		switch collection {
		case types.CollectionTools:
			g.Go(func() (err error) {
				result.Tools, err = loadCollection[types.Tool](gCtx, l.validator, schema, files)
				return err
			})
		case types.CollectionSkills:
			g.Go(func() (err error) {
				result.Skills, err = loadCollection[types.Skill](gCtx, l.validator, schema, files)
				return err
			})
		case types.CollectionCategories:
			g.Go(func() (err error) {
				result.Categories, err = loadCollection[types.Category](gCtx, l.validator, schema, files)
				return err
			})
		case types.CollectionTags:
			g.Go(func() (err error) {
				result.Tags, err = loadCollection[types.Tag](gCtx, l.validator, schema, files)
				return err
			})
		case types.CollectionStories:
			g.Go(func() (err error) {
				result.Stories, err = loadCollection[types.Story](gCtx, l.validator, schema, files)
				return err
			})
		}
	}

	singletonNames := make([]string, 0, len(paths.Singletons))
	singletonFiles := make([]string, 0, len(paths.Singletons))
	for name, file := range paths.Singletons {
		singletonNames = append(singletonNames, name)
		singletonFiles = append(singletonFiles, file)
	}
	singletons := make([]types.Translated[json.RawMessage], len(singletonFiles))
	for i, file := range singletonFiles {
		g.Go(func() error {
			loaded, err := loadCollection[json.RawMessage](gCtx, l.validator, schemas.Singleton, []string{file})
			if err != nil {
				return err
			}
			singletons[i] = loaded[0]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, name := range singletonNames {
		result.Singletons[name] = singletons[i]
	}

	return result, nil
}

// LoadWidgetData reads the widget relevancy dataset at path.
func (l *Loader) LoadWidgetData(path string) (*types.WidgetData, error) {
	data, err := readDocument(l.validator, schemas.WidgetData, path)
	if err != nil {
		return nil, err
	}

	var widget types.WidgetData
	if err := json.Unmarshal(data, &widget); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode widget data", Cause: err}
	}

	validate := validator.New()
	if err := validate.Struct(&widget); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid widget data in", Cause: err}
	}

	return &widget, nil
}

func loadCollection[T any](ctx context.Context, v *internalschemas.Validator, schema string, files []string) ([]types.Translated[T], error) {
	items := make([]types.Translated[T], 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := readDocument(v, schema, file)
		if err != nil {
			return nil, err
		}

		var item types.Translated[T]
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, &LoadError{Path: file, Message: "failed to decode", Cause: err}
		}
		items = append(items, item)
	}
	return items, nil
}

// readDocument reads a file, checks that it is well formed JSON and validates it against schema.
func readDocument(v *internalschemas.Validator, schema, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var syntax any
	if err := json.Unmarshal(data, &syntax); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON in", Cause: err}
	}

	if err := v.Validate(schema, data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed for", Cause: err}
	}

	return data, nil
}
