package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/idg-content-builder/internal/types"
	"github.com/jonathan/idg-content-builder/schemas"
)

// SingletonFiles maps singleton names to their file name (without extension) in the content directory.
var SingletonFiles = map[string]string{
	"dimensions": "dimensions",
}

var collectionSchemas = map[types.Collection]string{
	types.CollectionTools:      schemas.Tool,
	types.CollectionSkills:     schemas.Skill,
	types.CollectionCategories: schemas.Category,
	types.CollectionTags:       schemas.Tag,
	types.CollectionStories:    schemas.Story,
}

// Selection names the collections and singletons to load.
type Selection struct {
	Collections []types.Collection
	Singletons  []string
}

// Paths holds the files found for a Selection. Collection files are in lexical order.
// Singletons without a file are left out.
type Paths struct {
	Collections map[types.Collection][]string
	Singletons  map[string]string
}

// ContentPaths resolves "<collection>/*.json" for every selected collection and the
// file of every selected singleton below baseDir.
func ContentPaths(selected Selection, baseDir string) (*Paths, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, &LoadError{Path: baseDir, Message: "failed to open content directory", Cause: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Path: baseDir, Message: "content path is not a directory"}
	}

	paths := &Paths{
		Collections: make(map[types.Collection][]string, len(selected.Collections)),
		Singletons:  make(map[string]string, len(selected.Singletons)),
	}

	for _, collection := range selected.Collections {
		if _, ok := collectionSchemas[collection]; !ok {
			return nil, fmt.Errorf("unknown collection %q", collection)
		}
		matches, err := filepath.Glob(filepath.Join(baseDir, string(collection), "*.json"))
		if err != nil {
			return nil, &LoadError{Path: string(collection), Message: "invalid glob for collection", Cause: err}
		}
		sort.Strings(matches)
		paths.Collections[collection] = matches
	}

	for _, singleton := range selected.Singletons {
		file, ok := SingletonFiles[singleton]
		if !ok {
			return nil, fmt.Errorf("unknown singleton %q", singleton)
		}
		path := filepath.Join(baseDir, file+".json")
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &LoadError{Path: path, Message: "failed to stat singleton", Cause: err}
		}
		paths.Singletons[singleton] = path
	}

	return paths, nil
}
