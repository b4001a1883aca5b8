// Package normalize validates translated content and derives the fields the web app relies on.
package normalize

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// Options configures a Normalizer.
type Options struct {
	// DefaultLanguage holds the authoritative variant of categories and the tool names used
	// to look up widget relevancy. Defaults to English.
	DefaultLanguage types.Language
	// Languages are the languages kept in the output. Defaults to DefaultLanguage only.
	Languages []types.Language
	// AssetPrefix is removed from asset URLs so they work in both the app and the website.
	AssetPrefix string
	Logger      *zap.Logger
}

// Normalizer prepares translated content for the bundle. It is not safe for concurrent use.
type Normalizer struct {
	defaultLanguage types.Language
	languages       []types.Language
	assetPrefix     string
	logger          *zap.Logger
	collators       map[types.Language]*collate.Collator
}

// New creates a Normalizer from opts, filling in defaults.
func New(opts Options) *Normalizer {
	n := &Normalizer{
		defaultLanguage: opts.DefaultLanguage,
		languages:       opts.Languages,
		assetPrefix:     opts.AssetPrefix,
		logger:          opts.Logger,
		collators:       make(map[types.Language]*collate.Collator),
	}
	if n.defaultLanguage == "" {
		n.defaultLanguage = types.English
	}
	if len(n.languages) == 0 {
		n.languages = []types.Language{n.defaultLanguage}
	}
	if n.logger == nil {
		n.logger = zap.NewNop()
	}
	return n
}

// Prepare runs every normalization step and returns the prepared content. Records in content
// are modified in place. Widget relevancy is applied first when widget is not nil.
// The first integrity error stops processing.
func (n *Normalizer) Prepare(content *types.TranslatedContent, widget *types.WidgetData) (*types.TranslatedContent, error) {
	result := *content

	if widget != nil {
		n.ApplyWidgetRelevancy(content.Tools, widget)
	}

	result.Skills = n.PrepareSkills(content.Skills, content.Categories)

	tools, err := n.PrepareTools(content.Tools, content.Tags)
	if err != nil {
		return nil, err
	}
	result.Tools = tools

	if content.Stories != nil {
		stories, err := n.PrepareStories(content.Stories, content.Tags)
		if err != nil {
			return nil, err
		}
		result.Stories = stories
	}

	return &result, nil
}

func (n *Normalizer) selected(lang types.Language) bool {
	return types.ContainsLanguage(n.languages, lang)
}

func (n *Normalizer) collator(lang types.Language) *collate.Collator {
	c, ok := n.collators[lang]
	if !ok {
		c = collate.New(lang.Tag())
		n.collators[lang] = c
	}
	return c
}

// assetURL removes the CMS prefix from url.
func (n *Normalizer) assetURL(url string) string {
	if n.assetPrefix == "" {
		return url
	}
	return strings.Replace(url, n.assetPrefix, "", 1)
}
