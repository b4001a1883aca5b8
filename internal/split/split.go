// Package split projects translated content onto one bundle per language.
package split

import (
	"encoding/json"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// ByLanguage builds the bundle for every language in languages. Each bundle holds only the
// variants in its language; records without one are left out. Collections are never nil.
func ByLanguage(content *types.TranslatedContent, languages []types.Language) types.Bundle {
	bundle := make(types.Bundle, len(languages))
	if content == nil {
		content = &types.TranslatedContent{}
	}

	for _, lang := range languages {
		c := &types.Content{
			Tools:      types.ByLanguage(content.Tools, lang),
			Skills:     types.ByLanguage(content.Skills, lang),
			Categories: types.ByLanguage(content.Categories, lang),
			Tags:       types.ByLanguage(content.Tags, lang),
		}
		if content.Stories != nil {
			c.Stories = types.ByLanguage(content.Stories, lang)
		}

		for name, translated := range content.Singletons {
			v := translated.Get(lang)
			if v == nil {
				continue
			}
			if c.Singletons == nil {
				c.Singletons = make(map[string]json.RawMessage)
			}
			c.Singletons[name] = *v
		}

		bundle[lang] = c
	}

	return bundle
}
