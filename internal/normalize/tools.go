package normalize

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/idg-content-builder/internal/slug"
	"github.com/jonathan/idg-content-builder/internal/types"
)

// PrepareTools validates and normalizes every tool for the selected languages. For each
// language variant it checks the slug, rejects duplicate tags, sorts tags by translated name,
// removes relevancy scores that are not above zero, sorts the rest by score and recomputes
// the link. Variants in other languages are left out of the result.
func (n *Normalizer) PrepareTools(tools []types.Translated[types.Tool], tags []types.Translated[types.Tag]) ([]types.Translated[types.Tool], error) {
	index := newTagIndex(tags)

	result := make([]types.Translated[types.Tool], 0, len(tools))
	for _, translated := range tools {
		updated := make(types.Translated[types.Tool], len(translated))
		var slugs []string

		for _, lang := range translated.Languages() {
			if !n.selected(lang) {
				continue
			}
			tool := translated[lang]

			if tool.Slug == "" {
				return nil, toolError(tool, lang, ErrMissingSlug, "")
			}

			// Slugs must be the same for all translations
			if !containsString(slugs, tool.Slug) {
				slugs = append(slugs, tool.Slug)
			}
			if len(slugs) > 1 {
				return nil, toolError(tool, lang, ErrInconsistentSlug, fmt.Sprintf("slugs found were %q", slugs))
			}

			if err := n.prepareTool(tool, lang, index); err != nil {
				return nil, err
			}
			updated[lang] = tool
		}

		result = append(result, updated)
	}
	return result, nil
}

func (n *Normalizer) prepareTool(tool *types.Tool, lang types.Language, index *tagIndex) error {
	if tool.Tags == nil {
		n.logger.Warn("tool has no tags",
			zap.String("tool", tool.Name),
			zap.String("language", string(lang)))
		tool.Tags = []types.ItemID{}
	}

	if duplicate, found := firstDuplicate(tool.Tags); found {
		return toolError(tool, lang, ErrDuplicateTag, duplicate)
	}

	sorted, err := n.sortTags(tool.Tags, index, lang)
	if err != nil {
		var normErr *NormalizationError
		if errors.As(err, &normErr) {
			normErr.Message = fmt.Sprintf("required by tool %q", tool.Name)
			return normErr
		}
		return toolError(tool, lang, err, "")
	}
	tool.Tags = sorted

	relevancy, dropped, duplicates := sortRelevancy(tool.Relevancy)
	if dropped > 0 {
		n.logger.Warn("removed relevancy scores with 0 relevancy",
			zap.String("tool", tool.Name),
			zap.String("language", string(lang)),
			zap.Int("dropped", dropped))
	}
	if duplicates > 0 {
		n.logger.Warn("removed duplicate relevancy scores, kept the highest per skill",
			zap.String("tool", tool.Name),
			zap.String("language", string(lang)),
			zap.Int("dropped", duplicates))
	}
	tool.Relevancy = relevancy

	link := slug.BuildLink(tool.Name, tool.Slug, lang)
	if link != tool.Link {
		if tool.Link != "" {
			n.logger.Warn("link has changed for tool",
				zap.String("tool", tool.Name),
				zap.String("language", string(lang)),
				zap.String("old", tool.Link),
				zap.String("new", link))
		}
		tool.Link = link
	}

	tool.Logo = n.assetURL(tool.Logo)
	return nil
}

func toolError(tool *types.Tool, lang types.Language, cause error, message string) *NormalizationError {
	return &NormalizationError{
		Entity:   "tool",
		Name:     tool.Name,
		Language: lang,
		Message:  message,
		Cause:    cause,
	}
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
