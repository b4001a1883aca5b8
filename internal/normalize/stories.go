package normalize

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/idg-content-builder/internal/types"
)

var publishedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PrepareStories sorts the tags of every story by translated name, fixes asset URLs and orders
// the stories by publishing date, newest first. Stories without a date come last.
func (n *Normalizer) PrepareStories(stories []types.Translated[types.Story], tags []types.Translated[types.Tag]) ([]types.Translated[types.Story], error) {
	index := newTagIndex(tags)

	type dated struct {
		story       types.Translated[types.Story]
		publishedAt time.Time
	}
	result := make([]dated, 0, len(stories))

	for _, translated := range stories {
		updated := make(types.Translated[types.Story], len(translated))
		var publishedAt time.Time

		for _, lang := range translated.Languages() {
			if !n.selected(lang) {
				continue
			}
			story := translated[lang]

			t, err := parsePublishedAt(story.PublishedAt)
			if err != nil {
				return nil, storyError(story, lang, ErrInvalidDate, story.PublishedAt)
			}
			if !t.IsZero() && (publishedAt.IsZero() || lang == n.defaultLanguage) {
				publishedAt = t
			}

			if story.Tags == nil {
				story.Tags = []types.ItemID{}
			}
			if duplicate, found := firstDuplicate(story.Tags); found {
				return nil, storyError(story, lang, ErrDuplicateTag, duplicate)
			}
			sorted, err := n.sortTags(story.Tags, index, lang)
			if err != nil {
				var normErr *NormalizationError
				if errors.As(err, &normErr) {
					normErr.Message = fmt.Sprintf("required by story %q", story.Title)
					return nil, normErr
				}
				return nil, storyError(story, lang, err, "")
			}
			story.Tags = sorted
			story.Image = n.assetURL(story.Image)

			updated[lang] = story
		}

		result = append(result, dated{story: updated, publishedAt: publishedAt})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].publishedAt.After(result[j].publishedAt)
	})

	sorted := make([]types.Translated[types.Story], 0, len(result))
	for _, d := range result {
		sorted = append(sorted, d.story)
	}
	return sorted, nil
}

func parsePublishedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range publishedAtLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func storyError(story *types.Story, lang types.Language, cause error, message string) *NormalizationError {
	return &NormalizationError{
		Entity:   "story",
		Name:     story.Title,
		Language: lang,
		Message:  message,
		Cause:    cause,
	}
}
