package normalize

import (
	"fmt"
	"sort"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// tagIndex resolves tag ids per language. Each language is indexed on first use.
type tagIndex struct {
	tags   []types.Translated[types.Tag]
	byLang map[types.Language]map[types.ItemID]*types.Tag
}

func newTagIndex(tags []types.Translated[types.Tag]) *tagIndex {
	return &tagIndex{
		tags:   tags,
		byLang: make(map[types.Language]map[types.ItemID]*types.Tag),
	}
}

// forLanguage returns the tags of lang by id. Every tag must be translated to lang.
func (ti *tagIndex) forLanguage(lang types.Language) (map[types.ItemID]*types.Tag, error) {
	if index, ok := ti.byLang[lang]; ok {
		return index, nil
	}

	index := make(map[types.ItemID]*types.Tag, len(ti.tags))
	for _, translated := range ti.tags {
		tag := translated.Get(lang)
		if tag == nil {
			return nil, &NormalizationError{
				Entity:   "tag",
				Name:     tagID(translated),
				Language: lang,
				Cause:    ErrMissingTagTranslation,
			}
		}
		index[tag.ID] = tag
	}

	ti.byLang[lang] = index
	return index, nil
}

// sortTags returns ids ordered by the translated tag names, using the collation rules of lang.
func (n *Normalizer) sortTags(ids []types.ItemID, index *tagIndex, lang types.Language) ([]types.ItemID, error) {
	byID, err := index.forLanguage(lang)
	if err != nil {
		return nil, err
	}

	resolved := make([]*types.Tag, 0, len(ids))
	for _, id := range ids {
		tag, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTag, id)
		}
		resolved = append(resolved, tag)
	}

	collator := n.collator(lang)
	sort.SliceStable(resolved, func(i, j int) bool {
		return collator.CompareString(resolved[i].Name, resolved[j].Name) < 0
	})

	sorted := make([]types.ItemID, 0, len(resolved))
	for _, tag := range resolved {
		sorted = append(sorted, tag.ID)
	}
	return sorted, nil
}

// firstDuplicate returns the first tag that occurs again later in ids.
func firstDuplicate(ids []types.ItemID) (types.ItemID, bool) {
	last := make(map[types.ItemID]int, len(ids))
	for i, id := range ids {
		last[id] = i
	}
	for i, id := range ids {
		if last[id] != i {
			return id, true
		}
	}
	return "", false
}

func tagID(translated types.Translated[types.Tag]) types.ItemID {
	for _, lang := range translated.Languages() {
		return translated[lang].ID
	}
	return ""
}
