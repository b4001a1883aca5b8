package types

import "sort"

// Translated maps a language tag to the variant of a record in that language.
// A missing key means the record has not been translated to that language yet.
type Translated[T any] map[Language]*T

// Get returns the variant for lang, or nil when it is missing.
func (t Translated[T]) Get(lang Language) *T {
	if t == nil {
		return nil
	}
	return t[lang]
}

// Languages returns the languages present in t. Supported languages come first in
// SupportedLanguages order, any others follow alphabetically.
func (t Translated[T]) Languages() []Language {
	langs := make([]Language, 0, len(t))
	for _, lang := range SupportedLanguages {
		if v, ok := t[lang]; ok && v != nil {
			langs = append(langs, lang)
		}
	}
	var rest []Language
	for lang, v := range t {
		if v != nil && !lang.IsSupported() {
			rest = append(rest, lang)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(langs, rest...)
}

// ByLanguage returns the variants of items for lang, skipping items without that variant.
func ByLanguage[T any](items []Translated[T], lang Language) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if v := item.Get(lang); v != nil {
			result = append(result, *v)
		}
	}
	return result
}
