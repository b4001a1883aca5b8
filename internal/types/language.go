// Package types provides type definitions for the content used throughout the content builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is a language tag used as key in translated content files.
type Language string

// Supported language tags.
const (
	English Language = "en"
	Swedish Language = "sv"
)

// SupportedLanguages lists every language tag a content file may contain, in output order.
var SupportedLanguages = []Language{English, Swedish}

// Tag returns the x/text language tag used for locale aware casing and collation.
func (l Language) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.Und
	}
	return tag
}

// IsSupported reports whether l is one of SupportedLanguages.
func (l Language) IsSupported() bool {
	for _, supported := range SupportedLanguages {
		if l == supported {
			return true
		}
	}
	return false
}

// ParseLanguage canonicalizes a BCP 47 tag such as "EN" or "sv-SE" to a supported Language.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if !lang.IsSupported() {
		return "", fmt.Errorf("unsupported language %q (supported: %v)", s, SupportedLanguages)
	}
	return lang, nil
}

// ParseLanguages parses every tag in tags, preserving order and dropping duplicates.
func ParseLanguages(tags []string) ([]Language, error) {
	result := make([]Language, 0, len(tags))
	seen := make(map[Language]struct{}, len(tags))
	for _, t := range tags {
		lang, err := ParseLanguage(t)
		if err != nil {
			return nil, err
		}
		if _, exists := seen[lang]; exists {
			continue
		}
		seen[lang] = struct{}{}
		result = append(result, lang)
	}
	return result, nil
}

// ContainsLanguage reports whether lang is in languages.
func ContainsLanguage(languages []Language, lang Language) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
