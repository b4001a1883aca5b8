// Package slug builds URL identifiers for content records.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// Separator joins the words of a slug.
const Separator = "-"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// localeLetters holds lowercase letters that a locale transliterates differently than plain
// diacritic stripping would.
var localeLetters = map[types.Language]map[rune]string{
	"de": {'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss"},
	"da": {'å': "aa", 'æ': "ae", 'ø': "oe"},
	"nb": {'å': "aa", 'æ': "ae", 'ø': "oe"},
	types.Swedish: {'å': "a", 'ä': "a", 'ö': "o"},
}

// localeSymbols holds words for symbols that carry meaning in a name.
var localeSymbols = map[types.Language]map[rune]string{
	"de":          {'&': "und", '|': "oder", '%': "prozent"},
	types.Swedish: {'&': "och", '|': "eller", '%': "procent"},
}

var symbols = map[rune]string{
	'&': "and",
	'|': "or",
	'%': "percent",
	'$': "dollar",
	'€': "euro",
	'£': "pound",
	'¥': "yen",
	'<': "less",
	'>': "greater",
	'∞': "infinity",
	'♥': "love",
}

// letters covers lowercase letters without a canonical decomposition.
var letters = map[rune]string{
	'æ': "ae",
	'ø': "o",
	'œ': "oe",
	'ß': "ss",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// Slugify turns name into a lowercase identifier of ASCII letters and digits joined by Separator.
// Casing and transliteration follow the rules of lang.
func Slugify(name string, lang types.Language) string {
	lowered := cases.Lower(lang.Tag()).String(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if s, ok := localeLetters[lang][r]; ok {
			b.WriteString(s)
			continue
		}
		if s, ok := localeSymbols[lang][r]; ok {
			writeWord(&b, s)
			continue
		}
		if s, ok := symbols[r]; ok {
			writeWord(&b, s)
			continue
		}
		b.WriteRune(r)
	}

	folded := stripMarks(b.String())

	b.Reset()
	for _, r := range folded {
		if s, ok := letters[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}

	return strings.Trim(nonAlphanumeric.ReplaceAllString(b.String(), Separator), Separator)
}

// BuildLink creates a slugified, backwards compatible link. The name part can change freely
// while uniqueSlug stays the same for as long as the record exists, so links handed out
// earlier keep resolving.
func BuildLink(name, uniqueSlug string, lang types.Language) string {
	prefix := Slugify(name, lang)
	if prefix == "" {
		return uniqueSlug
	}
	return prefix + Separator + uniqueSlug
}

func writeWord(b *strings.Builder, word string) {
	b.WriteByte(' ')
	b.WriteString(word)
	b.WriteByte(' ')
}

// stripMarks removes combining diacritics, so "é" becomes "e".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
