package slug

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/idg-content-builder/internal/types"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		lang     types.Language
		expected string
	}{
		{"simple", "My Tool", types.English, "my-tool"},
		{"trailing punctuation", "My Tool!!", types.English, "my-tool"},
		{"leading and trailing separators", "  --Design Sprint--  ", types.English, "design-sprint"},
		{"punctuation runs collapse", "Who? What... Why!", types.English, "who-what-why"},
		{"digits kept", "5 Whys", types.English, "5-whys"},
		{"diacritics stripped", "Café Déjà Vu", types.English, "cafe-deja-vu"},
		{"ampersand english", "Pros & Cons", types.English, "pros-and-cons"},
		{"ampersand swedish", "För- & nackdelar", types.Swedish, "for-och-nackdelar"},
		{"swedish letters", "Åtgärdsplan för Öresund", types.Swedish, "atgardsplan-for-oresund"},
		{"german letters", "Übersicht Größe", "de", "uebersicht-groesse"},
		{"ligatures", "Ærø Łódź", types.English, "aero-lodz"},
		{"only symbols", "!!!", types.English, ""},
		{"empty", "", types.English, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input, tt.lang))
		})
	}
}

func TestSlugify_OnlyLowercaseAlphanumericsAndSeparator(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{
		"Lean Canvas",
		"Business Model Canvas (BMC)",
		"  Empathy   Map  ",
		"How Might We...?",
		"SWOT/PEST analysis",
		"Kundresa – kartläggning",
		"Ψ Greek Letters 42",
	}

	for _, input := range inputs {
		for _, lang := range types.SupportedLanguages {
			got := Slugify(input, lang)
			assert.Regexp(t, valid, got, "input %q", input)
			assert.False(t, strings.HasPrefix(got, Separator))
			assert.False(t, strings.HasSuffix(got, Separator))
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	for _, lang := range types.SupportedLanguages {
		first := Slugify("Stakeholder Map & Analysis", lang)
		second := Slugify("Stakeholder Map & Analysis", lang)
		assert.Equal(t, first, second)
		assert.Equal(t, first, Slugify(first, lang), "slugify should be stable on its own output")
	}
}

func TestBuildLink(t *testing.T) {
	assert.Equal(t, "my-tool-abc123", BuildLink("My Tool", "abc123", types.English))
}

func TestBuildLink_NameChangeKeepsSuffix(t *testing.T) {
	before := BuildLink("My Tool", "abc123", types.English)
	after := BuildLink("My Tool!!", "abc123", types.English)
	renamed := BuildLink("My Renamed Tool", "abc123", types.English)

	assert.True(t, strings.HasSuffix(before, "-abc123"))
	assert.True(t, strings.HasSuffix(after, "-abc123"))
	assert.True(t, strings.HasSuffix(renamed, "-abc123"))
	assert.Equal(t, "my-renamed-tool-abc123", renamed)
}

func TestBuildLink_EmptyName(t *testing.T) {
	assert.Equal(t, "abc123", BuildLink("???", "abc123", types.English))
}
