package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslated_Get(t *testing.T) {
	tag := Translated[Tag]{English: {ID: "t1", Name: "Plan"}}

	assert.Equal(t, "Plan", tag.Get(English).Name)
	assert.Nil(t, tag.Get(Swedish))

	var missing Translated[Tag]
	assert.Nil(t, missing.Get(English))
}

func TestTranslated_Languages(t *testing.T) {
	tool := Translated[Tool]{
		"nb":    {Name: "Verktøy"},
		Swedish: {Name: "Verktyg"},
		"de":    {Name: "Werkzeug"},
		English: {Name: "Tool"},
		"fi":    nil,
	}

	assert.Equal(t, []Language{English, Swedish, "de", "nb"}, tool.Languages())
	assert.Empty(t, Translated[Tool]{}.Languages())
}

func TestByLanguage(t *testing.T) {
	tags := []Translated[Tag]{
		{English: {ID: "a", Name: "A"}, Swedish: {ID: "a", Name: "Ä"}},
		{English: {ID: "b", Name: "B"}},
	}

	assert.Equal(t, []Tag{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, ByLanguage(tags, English))
	assert.Equal(t, []Tag{{ID: "a", Name: "Ä"}}, ByLanguage(tags, Swedish))

	empty := ByLanguage[Tag](nil, English)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
