package types

import "encoding/json"

// Collection names a directory of translated content files.
type Collection string

// Known collections.
const (
	CollectionTools      Collection = "tools"
	CollectionSkills     Collection = "skills"
	CollectionCategories Collection = "categories"
	CollectionTags       Collection = "tags"
	CollectionStories    Collection = "stories"
)

// Collections lists every known collection.
var Collections = []Collection{
	CollectionTools,
	CollectionSkills,
	CollectionCategories,
	CollectionTags,
	CollectionStories,
}

// DefaultCollections is the set of collections included in the web bundle.
var DefaultCollections = []Collection{
	CollectionTools,
	CollectionSkills,
	CollectionCategories,
	CollectionTags,
}

// TranslatedContent is the content as read from disk, with every record still keyed by language.
// It is only used while building.
type TranslatedContent struct {
	Tools      []Translated[Tool]
	Skills     []Translated[Skill]
	Categories []Translated[Category]
	Tags       []Translated[Tag]
	Stories    []Translated[Story]
	Singletons map[string]Translated[json.RawMessage]
}

// Content is the language resolved content for a single language.
type Content struct {
	Tools      []Tool                     `json:"tools"`
	Skills     []Skill                    `json:"skills"`
	Categories []Category                 `json:"categories"`
	Tags       []Tag                      `json:"tags"`
	Stories    []Story                    `json:"stories,omitempty"`
	Singletons map[string]json.RawMessage `json:"-"`
}

var contentFields = []string{"tools", "skills", "categories", "tags", "stories"}

// MarshalJSON encodes the collections and adds every singleton as a top level field.
func (c Content) MarshalJSON() ([]byte, error) {
	type plain Content
	return mergeExtra(plain(c), Extra(c.Singletons))
}

// UnmarshalJSON decodes the collections and collects any other top level field as a singleton.
func (c *Content) UnmarshalJSON(data []byte) error {
	type plain Content
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, contentFields...)
	if err != nil {
		return err
	}
	*c = Content(p)
	c.Singletons = extra
	return nil
}

// Bundle is the build output: the resolved content per language.
type Bundle map[Language]*Content
