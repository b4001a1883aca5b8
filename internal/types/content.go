package types

import "encoding/json"

// ItemID identifies a content record. Values are CMS generated and stable for the lifetime of a record.
type ItemID = string

// RelevancyScore links a tool to a skill with a score. Higher scores mean more relevant.
type RelevancyScore struct {
	Skill ItemID  `json:"skill"`
	Score float64 `json:"score"`
}

// Tool is a single method or tool in the toolkit.
type Tool struct {
	ID        ItemID           `json:"id,omitempty"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Link      string           `json:"link,omitempty"`
	Logo      string           `json:"logo,omitempty"`
	Tags      []ItemID         `json:"tags"`
	Relevancy []RelevancyScore `json:"relevancy"`
	Extra     Extra            `json:"-"`
}

var toolFields = []string{"id", "name", "slug", "link", "logo", "tags", "relevancy"}

// UnmarshalJSON decodes a tool and keeps fields it does not know about in Extra.
func (t *Tool) UnmarshalJSON(data []byte) error {
	type plain Tool
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, toolFields...)
	if err != nil {
		return err
	}
	*t = Tool(p)
	t.Extra = extra
	return nil
}

// MarshalJSON encodes the tool together with its extra fields.
func (t Tool) MarshalJSON() ([]byte, error) {
	type plain Tool
	return mergeExtra(plain(t), t.Extra)
}

// Skill is a competence that tools can be relevant for.
type Skill struct {
	ID       ItemID `json:"id"`
	Name     string `json:"name"`
	Category ItemID `json:"category"`
	Color    string `json:"color,omitempty"`
	Extra    Extra  `json:"-"`
}

var skillFields = []string{"id", "name", "category", "color"}

// UnmarshalJSON decodes a skill and keeps fields it does not know about in Extra.
func (s *Skill) UnmarshalJSON(data []byte) error {
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, skillFields...)
	if err != nil {
		return err
	}
	*s = Skill(p)
	s.Extra = extra
	return nil
}

// MarshalJSON encodes the skill together with its extra fields.
func (s Skill) MarshalJSON() ([]byte, error) {
	type plain Skill
	return mergeExtra(plain(s), s.Extra)
}

// Category groups skills and owns their color.
type Category struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Extra Extra  `json:"-"`
}

var categoryFields = []string{"id", "name", "color"}

// UnmarshalJSON decodes a category and keeps fields it does not know about in Extra.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, categoryFields...)
	if err != nil {
		return err
	}
	*c = Category(p)
	c.Extra = extra
	return nil
}

// MarshalJSON encodes the category together with its extra fields.
func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return mergeExtra(plain(c), c.Extra)
}

// Tag is a label attached to tools and stories.
type Tag struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Extra Extra  `json:"-"`
}

var tagFields = []string{"id", "name"}

// UnmarshalJSON decodes a tag and keeps fields it does not know about in Extra.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type plain Tag
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, tagFields...)
	if err != nil {
		return err
	}
	*t = Tag(p)
	t.Extra = extra
	return nil
}

// MarshalJSON encodes the tag together with its extra fields.
func (t Tag) MarshalJSON() ([]byte, error) {
	type plain Tag
	return mergeExtra(plain(t), t.Extra)
}

// Story is a published article about how the tools are used.
type Story struct {
	ID          ItemID   `json:"id"`
	Title       string   `json:"title"`
	PublishedAt string   `json:"publishedAt"`
	Image       string   `json:"image,omitempty"`
	Tags        []ItemID `json:"tags"`
	Extra       Extra    `json:"-"`
}

var storyFields = []string{"id", "title", "publishedAt", "image", "tags"}

// UnmarshalJSON decodes a story and keeps fields it does not know about in Extra.
func (s *Story) UnmarshalJSON(data []byte) error {
	type plain Story
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, storyFields...)
	if err != nil {
		return err
	}
	*s = Story(p)
	s.Extra = extra
	return nil
}

// MarshalJSON encodes the story together with its extra fields.
func (s Story) MarshalJSON() ([]byte, error) {
	type plain Story
	return mergeExtra(plain(s), s.Extra)
}
