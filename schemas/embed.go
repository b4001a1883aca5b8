// Package schemas embeds the JSON Schemas that content files are validated against.
package schemas

import "embed"

// Schema file names.
const (
	Tool       = "tool.schema.json"
	Skill      = "skill.schema.json"
	Category   = "category.schema.json"
	Tag        = "tag.schema.json"
	Story      = "story.schema.json"
	Singleton  = "singleton.schema.json"
	WidgetData = "widget_data.schema.json"
)

// Names lists every embedded schema.
var Names = []string{Tool, Skill, Category, Tag, Story, Singleton, WidgetData}

// FS holds the schema files.
//
//go:embed *.schema.json
var FS embed.FS
