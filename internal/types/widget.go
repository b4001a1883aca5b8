package types

// WidgetData is the dataset behind the embeddable relevancy widget.
// Its scoreGroup values are the source of truth for tool relevancy scores.
type WidgetData struct {
	Content []WidgetTool `json:"content" validate:"dive"`
}

// WidgetTool holds the grouped relevancy scores for one tool, keyed by its display name.
type WidgetTool struct {
	Name      string            `json:"name" validate:"required"`
	Relevancy []WidgetRelevancy `json:"relevancy" validate:"dive"`
}

// WidgetRelevancy is the grouped score of a tool for one skill.
type WidgetRelevancy struct {
	Skill      ItemID  `json:"skill" validate:"required"`
	ScoreGroup float64 `json:"scoreGroup"`
}

// Find returns the first entry named name, or nil.
func (w *WidgetData) Find(name string) *WidgetTool {
	if w == nil {
		return nil
	}
	for i := range w.Content {
		if w.Content[i].Name == name {
			return &w.Content[i]
		}
	}
	return nil
}

// ScoreFor returns the score group for skill and whether the skill was found.
func (wt *WidgetTool) ScoreFor(skill ItemID) (float64, bool) {
	if wt == nil {
		return 0, false
	}
	for _, r := range wt.Relevancy {
		if r.Skill == skill {
			return r.ScoreGroup, true
		}
	}
	return 0, false
}
