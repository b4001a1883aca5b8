package normalize

import (
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// ApplyWidgetRelevancy overwrites tool relevancy scores with the grouped scores of the widget
// dataset, for every language present. Tools are matched by their default language name,
// skills by id. Scores without a match become 0 and are removed by PrepareTools.
//
// TODO: join on tool id once the widget dataset carries it; names change more often than ids.
func (n *Normalizer) ApplyWidgetRelevancy(tools []types.Translated[types.Tool], widget *types.WidgetData) {
	for _, translated := range tools {
		defaultName := ""
		if tool := translated.Get(n.defaultLanguage); tool != nil {
			defaultName = tool.Name
		}

		for _, lang := range translated.Languages() {
			tool := translated[lang]
			name := defaultName
			if name == "" {
				name = tool.Name
			}

			entry := widget.Find(name)
			if entry == nil {
				n.logger.Debug("no widget relevancy for tool",
					zap.String("tool", name),
					zap.String("language", string(lang)))
			}

			for i := range tool.Relevancy {
				score, _ := entry.ScoreFor(tool.Relevancy[i].Skill)
				tool.Relevancy[i].Score = score
			}
		}
	}
}

// sortRelevancy keeps scores above zero, most relevant first, and one score per skill.
// It returns the number of zero scores removed and the number of duplicate skills removed.
func sortRelevancy(scores []types.RelevancyScore) ([]types.RelevancyScore, int, int) {
	positive := make([]types.RelevancyScore, 0, len(scores))
	for _, s := range scores {
		if s.Score > 0 {
			positive = append(positive, s)
		}
	}
	dropped := len(scores) - len(positive)

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Score > positive[j].Score
	})

	unique := positive[:0]
	seen := make(map[types.ItemID]struct{}, len(positive))
	for _, s := range positive {
		if _, exists := seen[s.Skill]; exists {
			continue
		}
		seen[s.Skill] = struct{}{}
		unique = append(unique, s)
	}

	return unique, dropped, len(positive) - len(unique)
}
