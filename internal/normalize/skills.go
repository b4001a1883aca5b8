package normalize

import (
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// PrepareSkills copies the color of each skill's category onto the skill, for every selected
// language. Categories are looked up in their default language variant. A skill whose
// category cannot be found keeps an empty color and a warning is logged.
func (n *Normalizer) PrepareSkills(skills []types.Translated[types.Skill], categories []types.Translated[types.Category]) []types.Translated[types.Skill] {
	byID := n.categoryIndex(categories)

	result := make([]types.Translated[types.Skill], 0, len(skills))
	for _, translated := range skills {
		updated := make(types.Translated[types.Skill], len(translated))

		for _, lang := range translated.Languages() {
			if !n.selected(lang) {
				continue
			}
			skill := translated[lang]

			category, ok := byID[skill.Category]
			if !ok {
				n.logger.Warn("skill category not found, color left empty",
					zap.String("skill", skill.Name),
					zap.String("category", skill.Category),
					zap.String("language", string(lang)))
				skill.Color = ""
			} else {
				skill.Color = category.Color
			}

			updated[lang] = skill
		}

		result = append(result, updated)
	}
	return result
}

func (n *Normalizer) categoryIndex(categories []types.Translated[types.Category]) map[types.ItemID]*types.Category {
	byID := make(map[types.ItemID]*types.Category, len(categories))
	for _, translated := range categories {
		category := translated.Get(n.defaultLanguage)
		if category == nil {
			continue
		}
		if _, exists := byID[category.ID]; exists {
			continue
		}
		if _, err := colorful.Hex(category.Color); err != nil {
			n.logger.Warn("category color is not a hex color",
				zap.String("category", category.ID),
				zap.String("color", category.Color),
				zap.Error(err))
		}
		byID[category.ID] = category
	}
	return byID
}
