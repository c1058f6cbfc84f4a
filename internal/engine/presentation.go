package engine

import (
	"github.com/bnema/ao3-blocker/internal/models"
)

// PresentationMode decides how a blocked work is rendered. The global
// ShowPlaceholders switch wins over per-criterion rules, and a single
// criterion marked hide-completely is enough to hide the work.
func PresentationMode(reasons []models.Reason, cfg models.EngineConfig) models.PresentationMode {
	if len(reasons) == 0 {
		return models.ModeVisible
	}
	if !cfg.ShowPlaceholders {
		return models.ModeHidden
	}
	for _, r := range reasons {
		for _, key := range hideKeys(r) {
			if cfg.HideCompletely[key] {
				return models.ModeHidden
			}
		}
	}
	return models.ModePlaceholder
}

// hideKeys lists the hideCompletelyRules keys that apply to a reason. A
// combined pairing miss honors the rule of either half.
func hideKeys(r models.Reason) []models.FilterType {
	if p, ok := r.(models.PrimaryPairingReason); ok && p.MissingRelationship && p.MissingCharacter {
		return []models.FilterType{
			models.FilterPrimaryPairing,
			models.FilterPrimaryRelationships,
			models.FilterPrimaryCharacters,
		}
	}
	return []models.FilterType{r.Filter()}
}
