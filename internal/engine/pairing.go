package engine

import (
	"slices"

	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/bnema/ao3-blocker/internal/pattern"
)

// CheckPrimaryPairing reports preferred relationships or characters that
// are missing from the leading tags of their category. Tags are ordered by
// prominence on the archive, so only the first PrimaryRelPad relationships
// and PrimaryCharPad characters count. Returns nil when nothing is
// configured or every configured list is satisfied.
func CheckPrimaryPairing(tags models.CategorizedTags, cfg models.EngineConfig) models.Reason {
	r := models.PrimaryPairingReason{}

	if len(cfg.PrimaryRelationships) > 0 && !anyInWindow(cfg.PrimaryRelationships, tags.Relationships, cfg.PrimaryRelPad) {
		r.MissingRelationship = true
		r.Relationships = cfg.PrimaryRelationships
	}
	if len(cfg.PrimaryCharacters) > 0 && !anyInWindow(cfg.PrimaryCharacters, tags.Characters, cfg.PrimaryCharPad) {
		r.MissingCharacter = true
		r.Characters = cfg.PrimaryCharacters
	}

	if !r.MissingRelationship && !r.MissingCharacter {
		return nil
	}
	return r
}

// anyInWindow reports whether one of wanted equals one of the first size
// tags, case-insensitively
func anyInWindow(wanted, tags []string, size int) bool {
	if size < 1 {
		size = 1
	}
	if size > len(tags) {
		size = len(tags)
	}
	for _, tag := range tags[:size] {
		if slices.Contains(wanted, pattern.Normalize(tag)) {
			return true
		}
	}
	return false
}
