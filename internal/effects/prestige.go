package effects

import (
	"math"

	"github.com/lukeberry99/duck/internal/catalog"
)

// PrestigeLevel pairs a prestige upgrade definition with its purchased level.
type PrestigeLevel struct {
	Def   catalog.PrestigeUpgradeDef
	Level int
}

// PrestigeMultipliers folds owned prestige upgrades into per-target
// multipliers. Unlike ordinary upgrades there is no diminishing-returns
// damping: prestige effects are rare and gated behind a costly reset, so an
// upgrade at level L contributes value^L and levels compound freely.
func PrestigeMultipliers(owned []PrestigeLevel) Set {
	out := make(Set)
	for _, p := range owned {
		if p.Level <= 0 {
			continue
		}
		if p.Def.Effect.Op != catalog.OpMultiplier {
			continue
		}
		acc := out.Get(p.Def.Effect.Target)
		acc.Multiplier *= math.Pow(p.Def.Effect.Value, float64(p.Level))
		out[p.Def.Effect.Target] = acc
	}
	return out
}

// HasStartingResources reports whether the starting-resources special
// prestige upgrade is owned at level >= 1.
func HasStartingResources(owned []PrestigeLevel) bool {
	for _, p := range owned {
		if p.Def.ID == catalog.StartingResourcesUpgradeID && p.Level > 0 {
			return true
		}
	}
	return false
}
