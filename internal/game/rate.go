package game

import (
	"math"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/effects"
)

// orderedEffectsLocked expands the purchase log into the effect sequence the
// aggregator folds. One entry per level bought, in purchase order, so the
// diminishing-returns damping is deterministic across save/restore.
func (l *Ledger) orderedEffectsLocked() []catalog.Effect {
	out := make([]catalog.Effect, 0, len(l.purchaseLog))
	for _, id := range l.purchaseLog {
		def, ok := catalog.UpgradeByID(id)
		if !ok {
			continue
		}
		out = append(out, def.Effect)
	}
	return out
}

func (l *Ledger) prestigeLevelsLocked() []effects.PrestigeLevel {
	out := make([]effects.PrestigeLevel, 0, len(l.prestige.Upgrades))
	for _, def := range catalog.PrestigeUpgrades() {
		if lvl := l.prestige.Upgrades[def.ID]; lvl > 0 {
			out = append(out, effects.PrestigeLevel{Def: def, Level: lvl})
		}
	}
	return out
}

// recomputeLocked rebuilds the cached accumulators and the passive rate from
// first principles. Called after every mutation that touches a
// rate-relevant register; the rate is never incrementally patched.
func (l *Ledger) recomputeLocked() {
	l.agg = effects.Aggregate(l.orderedEffectsLocked(), l.bal.MultiplierDamping)
	l.presAgg = effects.PrestigeMultipliers(l.prestigeLevelsLocked())

	duckMult := l.agg.Get(catalog.TargetDuckEfficiency).Multiplier *
		l.presAgg.Get(catalog.TargetDuckEfficiency).Multiplier

	base := 0.0
	for _, d := range l.ducks {
		power := d.Power
		if def, ok := catalog.DuckTypeByID(d.Type); ok {
			power *= def.PowerMultiplier()
		}
		base += power * duckMult
	}

	dbg := l.agg.Get(catalog.TargetDebugRate)
	rate := (base + dbg.Additive) * dbg.Multiplier
	rate *= l.agg.Get(catalog.TargetSpecial).Multiplier
	rate *= l.presAgg.Get(catalog.TargetDebugRate).Multiplier
	if rate < 0 || math.IsNaN(rate) {
		rate = 0
	}
	l.debugRate = rate
}

// duckCQBonusLocked sums the flat code-quality bonuses contributed by owned
// ducks with a code-quality special.
func (l *Ledger) duckCQBonusLocked() float64 {
	bonus := 0.0
	for _, d := range l.ducks {
		if def, ok := catalog.DuckTypeByID(d.Type); ok && def.Special.Kind == catalog.BonusCQ {
			bonus += def.Special.Value
		}
	}
	return bonus
}

// cqPerBugLocked returns the currency yield per bug fixed, after all
// additive and multiplicative bonuses.
func (l *Ledger) cqPerBugLocked() float64 {
	cq := l.agg.Get(catalog.TargetCodeQuality)
	per := (float64(l.bal.CQPerBugFixed) + cq.Additive + l.duckCQBonusLocked()) * cq.Multiplier
	per *= l.agg.Get(catalog.TargetSpecial).Multiplier
	per *= l.presAgg.Get(catalog.TargetCodeQuality).Multiplier
	if per < 0 {
		per = 0
	}
	return per
}

// clickPowerLocked derives the bugs fixed per manual action from the
// debug-rate registers. Capped at the configured ceiling with logarithmic
// overflow so late-game clicks stay meaningful without going degenerate.
func (l *Ledger) clickPowerLocked() int64 {
	dbg := l.agg.Get(catalog.TargetDebugRate)
	raw := (1 + dbg.Additive) * dbg.Multiplier
	raw *= l.presAgg.Get(catalog.TargetDebugRate).Multiplier

	ceiling := l.bal.ClickPowerCap
	if ceiling > 0 && raw > ceiling {
		raw = ceiling + math.Log10(raw/ceiling)
	}
	n := int64(math.Floor(raw))
	if n < 1 {
		n = 1
	}
	return n
}
