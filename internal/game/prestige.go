package game

import (
	"math"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/effects"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// apBreakpoints are the refactor bonus steps. Only the highest breakpoint
// met applies; the bonuses do not stack.
var apBreakpoints = []struct {
	BugsFixed int64
	Bonus     float64
}{
	{25000, 1.1},
	{50000, 1.2},
	{100000, 1.3},
	{500000, 1.5},
}

// EarnedPoints returns the architecture points a refactor at the given
// bugs-fixed value would grant, before the prestige AP-gain multiplier.
// Zero below the threshold; otherwise floor(sqrt(bugs)/divisor) scaled by
// the highest breakpoint bonus met, floored again after the bonus.
func EarnedPoints(bugsFixed int64, threshold int64, divisor float64) int64 {
	if bugsFixed < threshold {
		return 0
	}
	points := math.Floor(math.Sqrt(float64(bugsFixed)) / divisor)

	bonus := 1.0
	for _, bp := range apBreakpoints {
		if bugsFixed >= bp.BugsFixed {
			bonus = bp.Bonus
		}
	}
	return int64(math.Floor(points * bonus))
}

// CanRefactor reports whether the primary counter has reached the refactor
// threshold.
func (l *Ledger) CanRefactor() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bugsFixed >= l.bal.RefactorThreshold
}

// RefactorPreview returns the points a refactor right now would grant,
// after the AP-gain prestige multiplier.
func (l *Ledger) RefactorPreview() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.earnedPointsLocked()
}

func (l *Ledger) earnedPointsLocked() int64 {
	points := EarnedPoints(l.bugsFixed, l.bal.RefactorThreshold, l.bal.RefactorDivisor)
	if points == 0 {
		return 0
	}
	mult := l.presAgg.Get(catalog.TargetAPGain).Multiplier
	return int64(math.Floor(float64(points) * mult))
}

// RefactorResult reports the outcome of a refactor.
type RefactorResult struct {
	PointsEarned       int64 `json:"points_earned"`
	ArchitecturePoints int64 `json:"architecture_points"`
	TotalRefactors     int   `json:"total_refactors"`
	StartingBugs       int64 `json:"starting_bugs"`
	StartingCQ         int64 `json:"starting_cq"`
}

// Refactor is the prestige reset. It banks the earned architecture points,
// updates lifetime counters, and wipes the run state back to the carry-over
// baseline. Achievement peaks, the prestige ledger, and completed
// challenges survive.
func (l *Ledger) Refactor() (RefactorResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bugsFixed < l.bal.RefactorThreshold {
		return RefactorResult{}, ErrRefactorUnavailable
	}

	points := l.earnedPointsLocked()
	l.prestige.ArchitecturePoints += points
	l.prestige.TotalRefactors++
	if l.bugsFixed > l.prestige.BestRun {
		l.prestige.BestRun = l.bugsFixed
	}
	l.prestige.LifetimeBugsFixed += l.bugsFixed

	var startBugs, startCQ int64
	if effects.HasStartingResources(l.prestigeLevelsLocked()) {
		startBugs = catalog.StartingBugsFixed
		startCQ = catalog.StartingCodeQuality
	}

	l.bugsFixed = startBugs
	l.codeQuality = startCQ
	l.ducks = nil
	l.purchaseLog = nil
	l.fracBugs = 0
	l.stamina = l.bal.MaxClickStamina
	l.activeChallenge = nil
	for _, st := range l.upgrades {
		st.Level = 0
	}

	l.recomputeLocked()
	l.bumpPeaksLocked()
	l.reevaluateUnlocksLocked()

	l.record(telemetry.EventRefactorPerformed, telemetry.EventMetadata{
		"points":          points,
		"total_points":    l.prestige.ArchitecturePoints,
		"total_refactors": l.prestige.TotalRefactors,
	})

	return RefactorResult{
		PointsEarned:       points,
		ArchitecturePoints: l.prestige.ArchitecturePoints,
		TotalRefactors:     l.prestige.TotalRefactors,
		StartingBugs:       startBugs,
		StartingCQ:         startCQ,
	}, nil
}

// PrestigeUpgradeView is the computed prestige-shop row.
type PrestigeUpgradeView struct {
	Def        catalog.PrestigeUpgradeDef `json:"def"`
	Level      int                        `json:"level"`
	Maxed      bool                       `json:"maxed"`
	NextCost   int64                      `json:"next_cost"`
	Affordable bool                       `json:"affordable"`
}

// PrestigeUpgradeViews returns the prestige-upgrade catalog with computed
// flags.
func (l *Ledger) PrestigeUpgradeViews() []PrestigeUpgradeView {
	l.mu.Lock()
	defer l.mu.Unlock()

	defs := catalog.PrestigeUpgrades()
	out := make([]PrestigeUpgradeView, 0, len(defs))
	for _, def := range defs {
		level := l.prestige.Upgrades[def.ID]
		maxed := level >= def.MaxLevel
		cost := def.Cost(level)
		out = append(out, PrestigeUpgradeView{
			Def:        def,
			Level:      level,
			Maxed:      maxed,
			NextCost:   cost,
			Affordable: !maxed && l.prestige.ArchitecturePoints >= cost,
		})
	}
	return out
}

// PurchasePrestigeUpgrade buys the next level of a prestige upgrade with
// architecture points. Atomic like every other purchase.
func (l *Ledger) PurchasePrestigeUpgrade(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	def, ok := catalog.PrestigeUpgradeByID(id)
	if !ok {
		return ErrNotFound
	}
	level := l.prestige.Upgrades[id]
	if level >= def.MaxLevel {
		return ErrMaxed
	}
	cost := def.Cost(level)
	if l.prestige.ArchitecturePoints < cost {
		return ErrInsufficientAP
	}

	l.prestige.ArchitecturePoints -= cost
	l.prestige.Upgrades[id] = level + 1
	l.recomputeLocked()

	l.record(telemetry.EventPrestigePurchased, telemetry.EventMetadata{
		"upgrade_id": def.ID,
		"level":      level + 1,
	})
	return nil
}
