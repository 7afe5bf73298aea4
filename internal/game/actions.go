package game

import (
	"math"
	"time"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// DebugResult reports what one successful manual action produced.
type DebugResult struct {
	BugsFixed         int64 `json:"bugs_fixed"`
	CodeQualityGained int64 `json:"code_quality_gained"`
	Critical          bool  `json:"critical"`
	Stamina           int   `json:"stamina"`
}

// debugCooldownLocked grows the cooldown with progression so that late-game
// clicking cannot keep pace with passive generation.
func (l *Ledger) debugCooldownLocked() time.Duration {
	ms := float64(l.bal.ClickCooldownBaseMS) * (1 + math.Log10(1+float64(l.bugsFixed)/1000))
	return time.Duration(ms * float64(time.Millisecond))
}

// criticalChanceLocked sums the critical-bug bonuses of owned ducks, capped
// at 50%. Quantum entanglement counts as critical chance: a paradox
// resolving both copies of a bug at once.
func (l *Ledger) criticalChanceLocked() float64 {
	chance := 0.0
	for _, d := range l.ducks {
		def, ok := catalog.DuckTypeByID(d.Type)
		if !ok {
			continue
		}
		switch def.Special.Kind {
		case catalog.BonusCritical, catalog.BonusQuantum:
			chance += def.Special.Value
		}
	}
	if chance > 0.5 {
		chance = 0.5
	}
	return chance
}

// DebugCode is the manual action. It consumes stamina and is rejected
// outright when the pool is empty or the cooldown has not elapsed; on
// success the click power is applied through the normal bug/currency path.
func (l *Ledger) DebugCode() (DebugResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stamina < l.bal.ClickStaminaCost {
		return DebugResult{}, ErrNoStamina
	}
	now := l.clock.Now()
	if !l.lastDebugAt.IsZero() && now.Sub(l.lastDebugAt) < l.debugCooldownLocked() {
		return DebugResult{}, ErrCooldown
	}

	bugs := l.clickPowerLocked()
	critical := false
	if chance := l.criticalChanceLocked(); chance > 0 && l.rng.Float64() < chance {
		bugs *= 2
		critical = true
	}

	l.stamina -= l.bal.ClickStaminaCost
	l.lastDebugAt = now
	gained := l.addBugsLocked(bugs)

	l.record(telemetry.EventDebugAction, telemetry.EventMetadata{
		"bugs":     bugs,
		"cq":       gained,
		"critical": critical,
	})

	return DebugResult{
		BugsFixed:         bugs,
		CodeQualityGained: gained,
		Critical:          critical,
		Stamina:           l.stamina,
	}, nil
}

// addBugsLocked is the single increment path every bug source funnels
// through: counters, currency yield, peaks, milestones, unlock re-evaluation
// and challenge progress all update here.
func (l *Ledger) addBugsLocked(n int64) int64 {
	if n <= 0 {
		return 0
	}
	l.bugsFixed += n
	gained := int64(math.Floor(float64(n) * l.cqPerBugLocked()))
	l.codeQuality += gained

	l.bumpPeaksLocked()
	l.checkMilestonesLocked()
	l.reevaluateUnlocksLocked()
	l.progressChallengeLocked(n)
	return gained
}

// AddBugs is the bulk-increment entry point used by debug tooling. It runs
// the same pipeline as passive generation.
func (l *Ledger) AddBugs(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addBugsLocked(n)
}

// TickResult reports what one passive tick produced.
type TickResult struct {
	BugsFixed         int64 `json:"bugs_fixed"`
	CodeQualityGained int64 `json:"code_quality_gained"`
	Stamina           int   `json:"stamina"`
}

// Tick advances the simulation by the elapsed duration: passive generation
// at the cached rate, stamina regeneration, and challenge-deadline checks.
// Fractional bugs are carried between ticks so low rates still accrue.
func (l *Ledger) Tick(elapsed time.Duration) TickResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	if elapsed < 0 {
		elapsed = 0
	}
	l.fracBugs += l.debugRate * elapsed.Seconds()
	whole := int64(math.Floor(l.fracBugs))
	l.fracBugs -= float64(whole)

	gained := l.addBugsLocked(whole)
	l.regenStaminaLocked()
	l.expireChallengeLocked()
	l.lastUpdate = l.clock.Now()

	return TickResult{
		BugsFixed:         whole,
		CodeQualityGained: gained,
		Stamina:           l.stamina,
	}
}

// RegenStamina adds the per-tick regen amount up to the cap. Tick calls this
// as part of its cycle; it is also exposed separately for hosts that run
// regeneration on its own timer.
func (l *Ledger) RegenStamina() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regenStaminaLocked()
	return l.stamina
}

func (l *Ledger) regenStaminaLocked() {
	l.stamina += l.bal.StaminaRegenPerTick
	if l.stamina > l.bal.MaxClickStamina {
		l.stamina = l.bal.MaxClickStamina
	}
}

// SpendCQ atomically deducts currency. Used by debug tooling and internal
// purchase paths.
func (l *Ledger) SpendCQ(amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spendCQLocked(amount)
}

func (l *Ledger) spendCQLocked(amount int64) error {
	if amount < 0 {
		amount = 0
	}
	if l.codeQuality < amount {
		return ErrInsufficientCQ
	}
	l.codeQuality -= amount
	return nil
}

// AddCQ grants currency directly. Used by debug tooling and challenge
// rewards.
func (l *Ledger) AddCQ(amount int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > 0 {
		l.codeQuality += amount
		l.bumpPeaksLocked()
	}
	return l.codeQuality
}

// SetFocus switches the current specialization. Focus gates which code type
// challenge progress counts toward and scales batch-operation efficiency;
// it does not change the passive rate.
func (l *Ledger) SetFocus(t catalog.CodeType) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	def, ok := catalog.CodeTypeByID(t)
	if !ok {
		return ErrNotFound
	}
	if !def.Unlock.Met(l.progressLocked()) {
		return ErrLocked
	}
	if l.focus == t {
		return nil
	}
	l.focus = t
	l.record(telemetry.EventFocusChanged, telemetry.EventMetadata{
		"focus": string(t),
	})
	return nil
}
