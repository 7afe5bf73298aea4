package game

import (
	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// PurchaseUpgrade buys the next level of an ordinary upgrade. The item must
// be unlocked, below max level, have all prerequisites purchased, and be
// affordable; any failed check rejects with the state unchanged.
func (l *Ledger) PurchaseUpgrade(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	def, ok := catalog.UpgradeByID(id)
	if !ok {
		return ErrNotFound
	}
	st := l.upgradeState(id)
	if !st.Unlocked {
		return ErrLocked
	}
	if !l.prereqsMetLocked(def) {
		return ErrPrereqUnmet
	}
	if st.Level >= def.MaxLevel {
		return ErrMaxed
	}
	if err := l.spendCQLocked(catalog.UpgradeCost(def, st.Level)); err != nil {
		return err
	}

	st.Level++
	l.purchaseLog = append(l.purchaseLog, def.ID)
	l.recomputeLocked()
	l.bumpPeaksLocked()
	l.reevaluateUnlocksLocked()

	l.record(telemetry.EventUpgradePurchased, telemetry.EventMetadata{
		"upgrade_id": def.ID,
		"category":   string(def.Category),
		"level":      st.Level,
	})
	return nil
}

// PurchaseDuck buys one duck of the given type. Cost scales geometrically
// with how many of that type are already owned; the unlock predicate is
// evaluated against peak values so a refactor never re-locks a type.
func (l *Ledger) PurchaseDuck(t catalog.DuckType) (Duck, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	def, ok := catalog.DuckTypeByID(t)
	if !ok {
		return Duck{}, ErrNotFound
	}
	if !def.Unlock.Met(l.progressLocked()) {
		return Duck{}, ErrLocked
	}
	owned := l.duckCountLocked(t)
	if err := l.spendCQLocked(catalog.DuckCost(def, owned, l.bal.DuckCostGrowth)); err != nil {
		return Duck{}, err
	}

	d := NewDuck(def, l.clock.Now())
	l.ducks = append(l.ducks, d)
	l.recomputeLocked()
	l.bumpPeaksLocked()
	l.reevaluateUnlocksLocked()

	l.record(telemetry.EventDuckAcquired, telemetry.EventMetadata{
		"duck_id":   d.ID,
		"duck_type": string(d.Type),
		"owned":     owned + 1,
	})
	return d, nil
}

// LevelUpDuck raises one duck a level, scaling its power by the configured
// per-level factor.
func (l *Ledger) LevelUpDuck(id string) (Duck, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.ducks {
		if l.ducks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Duck{}, ErrNotFound
	}
	if err := l.spendCQLocked(DuckLevelUpCost(l.ducks[idx], l.bal)); err != nil {
		return Duck{}, err
	}

	l.ducks[idx].Level++
	l.ducks[idx].Power *= l.bal.DuckLevelUpPower
	l.recomputeLocked()
	l.bumpPeaksLocked()

	d := l.ducks[idx]
	l.record(telemetry.EventDuckLeveled, telemetry.EventMetadata{
		"duck_id":   d.ID,
		"duck_type": string(d.Type),
		"level":     d.Level,
	})
	return d, nil
}

// RemoveDuck releases a duck from the collection. Rare in normal play; no
// refund is given.
func (l *Ledger) RemoveDuck(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.ducks {
		if l.ducks[i].ID == id {
			t := l.ducks[i].Type
			l.ducks = append(l.ducks[:i], l.ducks[i+1:]...)
			l.recomputeLocked()
			l.record(telemetry.EventDuckRemoved, telemetry.EventMetadata{
				"duck_id":   id,
				"duck_type": string(t),
			})
			return nil
		}
	}
	return ErrNotFound
}
