package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
)

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(testEpoch)
	return NewLedger(config.Default(), clock, nil), clock
}

func restoreWithDucks(t *testing.T, ducks []Duck) (*Ledger, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(testEpoch)
	st := State{
		Ducks:      ducks,
		LastUpdate: testEpoch,
		Stamina:    100,
		Upgrades:   map[string]UpgradeState{},
		Prestige:   PrestigeState{Upgrades: map[string]int{}},
	}
	return RestoreLedger(st, config.Default(), clock, nil), clock
}

func rubberDucks(n int) []Duck {
	def, _ := catalog.DuckTypeByID(catalog.DuckRubber)
	out := make([]Duck, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewDuck(def, testEpoch))
	}
	return out
}

func TestRate_IdentityWithEmptyUpgrades(t *testing.T) {
	// With no upgrades purchased the rate is exactly the sum of duck powers.
	l, _ := restoreWithDucks(t, rubberDucks(7))
	assert.Equal(t, 7.0, l.DebugRate())
}

func TestRate_EmptyLedgerIsZero(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Equal(t, 0.0, l.DebugRate())
}

func TestCQYield_DuckCQBonusIsAdditive(t *testing.T) {
	fancy, _ := catalog.DuckTypeByID(catalog.DuckFancy)
	l, _ := restoreWithDucks(t, []Duck{NewDuck(fancy, testEpoch)})

	l.AddBugs(10)
	// Base 5 per bug plus the fancy duck's +2 code-quality special.
	assert.Equal(t, int64(70), l.CodeQuality())
}

func TestRate_SpecialBonusAppliesToOwnType(t *testing.T) {
	premium, _ := catalog.DuckTypeByID(catalog.DuckPremium)
	l, _ := restoreWithDucks(t, []Duck{NewDuck(premium, testEpoch)})
	// Base power 4 doubled by the efficiency special.
	assert.Equal(t, 8.0, l.DebugRate())
}

func TestRate_AdditiveThenMultiplier(t *testing.T) {
	l, _ := restoreWithDucks(t, rubberDucks(2))
	l.AddBugs(100) // past the debugging-efficiency unlock
	l.AddCQ(10000)

	// +1/s additive, then a 1.5x multiplier on the sum.
	assert.NoError(t, l.PurchaseUpgrade("basic-rubber-duck"))
	assert.NoError(t, l.PurchaseUpgrade("debugging-efficiency"))

	// (2 + 1) * 1.5, multiplier undamped as the first one purchased.
	assert.InDelta(t, 4.5, l.DebugRate(), 1e-9)
}

func TestRate_RecomputedOnDuckChange(t *testing.T) {
	l, _ := restoreWithDucks(t, rubberDucks(1))
	l.AddCQ(1000)

	d, err := l.PurchaseDuck(catalog.DuckRubber)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, l.DebugRate())

	assert.NoError(t, l.RemoveDuck(d.ID))
	assert.Equal(t, 1.0, l.DebugRate())
}

func TestRate_PrestigeMultiplierApplies(t *testing.T) {
	l, _ := restoreWithDucks(t, rubberDucks(4))
	l.mu.Lock()
	l.prestige.ArchitecturePoints = 100
	l.mu.Unlock()

	assert.NoError(t, l.PurchasePrestigeUpgrade("mvc-pattern"))
	assert.InDelta(t, 4*1.25, l.DebugRate(), 1e-9)
}
