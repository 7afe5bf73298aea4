package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/config"
)

func TestState_RoundTripPreservesEverything(t *testing.T) {
	l, clock := newTestLedger(t)
	l.AddBugs(1500)
	assert.NoError(t, l.PurchaseUpgrade("enhanced-debugging"))
	assert.NoError(t, l.PurchaseUpgrade("auto-clicker"))
	_, err := l.PurchaseDuck("rubber")
	assert.NoError(t, err)
	assert.NoError(t, l.SetFocus("backend"))
	_, err = l.StartChallenge("backend-server-saver")
	assert.NoError(t, err)

	st := l.State()
	restored := RestoreLedger(st, config.Default(), clock, nil)

	assert.Equal(t, l.BugsFixed(), restored.BugsFixed())
	assert.Equal(t, l.CodeQuality(), restored.CodeQuality())
	assert.Equal(t, l.Stamina(), restored.Stamina())
	assert.Equal(t, l.Focus(), restored.Focus())
	assert.Equal(t, len(l.Ducks()), len(restored.Ducks()))
	assert.Equal(t, l.DuckCount("rubber"), restored.DuckCount("rubber"))
	assert.Equal(t, l.AchievementPeaks(), restored.AchievementPeaks())
	assert.Equal(t, l.Prestige(), restored.Prestige())
	assert.NotNil(t, restored.ActiveChallengeState())

	// The second snapshot must be identical to the first.
	assert.Equal(t, st, restored.State())
}

func TestState_RestoreRecomputesRate(t *testing.T) {
	l, clock := newTestLedger(t)
	l.AddBugs(1000)
	_, err := l.PurchaseDuck("rubber")
	assert.NoError(t, err)
	assert.NoError(t, l.PurchaseUpgrade("auto-clicker"))

	st := l.State()
	st.DebugRate = 9999 // stale stored rate must be ignored

	restored := RestoreLedger(st, config.Default(), clock, nil)
	assert.Equal(t, l.DebugRate(), restored.DebugRate())
}

func TestState_RestoreClampsStamina(t *testing.T) {
	_, clock := newTestLedger(t)
	st := State{
		Stamina:    4000,
		LastUpdate: testEpoch,
		Upgrades:   map[string]UpgradeState{},
		Prestige:   PrestigeState{Upgrades: map[string]int{}},
	}
	restored := RestoreLedger(st, config.Default(), clock, nil)
	assert.Equal(t, config.Default().MaxClickStamina, restored.Stamina())
}

func TestState_RestoreDoesNotGrantOffline(t *testing.T) {
	l, _ := restoreWithDucks(t, rubberDucks(3))
	st := l.State()
	st.LastUpdate = testEpoch.Add(-2 * time.Hour)

	clock := NewFakeClock(testEpoch)
	restored := RestoreLedger(st, config.Default(), clock, nil)
	assert.Equal(t, int64(0), restored.BugsFixed(), "restore alone grants nothing")

	res := restored.ApplyOfflineProgress()
	assert.Greater(t, res.BugsGained, int64(0))
	assert.Equal(t, res.BugsGained, restored.BugsFixed())

	// Applying again is a no-op because lastUpdate advanced with the grant.
	again := restored.ApplyOfflineProgress()
	assert.Equal(t, int64(0), again.BugsGained)
}

func TestState_SnapshotIsDetached(t *testing.T) {
	l, _ := newTestLedger(t)
	l.AddBugs(1000)
	_, err := l.PurchaseDuck("rubber")
	assert.NoError(t, err)
	assert.NoError(t, l.PurchaseUpgrade("enhanced-debugging"))

	st := l.State()
	st.Ducks[0].Power = 999
	st.Upgrades["enhanced-debugging"] = UpgradeState{Level: 50, Unlocked: true}

	assert.Equal(t, 1.0, l.Ducks()[0].Power)
	for _, v := range l.UpgradeViews() {
		if v.Def.ID == "enhanced-debugging" {
			assert.Equal(t, 1, v.Level)
		}
	}
}
