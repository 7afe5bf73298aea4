package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuckCost_GeometricScaling(t *testing.T) {
	def, ok := DuckTypeByID(DuckRubber)
	assert.True(t, ok)
	assert.Equal(t, int64(100), def.BaseCost)

	assert.Equal(t, int64(100), DuckCost(def, 0, 1.15))
	assert.Equal(t, int64(114), DuckCost(def, 1, 1.15), "floating-point floor, not 115")
	assert.Equal(t, int64(132), DuckCost(def, 2, 1.15))
}

func TestUpgradeCost_DoublesPerLevel(t *testing.T) {
	def, ok := UpgradeByID("auto-clicker")
	assert.True(t, ok)

	assert.Equal(t, def.Cost, UpgradeCost(def, 0))
	assert.Equal(t, def.Cost*2, UpgradeCost(def, 1))
	assert.Equal(t, def.Cost*4, UpgradeCost(def, 2))
}

func TestPrestigeUpgradeCost_DoublesPerLevel(t *testing.T) {
	def, ok := PrestigeUpgradeByID("mvc-pattern")
	assert.True(t, ok)

	assert.Equal(t, int64(5), def.Cost(0))
	assert.Equal(t, int64(10), def.Cost(1))
	assert.Equal(t, int64(20), def.Cost(2))
}

func TestUnlock_Met(t *testing.T) {
	p := Progress{BugsFixed: 500, CodeQuality: 100, DucksOwned: 3, ChallengesCompleted: 1}

	assert.True(t, Unlock{Kind: UnlockAlways}.Met(p))
	assert.True(t, Unlock{}.Met(p), "zero value unlocks unconditionally")
	assert.True(t, Unlock{Kind: UnlockBugsFixed, Value: 500}.Met(p))
	assert.False(t, Unlock{Kind: UnlockBugsFixed, Value: 501}.Met(p))
	assert.True(t, Unlock{Kind: UnlockDucksOwned, Value: 3}.Met(p))
	assert.False(t, Unlock{Kind: UnlockChallengesCompleted, Value: 2}.Met(p))
	assert.False(t, Unlock{Kind: "bogus"}.Met(p))
}

func TestUpgrades_PrereqsExist(t *testing.T) {
	for _, def := range Upgrades() {
		for _, req := range def.Requires {
			_, ok := UpgradeByID(req)
			assert.True(t, ok, "upgrade %s requires unknown %s", def.ID, req)
		}
	}
}

func TestDuckTypes_PowerMultiplier(t *testing.T) {
	premium, _ := DuckTypeByID(DuckPremium)
	assert.Equal(t, 2.0, premium.PowerMultiplier())

	cosmic, _ := DuckTypeByID(DuckCosmic)
	assert.Equal(t, 1.5, cosmic.PowerMultiplier())

	pirate, _ := DuckTypeByID(DuckPirate)
	assert.Equal(t, 1.0, pirate.PowerMultiplier(), "critical chance does not change passive power")
}

func TestSpecialtyEfficiency(t *testing.T) {
	web, _ := CodeTypeByID(CodeWeb)
	assert.Equal(t, web.SpecialistBonus, SpecialtyEfficiency(CodeWeb, CodeWeb))
	assert.Equal(t, 1.0, SpecialtyEfficiency("", CodeWeb), "unspecialized ducks work at base rate")
	assert.Equal(t, 0.5, SpecialtyEfficiency(CodeWeb, CodeAIML))
	assert.Equal(t, 0.8, SpecialtyEfficiency(CodeBackend, CodeAIML))
}

func TestBatchEfficiency_CapsAverageBonus(t *testing.T) {
	op, ok := BatchOperationByID("web-batch-basic")
	assert.True(t, ok)

	assert.Equal(t, op.Efficiency, BatchEfficiency(op, nil))
	assert.InDelta(t, op.Efficiency*1.5, BatchEfficiency(op, []float64{1.5}), 1e-12)
	assert.InDelta(t, op.Efficiency*2.5, BatchEfficiency(op, []float64{9, 9}), 1e-12, "average bonus is capped")
}
