package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/catalog"
)

func TestAggregate_AdditiveSums(t *testing.T) {
	set := Aggregate([]catalog.Effect{
		{Op: catalog.OpAdditive, Target: catalog.TargetDebugRate, Value: 1},
		{Op: catalog.OpAdditive, Target: catalog.TargetDebugRate, Value: 2},
		{Op: catalog.OpAdditive, Target: catalog.TargetCodeQuality, Value: 3},
	}, DefaultDamping)

	assert.Equal(t, 3.0, set.Get(catalog.TargetDebugRate).Additive)
	assert.Equal(t, 1.0, set.Get(catalog.TargetDebugRate).Multiplier)
	assert.Equal(t, 3.0, set.Get(catalog.TargetCodeQuality).Additive)
}

func TestAggregate_DiminishingReturns(t *testing.T) {
	f1, f2 := 1.5, 2.0
	set := Aggregate([]catalog.Effect{
		{Op: catalog.OpMultiplier, Target: catalog.TargetDebugRate, Value: f1},
		{Op: catalog.OpMultiplier, Target: catalog.TargetDebugRate, Value: f2},
	}, DefaultDamping)

	want := (1 + (f1-1)*1.0) * (1 + (f2-1)*0.8)
	got := set.Get(catalog.TargetDebugRate).Multiplier
	assert.InDelta(t, want, got, 1e-12)
	assert.Less(t, got, f1*f2, "damped stacking must be below naive compounding")
}

func TestAggregate_DampingCountsAcrossTargets(t *testing.T) {
	// The second multiplier is damped even though it hits a different target.
	set := Aggregate([]catalog.Effect{
		{Op: catalog.OpMultiplier, Target: catalog.TargetDebugRate, Value: 2.0},
		{Op: catalog.OpMultiplier, Target: catalog.TargetDuckEfficiency, Value: 2.0},
	}, DefaultDamping)

	assert.InDelta(t, 2.0, set.Get(catalog.TargetDebugRate).Multiplier, 1e-12)
	assert.InDelta(t, 1.8, set.Get(catalog.TargetDuckEfficiency).Multiplier, 1e-12)
}

func TestAggregate_OrderMatters(t *testing.T) {
	a := []catalog.Effect{
		{Op: catalog.OpMultiplier, Target: catalog.TargetDebugRate, Value: 3.0},
		{Op: catalog.OpMultiplier, Target: catalog.TargetDebugRate, Value: 1.1},
	}
	b := []catalog.Effect{a[1], a[0]}

	ma := Aggregate(a, DefaultDamping).Get(catalog.TargetDebugRate).Multiplier
	mb := Aggregate(b, DefaultDamping).Get(catalog.TargetDebugRate).Multiplier
	assert.NotEqual(t, ma, mb)
}

func TestAggregate_UntouchedTargetIsNeutral(t *testing.T) {
	set := Aggregate(nil, DefaultDamping)
	acc := set.Get(catalog.TargetSpecial)
	assert.Equal(t, 0.0, acc.Additive)
	assert.Equal(t, 1.0, acc.Multiplier)
}

func TestAggregate_SpecialOpIgnored(t *testing.T) {
	set := Aggregate([]catalog.Effect{
		{Op: catalog.OpSpecial, Target: catalog.TargetStartingResources, Value: 1},
	}, DefaultDamping)
	assert.Empty(t, set)
}

func TestPrestigeMultipliers_CompoundFreely(t *testing.T) {
	def, ok := catalog.PrestigeUpgradeByID("pair-programming")
	assert.True(t, ok)

	set := PrestigeMultipliers([]PrestigeLevel{{Def: def, Level: 3}})
	want := def.Effect.Value * def.Effect.Value * def.Effect.Value
	assert.InDelta(t, want, set.Get(catalog.TargetDebugRate).Multiplier, 1e-12)
}

func TestHasStartingResources(t *testing.T) {
	def, ok := catalog.PrestigeUpgradeByID(catalog.StartingResourcesUpgradeID)
	assert.True(t, ok)

	assert.False(t, HasStartingResources(nil))
	assert.False(t, HasStartingResources([]PrestigeLevel{{Def: def, Level: 0}}))
	assert.True(t, HasStartingResources([]PrestigeLevel{{Def: def, Level: 1}}))
}
