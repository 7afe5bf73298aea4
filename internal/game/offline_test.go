package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/config"
)

func TestComputeOfflineProgress_FullRateFirstHour(t *testing.T) {
	bal := config.Default()
	p := ComputeOfflineProgress(testEpoch, testEpoch.Add(3600*time.Second), 10, bal)

	assert.Equal(t, int64(3600), p.EffectiveSeconds)
	assert.Equal(t, 1.0, p.Efficiency)
	assert.Equal(t, int64(36000), p.BugsGained)
	assert.Equal(t, int64(180000), p.CodeQualityGained)
}

func TestComputeOfflineProgress_ReducedAfterFirstHour(t *testing.T) {
	bal := config.Default()
	p := ComputeOfflineProgress(testEpoch, testEpoch.Add(7200*time.Second), 10, bal)

	assert.Equal(t, 0.8, p.Efficiency)
	assert.Equal(t, int64(57600), p.BugsGained)
}

func TestComputeOfflineProgress_CappedAt24Hours(t *testing.T) {
	bal := config.Default()
	p := ComputeOfflineProgress(testEpoch, testEpoch.Add(48*time.Hour), 10, bal)

	assert.Equal(t, int64(86400), p.EffectiveSeconds)
	assert.Equal(t, int64(691200), p.BugsGained)
}

func TestComputeOfflineProgress_FutureTimestampYieldsZero(t *testing.T) {
	bal := config.Default()
	p := ComputeOfflineProgress(testEpoch.Add(time.Hour), testEpoch, 10, bal)

	assert.Equal(t, time.Duration(0), p.Elapsed)
	assert.Equal(t, int64(0), p.BugsGained)
}

func TestComputeOfflineProgress_Deterministic(t *testing.T) {
	bal := config.Default()
	a := ComputeOfflineProgress(testEpoch, testEpoch.Add(5*time.Hour), 7.3, bal)
	b := ComputeOfflineProgress(testEpoch, testEpoch.Add(5*time.Hour), 7.3, bal)
	assert.Equal(t, a, b)
}

func TestApplyOfflineProgress_GrantsOnce(t *testing.T) {
	l, clock := restoreWithDucks(t, rubberDucks(10))
	clock.Set(testEpoch.Add(3600 * time.Second))

	first := l.ApplyOfflineProgress()
	assert.Equal(t, int64(36000), first.BugsGained)
	assert.Equal(t, int64(36000), l.BugsFixed())
	assert.Equal(t, int64(180000), l.CodeQuality())

	// Clock unchanged: the timestamp moved with the first grant, so nothing
	// more accrues.
	second := l.ApplyOfflineProgress()
	assert.Equal(t, int64(0), second.BugsGained)
	assert.Equal(t, int64(36000), l.BugsFixed())
}

func TestApplyOfflineProgress_UnlocksFromGrant(t *testing.T) {
	l, clock := restoreWithDucks(t, rubberDucks(10))
	clock.Set(testEpoch.Add(time.Hour))
	l.ApplyOfflineProgress()

	views := l.DuckTypeViews()
	for _, v := range views {
		assert.True(t, v.Unlocked, "peak from the grant unlocks %s", v.Def.Type)
	}
}
