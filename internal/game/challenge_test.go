package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
)

func TestStartChallenge_Gates(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.StartChallenge("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.StartChallenge("web-speed-demon")
	assert.ErrorIs(t, err, ErrLocked, "needs 100 bugs")

	l.AddBugs(100)
	c, err := l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)
	assert.Equal(t, "web-speed-demon", c.ID)
	assert.Equal(t, "web", string(l.Focus()), "starting switches focus to the challenge type")

	_, err = l.StartChallenge("backend-server-saver")
	assert.ErrorIs(t, err, ErrChallengeActive)
}

func TestChallenge_CompletesAndRewards(t *testing.T) {
	rec := newRecordingSink()
	clock := NewFakeClock(testEpoch)
	l := NewLedger(config.Default(), clock, rec)
	l.AddBugs(100)
	cqBefore := l.CodeQuality()

	_, err := l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)

	l.AddBugs(10)
	assert.Nil(t, l.ActiveChallengeState())
	assert.Equal(t, []string{"web-speed-demon"}, l.CompletedChallenges())
	assert.Equal(t, 1, rec.count("challenge_completed"))

	// Reward: 200 CQ plus 1 AP, on top of the per-bug yield.
	assert.Equal(t, cqBefore+10*5+200, l.CodeQuality())
	assert.Equal(t, int64(1), l.Prestige().ArchitecturePoints)

	_, err = l.StartChallenge("web-speed-demon")
	assert.ErrorIs(t, err, ErrChallengeDone)
}

func TestChallenge_OffFocusProgressDoesNotCount(t *testing.T) {
	l, _ := newTestLedger(t)
	l.AddBugs(500)

	_, err := l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)
	assert.NoError(t, l.SetFocus("backend"))

	l.AddBugs(10)
	c := l.ActiveChallengeState()
	assert.NotNil(t, c)
	assert.Equal(t, int64(0), c.Progress)
}

func TestChallenge_TimesOutOnTick(t *testing.T) {
	rec := newRecordingSink()
	clock := NewFakeClock(testEpoch)
	l := NewLedger(config.Default(), clock, rec)
	l.AddBugs(100)

	_, err := l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)

	clock.Advance(61 * time.Second)
	l.Tick(time.Second)

	assert.Nil(t, l.ActiveChallengeState())
	assert.Empty(t, l.CompletedChallenges())
	assert.Equal(t, 1, rec.count("challenge_failed"))
}

func TestAbandonChallenge(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.ErrorIs(t, l.AbandonChallenge(), ErrNotFound)

	l.AddBugs(100)
	_, err := l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)

	assert.NoError(t, l.AbandonChallenge())
	assert.Nil(t, l.ActiveChallengeState())
	// Abandoned, not completed: it can be started again.
	_, err = l.StartChallenge("web-speed-demon")
	assert.NoError(t, err)
}

func TestRunBatchOperation(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.RunBatchOperation("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.RunBatchOperation("web-batch-basic")
	assert.ErrorIs(t, err, ErrLocked, "needs 200 bugs")

	l.AddBugs(200)
	_, err = l.RunBatchOperation("web-batch-basic")
	assert.NoError(t, err)
}

func TestRunBatchOperation_YieldWithoutDucks(t *testing.T) {
	l, _ := newTestLedger(t)
	l.AddBugs(200) // 1000 CQ, covers the 500 cost

	bugsBefore := l.BugsFixed()
	res, err := l.RunBatchOperation("web-batch-basic")
	assert.NoError(t, err)

	// Batch of 5 at base efficiency 1.2 -> floor(6).
	assert.Equal(t, int64(6), res.BugsFixed)
	assert.Equal(t, bugsBefore+6, l.BugsFixed())
	assert.Equal(t, int64(500+res.CodeQualityGained), l.CodeQuality())
}

func TestRunBatchOperation_WebDuckSpecialBoostsWebOps(t *testing.T) {
	bath, _ := catalog.DuckTypeByID(catalog.DuckBath)
	l, _ := restoreWithDucks(t, []Duck{NewDuck(bath, testEpoch)})
	l.AddBugs(200)

	res, err := l.RunBatchOperation("web-batch-basic")
	assert.NoError(t, err)
	// Specialist bonus 1.5 doubled by the web-bug special, capped at the
	// 2.5 average-bonus ceiling, over base efficiency 1.2: floor(5 * 3.0).
	assert.Equal(t, int64(15), res.BugsFixed)

	// The same duck gives no special boost off the web track.
	for _, v := range l.BatchOperationViews() {
		if v.Def.ID == "mobile-batch-basic" {
			assert.InDelta(t, 1.4*0.8, v.Efficiency, 1e-12)
		}
	}
}

func TestRunBatchOperation_InsufficientCQ(t *testing.T) {
	l, _ := newTestLedger(t)
	l.AddBugs(200)
	assert.NoError(t, l.SpendCQ(l.CodeQuality()))

	before := l.State()
	_, err := l.RunBatchOperation("web-batch-basic")
	assert.ErrorIs(t, err, ErrInsufficientCQ)
	assert.Equal(t, before, l.State())
}
