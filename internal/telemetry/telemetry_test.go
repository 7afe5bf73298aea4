package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository()

	assert.NoError(t, repo.RecordEvent(EventDebugAction, EventMetadata{"bugs": 1}))
	assert.NoError(t, repo.RecordEvent(EventDuckAcquired, EventMetadata{"duck_type": "rubber"}))
	assert.NoError(t, repo.RecordEvent(EventDebugAction, EventMetadata{"bugs": 2}))

	all, err := repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[2].ID)

	debug, err := repo.GetEvents(time.Time{}, []EventType{EventDebugAction})
	assert.NoError(t, err)
	assert.Len(t, debug, 2)
	for _, e := range debug {
		assert.Equal(t, EventDebugAction, e.Type)
	}

	future, err := repo.GetEvents(time.Now().Add(time.Hour), nil)
	assert.NoError(t, err)
	assert.Empty(t, future)
}

func TestMemoryRepository_Clear(t *testing.T) {
	repo := NewMemoryRepository()
	assert.NoError(t, repo.RecordEvent(EventDebugAction, nil))
	assert.NoError(t, repo.Clear())

	all, err := repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, all)

	// IDs restart after a clear.
	assert.NoError(t, repo.RecordEvent(EventDebugAction, nil))
	all, _ = repo.GetEvents(time.Time{}, nil)
	assert.Equal(t, 1, all[0].ID)
}

func TestMemoryRepository_Subscribe(t *testing.T) {
	repo := NewMemoryRepository()
	ch := repo.Subscribe()

	assert.NoError(t, repo.RecordEvent(EventMilestoneReached, EventMetadata{"milestone": 100}))

	select {
	case e := <-ch:
		assert.Equal(t, EventMilestoneReached, e.Type)
		assert.Contains(t, e.Metadata, "milestone")
	default:
		t.Fatal("expected a buffered event on the subscription channel")
	}
}

func TestMemoryRepository_SlowSubscriberDoesNotBlock(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Subscribe() // never drained

	for i := 0; i < 200; i++ {
		assert.NoError(t, repo.RecordEvent(EventDebugAction, nil))
	}
	all, err := repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 200, "recording keeps working once the buffer is full")
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo, err := OpenSQLite(t.TempDir() + "/events.db")
	assert.NoError(t, err)
	defer repo.Close()

	assert.NoError(t, repo.RecordEvent(EventDebugAction, EventMetadata{"bugs": 3}))
	assert.NoError(t, repo.RecordEvent(EventRefactorPerformed, EventMetadata{"points": 6}))

	all, err := repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	only, err := repo.GetEvents(time.Time{}, []EventType{EventRefactorPerformed})
	assert.NoError(t, err)
	assert.Len(t, only, 1)
	assert.Equal(t, EventRefactorPerformed, only[0].Type)

	assert.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestTee_FansOutWrites(t *testing.T) {
	primary := NewMemoryRepository()
	secondary := NewMemoryRepository()
	tee := Tee{Primary: primary, Others: []Recorder{secondary}}

	assert.NoError(t, tee.RecordEvent(EventDebugAction, EventMetadata{"bugs": 1}))

	p, _ := primary.GetEvents(time.Time{}, nil)
	s, _ := secondary.GetEvents(time.Time{}, nil)
	assert.Len(t, p, 1)
	assert.Len(t, s, 1)

	// Reads come from the primary only.
	fromTee, err := tee.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)
	assert.Equal(t, p, fromTee)
}

func TestCalculateStats(t *testing.T) {
	repo := NewMemoryRepository()
	assert.NoError(t, repo.RecordEvent(EventDebugAction, EventMetadata{"bugs": 2}))
	assert.NoError(t, repo.RecordEvent(EventDebugAction, EventMetadata{"bugs": 4}))
	assert.NoError(t, repo.RecordEvent(EventDuckAcquired, EventMetadata{"duck_type": "rubber"}))
	assert.NoError(t, repo.RecordEvent(EventDuckAcquired, EventMetadata{"duck_type": "pirate"}))
	assert.NoError(t, repo.RecordEvent(EventUpgradePurchased, EventMetadata{"category": "tool"}))
	assert.NoError(t, repo.RecordEvent(EventChallengeCompleted, EventMetadata{"challenge_id": "web-speed-demon"}))
	assert.NoError(t, repo.RecordEvent(EventChallengeFailed, EventMetadata{"reason": "timeout"}))
	assert.NoError(t, repo.RecordEvent(EventRefactorPerformed, EventMetadata{"points": 6}))
	assert.NoError(t, repo.RecordEvent(EventOfflineGrant, EventMetadata{"bugs": 100}))

	events, err := repo.GetEvents(time.Time{}, nil)
	assert.NoError(t, err)

	stats, err := CalculateStats(events, time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	assert.Equal(t, 2, stats.DebugActions)
	assert.Equal(t, 6, stats.BugsFixed)
	assert.Equal(t, 3.0, stats.BugsPerAction)
	assert.Equal(t, 2, stats.DucksAcquired)
	assert.Equal(t, map[string]int{"rubber": 1, "pirate": 1}, stats.DucksByType)
	assert.Equal(t, map[string]int{"tool": 1}, stats.UpgradesByCategory)
	assert.Equal(t, 1, stats.ChallengesCompleted)
	assert.Equal(t, 1, stats.ChallengesFailed)
	assert.Equal(t, 1, stats.Refactors)
	assert.Equal(t, 1, stats.OfflineGrants)
	assert.Equal(t, 100, stats.OfflineBugs)
}

func TestCalculateStats_EmptyInput(t *testing.T) {
	stats, err := CalculateStats(nil, time.Now())
	assert.NoError(t, err)
	assert.Zero(t, stats.DebugActions)
	assert.Zero(t, stats.BugsPerAction)
	assert.NotNil(t, stats.EventCounts)
}
