package telemetry

import "time"

type EventType string

const (
	EventDebugAction        EventType = "debug_action"
	EventDuckAcquired       EventType = "duck_acquired"
	EventDuckLeveled        EventType = "duck_leveled"
	EventDuckRemoved        EventType = "duck_removed"
	EventUpgradePurchased   EventType = "upgrade_purchased"
	EventUpgradeUnlocked    EventType = "upgrade_unlocked"
	EventMilestoneReached   EventType = "milestone_reached"
	EventOfflineGrant       EventType = "offline_grant"
	EventBatchCompleted     EventType = "batch_completed"
	EventChallengeStarted   EventType = "challenge_started"
	EventChallengeCompleted EventType = "challenge_completed"
	EventChallengeFailed    EventType = "challenge_failed"
	EventRefactorPerformed  EventType = "refactor_performed"
	EventPrestigePurchased  EventType = "prestige_purchased"
	EventFocusChanged       EventType = "focus_changed"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}

// Recorder is the write-side surface the game core emits events through.
// The core never formats human-readable strings; collaborators subscribe to
// the typed stream and render what they need.
type Recorder interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
}

// Repository stores telemetry events
type Repository interface {
	Recorder
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}
