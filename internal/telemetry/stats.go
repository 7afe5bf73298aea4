package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period              string            `json:"period"`
	EventCounts         map[EventType]int `json:"event_counts"`
	DebugActions        int               `json:"debug_actions"`
	BugsFixed           int               `json:"bugs_fixed"`
	DucksAcquired       int               `json:"ducks_acquired"`
	DucksByType         map[string]int    `json:"ducks_by_type"`
	UpgradesPurchased   int               `json:"upgrades_purchased"`
	UpgradesByCategory  map[string]int    `json:"upgrades_by_category"`
	ChallengesCompleted int               `json:"challenges_completed"`
	ChallengesFailed    int               `json:"challenges_failed"`
	Refactors           int               `json:"refactors"`
	OfflineGrants       int               `json:"offline_grants"`
	OfflineBugs         int               `json:"offline_bugs"`
	BugsPerAction       float64           `json:"bugs_per_action"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:             since.Format("2006-01-02"),
		EventCounts:        make(map[EventType]int),
		DucksByType:        make(map[string]int),
		UpgradesByCategory: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		// Parse metadata for specific stats
		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventDebugAction:
			stats.DebugActions++
			if bugs, ok := metadata["bugs"].(float64); ok {
				stats.BugsFixed += int(bugs)
			}
		case EventDuckAcquired:
			stats.DucksAcquired++
			if duckType, ok := metadata["duck_type"].(string); ok {
				stats.DucksByType[duckType]++
			}
		case EventUpgradePurchased:
			stats.UpgradesPurchased++
			if category, ok := metadata["category"].(string); ok {
				stats.UpgradesByCategory[category]++
			}
		case EventChallengeCompleted:
			stats.ChallengesCompleted++
		case EventChallengeFailed:
			stats.ChallengesFailed++
		case EventRefactorPerformed:
			stats.Refactors++
		case EventOfflineGrant:
			stats.OfflineGrants++
			if bugs, ok := metadata["bugs"].(float64); ok {
				stats.OfflineBugs += int(bugs)
			}
		}
	}

	if stats.DebugActions > 0 {
		stats.BugsPerAction = float64(stats.BugsFixed) / float64(stats.DebugActions)
	}

	return stats, nil
}
