package game

import (
	"math"
	"time"

	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// OfflineProgress is the one-time grant computed at load for time spent
// away.
type OfflineProgress struct {
	Elapsed           time.Duration `json:"elapsed"`
	EffectiveSeconds  int64         `json:"effective_seconds"`
	Efficiency        float64       `json:"efficiency"`
	BugsGained        int64         `json:"bugs_gained"`
	CodeQualityGained int64         `json:"code_quality_gained"`
}

// ComputeOfflineProgress is a pure function of its inputs: the same
// timestamps and rate always produce the same grant. Future timestamps
// yield zero, accrual is capped at the configured window, and efficiency
// steps down once past the full-rate period. Currency uses the fixed base
// yield, not the boosted online formula.
func ComputeOfflineProgress(lastUpdate, now time.Time, rate float64, bal config.Balance) OfflineProgress {
	elapsed := now.Sub(lastUpdate)
	if elapsed < 0 {
		elapsed = 0
	}

	capSecs := int64(bal.OfflineCapHours) * 3600
	effective := int64(elapsed.Seconds())
	if effective > capSecs {
		effective = capSecs
	}

	efficiency := 1.0
	if effective > int64(bal.OfflineFullRateSecs) {
		efficiency = bal.OfflineLateEfficiency
	}

	bugs := int64(math.Floor(rate * float64(effective) * efficiency))
	if bugs < 0 {
		bugs = 0
	}

	return OfflineProgress{
		Elapsed:           elapsed,
		EffectiveSeconds:  effective,
		Efficiency:        efficiency,
		BugsGained:        bugs,
		CodeQualityGained: bugs * int64(bal.CQPerBugFixed),
	}
}

// ApplyOfflineProgress runs the catch-up computation against the ledger's
// stored timestamp and applies the grant exactly once: the timestamp is
// advanced in the same critical section, so a second call grants nothing.
func (l *Ledger) ApplyOfflineProgress() OfflineProgress {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	p := ComputeOfflineProgress(l.lastUpdate, now, l.debugRate, l.bal)
	l.lastUpdate = now

	if p.BugsGained <= 0 {
		return p
	}

	l.bugsFixed += p.BugsGained
	l.codeQuality += p.CodeQualityGained
	l.bumpPeaksLocked()
	l.checkMilestonesLocked()
	l.reevaluateUnlocksLocked()

	l.record(telemetry.EventOfflineGrant, telemetry.EventMetadata{
		"bugs":    p.BugsGained,
		"cq":      p.CodeQualityGained,
		"seconds": p.EffectiveSeconds,
	})
	return p
}
