package game

import (
	"time"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// StartChallenge begins a timed challenge. Only one challenge may run at a
// time and each challenge completes at most once. Starting switches the
// session focus to the challenge's code type so progress counts.
func (l *Ledger) StartChallenge(id string) (*ActiveChallenge, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	def, ok := catalog.ChallengeByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	if !def.Unlock.Met(l.progressLocked()) {
		return nil, ErrLocked
	}
	if l.completedChallenges[id] {
		return nil, ErrChallengeDone
	}
	if l.activeChallenge != nil {
		return nil, ErrChallengeActive
	}

	now := l.clock.Now()
	l.activeChallenge = &ActiveChallenge{
		ID:        id,
		StartedAt: now,
		Deadline:  now.Add(time.Duration(def.TimeLimitSecs) * time.Second),
	}
	l.focus = def.CodeType

	l.record(telemetry.EventChallengeStarted, telemetry.EventMetadata{
		"challenge_id": id,
		"target":       def.TargetBugs,
		"limit_secs":   def.TimeLimitSecs,
	})
	c := *l.activeChallenge
	return &c, nil
}

// AbandonChallenge gives up on the running challenge without reward.
func (l *Ledger) AbandonChallenge() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeChallenge == nil {
		return ErrNotFound
	}
	id := l.activeChallenge.ID
	l.activeChallenge = nil
	l.record(telemetry.EventChallengeFailed, telemetry.EventMetadata{
		"challenge_id": id,
		"reason":       "abandoned",
	})
	return nil
}

// progressChallengeLocked credits fixed bugs toward the running challenge.
// Only fixes made while the session focus matches the challenge's code type
// count.
func (l *Ledger) progressChallengeLocked(bugs int64) {
	c := l.activeChallenge
	if c == nil {
		return
	}
	def, ok := catalog.ChallengeByID(c.ID)
	if !ok {
		l.activeChallenge = nil
		return
	}
	if l.focus != def.CodeType {
		return
	}
	if l.clock.Now().After(c.Deadline) {
		l.failChallengeLocked(def)
		return
	}

	c.Progress += bugs
	if c.Progress < def.TargetBugs {
		return
	}

	l.activeChallenge = nil
	l.completedChallenges[def.ID] = true
	l.codeQuality += def.Reward.CodeQuality
	l.prestige.ArchitecturePoints += def.Reward.ArchitecturePoints
	l.bumpPeaksLocked()
	l.reevaluateUnlocksLocked()

	l.record(telemetry.EventChallengeCompleted, telemetry.EventMetadata{
		"challenge_id": def.ID,
		"cq_reward":    def.Reward.CodeQuality,
		"ap_reward":    def.Reward.ArchitecturePoints,
		"title":        def.Reward.Title,
	})
}

// expireChallengeLocked fails the running challenge once its deadline has
// passed. Called from every tick.
func (l *Ledger) expireChallengeLocked() {
	c := l.activeChallenge
	if c == nil {
		return
	}
	if !l.clock.Now().After(c.Deadline) {
		return
	}
	def, ok := catalog.ChallengeByID(c.ID)
	if !ok {
		l.activeChallenge = nil
		return
	}
	l.failChallengeLocked(def)
}

func (l *Ledger) failChallengeLocked(def catalog.ChallengeDef) {
	progress := int64(0)
	if l.activeChallenge != nil {
		progress = l.activeChallenge.Progress
	}
	l.activeChallenge = nil
	l.record(telemetry.EventChallengeFailed, telemetry.EventMetadata{
		"challenge_id": def.ID,
		"reason":       "timeout",
		"progress":     progress,
		"target":       def.TargetBugs,
	})
}

// ChallengeView is the computed challenge-board row.
type ChallengeView struct {
	Def       catalog.ChallengeDef `json:"def"`
	Unlocked  bool                 `json:"unlocked"`
	Completed bool                 `json:"completed"`
	Active    bool                 `json:"active"`
	Progress  int64                `json:"progress"`
}

// ChallengeViews returns the challenge catalog with computed flags.
func (l *Ledger) ChallengeViews() []ChallengeView {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress := l.progressLocked()
	defs := catalog.Challenges()
	out := make([]ChallengeView, 0, len(defs))
	for _, def := range defs {
		v := ChallengeView{
			Def:       def,
			Unlocked:  def.Unlock.Met(progress),
			Completed: l.completedChallenges[def.ID],
		}
		if l.activeChallenge != nil && l.activeChallenge.ID == def.ID {
			v.Active = true
			v.Progress = l.activeChallenge.Progress
		}
		out = append(out, v)
	}
	return out
}

// CompletedChallenges returns the IDs of finished challenges.
func (l *Ledger) CompletedChallenges() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.completedChallenges))
	for id := range l.completedChallenges {
		out = append(out, id)
	}
	return out
}
