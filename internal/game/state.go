package game

import (
	"sort"
	"time"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// State is the flat snapshot of everything a save needs. DebugRate is
// informational only; a restore recomputes it from purchases rather than
// trusting the stored value.
type State struct {
	BugsFixed           int64                   `json:"bugs_fixed"`
	CodeQuality         int64                   `json:"code_quality"`
	DebugRate           float64                 `json:"debug_rate"`
	Stamina             int                     `json:"stamina"`
	Focus               catalog.CodeType        `json:"focus"`
	LastUpdate          time.Time               `json:"last_update"`
	LastDebugAt         time.Time               `json:"last_debug_at,omitempty"`
	Ducks               []Duck                  `json:"ducks"`
	Upgrades            map[string]UpgradeState `json:"upgrades"`
	PurchaseLog         []string                `json:"purchase_log"`
	Peaks               Peaks                   `json:"peaks"`
	Prestige            PrestigeState           `json:"prestige"`
	CompletedChallenges []string                `json:"completed_challenges"`
	ActiveChallenge     *ActiveChallenge        `json:"active_challenge,omitempty"`
	MilestonesHit       []int64                 `json:"milestones_hit"`
}

// State captures the full snapshot under one lock acquisition.
func (l *Ledger) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	ducks := make([]Duck, len(l.ducks))
	copy(ducks, l.ducks)

	upgrades := make(map[string]UpgradeState, len(l.upgrades))
	for id, st := range l.upgrades {
		upgrades[id] = *st
	}

	log := make([]string, len(l.purchaseLog))
	copy(log, l.purchaseLog)

	completed := make([]string, 0, len(l.completedChallenges))
	for id := range l.completedChallenges {
		completed = append(completed, id)
	}
	sort.Strings(completed)

	milestones := make([]int64, 0, len(l.milestonesHit))
	for m := range l.milestonesHit {
		milestones = append(milestones, m)
	}
	sort.Slice(milestones, func(i, j int) bool { return milestones[i] < milestones[j] })

	var active *ActiveChallenge
	if l.activeChallenge != nil {
		c := *l.activeChallenge
		active = &c
	}

	return State{
		BugsFixed:           l.bugsFixed,
		CodeQuality:         l.codeQuality,
		DebugRate:           l.debugRate,
		Stamina:             l.stamina,
		Focus:               l.focus,
		LastUpdate:          l.lastUpdate,
		LastDebugAt:         l.lastDebugAt,
		Ducks:               ducks,
		Upgrades:            upgrades,
		PurchaseLog:         log,
		Peaks:               l.peaks,
		Prestige:            l.prestigeCopyLocked(),
		CompletedChallenges: completed,
		ActiveChallenge:     active,
		MilestonesHit:       milestones,
	}
}

// RestoreLedger rebuilds a ledger from a validated snapshot. It is the pure
// half of the two-phase load: it does not grant offline progress. The host
// calls ApplyOfflineProgress separately, exactly once, after restore.
func RestoreLedger(st State, bal config.Balance, clock Clock, rec telemetry.Recorder) *Ledger {
	l := NewLedger(bal, clock, rec)
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bugsFixed = st.BugsFixed
	l.codeQuality = st.CodeQuality
	l.stamina = st.Stamina
	if l.stamina > bal.MaxClickStamina {
		l.stamina = bal.MaxClickStamina
	}
	if st.Focus != "" {
		l.focus = st.Focus
	}
	if !st.LastUpdate.IsZero() {
		l.lastUpdate = st.LastUpdate
	}
	l.lastDebugAt = st.LastDebugAt

	l.ducks = make([]Duck, len(st.Ducks))
	copy(l.ducks, st.Ducks)

	for id, us := range st.Upgrades {
		cp := us
		l.upgrades[id] = &cp
	}
	l.purchaseLog = make([]string, len(st.PurchaseLog))
	copy(l.purchaseLog, st.PurchaseLog)

	l.peaks = st.Peaks
	l.prestige.ArchitecturePoints = st.Prestige.ArchitecturePoints
	l.prestige.TotalRefactors = st.Prestige.TotalRefactors
	l.prestige.BestRun = st.Prestige.BestRun
	l.prestige.LifetimeBugsFixed = st.Prestige.LifetimeBugsFixed
	for id, lvl := range st.Prestige.Upgrades {
		l.prestige.Upgrades[id] = lvl
	}
	for _, id := range st.CompletedChallenges {
		l.completedChallenges[id] = true
	}
	if st.ActiveChallenge != nil {
		c := *st.ActiveChallenge
		l.activeChallenge = &c
	}
	for _, m := range st.MilestonesHit {
		l.milestonesHit[m] = true
	}

	l.recomputeLocked()
	l.bumpPeaksLocked()
	l.reevaluateUnlocksLocked()
	return l
}
