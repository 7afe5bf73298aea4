package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/effects"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// UpgradeState is the mutable per-upgrade record. Level 0 means not yet
// purchased. Unlocked is sticky: once flipped by the peak-gated unlock check
// it never flips back, even across refactors.
type UpgradeState struct {
	Level    int  `json:"level"`
	Unlocked bool `json:"unlocked"`
}

// Peaks tracks the highest-ever values of the progression counters. Content
// unlocks gate on these so that a refactor dropping the live counters never
// re-locks content the player has already reached.
type Peaks struct {
	BugsFixed   int64   `json:"bugs_fixed"`
	CodeQuality int64   `json:"code_quality"`
	DebugRate   float64 `json:"debug_rate"`
}

// PrestigeState survives refactors and is only ever created once.
type PrestigeState struct {
	ArchitecturePoints int64          `json:"architecture_points"`
	TotalRefactors     int            `json:"total_refactors"`
	BestRun            int64          `json:"best_run"`
	LifetimeBugsFixed  int64          `json:"lifetime_bugs_fixed"`
	Upgrades           map[string]int `json:"upgrades"`
}

// ActiveChallenge is the in-flight timed challenge, nil when none is running.
type ActiveChallenge struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Deadline  time.Time `json:"deadline"`
	Progress  int64     `json:"progress"`
}

// Ledger is the central progression state machine. All fields are guarded by
// mu; every exported operation takes the lock, fully applies or fully
// rejects, and releases it. The automated tick and the manual action are
// serialized through the same mutex so they never interleave mid-update.
type Ledger struct {
	mu     sync.Mutex
	bal    config.Balance
	clock  Clock
	events telemetry.Recorder
	rng    *rand.Rand

	bugsFixed   int64
	codeQuality int64
	stamina     int
	focus       catalog.CodeType
	lastDebugAt time.Time
	lastUpdate  time.Time

	ducks       []Duck
	upgrades    map[string]*UpgradeState
	purchaseLog []string // upgrade IDs, one entry per level bought, in purchase order

	peaks    Peaks
	prestige PrestigeState

	completedChallenges map[string]bool
	activeChallenge     *ActiveChallenge
	milestonesHit       map[int64]bool

	// Derived from purchases, never persisted as ground truth.
	debugRate float64
	agg       effects.Set
	presAgg   effects.Set
	fracBugs  float64
}

type noopRecorder struct{}

func (noopRecorder) RecordEvent(telemetry.EventType, telemetry.EventMetadata) error { return nil }

// NewLedger constructs a fresh ledger at the default baseline. A nil
// recorder is replaced with a no-op so callers that do not care about the
// event stream can pass nil.
func NewLedger(bal config.Balance, clock Clock, rec telemetry.Recorder) *Ledger {
	if clock == nil {
		clock = RealClock{}
	}
	if rec == nil {
		rec = noopRecorder{}
	}
	now := clock.Now()
	l := &Ledger{
		bal:                 bal,
		clock:               clock,
		events:              rec,
		rng:                 rand.New(rand.NewSource(now.UnixNano())),
		stamina:             bal.MaxClickStamina,
		focus:               catalog.CodeWeb,
		lastUpdate:          now,
		upgrades:            make(map[string]*UpgradeState),
		completedChallenges: make(map[string]bool),
		milestonesHit:       make(map[int64]bool),
		prestige: PrestigeState{
			Upgrades: make(map[string]int),
		},
	}
	l.reevaluateUnlocksLocked()
	l.recomputeLocked()
	return l
}

// upgradeState returns the record for an upgrade, creating a zero record on
// first touch.
func (l *Ledger) upgradeState(id string) *UpgradeState {
	st, ok := l.upgrades[id]
	if !ok {
		st = &UpgradeState{}
		l.upgrades[id] = st
	}
	return st
}

func (l *Ledger) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	_ = l.events.RecordEvent(t, meta)
}

// progressLocked builds the peak-based view unlock predicates evaluate
// against.
func (l *Ledger) progressLocked() catalog.Progress {
	return catalog.Progress{
		BugsFixed:           l.peaks.BugsFixed,
		CodeQuality:         l.peaks.CodeQuality,
		DucksOwned:          len(l.ducks),
		ChallengesCompleted: len(l.completedChallenges),
	}
}

// prereqsMetLocked reports whether every prerequisite of an upgrade has been
// purchased at least once.
func (l *Ledger) prereqsMetLocked(def catalog.UpgradeDef) bool {
	for _, req := range def.Requires {
		st, ok := l.upgrades[req]
		if !ok || st.Level < 1 {
			return false
		}
	}
	return true
}

// reevaluateUnlocksLocked flips locked upgrades whose unlock predicate and
// prerequisites are now both satisfied. Runs after every bug increment and
// after every purchase.
func (l *Ledger) reevaluateUnlocksLocked() {
	progress := l.progressLocked()
	for _, def := range catalog.Upgrades() {
		st := l.upgradeState(def.ID)
		if st.Unlocked {
			continue
		}
		if !def.Unlock.Met(progress) {
			continue
		}
		if !l.prereqsMetLocked(def) {
			continue
		}
		st.Unlocked = true
		l.record(telemetry.EventUpgradeUnlocked, telemetry.EventMetadata{
			"upgrade_id": def.ID,
			"category":   string(def.Category),
		})
	}
}

func (l *Ledger) bumpPeaksLocked() {
	if l.bugsFixed > l.peaks.BugsFixed {
		l.peaks.BugsFixed = l.bugsFixed
	}
	if l.codeQuality > l.peaks.CodeQuality {
		l.peaks.CodeQuality = l.codeQuality
	}
	if l.debugRate > l.peaks.DebugRate {
		l.peaks.DebugRate = l.debugRate
	}
}

func (l *Ledger) checkMilestonesLocked() {
	for _, m := range l.bal.Milestones {
		if l.bugsFixed >= m && !l.milestonesHit[m] {
			l.milestonesHit[m] = true
			l.record(telemetry.EventMilestoneReached, telemetry.EventMetadata{
				"bugs_fixed": m,
			})
		}
	}
}

// BugsFixed returns the current primary counter.
func (l *Ledger) BugsFixed() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bugsFixed
}

// CodeQuality returns the current spendable currency.
func (l *Ledger) CodeQuality() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.codeQuality
}

// DebugRate returns the cached passive rate in bugs per second.
func (l *Ledger) DebugRate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debugRate
}

// Stamina returns the current click-stamina pool.
func (l *Ledger) Stamina() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stamina
}

// Focus returns the current specialization selector.
func (l *Ledger) Focus() catalog.CodeType {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.focus
}

// AchievementPeaks returns the sticky peak snapshot.
func (l *Ledger) AchievementPeaks() Peaks {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peaks
}

// Prestige returns a copy of the prestige ledger.
func (l *Ledger) Prestige() PrestigeState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prestigeCopyLocked()
}

func (l *Ledger) prestigeCopyLocked() PrestigeState {
	out := l.prestige
	out.Upgrades = make(map[string]int, len(l.prestige.Upgrades))
	for id, lvl := range l.prestige.Upgrades {
		out.Upgrades[id] = lvl
	}
	return out
}

// Ducks returns a copy of the owned-duck collection.
func (l *Ledger) Ducks() []Duck {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Duck, len(l.ducks))
	copy(out, l.ducks)
	return out
}

// DuckCount returns how many ducks of a type are owned.
func (l *Ledger) DuckCount(t catalog.DuckType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.duckCountLocked(t)
}

func (l *Ledger) duckCountLocked(t catalog.DuckType) int {
	n := 0
	for _, d := range l.ducks {
		if d.Type == t {
			n++
		}
	}
	return n
}

// ActiveChallengeState returns a copy of the running challenge, nil if none.
func (l *Ledger) ActiveChallengeState() *ActiveChallenge {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.activeChallenge == nil {
		return nil
	}
	c := *l.activeChallenge
	return &c
}

// UpgradeView is the computed catalog row the query surface exposes.
type UpgradeView struct {
	Def        catalog.UpgradeDef `json:"def"`
	Level      int                `json:"level"`
	Unlocked   bool               `json:"unlocked"`
	Maxed      bool               `json:"maxed"`
	NextCost   int64              `json:"next_cost"`
	Affordable bool               `json:"affordable"`
}

// UpgradeViews returns the full ordinary-upgrade catalog with computed
// unlock and affordability flags.
func (l *Ledger) UpgradeViews() []UpgradeView {
	l.mu.Lock()
	defer l.mu.Unlock()

	defs := catalog.Upgrades()
	out := make([]UpgradeView, 0, len(defs))
	for _, def := range defs {
		st, ok := l.upgrades[def.ID]
		level, unlocked := 0, false
		if ok {
			level, unlocked = st.Level, st.Unlocked
		}
		maxed := level >= def.MaxLevel
		cost := catalog.UpgradeCost(def, level)
		out = append(out, UpgradeView{
			Def:        def,
			Level:      level,
			Unlocked:   unlocked,
			Maxed:      maxed,
			NextCost:   cost,
			Affordable: !maxed && unlocked && l.codeQuality >= cost,
		})
	}
	return out
}

// DuckTypeView is the computed duck-shop row.
type DuckTypeView struct {
	Def        catalog.DuckTypeDef `json:"def"`
	Owned      int                 `json:"owned"`
	Unlocked   bool                `json:"unlocked"`
	NextCost   int64               `json:"next_cost"`
	Affordable bool                `json:"affordable"`
}

// DuckTypeViews returns the duck-type catalog with computed flags.
func (l *Ledger) DuckTypeViews() []DuckTypeView {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress := l.progressLocked()
	defs := catalog.DuckTypes()
	out := make([]DuckTypeView, 0, len(defs))
	for _, def := range defs {
		owned := l.duckCountLocked(def.Type)
		cost := catalog.DuckCost(def, owned, l.bal.DuckCostGrowth)
		unlocked := def.Unlock.Met(progress)
		out = append(out, DuckTypeView{
			Def:        def,
			Owned:      owned,
			Unlocked:   unlocked,
			NextCost:   cost,
			Affordable: unlocked && l.codeQuality >= cost,
		})
	}
	return out
}
