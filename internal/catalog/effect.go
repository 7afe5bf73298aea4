package catalog

// Target is the register an upgrade effect applies to. Keeping this a closed
// enumeration means the effect aggregator can switch exhaustively and a new
// target is a compile-time-checked addition.
type Target string

const (
	TargetDebugRate      Target = "debug_rate"
	TargetCodeQuality    Target = "code_quality"
	TargetDuckEfficiency Target = "duck_efficiency"
	TargetSpecial        Target = "special"

	// Prestige-only targets.
	TargetAPGain            Target = "ap_gain"
	TargetStartingResources Target = "starting_resources"
)

// Op is the kind of operation an effect performs on its target register.
type Op string

const (
	OpAdditive   Op = "additive"
	OpMultiplier Op = "multiplier"
	// OpSpecial marks effects that are interpreted by name rather than folded
	// into an accumulator (currently only TargetStartingResources).
	OpSpecial Op = "special"
)

// Effect describes a single upgrade effect.
type Effect struct {
	Op     Op      `json:"op"`
	Target Target  `json:"target"`
	Value  float64 `json:"value"`
}

// UnlockKind selects which counter an unlock predicate compares against.
type UnlockKind string

const (
	UnlockAlways              UnlockKind = "always"
	UnlockBugsFixed           UnlockKind = "bugs_fixed"
	UnlockCodeQuality         UnlockKind = "code_quality"
	UnlockDucksOwned          UnlockKind = "ducks_owned"
	UnlockChallengesCompleted UnlockKind = "challenges_completed"
)

// Unlock is a uniform unlock-predicate descriptor carried by every catalog
// entry and evaluated by one generic evaluator.
type Unlock struct {
	Kind  UnlockKind `json:"kind"`
	Value int64      `json:"value"`
}

// Progress is the read-only view of progression an unlock predicate needs.
// Duck-type and prestige unlocks gate on peak values so that content, once
// reached, never re-locks after a refactor drops the live counters.
type Progress struct {
	BugsFixed           int64
	CodeQuality         int64
	DucksOwned          int
	ChallengesCompleted int
}

// Met evaluates the predicate against the supplied progress view.
func (u Unlock) Met(p Progress) bool {
	switch u.Kind {
	case UnlockAlways, "":
		return true
	case UnlockBugsFixed:
		return p.BugsFixed >= u.Value
	case UnlockCodeQuality:
		return p.CodeQuality >= u.Value
	case UnlockDucksOwned:
		return int64(p.DucksOwned) >= u.Value
	case UnlockChallengesCompleted:
		return int64(p.ChallengesCompleted) >= u.Value
	default:
		return false
	}
}
