package catalog

import "math"

// DuckType is the closed set of collectible duck kinds.
type DuckType string

const (
	DuckRubber  DuckType = "rubber"
	DuckBath    DuckType = "bath"
	DuckPirate  DuckType = "pirate"
	DuckFancy   DuckType = "fancy"
	DuckPremium DuckType = "premium"
	DuckQuantum DuckType = "quantum"
	DuckCosmic  DuckType = "cosmic"
)

// SpecialBonusKind tags the fixed per-type bonus baked into a duck type.
type SpecialBonusKind string

const (
	BonusNone       SpecialBonusKind = "none"
	BonusEfficiency SpecialBonusKind = "efficiency_multiplier"
	BonusWebBugs    SpecialBonusKind = "web_bug_multiplier"
	BonusCritical   SpecialBonusKind = "critical_bug_chance"
	BonusCQ         SpecialBonusKind = "code_quality_bonus"
	BonusQuantum    SpecialBonusKind = "quantum_entanglement"
	BonusUniversal  SpecialBonusKind = "universal_debugger"
)

type SpecialBonus struct {
	Kind  SpecialBonusKind `json:"kind"`
	Value float64          `json:"value"`
}

// DuckTypeDef is the immutable catalog entry for one duck type.
type DuckTypeDef struct {
	Type           DuckType     `json:"type"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Specialization string       `json:"specialization"`
	BasePower      float64      `json:"base_power"`
	BaseCost       int64        `json:"base_cost"`
	Unlock         Unlock       `json:"unlock"`
	Special        SpecialBonus `json:"special"`
	Specialty      CodeType     `json:"specialty,omitempty"`
	SpecialtyBonus float64      `json:"specialty_bonus"`
}

// PowerMultiplier returns the fixed rate multiplier this type's special bonus
// contributes, 1.0 for bonuses that do not affect passive power.
func (d DuckTypeDef) PowerMultiplier() float64 {
	switch d.Special.Kind {
	case BonusEfficiency, BonusUniversal:
		return d.Special.Value
	default:
		return 1.0
	}
}

var duckTypes = []DuckTypeDef{
	{
		Type:           DuckRubber,
		Name:           "Basic Rubber Duck",
		Description:    "A classic debugging companion",
		Specialization: "General Debugging",
		BasePower:      1,
		BaseCost:       100,
		Unlock:         Unlock{Kind: UnlockAlways},
		Special:        SpecialBonus{Kind: BonusNone},
		SpecialtyBonus: 1.0,
	},
	{
		Type:           DuckBath,
		Name:           "Bath Duck",
		Description:    "Frontend specialist with waterproof styling",
		Specialization: "Frontend Development",
		BasePower:      2,
		BaseCost:       500,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 100},
		Special:        SpecialBonus{Kind: BonusWebBugs, Value: 2},
		Specialty:      CodeWeb,
		SpecialtyBonus: 1.5,
	},
	{
		Type:           DuckPirate,
		Name:           "Pirate Duck",
		Description:    "Security expert with an eye for vulnerabilities",
		Specialization: "Security Analysis",
		BasePower:      3,
		BaseCost:       1000,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 250},
		Special:        SpecialBonus{Kind: BonusCritical, Value: 0.1},
		Specialty:      CodeBackend,
		SpecialtyBonus: 1.4,
	},
	{
		Type:           DuckFancy,
		Name:           "Fancy Duck",
		Description:    "Enterprise debugging with premium features",
		Specialization: "Enterprise Systems",
		BasePower:      5,
		BaseCost:       2500,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 500},
		Special:        SpecialBonus{Kind: BonusCQ, Value: 2},
		Specialty:      CodeBackend,
		SpecialtyBonus: 1.3,
	},
	{
		Type:           DuckPremium,
		Name:           "Premium Duck",
		Description:    "2x efficiency with distinguished appearance",
		Specialization: "Premium Debugging",
		BasePower:      4,
		BaseCost:       5000,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 1000},
		Special:        SpecialBonus{Kind: BonusEfficiency, Value: 2},
		Specialty:      CodeMobile,
		SpecialtyBonus: 1.6,
	},
	{
		Type:           DuckQuantum,
		Name:           "Quantum Duck",
		Description:    "Handles paradoxes and quantum bugs",
		Specialization: "Quantum Computing",
		BasePower:      10,
		BaseCost:       10000,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 2500},
		Special:        SpecialBonus{Kind: BonusQuantum, Value: 0.05},
		Specialty:      CodeAIML,
		SpecialtyBonus: 2.0,
	},
	{
		Type:           DuckCosmic,
		Name:           "Cosmic Duck",
		Description:    "Universe-level debugging capabilities",
		Specialization: "Cosmic Maintenance",
		BasePower:      25,
		BaseCost:       50000,
		Unlock:         Unlock{Kind: UnlockBugsFixed, Value: 10000},
		Special:        SpecialBonus{Kind: BonusUniversal, Value: 1.5},
		SpecialtyBonus: 3.0,
	},
}

// DuckTypes returns the full duck-type catalog in unlock order.
func DuckTypes() []DuckTypeDef {
	out := make([]DuckTypeDef, len(duckTypes))
	copy(out, duckTypes)
	return out
}

// DuckTypeByID looks up one duck-type definition.
func DuckTypeByID(t DuckType) (DuckTypeDef, bool) {
	for _, d := range duckTypes {
		if d.Type == t {
			return d, true
		}
	}
	return DuckTypeDef{}, false
}

// DuckCost returns the price of the next duck of a type given how many of
// that type are already owned: base × growth^owned, floored.
func DuckCost(def DuckTypeDef, owned int, growth float64) int64 {
	return int64(math.Floor(float64(def.BaseCost) * math.Pow(growth, float64(owned))))
}
