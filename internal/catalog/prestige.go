package catalog

// PrestigeCategory groups prestige upgrades for display.
type PrestigeCategory string

const (
	PrestigeArchitecture PrestigeCategory = "architecture"
	PrestigeCodeReview   PrestigeCategory = "code_review"
	PrestigeMethodology  PrestigeCategory = "methodology"
	PrestigeUniversal    PrestigeCategory = "universal"
)

// PrestigeUpgradeDef is the catalog entry for a permanent upgrade priced in
// architecture points. Cost doubles from the base per level held; effects
// survive refactors and compound freely across levels.
type PrestigeUpgradeDef struct {
	ID          string           `json:"id"`
	Category    PrestigeCategory `json:"category"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	BaseCost    int64            `json:"base_cost"`
	MaxLevel    int              `json:"max_level"`
	Effect      Effect           `json:"effect"`
}

// Cost returns the architecture-point price of the next level.
func (p PrestigeUpgradeDef) Cost(level int) int64 {
	cost := p.BaseCost
	for i := 0; i < level; i++ {
		cost *= 2
	}
	return cost
}

var prestigeUpgrades = []PrestigeUpgradeDef{
	// Architecture patterns
	{
		ID: "mvc-pattern", Category: PrestigeArchitecture,
		Name:        "MVC Architecture",
		Description: "Structural clarity increases debugging efficiency by 25%",
		BaseCost:    5, MaxLevel: 5,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.25},
	},
	{
		ID: "microservices", Category: PrestigeArchitecture,
		Name:        "Microservices Pattern",
		Description: "Isolated failures are easier to debug. +50% debug rate",
		BaseCost:    10, MaxLevel: 3,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.5},
	},
	{
		ID: "event-sourcing", Category: PrestigeArchitecture,
		Name:        "Event Sourcing",
		Description: "Complete audit trail. +100% code quality generation",
		BaseCost:    20, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetCodeQuality, Value: 2.0},
	},
	{
		ID: "clean-architecture", Category: PrestigeArchitecture,
		Name:        "Clean Architecture",
		Description: "Dependency inversion makes everything clearer. +75% duck efficiency",
		BaseCost:    25, MaxLevel: 2,
		Effect: Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.75},
	},

	// Code review processes
	{
		ID: "pair-programming", Category: PrestigeCodeReview,
		Name:        "Pair Programming",
		Description: "Two minds are better than one. +30% debug rate",
		BaseCost:    3, MaxLevel: 10,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.3},
	},
	{
		ID: "code-review-culture", Category: PrestigeCodeReview,
		Name:        "Code Review Culture",
		Description: "Systematic quality checks. +40% code quality generation",
		BaseCost:    8, MaxLevel: 5,
		Effect: Effect{Op: OpMultiplier, Target: TargetCodeQuality, Value: 1.4},
	},
	{
		ID: "static-analysis-suite", Category: PrestigeCodeReview,
		Name:        "Static Analysis Tools",
		Description: "Automated code review. +60% debug rate",
		BaseCost:    15, MaxLevel: 3,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.6},
	},
	{
		ID: "formal-verification", Category: PrestigeCodeReview,
		Name:        "Formal Verification",
		Description: "Mathematical proof of correctness. +200% code quality",
		BaseCost:    50, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetCodeQuality, Value: 3.0},
	},

	// Debugging methodologies
	{
		ID: "rubber-duck-mastery", Category: PrestigeMethodology,
		Name:        "Rubber Duck Mastery",
		Description: "Deep understanding of duck psychology. +50% duck efficiency",
		BaseCost:    7, MaxLevel: 7,
		Effect: Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.5},
	},
	{
		ID: "test-driven-debugging", Category: PrestigeMethodology,
		Name:        "Test-Driven Debugging",
		Description: "Write tests first, debug second. +35% debug rate",
		BaseCost:    12, MaxLevel: 4,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.35},
	},
	{
		ID: "scientific-method", Category: PrestigeMethodology,
		Name:        "Scientific Method",
		Description: "Hypothesis-driven debugging. +80% debug rate",
		BaseCost:    18, MaxLevel: 2,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.8},
	},
	{
		ID: "chaos-engineering", Category: PrestigeMethodology,
		Name:        "Chaos Engineering",
		Description: "Break things to make them stronger. +100% code quality",
		BaseCost:    30, MaxLevel: 2,
		Effect: Effect{Op: OpMultiplier, Target: TargetCodeQuality, Value: 2.0},
	},

	// Universal constants
	{
		ID: "universal-debugger", Category: PrestigeUniversal,
		Name:        "Universal Debugger",
		Description: "Debug the universe itself. +20% to all gains",
		BaseCost:    40, MaxLevel: 3,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.2},
	},
	{
		ID: "reality-compiler", Category: PrestigeUniversal,
		Name:        "Reality Compiler",
		Description: "Optimize existence itself. +50% architecture point gain",
		BaseCost:    60, MaxLevel: 2,
		Effect: Effect{Op: OpMultiplier, Target: TargetAPGain, Value: 1.5},
	},
	{
		ID: "quantum-entanglement", Category: PrestigeUniversal,
		Name:        "Quantum Entanglement",
		Description: "Bugs fixed in parallel universes. +300% debug rate",
		BaseCost:    100, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 4.0},
	},
	{
		ID: "cosmic-consciousness", Category: PrestigeUniversal,
		Name:        "Cosmic Consciousness",
		Description: "Transcend debugging itself. Start with 1000 CQ and 10 bugs fixed",
		BaseCost:    150, MaxLevel: 1,
		Effect: Effect{Op: OpSpecial, Target: TargetStartingResources, Value: 1},
	},
}

// StartingResourcesUpgradeID is the prestige upgrade that seeds a refactor
// baseline instead of boosting a register.
const StartingResourcesUpgradeID = "cosmic-consciousness"

// Baseline seeded by the starting-resources prestige upgrade.
const (
	StartingBugsFixed   = 10
	StartingCodeQuality = 1000
)

// PrestigeUpgrades returns the prestige-upgrade catalog.
func PrestigeUpgrades() []PrestigeUpgradeDef {
	out := make([]PrestigeUpgradeDef, len(prestigeUpgrades))
	copy(out, prestigeUpgrades)
	return out
}

// PrestigeUpgradeByID looks up one prestige upgrade definition.
func PrestigeUpgradeByID(id string) (PrestigeUpgradeDef, bool) {
	for _, p := range prestigeUpgrades {
		if p.ID == id {
			return p, true
		}
	}
	return PrestigeUpgradeDef{}, false
}
