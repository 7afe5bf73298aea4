package catalog

// UpgradeCategory groups upgrades for display only; it has no gameplay
// meaning.
type UpgradeCategory string

const (
	CategoryDuck        UpgradeCategory = "duck"
	CategoryTool        UpgradeCategory = "tool"
	CategoryEnvironment UpgradeCategory = "environment"
	CategoryAutomation  UpgradeCategory = "automation"
)

// UpgradeDef is the immutable catalog entry for one ordinary upgrade.
// MaxLevel 1 marks a one-shot purchase; higher values mark repeatable items
// whose cost scales with level.
type UpgradeDef struct {
	ID          string          `json:"id"`
	Category    UpgradeCategory `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        int64           `json:"cost"`
	MaxLevel    int             `json:"max_level"`
	Effect      Effect          `json:"effect"`
	Requires    []string        `json:"requires,omitempty"`
	Unlock      Unlock          `json:"unlock"`
}

var upgrades = []UpgradeDef{
	// Duck upgrades
	{
		ID: "basic-rubber-duck", Category: CategoryDuck,
		Name:        "Basic Rubber Duck",
		Description: "A trusty rubber duck that helps debug code. Adds 1 debug per second.",
		Cost:        100, MaxLevel: 1,
		Effect: Effect{Op: OpAdditive, Target: TargetDebugRate, Value: 1},
		Unlock: Unlock{Kind: UnlockAlways},
	},
	{
		ID: "bath-duck", Category: CategoryDuck,
		Name:        "Bath Duck",
		Description: "Frontend specialist with waterproof styling. Adds 2 debug per second.",
		Cost:        500, MaxLevel: 1,
		Effect: Effect{Op: OpAdditive, Target: TargetDebugRate, Value: 2},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 50},
	},
	{
		ID: "pirate-duck", Category: CategoryDuck,
		Name:        "Pirate Duck",
		Description: "Security expert with an eye for vulnerabilities. Adds 3 debug per second.",
		Cost:        1000, MaxLevel: 1,
		Effect: Effect{Op: OpAdditive, Target: TargetDebugRate, Value: 3},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 100},
	},
	{
		ID: "fancy-duck", Category: CategoryDuck,
		Name:        "Fancy Duck",
		Description: "Enterprise debugging with premium features. Adds 5 debug per second.",
		Cost:        2500, MaxLevel: 1,
		Effect: Effect{Op: OpAdditive, Target: TargetDebugRate, Value: 5},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 250},
	},
	{
		ID: "premium-duck", Category: CategoryDuck,
		Name:        "Premium Duck",
		Description: "1.4x efficiency with distinguished appearance.",
		Cost:        25000, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.4},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 2500},
	},
	{
		ID: "quantum-duck", Category: CategoryDuck,
		Name:        "Quantum Duck",
		Description: "Handles paradoxes and quantum bugs. 1.6x debug rate.",
		Cost:        100000, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.6},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 10000},
	},
	{
		ID: "cosmic-duck", Category: CategoryDuck,
		Name:        "Cosmic Duck",
		Description: "Universe-level debugging capabilities. 2x debug rate.",
		Cost:        500000, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 2.0},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 50000},
	},

	// Tool upgrades
	{
		ID: "enhanced-debugging", Category: CategoryTool,
		Name:        "Enhanced Debugging Tools",
		Description: "Better tools mean better debugging. +2 Code Quality per bug fixed.",
		Cost:        250, MaxLevel: 1,
		Effect: Effect{Op: OpAdditive, Target: TargetCodeQuality, Value: 2},
		Unlock: Unlock{Kind: UnlockAlways},
	},
	{
		ID: "ide-integration", Category: CategoryTool,
		Name:        "IDE Integration",
		Description: "Seamless integration with your development environment. 1.3x debug rate.",
		Cost:        800, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.3},
		Requires: []string{"enhanced-debugging"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 80},
	},
	{
		ID: "static-analysis", Category: CategoryTool,
		Name:        "Static Analysis Tools",
		Description: "Find bugs before they happen. 1.5x code quality generation.",
		Cost:        1500, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetCodeQuality, Value: 1.5},
		Requires: []string{"ide-integration"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 150},
	},
	{
		ID: "ai-assistant", Category: CategoryTool,
		Name:        "AI Debugging Assistant",
		Description: "AI helps identify complex bugs. 2x debug rate.",
		Cost:        5000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 2.0},
		Requires: []string{"static-analysis"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 500},
	},

	// Environment upgrades
	{
		ID: "debugging-efficiency", Category: CategoryEnvironment,
		Name:        "Debugging Efficiency",
		Description: "Optimize your debugging workflow. 1.5x debug rate multiplier.",
		Cost:        500, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.5},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 50},
	},
	{
		ID: "ergonomic-workspace", Category: CategoryEnvironment,
		Name:        "Ergonomic Workspace",
		Description: "Comfortable coding leads to better debugging. 1.2x duck efficiency.",
		Cost:        1200, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.2},
		Requires: []string{"debugging-efficiency"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 120},
	},
	{
		ID: "noise-cancellation", Category: CategoryEnvironment,
		Name:        "Noise Cancellation",
		Description: "Focus without distractions. 1.4x debug rate.",
		Cost:        2000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.4},
		Requires: []string{"ergonomic-workspace"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 200},
	},
	{
		ID: "zen-garden", Category: CategoryEnvironment,
		Name:        "Zen Garden",
		Description: "Achieve debugging enlightenment. 1.5x all bonuses.",
		Cost:        8000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetSpecial, Value: 1.5},
		Requires: []string{"noise-cancellation"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 800},
	},

	// Duck enhancement chain
	{
		ID: "duck-training", Category: CategoryDuck,
		Name:        "Duck Training Program",
		Description: "Train your ducks to be more efficient. 1.2x duck efficiency multiplier.",
		Cost:        750, MaxLevel: 1,
		Effect: Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.2},
		Unlock: Unlock{Kind: UnlockDucksOwned, Value: 1},
	},
	{
		ID: "premium-duck-feed", Category: CategoryDuck,
		Name:        "Premium Duck Feed",
		Description: "High-quality feed makes for high-quality debugging. 1.5x duck efficiency multiplier.",
		Cost:        1500, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.5},
		Requires: []string{"duck-training"},
		Unlock:   Unlock{Kind: UnlockDucksOwned, Value: 3},
	},
	{
		ID: "duck-motivation", Category: CategoryDuck,
		Name:        "Duck Motivation Seminar",
		Description: "Motivated ducks are productive ducks. 2x duck efficiency multiplier.",
		Cost:        3000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 2.0},
		Requires: []string{"premium-duck-feed"},
		Unlock:   Unlock{Kind: UnlockDucksOwned, Value: 5},
	},
	{
		ID: "duck-specialization", Category: CategoryDuck,
		Name:        "Duck Specialization Program",
		Description: "Specialized ducks work more efficiently. 1.3x duck efficiency.",
		Cost:        6000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 1.3},
		Requires: []string{"duck-motivation"},
		Unlock:   Unlock{Kind: UnlockDucksOwned, Value: 8},
	},
	{
		ID: "duck-enlightenment", Category: CategoryDuck,
		Name:        "Duck Enlightenment",
		Description: "Transcendent debugging wisdom. 3x duck efficiency.",
		Cost:        15000, MaxLevel: 1,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDuckEfficiency, Value: 3.0},
		Requires: []string{"duck-specialization"},
		Unlock:   Unlock{Kind: UnlockDucksOwned, Value: 12},
	},

	// Automation
	{
		ID: "auto-clicker", Category: CategoryAutomation,
		Name:        "Auto Clicker Script",
		Description: "A crude cron job that presses the button for you. +2 debug per second.",
		Cost:        4000, MaxLevel: 5,
		Effect: Effect{Op: OpAdditive, Target: TargetDebugRate, Value: 2},
		Unlock: Unlock{Kind: UnlockBugsFixed, Value: 400},
	},
	{
		ID: "ci-pipeline", Category: CategoryAutomation,
		Name:        "CI Pipeline",
		Description: "Every push runs the suite. 1.25x debug rate per stage.",
		Cost:        10000, MaxLevel: 3,
		Effect:   Effect{Op: OpMultiplier, Target: TargetDebugRate, Value: 1.25},
		Requires: []string{"auto-clicker"},
		Unlock:   Unlock{Kind: UnlockBugsFixed, Value: 1000},
	},
}

// Upgrades returns the ordinary-upgrade catalog.
func Upgrades() []UpgradeDef {
	out := make([]UpgradeDef, len(upgrades))
	copy(out, upgrades)
	return out
}

// UpgradeByID looks up one upgrade definition.
func UpgradeByID(id string) (UpgradeDef, bool) {
	for _, u := range upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeDef{}, false
}

// UpgradeCost returns the price of the next level of an upgrade. One-shot
// items cost their face value; repeatable items double per level held.
func UpgradeCost(def UpgradeDef, level int) int64 {
	cost := def.Cost
	for i := 0; i < level; i++ {
		cost *= 2
	}
	return cost
}
