package catalog

// ChallengeDifficulty grades a performance challenge.
type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "easy"
	DifficultyMedium ChallengeDifficulty = "medium"
	DifficultyHard   ChallengeDifficulty = "hard"
)

// ChallengeReward is granted once when a challenge completes.
type ChallengeReward struct {
	CodeQuality        int64  `json:"code_quality"`
	ArchitecturePoints int64  `json:"architecture_points"`
	Title              string `json:"title,omitempty"`
}

// ChallengeDef describes a timed debugging challenge: fix TargetBugs within
// TimeLimitSecs of starting it.
type ChallengeDef struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	CodeType      CodeType            `json:"code_type"`
	TimeLimitSecs int                 `json:"time_limit_secs"`
	TargetBugs    int64               `json:"target_bugs"`
	Difficulty    ChallengeDifficulty `json:"difficulty"`
	Reward        ChallengeReward     `json:"reward"`
	Unlock        Unlock              `json:"unlock"`
}

var challenges = []ChallengeDef{
	{
		ID: "web-speed-demon", Name: "Speed Demon",
		Description: "Fix 10 web bugs in under 60 seconds",
		CodeType:    CodeWeb, TimeLimitSecs: 60, TargetBugs: 10,
		Difficulty: DifficultyEasy,
		Reward:     ChallengeReward{CodeQuality: 200, ArchitecturePoints: 1},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 100},
	},
	{
		ID: "web-frontend-master", Name: "Frontend Master",
		Description: "Debug 25 complex web issues in 3 minutes",
		CodeType:    CodeWeb, TimeLimitSecs: 180, TargetBugs: 25,
		Difficulty: DifficultyMedium,
		Reward:     ChallengeReward{CodeQuality: 500, ArchitecturePoints: 3, Title: "Frontend Wizard"},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 500},
	},
	{
		ID: "web-fullstack-god", Name: "Fullstack God",
		Description: "Master 50 web bugs in 5 minutes",
		CodeType:    CodeWeb, TimeLimitSecs: 300, TargetBugs: 50,
		Difficulty: DifficultyHard,
		Reward:     ChallengeReward{CodeQuality: 1000, ArchitecturePoints: 8, Title: "Web Deity"},
		Unlock:     Unlock{Kind: UnlockChallengesCompleted, Value: 3},
	},
	{
		ID: "mobile-app-rescue", Name: "App Rescue",
		Description: "Save a crashing mobile app - 8 bugs in 90 seconds",
		CodeType:    CodeMobile, TimeLimitSecs: 90, TargetBugs: 8,
		Difficulty: DifficultyEasy,
		Reward:     ChallengeReward{CodeQuality: 300, ArchitecturePoints: 2},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 600},
	},
	{
		ID: "mobile-cross-platform", Name: "Cross-Platform Hero",
		Description: "Debug 20 mobile issues across platforms in 4 minutes",
		CodeType:    CodeMobile, TimeLimitSecs: 240, TargetBugs: 20,
		Difficulty: DifficultyMedium,
		Reward:     ChallengeReward{CodeQuality: 700, ArchitecturePoints: 5, Title: "Mobile Architect"},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 1200},
	},
	{
		ID: "mobile-performance-ninja", Name: "Performance Ninja",
		Description: "Optimize 40 mobile performance issues in 6 minutes",
		CodeType:    CodeMobile, TimeLimitSecs: 360, TargetBugs: 40,
		Difficulty: DifficultyHard,
		Reward:     ChallengeReward{CodeQuality: 1500, ArchitecturePoints: 10, Title: "Mobile Sensei"},
		Unlock:     Unlock{Kind: UnlockChallengesCompleted, Value: 5},
	},
	{
		ID: "backend-server-saver", Name: "Server Saver",
		Description: "Fix critical server bugs - 6 bugs in 2 minutes",
		CodeType:    CodeBackend, TimeLimitSecs: 120, TargetBugs: 6,
		Difficulty: DifficultyEasy,
		Reward:     ChallengeReward{CodeQuality: 400, ArchitecturePoints: 2},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 300},
	},
	{
		ID: "backend-infrastructure-master", Name: "Infrastructure Master",
		Description: "Debug 15 backend systems in 3 minutes",
		CodeType:    CodeBackend, TimeLimitSecs: 180, TargetBugs: 15,
		Difficulty: DifficultyMedium,
		Reward:     ChallengeReward{CodeQuality: 800, ArchitecturePoints: 5, Title: "Systems Surgeon"},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 900},
	},
	{
		ID: "aiml-model-whisperer", Name: "Model Whisperer",
		Description: "Untangle 10 ML training bugs in 4 minutes",
		CodeType:    CodeAIML, TimeLimitSecs: 240, TargetBugs: 10,
		Difficulty: DifficultyMedium,
		Reward:     ChallengeReward{CodeQuality: 1200, ArchitecturePoints: 6, Title: "Gradient Tamer"},
		Unlock:     Unlock{Kind: UnlockBugsFixed, Value: 4000},
	},
}

// Challenges returns the performance-challenge catalog.
func Challenges() []ChallengeDef {
	out := make([]ChallengeDef, len(challenges))
	copy(out, challenges)
	return out
}

// ChallengeByID looks up one challenge.
func ChallengeByID(id string) (ChallengeDef, bool) {
	for _, c := range challenges {
		if c.ID == id {
			return c, true
		}
	}
	return ChallengeDef{}, false
}
