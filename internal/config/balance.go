package config

// Balance holds gameplay balance configuration
type Balance struct {
	// Currency yield
	CQPerBugFixed int `yaml:"cq_per_bug_fixed" json:"cq_per_bug_fixed"`

	// Manual debug action
	ClickStaminaCost    int     `yaml:"click_stamina_cost" json:"click_stamina_cost"`
	MaxClickStamina     int     `yaml:"max_click_stamina" json:"max_click_stamina"`
	StaminaRegenPerTick int     `yaml:"stamina_regen_per_tick" json:"stamina_regen_per_tick"`
	ClickCooldownBaseMS int     `yaml:"click_cooldown_base_ms" json:"click_cooldown_base_ms"`
	ClickPowerCap       float64 `yaml:"click_power_cap" json:"click_power_cap"`

	// Duck economics
	DuckCostGrowth    float64 `yaml:"duck_cost_growth" json:"duck_cost_growth"`
	DuckLevelUpGrowth float64 `yaml:"duck_level_up_growth" json:"duck_level_up_growth"`
	DuckLevelUpPower  float64 `yaml:"duck_level_up_power" json:"duck_level_up_power"`
	DuckLevelUpBaseCQ int     `yaml:"duck_level_up_base_cq" json:"duck_level_up_base_cq"`

	// Offline catch-up
	OfflineCapHours       int     `yaml:"offline_cap_hours" json:"offline_cap_hours"`
	OfflineFullRateSecs   int     `yaml:"offline_full_rate_secs" json:"offline_full_rate_secs"`
	OfflineLateEfficiency float64 `yaml:"offline_late_efficiency" json:"offline_late_efficiency"`

	// Prestige ("refactor")
	RefactorThreshold int64   `yaml:"refactor_threshold" json:"refactor_threshold"`
	RefactorDivisor   float64 `yaml:"refactor_divisor" json:"refactor_divisor"`

	// Effect stacking
	MultiplierDamping float64 `yaml:"multiplier_damping" json:"multiplier_damping"`

	// Milestones for primary-counter events
	Milestones []int64 `yaml:"milestones" json:"milestones"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		CQPerBugFixed:         5,
		ClickStaminaCost:      1,
		MaxClickStamina:       100,
		StaminaRegenPerTick:   2,
		ClickCooldownBaseMS:   150,
		ClickPowerCap:         10,
		DuckCostGrowth:        1.15,
		DuckLevelUpGrowth:     1.5,
		DuckLevelUpPower:      1.5,
		DuckLevelUpBaseCQ:     200,
		OfflineCapHours:       24,
		OfflineFullRateSecs:   3600,
		OfflineLateEfficiency: 0.8,
		RefactorThreshold:     25000,
		RefactorDivisor:       25,
		MultiplierDamping:     0.8,
		Milestones:            []int64{100, 1000, 10000, 100000, 1000000},
	}
}

// Casual returns easier balance for casual play
func Casual() Balance {
	cfg := Default()
	cfg.CQPerBugFixed = 8
	cfg.StaminaRegenPerTick = 4
	cfg.ClickCooldownBaseMS = 100
	cfg.RefactorThreshold = 10000
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.CQPerBugFixed = 3
	cfg.MaxClickStamina = 60
	cfg.StaminaRegenPerTick = 1
	cfg.ClickCooldownBaseMS = 250
	cfg.OfflineLateEfficiency = 0.6
	cfg.RefactorThreshold = 50000
	return cfg
}
