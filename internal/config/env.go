package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	cfg := Default()

	if val := getEnvInt("CQ_PER_BUG_FIXED"); val > 0 {
		cfg.CQPerBugFixed = val
	}
	if val := getEnvInt("MAX_CLICK_STAMINA"); val > 0 {
		cfg.MaxClickStamina = val
	}
	if val := getEnvInt("STAMINA_REGEN_PER_TICK"); val > 0 {
		cfg.StaminaRegenPerTick = val
	}
	if val := getEnvInt("CLICK_COOLDOWN_BASE_MS"); val > 0 {
		cfg.ClickCooldownBaseMS = val
	}
	if val := getEnvInt("OFFLINE_CAP_HOURS"); val > 0 {
		cfg.OfflineCapHours = val
	}
	if val := getEnvInt("REFACTOR_THRESHOLD"); val > 0 {
		cfg.RefactorThreshold = int64(val)
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
