package game

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
)

// Duck is one owned debugging companion. Power starts at the type's base and
// grows with level-ups; the ID is stable for the duck's lifetime.
type Duck struct {
	ID             string           `json:"id"`
	Type           catalog.DuckType `json:"type"`
	Level          int              `json:"level"`
	Power          float64          `json:"power"`
	Specialty      catalog.CodeType `json:"specialty,omitempty"`
	SpecialtyBonus float64          `json:"specialty_bonus"`
	AcquiredAt     time.Time        `json:"acquired_at"`
}

// NewDuck constructs a level-1 duck from its catalog entry.
func NewDuck(def catalog.DuckTypeDef, now time.Time) Duck {
	return Duck{
		ID:             uuid.NewString(),
		Type:           def.Type,
		Level:          1,
		Power:          def.BasePower,
		Specialty:      def.Specialty,
		SpecialtyBonus: def.SpecialtyBonus,
		AcquiredAt:     now,
	}
}

// DuckLevelUpCost returns the CQ price of raising a duck from its current
// level. The base price scales with the duck's current power so that cheap
// starter ducks stay cheap to train.
func DuckLevelUpCost(d Duck, bal config.Balance) int64 {
	cost := float64(bal.DuckLevelUpBaseCQ) * d.Power * math.Pow(bal.DuckLevelUpGrowth, float64(d.Level-1))
	return int64(math.Floor(cost))
}
