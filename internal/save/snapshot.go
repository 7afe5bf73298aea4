// Package save handles the versioned persistence of the progression state:
// schema-validated snapshots, the primary/backup file store, and the
// portable base64 export format.
package save

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/config"
	"github.com/lukeberry99/duck/internal/game"
)

// CurrentVersion is bumped whenever a field is added to the snapshot.
// Version 1 snapshots predate the stamina pool and the purchase log.
const CurrentVersion = 2

//go:embed schema.json
var schemaJSON string

var snapshotSchema = jsonschema.MustCompileString("save/schema.json", schemaJSON)

// Snapshot is the on-disk save format.
type Snapshot struct {
	Version int        `json:"version"`
	SavedAt time.Time  `json:"saved_at"`
	State   game.State `json:"state"`
}

// NewSnapshot wraps a ledger state in the current snapshot envelope.
func NewSnapshot(st game.State, now time.Time) Snapshot {
	return Snapshot{
		Version: CurrentVersion,
		SavedAt: now.UTC(),
		State:   st,
	}
}

// Encode serializes a snapshot.
func Encode(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Decode validates raw snapshot bytes against the schema and, if they pass,
// unmarshals and migrates them to the current version under the active
// balance. Validation is pure; no state is touched.
func Decode(raw []byte, bal config.Balance) (Snapshot, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return Snapshot{}, fmt.Errorf("validate snapshot: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	migrate(&s, bal)
	return s, nil
}

// migrate applies forward-compatible defaults for fields introduced after
// the snapshot was written.
func migrate(s *Snapshot, bal config.Balance) {
	if s.Version < 2 {
		// Version 1 had no stamina pool; start restored sessions full.
		if s.State.Stamina == 0 {
			s.State.Stamina = bal.MaxClickStamina
		}
		// Version 1 had no purchase log; synthesize one from upgrade levels
		// in catalog order so effect damping stays deterministic.
		if len(s.State.PurchaseLog) == 0 {
			for _, def := range catalog.Upgrades() {
				st, ok := s.State.Upgrades[def.ID]
				if !ok {
					continue
				}
				for i := 0; i < st.Level; i++ {
					s.State.PurchaseLog = append(s.State.PurchaseLog, def.ID)
				}
			}
		}
	}
	if s.State.Upgrades == nil {
		s.State.Upgrades = make(map[string]game.UpgradeState)
	}
	if s.State.Prestige.Upgrades == nil {
		s.State.Prestige.Upgrades = make(map[string]int)
	}
	s.Version = CurrentVersion
}
