package game

import (
	"math"

	"github.com/lukeberry99/duck/internal/catalog"
	"github.com/lukeberry99/duck/internal/telemetry"
)

// BatchResult reports what one batch operation produced.
type BatchResult struct {
	OperationID       string  `json:"operation_id"`
	Efficiency        float64 `json:"efficiency"`
	BugsFixed         int64   `json:"bugs_fixed"`
	CodeQualityGained int64   `json:"code_quality_gained"`
}

// RunBatchOperation pays the operation's CQ cost and processes its batch in
// one shot. Owned ducks assist: each duck contributes its cross-specialty
// efficiency against the operation's code type, and the averaged bonus
// scales the batch yield.
func (l *Ledger) RunBatchOperation(id string) (BatchResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	op, ok := catalog.BatchOperationByID(id)
	if !ok {
		return BatchResult{}, ErrNotFound
	}
	if !op.Unlock.Met(l.progressLocked()) {
		return BatchResult{}, ErrLocked
	}
	if err := l.spendCQLocked(op.Cost); err != nil {
		return BatchResult{}, err
	}

	eff := catalog.BatchEfficiency(op, l.batchBonusesLocked(op))

	bugs := int64(math.Floor(float64(op.BatchSize) * eff))
	if bugs < 1 {
		bugs = 1
	}
	gained := l.addBugsLocked(bugs)

	l.record(telemetry.EventBatchCompleted, telemetry.EventMetadata{
		"operation_id": op.ID,
		"bugs":         bugs,
		"cq":           gained,
		"efficiency":   eff,
	})

	return BatchResult{
		OperationID:       op.ID,
		Efficiency:        eff,
		BugsFixed:         bugs,
		CodeQualityGained: gained,
	}, nil
}

// batchBonusesLocked collects each owned duck's efficiency contribution
// against the operation's code type. Ducks with a web-bug special multiply
// their contribution on web operations.
func (l *Ledger) batchBonusesLocked(op catalog.BatchOperationDef) []float64 {
	bonuses := make([]float64, 0, len(l.ducks))
	for _, d := range l.ducks {
		b := catalog.SpecialtyEfficiency(d.Specialty, op.CodeType)
		if def, ok := catalog.DuckTypeByID(d.Type); ok {
			if def.Special.Kind == catalog.BonusWebBugs && op.CodeType == catalog.CodeWeb {
				b *= def.Special.Value
			}
		}
		bonuses = append(bonuses, b)
	}
	return bonuses
}

// BatchOperationView is the computed batch-shop row.
type BatchOperationView struct {
	Def        catalog.BatchOperationDef `json:"def"`
	Unlocked   bool                      `json:"unlocked"`
	Affordable bool                      `json:"affordable"`
	Efficiency float64                   `json:"efficiency"`
}

// BatchOperationViews returns the batch-operation catalog with computed
// flags, including the efficiency the current duck roster would achieve.
func (l *Ledger) BatchOperationViews() []BatchOperationView {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress := l.progressLocked()
	ops := catalog.BatchOperations()
	out := make([]BatchOperationView, 0, len(ops))
	for _, op := range ops {
		unlocked := op.Unlock.Met(progress)
		out = append(out, BatchOperationView{
			Def:        op,
			Unlocked:   unlocked,
			Affordable: unlocked && l.codeQuality >= op.Cost,
			Efficiency: catalog.BatchEfficiency(op, l.batchBonusesLocked(op)),
		})
	}
	return out
}
