// Package effects folds purchased upgrades into per-target accumulators.
package effects

import (
	"math"

	"github.com/lukeberry99/duck/internal/catalog"
)

// DefaultDamping is the per-step decay applied to multiplicative stacking.
const DefaultDamping = 0.8

// Accumulator is the folded result for one target register.
type Accumulator struct {
	Additive   float64 `json:"additive"`
	Multiplier float64 `json:"multiplier"`
}

// Set maps target registers to their accumulators. Targets not touched by
// any effect read back as neutral.
type Set map[catalog.Target]Accumulator

// Get returns the accumulator for a target, neutral if absent.
func (s Set) Get(t catalog.Target) Accumulator {
	if acc, ok := s[t]; ok {
		return acc
	}
	return Accumulator{Additive: 0, Multiplier: 1}
}

// Aggregate folds ordered purchased-upgrade effects into accumulators.
// Additive effects sum. Multiplicative effects stack with diminishing
// returns: the Nth multiplicative effect seen (N counted globally across all
// targets, in the supplied order) has its deviation from neutral scaled by
// damping^N before being multiplied in, so many small upgrades cannot
// compound without bound. The order of effs must be the purchase order.
func Aggregate(effs []catalog.Effect, damping float64) Set {
	if damping <= 0 || damping > 1 {
		damping = DefaultDamping
	}

	out := make(Set)
	multSeen := 0
	for _, e := range effs {
		acc := out.Get(e.Target)
		switch e.Op {
		case catalog.OpAdditive:
			acc.Additive += e.Value
		case catalog.OpMultiplier:
			effective := 1 + (e.Value-1)*math.Pow(damping, float64(multSeen))
			acc.Multiplier *= effective
			multSeen++
		case catalog.OpSpecial:
			// Interpreted by name elsewhere; nothing to fold.
			continue
		}
		out[e.Target] = acc
	}
	return out
}
