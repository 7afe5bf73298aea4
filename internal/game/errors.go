package game

import "errors"

// Rejections are ordinary values, not faults: every mutating operation
// either fully applies or returns one of these with the state unchanged.
var (
	ErrNotFound            = errors.New("item not found")
	ErrLocked              = errors.New("item is locked")
	ErrMaxed               = errors.New("item is already at max level")
	ErrPrereqUnmet         = errors.New("prerequisites not purchased")
	ErrInsufficientCQ      = errors.New("insufficient code quality")
	ErrInsufficientAP      = errors.New("insufficient architecture points")
	ErrNoStamina           = errors.New("not enough stamina")
	ErrCooldown            = errors.New("debug cooldown not elapsed")
	ErrRefactorUnavailable = errors.New("refactor threshold not reached")
	ErrChallengeActive     = errors.New("a challenge is already running")
	ErrChallengeDone       = errors.New("challenge already completed")
)
