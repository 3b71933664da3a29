package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Reward errors
	ErrMsgRewardNotFound         = "reward not found"
	ErrMsgRewardAlreadyRequested = "reward already requested"
	ErrMsgRewardAlreadyClaimed   = "reward already claimed"
	ErrMsgCycleIncomplete        = "badge cycle is not complete"
	ErrMsgNothingToRequest       = "no unclaimed rewards to request"
	ErrMsgNothingToAward         = "no pending rewards to award"

	// Badge errors
	ErrMsgBadgeProgressNotFound = "badge progress not found"

	// Star errors
	ErrMsgStarAccountNotFound = "star account not found"
	ErrMsgInvalidStarAmount   = "star amount must be at least 1"

	// Admin errors
	ErrMsgAdminRequired = "admin identity is required"

	// Validation errors
	ErrMsgInvalidDifficulty = "invalid difficulty"
	ErrMsgInvalidInput      = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Reward lifecycle errors
	ErrRewardNotFound         = errors.New(ErrMsgRewardNotFound)
	ErrRewardAlreadyRequested = errors.New(ErrMsgRewardAlreadyRequested)
	ErrRewardAlreadyClaimed   = errors.New(ErrMsgRewardAlreadyClaimed)
	ErrCycleIncomplete        = errors.New(ErrMsgCycleIncomplete)
	ErrNothingToRequest       = errors.New(ErrMsgNothingToRequest)
	ErrNothingToAward         = errors.New(ErrMsgNothingToAward)

	// Badge errors
	ErrBadgeProgressNotFound = errors.New(ErrMsgBadgeProgressNotFound)

	// Star errors
	ErrStarAccountNotFound = errors.New(ErrMsgStarAccountNotFound)
	ErrInvalidStarAmount   = errors.New(ErrMsgInvalidStarAmount)

	// Admin errors
	ErrAdminRequired = errors.New(ErrMsgAdminRequired)

	// Validation errors
	ErrInvalidDifficulty = errors.New(ErrMsgInvalidDifficulty)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
