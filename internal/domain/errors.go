package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Upgrade errors
	ErrMsgUnknownUpgrade = "unknown upgrade"
	ErrMsgUpgradeOwned   = "upgrade already owned"

	// Exploration errors
	ErrMsgInvalidRate = "invalid exploration rate"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Settings errors
	ErrMsgInvalidSnapshot = "invalid snapshot value"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Upgrade errors
	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)
	ErrUpgradeOwned   = errors.New(ErrMsgUpgradeOwned)

	// Exploration errors
	ErrInvalidRate = errors.New(ErrMsgInvalidRate)

	// Settings errors
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
