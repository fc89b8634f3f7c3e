package cooldown

import "time"

// FallbackDelay applies to actions with no configured or built-in delay
const FallbackDelay = 5 * time.Second

// Log messages
const (
	LogMsgDevModeBypass           = "Dev mode: cooldown skipped"
	LogMsgCooldownRejected        = "Action refused, cooldown running"
	LogMsgCooldownEnforced        = "Action allowed, cooldown restarted"
	LogMsgCooldownDurationChanged = "Cooldown delay changed"
)

// ErrOnCooldown message formats; the action name comes first
const (
	ErrFmtCooldownWithMinutes = "%s is recharging: %dm %ds left"
	ErrFmtCooldownSecondsOnly = "%s is recharging: %ds left"
)

const secondsPerMinute = 60
