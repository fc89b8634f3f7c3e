package exploration

import "time"

// Config holds exploration tuning
type Config struct {
	// TickInterval is the autonomous production period. Zero uses the default of one second.
	TickInterval time.Duration
}
