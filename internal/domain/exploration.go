package domain

import "time"

// Ticker states
const (
	TickerIdle    = "idle"
	TickerRunning = "running"
)

// ExploreResult reports the outcome of a manual exploration.
// Allowed is false when the cooldown has not elapsed; Remaining is then the wait.
type ExploreResult struct {
	Allowed   bool          `json:"allowed"`
	Remaining time.Duration `json:"remaining,omitempty"`
	Reward    Bundle        `json:"reward"`
}

// ExplorationState is a snapshot of the autonomous production ticker.
type ExplorationState struct {
	Rate   float64 `json:"rate"`
	Ticker string  `json:"ticker"`
}
