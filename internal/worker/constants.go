package worker

// ============================================================================
// Job Names
// ============================================================================

const (
	JobNameAutosave  = "autosave"
	JobNameReplenish = "replenish"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"
	// LogMsgWorkerQueueFull is logged when a non-blocking enqueue is dropped
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Jobs
// ============================================================================

const (
	LogMsgAutosaveCompleted = "Autosave completed"
	LogMsgReplenished       = "Dormant auto-planters restarted"
)
