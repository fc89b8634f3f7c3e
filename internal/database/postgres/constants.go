package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToLoadState         = "failed to load game state"
	ErrMsgFailedToSaveState         = "failed to save game state"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
