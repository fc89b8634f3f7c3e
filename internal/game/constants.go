package game

// Log messages
const (
	LogMsgGameStarted       = "Game started"
	LogMsgSnapshotRestored  = "Restored saved game"
	LogMsgSnapshotDiscarded = "Saved game is invalid, starting fresh"
	LogMsgGameSaved         = "Game saved"
	LogMsgGameStopped       = "Game stopped"
)

// Error messages
const (
	ErrMsgRestoreFailed = "failed to restore saved game"
	ErrMsgSaveFailed    = "failed to save game"
)

// Tuning file errors
const (
	ErrMsgReadTuning    = "failed to read tuning file"
	ErrMsgInvalidTuning = "invalid tuning file"
)
