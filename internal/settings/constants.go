package settings

// Log messages
const (
	LogMsgSnapshotLoaded  = "Game snapshot loaded"
	LogMsgNoSnapshot      = "No saved snapshot, starting fresh"
	LogMsgSnapshotSaved   = "Game snapshot saved"
	LogMsgSettingsUpdated = "Player settings updated"
)

// Error messages
const (
	ErrMsgLoadFailed = "failed to load snapshot"
	ErrMsgSaveFailed = "failed to save snapshot"
)
