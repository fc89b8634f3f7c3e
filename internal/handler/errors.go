package handler

// Generic HTTP error messages for client responses.
// They never carry internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"

	ErrMsgUnknownUpgrade = "No such upgrade"
	ErrMsgUpgradeOwned   = "Upgrade already installed"
	ErrMsgInvalidRate    = "Exploration rate must be a non-negative number"
	ErrMsgSaveFailed     = "Failed to save game"
	ErrMsgListImages     = "Failed to list images"
)

// Success messages
const (
	MsgGameSaved = "Game saved"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
	LogMsgExplore      = "Explore request handled"
	LogMsgPlant        = "Plant request handled"
	LogMsgPurchase     = "Purchase request handled"
	LogMsgRateSet      = "Exploration rate updated"
	LogMsgReadyFailed  = "Readiness check failed"
	LogMsgImagesListed = "Image directory listed"
)
