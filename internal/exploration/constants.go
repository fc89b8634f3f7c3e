package exploration

// Notice text
const (
	NoticeTitleExploration = "Exploration"

	MsgFmtExploreFound = "Your rover returned with %s water, %s nutrients and %s ice."
	MsgFmtExploreWait  = "Please wait %d seconds before exploring again."
)

// Log messages
const (
	LogMsgExploreSucceeded = "Manual exploration succeeded"
	LogMsgExploreRefused   = "Manual exploration refused by cooldown"
	LogMsgTickerStarted    = "Autonomous exploration started"
	LogMsgTickerStopped    = "Autonomous exploration stopped"
	LogMsgRateChanged      = "Exploration rate changed"
	LogMsgStaleTick        = "Ignoring tick from cancelled timer"
)

// RewardDigits is how many decimals notices show for fractional amounts
const RewardDigits = 1
