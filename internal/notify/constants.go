package notify

// Log messages
const (
	LogMsgPublishFailed = "Failed to publish display event"
	LogMsgNotice        = "Showing notice"
)
