package domain

// Severity classifies a notice for the UI
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeveritySuccess     Severity = "success"
	SeverityWarning     Severity = "warning"
	SeverityAchievement Severity = "achievement"
	SeveritySetback     Severity = "setback"
	SeverityError       Severity = "error"
)

// Notice is a message surfaced to the player.
type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
