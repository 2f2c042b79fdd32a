package constants

// NSQ topics
const (
	// TopicPunchRecorded is the fixed admin-monitoring feed. Every punch
	// is broadcast here regardless of session so live dashboards can
	// observe activity without per-session subscription churn.
	TopicPunchRecorded = "punch.recorded"
)
