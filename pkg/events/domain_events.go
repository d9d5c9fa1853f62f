package events

// VerificationStartedEvent is published when a governance verification
// is dispatched.
type VerificationStartedEvent struct {
	RequestID string
	Claim     string
	Domain    string
	Risk      string
}

// Topic returns the event topic for verification starts
func (e VerificationStartedEvent) Topic() string {
	return "verify.started"
}

// VerificationCompletedEvent carries the verdict of a finished
// governance verification, or the error that prevented one.
type VerificationCompletedEvent struct {
	RequestID  string
	Claim      string
	Domain     string
	Status     string
	Action     string
	Confidence float64
	Error      error
}

// Topic returns the event topic for verification completions
func (e VerificationCompletedEvent) Topic() string {
	return "verify.completed"
}

// SettingsChangedEvent is published after settings are updated so
// components can re-read paths and modes.
type SettingsChangedEvent struct{}

// Topic returns the event topic for settings changes
func (e SettingsChangedEvent) Topic() string {
	return "settings.changed"
}

// ExecutionStateEvent reports the console flipping between idle and
// executing, for the status bar.
type ExecutionStateEvent struct {
	Executing bool
	Command   string
}

// Topic returns the event topic for execution state changes
func (e ExecutionStateEvent) Topic() string {
	return "console.state"
}

// NotificationEvent is published to give the user intermediary feedback
type NotificationEvent struct {
	Message string
	Role    string // system or error
	Error   error
}

// Topic returns the event topic for notification events
func (e NotificationEvent) Topic() string {
	return "app.notification"
}

// NoOpPublisher is a publisher that does nothing (for testing or when events are not needed)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(topic string, event interface{}) {
	// No-op
}

// NoOpEventBus is an event bus that does nothing (for testing)
type NoOpEventBus struct{}

// Publish does nothing
func (n *NoOpEventBus) Publish(topic string, event interface{}) {
	// No-op
}

// Subscribe does nothing
func (n *NoOpEventBus) Subscribe(topic string, handler EventHandler) {
	// No-op
}
