package notification

// Notifier delivers a human-readable cycle summary to an external
// channel.
type Notifier interface {
	SendNotification(message string) error
}
