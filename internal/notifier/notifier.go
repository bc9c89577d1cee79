package notifier

// Notifier defines the interface for publishing an announcement.
type Notifier interface {
	// Publish posts the given message to the channel.
	Publish(message string) error
}
