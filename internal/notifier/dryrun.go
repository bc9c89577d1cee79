package notifier

import "fmt"

// DryRunNotifier prints what would be posted without actually posting.
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Publish prints the announcement that would be posted.
func (n *DryRunNotifier) Publish(message string) error {
	fmt.Println("--- Announcement (dry run) ---")
	fmt.Println(message)
	fmt.Printf("\n(Length: %d characters)\n", len([]rune(message)))
	return nil
}
