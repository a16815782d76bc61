package notifier

import "context"

// Noop is used when the notification gateway is disabled in config
type Noop struct {
	log Logger
}

// NewNoop creates a publisher that drops all events
func NewNoop(log Logger) *Noop {
	return &Noop{log: log}
}

// PublishBestEffort logs and discards the event
func (n *Noop) PublishBestEffort(_ context.Context, event *BookingEvent) {
	n.log.Info("Notifier disabled, dropping %s event for booking %s", event.Event, event.Reference)
}
