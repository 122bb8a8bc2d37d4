package notification

import "context"

// Publisher forwards stored notifications to an external channel.
type Publisher interface {
	Publish(ctx context.Context, n *Notification) error
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *Notification) error {
	return nil
}
