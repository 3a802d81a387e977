package model

import "context"

// CartEventPublisher fans cart changes out to views outside the process.
type CartEventPublisher interface {
	// Publish delivers one event. Implementations must not retain event.
	Publish(ctx context.Context, event CartEvent) error
}
