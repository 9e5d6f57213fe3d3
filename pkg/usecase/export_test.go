package usecase

import (
	"context"

	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
)

// DeliverEvent runs notifier fan-out synchronously for testing
func DeliverEvent(ctx context.Context, notifiers []interfaces.Notifier, event model.EntryEvent) error {
	return newEventPublisher(notifiers).deliver(ctx, event)
}
