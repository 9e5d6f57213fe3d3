package interfaces

import (
	"context"

	"github.com/secmon-lab/curbside/pkg/domain/model"
)

// Notifier receives entry events after a mutation succeeded
type Notifier interface {
	Notify(ctx context.Context, event model.EntryEvent) error
}
