package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/curbside/pkg/domain/model"
)

// CounterRepository defines the interface for legacy DailyCounter data access
type CounterRepository interface {
	// Create stores a new counter with a generated ID
	Create(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error)

	// Update replaces Count of an existing counter
	Update(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error)

	// Delete deletes a counter by ID. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id model.CounterID) error

	// FindInRange returns one counter dated within [from, to), or nil if none
	FindInRange(ctx context.Context, from, to time.Time) (*model.DailyCounter, error)

	// List retrieves all counters
	List(ctx context.Context) ([]*model.DailyCounter, error)
}
