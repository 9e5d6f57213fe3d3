package interfaces

import (
	"context"

	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// EntryRepository defines the interface for ActionEntry data access
type EntryRepository interface {
	// Create stores a new entry with a generated ID and creation time
	Create(ctx context.Context, entry *model.Entry) (*model.Entry, error)

	// List retrieves all entries
	List(ctx context.Context) ([]*model.Entry, error)

	// FindByDayAction retrieves all entries matching the exact (day, action) pair
	FindByDayAction(ctx context.Context, day types.Day, action types.ActionType) ([]*model.Entry, error)

	// SetApproved sets Approved on every entry matching (day, action) and
	// returns how many entries were updated
	SetApproved(ctx context.Context, day types.Day, action types.ActionType, approved bool) (int, error)

	// Delete deletes an entry by ID. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id model.EntryID) error
}
