package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

type entryRepository struct {
	mu      sync.RWMutex
	entries map[model.EntryID]*model.Entry
}

func newEntryRepository() *entryRepository {
	return &entryRepository{
		entries: make(map[model.EntryID]*model.Entry),
	}
}

func copyEntry(e *model.Entry) *model.Entry {
	copied := *e
	return &copied
}

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyEntry(entry)
	created.ID = model.NewEntryID()
	created.CreatedAt = time.Now().UTC()

	r.entries[created.ID] = created
	return copyEntry(created), nil
}

func (r *entryRepository) List(ctx context.Context) ([]*model.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, copyEntry(e))
	}
	sortByCreatedAt(entries)

	return entries, nil
}

func (r *entryRepository) FindByDayAction(ctx context.Context, day types.Day, action types.ActionType) ([]*model.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.Entry, 0)
	for _, e := range r.entries {
		if e.Date == day && e.Action == action {
			entries = append(entries, copyEntry(e))
		}
	}
	sortByCreatedAt(entries)

	return entries, nil
}

func (r *entryRepository) SetApproved(ctx context.Context, day types.Day, action types.ActionType, approved bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.entries {
		if e.Date == day && e.Action == action {
			e.Approved = approved
			n++
		}
	}

	return n, nil
}

func (r *entryRepository) Delete(ctx context.Context, id model.EntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return goerr.Wrap(ErrNotFound, "entry not found", goerr.V("id", id))
	}

	delete(r.entries, id)
	return nil
}

// sortByCreatedAt gives map iteration a stable order
func sortByCreatedAt(entries []*model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
