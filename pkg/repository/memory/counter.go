package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
)

type counterRepository struct {
	mu       sync.RWMutex
	counters map[model.CounterID]*model.DailyCounter
}

func newCounterRepository() *counterRepository {
	return &counterRepository{
		counters: make(map[model.CounterID]*model.DailyCounter),
	}
}

func copyCounter(c *model.DailyCounter) *model.DailyCounter {
	copied := *c
	return &copied
}

func (r *counterRepository) Create(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyCounter(counter)
	created.ID = model.NewCounterID()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.counters[created.ID] = created
	return copyCounter(created), nil
}

func (r *counterRepository) Update(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.counters[counter.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", counter.ID))
	}

	updated := copyCounter(existing)
	updated.Count = counter.Count
	updated.UpdatedAt = time.Now().UTC()

	r.counters[updated.ID] = updated
	return copyCounter(updated), nil
}

func (r *counterRepository) Delete(ctx context.Context, id model.CounterID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.counters[id]; !exists {
		return goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", id))
	}

	delete(r.counters, id)
	return nil
}

func (r *counterRepository) FindInRange(ctx context.Context, from, to time.Time) (*model.DailyCounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.counters {
		if !c.Date.Before(from) && c.Date.Before(to) {
			return copyCounter(c), nil
		}
	}

	return nil, nil
}

func (r *counterRepository) List(ctx context.Context) ([]*model.DailyCounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counters := make([]*model.DailyCounter, 0, len(r.counters))
	for _, c := range r.counters {
		counters = append(counters, copyCounter(c))
	}
	sort.Slice(counters, func(i, j int) bool {
		return counters[i].Date.Before(counters[j].Date)
	})

	return counters, nil
}
