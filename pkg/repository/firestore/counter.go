package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CounterCollection is the unprefixed collection name for legacy daily counters
const CounterCollection = "daily_counters"

// counterDoc keeps Firestore field names independent of the JSON tags on model.DailyCounter
type counterDoc struct {
	ID        model.CounterID `firestore:"ID"`
	Date      time.Time       `firestore:"Date"`
	Count     int             `firestore:"Count"`
	CreatedAt time.Time       `firestore:"CreatedAt"`
	UpdatedAt time.Time       `firestore:"UpdatedAt"`
}

func toCounterDoc(c *model.DailyCounter) *counterDoc {
	return &counterDoc{
		ID:        c.ID,
		Date:      c.Date,
		Count:     c.Count,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d *counterDoc) toModel() *model.DailyCounter {
	return &model.DailyCounter{
		ID:        d.ID,
		Date:      d.Date,
		Count:     d.Count,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type counterRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newCounterRepository(client *firestore.Client) *counterRepository {
	return &counterRepository{
		client: client,
	}
}

func (r *counterRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, CounterCollection))
}

func (r *counterRepository) Create(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	now := time.Now().UTC()
	created := &model.DailyCounter{
		ID:        model.NewCounterID(),
		Date:      counter.Date,
		Count:     counter.Count,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection().Doc(string(created.ID)).Set(ctx, toCounterDoc(created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create counter", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *counterRepository) Update(ctx context.Context, counter *model.DailyCounter) (*model.DailyCounter, error) {
	docRef := r.collection().Doc(string(counter.ID))

	var updated *model.DailyCounter
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", counter.ID))
			}
			return goerr.Wrap(err, "failed to get counter", goerr.V("id", counter.ID))
		}

		var doc counterDoc
		if err := snap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to decode counter", goerr.V("id", counter.ID))
		}
		doc.Count = counter.Count
		doc.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, &doc); err != nil {
			return goerr.Wrap(err, "failed to update counter", goerr.V("id", counter.ID))
		}
		updated = doc.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *counterRepository) Delete(ctx context.Context, id model.CounterID) error {
	docRef := r.collection().Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "counter not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get counter", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete counter", goerr.V("id", id))
	}

	return nil
}

func (r *counterRepository) FindInRange(ctx context.Context, from, to time.Time) (*model.DailyCounter, error) {
	iter := r.collection().
		Where("Date", ">=", from).
		Where("Date", "<", to).
		Limit(1).
		Documents(ctx)

	counters, err := collectCounters(iter)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find counter in range",
			goerr.V("from", from),
			goerr.V("to", to))
	}
	if len(counters) == 0 {
		return nil, nil
	}

	return counters[0], nil
}

func (r *counterRepository) List(ctx context.Context) ([]*model.DailyCounter, error) {
	return collectCounters(r.collection().OrderBy("Date", firestore.Asc).Documents(ctx))
}

func collectCounters(iter *firestore.DocumentIterator) ([]*model.DailyCounter, error) {
	defer iter.Stop()

	counters := make([]*model.DailyCounter, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate counters")
		}

		var doc counterDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode counter", goerr.V("doc_id", snap.Ref.ID))
		}
		counters = append(counters, doc.toModel())
	}

	return counters, nil
}
