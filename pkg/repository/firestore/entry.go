package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EntryCollection is the unprefixed collection name for action entries
const EntryCollection = "entries"

type entryRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEntryRepository(client *firestore.Client) *entryRepository {
	return &entryRepository{
		client: client,
	}
}

func (r *entryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(CollectionName(r.collectionPrefix, EntryCollection))
}

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) (*model.Entry, error) {
	created := &model.Entry{
		ID:        model.NewEntryID(),
		Date:      entry.Date,
		Action:    entry.Action,
		Approved:  entry.Approved,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.collection().Doc(string(created.ID)).Set(ctx, created); err != nil {
		return nil, goerr.Wrap(err, "failed to create entry", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *entryRepository) List(ctx context.Context) ([]*model.Entry, error) {
	iter := r.collection().OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	return collectEntries(iter)
}

func (r *entryRepository) dayActionQuery(day types.Day, action types.ActionType) firestore.Query {
	return r.collection().
		Where("Date", "==", day).
		Where("Action", "==", action).
		OrderBy("CreatedAt", firestore.Asc)
}

func (r *entryRepository) FindByDayAction(ctx context.Context, day types.Day, action types.ActionType) ([]*model.Entry, error) {
	entries, err := collectEntries(r.dayActionQuery(day, action).Documents(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find entries",
			goerr.V("date", day),
			goerr.V("action", action))
	}
	return entries, nil
}

func (r *entryRepository) SetApproved(ctx context.Context, day types.Day, action types.ActionType, approved bool) (int, error) {
	iter := r.dayActionQuery(day, action).Documents(ctx)
	defer iter.Stop()

	bulkWriter := r.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			bulkWriter.End()
			return 0, goerr.Wrap(err, "failed to iterate entries for update",
				goerr.V("date", day),
				goerr.V("action", action))
		}

		job, err := bulkWriter.Update(doc.Ref, []firestore.Update{
			{Path: "Approved", Value: approved},
		})
		if err != nil {
			bulkWriter.End()
			return 0, goerr.Wrap(err, "failed to add Update operation to bulk writer", goerr.V("doc_id", doc.Ref.ID))
		}
		jobs = append(jobs, job)
	}
	bulkWriter.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, goerr.Wrap(err, "failed to update entry approval",
				goerr.V("date", day),
				goerr.V("action", action))
		}
	}

	return len(jobs), nil
}

func (r *entryRepository) Delete(ctx context.Context, id model.EntryID) error {
	docRef := r.collection().Doc(string(id))
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "entry not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get entry", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete entry", goerr.V("id", id))
	}

	return nil
}

func collectEntries(iter *firestore.DocumentIterator) ([]*model.Entry, error) {
	defer iter.Stop()

	entries := make([]*model.Entry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate entries")
		}

		var e model.Entry
		if err := doc.DataTo(&e); err != nil {
			return nil, goerr.Wrap(err, "failed to decode entry", goerr.V("doc_id", doc.Ref.ID))
		}
		entries = append(entries, &e)
	}

	return entries, nil
}
