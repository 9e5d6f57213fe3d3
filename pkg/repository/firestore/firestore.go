package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
)

// ErrNotFound is returned when a document does not exist
var ErrNotFound = interfaces.ErrNotFound

type Firestore struct {
	client  *firestore.Client
	entry   *entryRepository
	counter *counterRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.entry.collectionPrefix = prefix
		f.counter.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:  client,
		entry:   newEntryRepository(client),
		counter: newCounterRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Entry() interfaces.EntryRepository {
	return f.entry
}

func (f *Firestore) Counter() interfaces.CounterRepository {
	return f.counter
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

// CollectionName returns the collection for name under the optional prefix
func CollectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
