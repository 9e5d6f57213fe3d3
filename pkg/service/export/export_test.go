package export

import (
	"context"
	"testing"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// SetStorageClientFactory replaces the GCS client constructor for the duration of t
func SetStorageClientFactory(t *testing.T, f func(ctx context.Context, opts ...option.ClientOption) (*storage.Client, error)) {
	orig := newStorageClient
	newStorageClient = f
	t.Cleanup(func() { newStorageClient = orig })
}
