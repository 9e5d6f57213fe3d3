package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/repository/firestore"
	"github.com/secmon-lab/curbside/pkg/repository/memory"
	"github.com/secmon-lab/curbside/pkg/repository/sqlite"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newSQLiteRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "curbside.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	// Each test gets its own collections so runs never see each other's data
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}
