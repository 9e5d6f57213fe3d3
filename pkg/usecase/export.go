package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
)

// Export reads every entry and legacy counter into a snapshot
func (uc *UseCases) Export(ctx context.Context) (*model.Snapshot, error) {
	entries, err := uc.repo.Entry().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list entries")
	}

	counters, err := uc.repo.Counter().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list counters")
	}

	return &model.Snapshot{
		ExportedAt: uc.clock().UTC(),
		Entries:    entries,
		Counters:   counters,
	}, nil
}
