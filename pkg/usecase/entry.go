package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

type EntryUseCase struct {
	repo      interfaces.Repository
	publisher *eventPublisher
	clock     func() time.Time
	location  *time.Location
	catalog   *model.ActionCatalog
}

func NewEntryUseCase(repo interfaces.Repository, publisher *eventPublisher, clock func() time.Time, loc *time.Location, catalog *model.ActionCatalog) *EntryUseCase {
	return &EntryUseCase{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		location:  loc,
		catalog:   catalog,
	}
}

// ToggleResult describes the outcome of ToggleApproval
type ToggleResult struct {
	Approved bool
	Affected int
}

func validateDayAction(day types.Day, action types.ActionType) error {
	if day == "" || action == "" {
		return newValidationError(ReasonDateAndTypeRequired)
	}
	if !day.IsValid() {
		return newValidationError(ReasonInvalidDate)
	}
	if !action.IsValid() {
		return newValidationError(ReasonInvalidType)
	}
	return nil
}

// Log records one occurrence of action on day. Identical entries are not merged.
func (uc *EntryUseCase) Log(ctx context.Context, day types.Day, action types.ActionType) (*model.Entry, error) {
	if err := validateDayAction(day, action); err != nil {
		return nil, err
	}

	created, err := uc.repo.Entry().Create(ctx, &model.Entry{
		Date:     day,
		Action:   action,
		Approved: false,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create entry",
			goerr.V("date", day),
			goerr.V("action", action))
	}

	logging.From(ctx).Info("entry logged", "id", created.ID, "date", day, "action", action)
	uc.publish(ctx, model.EntryEventLogged, day, action, 1)

	return created, nil
}

// ToggleApproval flips the aggregated approval of (day, action). Every
// matching entry is set to the negation of "all approved", so a partially
// approved bucket becomes fully approved.
func (uc *EntryUseCase) ToggleApproval(ctx context.Context, day types.Day, action types.ActionType) (*ToggleResult, error) {
	if err := validateDayAction(day, action); err != nil {
		return nil, err
	}

	entries, err := uc.repo.Entry().FindByDayAction(ctx, day, action)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find entries",
			goerr.V("date", day),
			goerr.V("action", action))
	}
	if len(entries) == 0 {
		return &ToggleResult{}, nil
	}

	allApproved := true
	for _, e := range entries {
		if !e.Approved {
			allApproved = false
			break
		}
	}

	n, err := uc.repo.Entry().SetApproved(ctx, day, action, !allApproved)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to set approval",
			goerr.V("date", day),
			goerr.V("action", action),
			goerr.V("approved", !allApproved))
	}

	kind := model.EntryEventApproved
	if allApproved {
		kind = model.EntryEventUnapproved
	}
	logging.From(ctx).Info("entry approval toggled",
		"date", day, "action", action, "approved", !allApproved, "affected", n)
	uc.publish(ctx, kind, day, action, n)

	return &ToggleResult{Approved: !allApproved, Affected: n}, nil
}

// Undo removes a single entry matching (day, action). It reports false and no
// error when nothing matched or the entry disappeared concurrently.
func (uc *EntryUseCase) Undo(ctx context.Context, day types.Day, action types.ActionType) (bool, error) {
	if err := validateDayAction(day, action); err != nil {
		return false, err
	}

	entries, err := uc.repo.Entry().FindByDayAction(ctx, day, action)
	if err != nil {
		return false, goerr.Wrap(err, "failed to find entries",
			goerr.V("date", day),
			goerr.V("action", action))
	}
	if len(entries) == 0 {
		return false, nil
	}

	target := entries[0]
	if err := uc.repo.Entry().Delete(ctx, target.ID); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to delete entry", goerr.V("id", target.ID))
	}

	logging.From(ctx).Info("entry undone", "id", target.ID, "date", day, "action", action)
	uc.publish(ctx, model.EntryEventUndone, day, action, 1)

	return true, nil
}

// List returns all entries summarized per day, newest day first
func (uc *EntryUseCase) List(ctx context.Context) ([]model.DaySummary, error) {
	entries, err := uc.repo.Entry().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list entries")
	}

	days := model.Summarize(entries)
	model.SortDaySummaries(days)
	return days, nil
}

// Stats computes dashboard statistics relative to the current time
func (uc *EntryUseCase) Stats(ctx context.Context) (*model.DashboardStats, error) {
	days, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := model.ComputeStats(days, uc.clock(), uc.location)
	return &stats, nil
}

// Actions returns the action catalog in canonical order
func (uc *EntryUseCase) Actions() []model.ActionInfo {
	return uc.catalog.Actions()
}

func (uc *EntryUseCase) publish(ctx context.Context, kind model.EntryEventKind, day types.Day, action types.ActionType, affected int) {
	uc.publisher.publish(ctx, model.EntryEvent{
		Kind:       kind,
		Date:       day,
		Action:     action,
		Affected:   affected,
		OccurredAt: uc.clock(),
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound)
}
