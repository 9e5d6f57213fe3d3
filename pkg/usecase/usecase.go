package usecase

import (
	"time"

	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
)

type UseCases struct {
	repo      interfaces.Repository
	notifiers []interfaces.Notifier
	clock     func() time.Time
	location  *time.Location
	catalog   *model.ActionCatalog

	Entry   *EntryUseCase
	Counter *CounterUseCase
}

type Option func(*UseCases)

// WithNotifier adds a notifier receiving entry events. It may be given more than once.
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifiers = append(uc.notifiers, n)
	}
}

// WithClock replaces time.Now as the source of the current time
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

// WithLocation sets the time zone of week, month and legacy day boundaries
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCases) {
		uc.location = loc
	}
}

func WithCatalog(catalog *model.ActionCatalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		clock:    time.Now,
		location: time.Local,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.catalog == nil {
		uc.catalog = model.NewActionCatalog(nil)
	}

	uc.Entry = NewEntryUseCase(repo,
		newEventPublisher(uc.notifiers),
		uc.clock, uc.location, uc.catalog)
	uc.Counter = NewCounterUseCase(repo, uc.clock, uc.location)

	return uc
}
