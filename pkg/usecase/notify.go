package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/utils/async"
	"github.com/secmon-lab/curbside/pkg/utils/errutil"
	"golang.org/x/sync/errgroup"
)

// eventPublisher fans entry events out to every notifier in the background
type eventPublisher struct {
	notifiers []interfaces.Notifier
}

func newEventPublisher(notifiers []interfaces.Notifier) *eventPublisher {
	return &eventPublisher{notifiers: notifiers}
}

func (p *eventPublisher) publish(ctx context.Context, event model.EntryEvent) {
	if p == nil || len(p.notifiers) == 0 {
		return
	}

	async.Dispatch(ctx, "notify:"+string(event.Kind), func(ctx context.Context) error {
		if err := p.deliver(ctx, event); err != nil {
			_ = errutil.Handle(ctx, err, "notification failed")
		}
		return nil
	})
}

// deliver calls every notifier concurrently and returns the failures joined.
// A failing notifier does not stop the others.
func (p *eventPublisher) deliver(ctx context.Context, event model.EntryEvent) error {
	var eg errgroup.Group
	errs := make([]error, len(p.notifiers))
	for i, n := range p.notifiers {
		eg.Go(func() error {
			if err := n.Notify(ctx, event); err != nil {
				errs[i] = goerr.Wrap(err, "failed to notify entry event",
					goerr.V("notifier", fmt.Sprintf("%T", n)),
					goerr.V("kind", event.Kind),
					goerr.V("date", event.Date),
					goerr.V("action", event.Action))
				return errs[i]
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Join(errs...)
	}
	return nil
}
