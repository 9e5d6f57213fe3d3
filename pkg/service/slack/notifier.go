package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts entry events to a Slack channel
type Notifier struct {
	api     *slack.Client
	channel string
	catalog *model.ActionCatalog
}

var _ interfaces.Notifier = &Notifier{}

// Option is a functional option for Notifier configuration
type Option func(*notifierConfig)

type notifierConfig struct {
	apiURL  string
	catalog *model.ActionCatalog
}

// WithAPIURL overrides the Slack API endpoint. The URL must end with a slash.
func WithAPIURL(url string) Option {
	return func(c *notifierConfig) {
		c.apiURL = url
	}
}

// WithCatalog sets the labels used in messages
func WithCatalog(catalog *model.ActionCatalog) Option {
	return func(c *notifierConfig) {
		c.catalog = catalog
	}
}

// New creates a Slack notifier with the provided bot token and channel ID
func New(token, channel string, opts ...Option) (*Notifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	cfg := &notifierConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = model.NewActionCatalog(nil)
	}

	var apiOpts []slack.Option
	if cfg.apiURL != "" {
		apiOpts = append(apiOpts, slack.OptionAPIURL(cfg.apiURL))
	}

	return &Notifier{
		api:     slack.New(token, apiOpts...),
		channel: channel,
		catalog: cfg.catalog,
	}, nil
}

func (n *Notifier) Notify(ctx context.Context, event model.EntryEvent) error {
	text := formatMessage(event, n.catalog)

	_, _, err := n.api.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post message",
			goerr.V("channel", n.channel),
			goerr.V("kind", event.Kind))
	}

	return nil
}

func formatMessage(event model.EntryEvent, catalog *model.ActionCatalog) string {
	label := catalog.Label(event.Action)

	switch event.Kind {
	case model.EntryEventLogged:
		return fmt.Sprintf(":wastebasket: %s logged for %s", label, event.Date)
	case model.EntryEventApproved:
		return fmt.Sprintf(":white_check_mark: %s approved for %s (%d)", label, event.Date, event.Affected)
	case model.EntryEventUnapproved:
		return fmt.Sprintf(":leftwards_arrow_with_hook: %s approval revoked for %s (%d)", label, event.Date, event.Affected)
	case model.EntryEventUndone:
		return fmt.Sprintf(":x: %s undone for %s", label, event.Date)
	default:
		return fmt.Sprintf("%s %s for %s", label, event.Kind, event.Date)
	}
}
