package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	botToken string
	channel  string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for entry notifications)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("CURBSIDE_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post entry notifications to",
			Category:    "Slack",
			Destination: &x.channel,
			Sources:     cli.EnvVars("CURBSIDE_SLACK_CHANNEL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channel),
	)
}

// IsConfigured returns true if both token and channel are set
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channel != ""
}

// Configure returns a Slack notifier, or nil when Slack is not configured
func (x *Slack) Configure(catalog *model.ActionCatalog) (interfaces.Notifier, error) {
	if x.botToken == "" && x.channel == "" {
		return nil, nil
	}
	if !x.IsConfigured() {
		return nil, goerr.Wrap(ErrInvalidConfig, "both slack-bot-token and slack-channel are required")
	}

	n, err := slack.New(x.botToken, x.channel, slack.WithCatalog(catalog))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create slack notifier")
	}
	return n, nil
}
