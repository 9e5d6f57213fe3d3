package amqp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rabbitmq/amqp091-go"
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

const (
	// DefaultExchange is the topic exchange entry events are published to
	DefaultExchange = "curbside.events"

	publishTimeout = 5 * time.Second
)

// channel is the subset of *amqp091.Channel used for publishing
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher publishes entry events as JSON to a topic exchange
type Publisher struct {
	conn     *amqp091.Connection
	ch       channel
	exchange string
}

var _ interfaces.Notifier = &Publisher{}

// New dials url and declares a durable topic exchange
func New(url, exchange string) (*Publisher, error) {
	if url == "" {
		return nil, goerr.New("AMQP URL is required")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to dial AMQP")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, goerr.Wrap(err, "failed to open AMQP channel")
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, goerr.Wrap(err, "failed to declare exchange", goerr.V("exchange", exchange))
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// RoutingKey returns the routing key of an event kind
func RoutingKey(kind model.EntryEventKind) string {
	return "entry." + string(kind)
}

func (p *Publisher) Notify(ctx context.Context, event model.EntryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal event")
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := RoutingKey(event.Kind)
	err = p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return goerr.Wrap(err, "failed to publish event",
			goerr.V("exchange", p.exchange),
			goerr.V("routing_key", key))
	}

	logging.From(ctx).Debug("published entry event",
		"exchange", p.exchange,
		"routing_key", key,
	)

	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
