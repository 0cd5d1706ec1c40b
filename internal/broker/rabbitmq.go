package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/config"
	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const exchangeKind = "topic"

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes booking events to a topic exchange, routed by
// event type (booking.created, ride.cancelled, ...).
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
	logger   logger.Logger

	mu sync.Mutex
}

func NewRabbitPublisher(cfg config.RabbitMQConfig, log logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(ch, cfg.Exchange, cfg.PublishTimeout, log)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	log.Info("rabbitmq publisher ready", logger.String("exchange", cfg.Exchange))

	return p, nil
}

func newPublisher(ch channel, exchange string, timeout time.Duration, log logger.Logger) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitPublisher{
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		logger:   log,
	}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	p.logger.Debug("event published",
		logger.String("type", string(event.Type)),
		logger.String("ride_id", event.RideID),
	)

	return nil
}

func (p *RabbitPublisher) Close() error {
	var errs []error
	if err := p.ch.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close channel: %w", err))
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NoopPublisher drops events. Used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
