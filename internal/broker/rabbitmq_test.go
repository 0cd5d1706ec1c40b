package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+"/"+kind)
	if !durable {
		return errors.New("exchange must be durable")
	}
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "weshare.bookings", time.Second, newTestLogger(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"weshare.bookings/topic"}, ch.declared)

	event := domain.BookingEvent{
		Type:          domain.EventBookingCreated,
		RideID:        "r1",
		BookingID:     "b1",
		UserID:        "u1",
		CheckInStatus: domain.CheckInPending,
		BookedSeats:   3,
		Seats:         4,
		OccurredAt:    time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC),
	}

	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "weshare.bookings", got.exchange)
	assert.Equal(t, "booking.created", got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "application/json", got.msg.ContentType)

	var decoded domain.BookingEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, event, decoded)
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: amqp.ErrClosed}
	p, err := newPublisher(ch, "weshare.bookings", time.Second, newTestLogger(t))
	require.NoError(t, err)

	err = p.Publish(context.Background(), domain.BookingEvent{Type: domain.EventRideCancelled, RideID: "r1"})

	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "x", time.Second, newTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher

	assert.NoError(t, p.Publish(context.Background(), domain.BookingEvent{}))
	assert.NoError(t, p.Close())
}
