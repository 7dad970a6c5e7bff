package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	keys     []string
	messages []amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeProducer) Publish(_ context.Context, routingKey string, msg amqp.Publishing) error {
	f.keys = append(f.keys, routingKey)
	f.messages = append(f.messages, msg)
	return f.err
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

func TestActivityPublisherPublishesEvent(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewActivityPublisherAdapter(producer)
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-9")
	err = publisher.Publish(ctx, domain.ActivityEvent{
		Kind:       domain.ActivityListingRejected,
		ListingID:  12,
		ActorEmail: "root@example.com",
		Message:    "Blurry photos",
		OccurredAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, []string{"listing.rejected"}, producer.keys)
	msg := producer.messages[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "trace-9", msg.Headers["x-trace-id"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "listing.rejected", body["event"])
	assert.Equal(t, float64(12), body["listing_id"])
	assert.Equal(t, msg.MessageId, body["event_id"])
	assert.Equal(t, "2026-10-18T09:00:00Z", body["occurred_at"])

	require.NoError(t, publisher.Close())
	assert.True(t, producer.closed)
}

func TestActivityPublisherReturnsProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("channel closed")}
	publisher, err := NewActivityPublisherAdapter(producer)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), domain.ActivityEvent{Kind: domain.ActivityPropertyCreated, ListingID: 1, OccurredAt: time.Now()})
	assert.EqualError(t, err, "channel closed")
}

func TestNewActivityPublisherRequiresProducer(t *testing.T) {
	_, err := NewActivityPublisherAdapter(nil)
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopActivityPublisher
	assert.NoError(t, p.Publish(context.Background(), domain.ActivityEvent{}))
	assert.NoError(t, p.Close())
}
