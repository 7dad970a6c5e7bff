package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/contracts"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher.
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
	Close() error
}

type activityEventDTO struct {
	EventID    uuid.UUID `json:"event_id"`
	Event      string    `json:"event"`
	ListingID  int64     `json:"listing_id"`
	ActorEmail string    `json:"actor_email"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActivityPublisherAdapter публикует события портала в topic-обменник, ключ маршрутизации - тип события.
type ActivityPublisherAdapter struct {
	producer MessagePublisher
}

func NewActivityPublisherAdapter(producer MessagePublisher) (*ActivityPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &ActivityPublisherAdapter{producer: producer}, nil
}

func (a *ActivityPublisherAdapter) Publish(ctx context.Context, event domain.ActivityEvent) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ActivityPublisherAdapter",
		"routing_key": string(event.Kind),
	})

	dto := activityEventDTO{
		EventID:    uuid.New(),
		Event:      string(event.Kind),
		ListingID:  event.ListingID,
		ActorEmail: event.ActorEmail,
		Message:    event.Message,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if err := contracts.Validate(contracts.ActivityEventV1, dto); err != nil {
		adapterLogger.Error("Activity event does not match contract", err, nil)
		return err
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("failed to marshal activity event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    dto.EventID.String(),
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    "ActivityEvent",
			"event-version": "1.0.0",
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, string(event.Kind), msg); err != nil {
		adapterLogger.Error("Failed to publish activity event", err, nil)
		return err
	}

	adapterLogger.Debug("Activity event published", port.Fields{"event_id": dto.EventID.String()})
	return nil
}

func (a *ActivityPublisherAdapter) Close() error {
	return a.producer.Close()
}

// NoopActivityPublisher используется, когда шина выключена (RABBITMQ_ENABLED=false).
type NoopActivityPublisher struct{}

func (NoopActivityPublisher) Publish(context.Context, domain.ActivityEvent) error { return nil }

func (NoopActivityPublisher) Close() error { return nil }
