package port

import (
	"context"
	"listing-portal/internal/core/domain"
)

// ActivityPublisherPort публикует события об успешных действиях.
type ActivityPublisherPort interface {
	Publish(ctx context.Context, event domain.ActivityEvent) error
	Close() error
}
