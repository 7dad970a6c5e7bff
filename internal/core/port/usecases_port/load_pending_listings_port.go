package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type LoadPendingListingsUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session) ([]domain.Property, error)
}
