package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session, form domain.PropertyForm) (*domain.CreatePropertyResult, error)
	// InFlight сообщает, что для этой сессии форма сейчас отправляется
	InFlight(session *domain.Session) bool
}
