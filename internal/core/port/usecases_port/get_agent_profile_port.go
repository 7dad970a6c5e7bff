package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type GetAgentProfileUseCasePort interface {
	// Возвращает nil без ошибки, если у пользователя нет agentId
	Execute(ctx context.Context, session *domain.Session) (*domain.Agent, error)
}
