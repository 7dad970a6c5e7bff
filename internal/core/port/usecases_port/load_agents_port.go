package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type LoadAgentsUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session, selectedID string) ([]domain.AgentOption, error)
}
