package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type VerifySessionUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session) error
}
