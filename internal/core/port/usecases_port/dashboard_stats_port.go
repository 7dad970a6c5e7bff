package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type DashboardStatsUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session) (domain.DashboardStats, error)
}
