package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
)

// DashboardStatsUseCase считает карточки дашборда агента.
type DashboardStatsUseCase struct {
	backend port.ListingBackendPort
}

func NewDashboardStatsUseCase(backend port.ListingBackendPort) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{backend: backend}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context, session *domain.Session) (domain.DashboardStats, error) {
	if session.Token == "" {
		return domain.DashboardStats{}, nil
	}

	listings, err := uc.backend.GetMyListings(ctx, session)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Failed to fetch stats", port.Fields{
			"use_case": "DashboardStats",
			"error":    err.Error(),
		})
		return domain.DashboardStats{}, fmt.Errorf("failed to fetch stats: %w", err)
	}

	return domain.DashboardStats{ListingsCount: len(listings)}, nil
}
