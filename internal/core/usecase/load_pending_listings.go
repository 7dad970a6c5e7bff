package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
)

type LoadPendingListingsUseCase struct {
	backend port.ListingBackendPort
}

func NewLoadPendingListingsUseCase(backend port.ListingBackendPort) *LoadPendingListingsUseCase {
	return &LoadPendingListingsUseCase{backend: backend}
}

func (uc *LoadPendingListingsUseCase) Execute(ctx context.Context, session *domain.Session) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "LoadPendingListings",
		"user":     session.User.Email,
	})
	ucLogger.Debug("Fetching pending listings...", nil)

	listings, err := uc.backend.GetPendingListings(ctx, session)
	if err != nil {
		ucLogger.Error("Failed to load pending listings", err, nil)
		return nil, fmt.Errorf("failed to load pending listings: %w", err)
	}

	ucLogger.Info("Pending listings loaded", port.Fields{"count": len(listings)})
	return listings, nil
}
