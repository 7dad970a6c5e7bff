package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
)

type LoadMyPropertiesUseCase struct {
	backend port.ListingBackendPort
}

func NewLoadMyPropertiesUseCase(backend port.ListingBackendPort) *LoadMyPropertiesUseCase {
	return &LoadMyPropertiesUseCase{backend: backend}
}

func (uc *LoadMyPropertiesUseCase) Execute(ctx context.Context, session *domain.Session) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "LoadMyProperties",
		"user":     session.User.Email,
	})

	properties, err := uc.backend.GetMyListings(ctx, session)
	if err != nil {
		ucLogger.Error("Error loading properties", err, nil)
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	ucLogger.Info("Properties loaded", port.Fields{"count": len(properties)})
	return properties, nil
}
