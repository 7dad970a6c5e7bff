package usecase

import (
	"context"
	"errors"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"net/http"
)

// VerifySessionUseCase проверяет переданную страницей логина сессию до того, как портал ее подпишет:
// токен должен открывать в backend то, что положено заявленной роли.
type VerifySessionUseCase struct {
	backend port.ListingBackendPort
}

func NewVerifySessionUseCase(backend port.ListingBackendPort) *VerifySessionUseCase {
	return &VerifySessionUseCase{backend: backend}
}

func (uc *VerifySessionUseCase) Execute(ctx context.Context, session *domain.Session) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "VerifySession",
		"user":     session.User.Email,
		"role":     session.User.Role,
	})

	var err error
	switch {
	case session.HasRole(domain.RoleAdmin):
		_, err = uc.backend.GetPendingListings(ctx, session)
	case session.HasRole(domain.RoleAgent):
		_, err = uc.backend.GetMyListings(ctx, session)
	default:
		// Остальным ролям портал ничего не открывает, только отправляет на их страницу.
		return nil
	}
	if err == nil {
		ucLogger.Debug("Session confirmed by backend", nil)
		return nil
	}

	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) &&
		(backendErr.StatusCode == http.StatusUnauthorized || backendErr.StatusCode == http.StatusForbidden) {
		ucLogger.Warn("Backend rejected session token", port.Fields{"status_code": backendErr.StatusCode})
		return fmt.Errorf("%w: %w", domain.ErrSessionRejected, err)
	}
	ucLogger.Error("Failed to verify session", err, nil)
	return fmt.Errorf("failed to verify session: %w", err)
}
