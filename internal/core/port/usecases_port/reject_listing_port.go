package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type RejectListingUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session, listingID int64, reason string) (*domain.ActionResult, error)
}
