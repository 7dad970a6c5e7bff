package usecases_port

import (
	"context"
	"listing-portal/internal/core/domain"
)

type ApproveListingUseCasePort interface {
	Execute(ctx context.Context, session *domain.Session, listingID int64, decision domain.ApprovalDecision) (*domain.ActionResult, error)
}
