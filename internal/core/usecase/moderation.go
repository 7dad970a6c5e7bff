package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/port/usecases_port"
	"strings"
	"time"
)

// moderationCall - один из двух вызовов модерации на backend.
type moderationCall func(ctx context.Context, session *domain.Session, id int64, text string) error

// moderate - общий сценарий approve/reject: пустой текст отменяет действие без запроса,
// успешная мутация публикует событие и перезагружает список ожидающих объявлений.
func moderate(
	ctx context.Context,
	ucLogger port.LoggerPort,
	call moderationCall,
	loader usecases_port.LoadPendingListingsUseCasePort,
	publisher port.ActivityPublisherPort,
	session *domain.Session,
	listingID int64,
	text string,
	kind domain.ActivityKind,
) (*domain.ActionResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		ucLogger.Info("Action cancelled by user, nothing sent", nil)
		return &domain.ActionResult{Aborted: true}, nil
	}

	if err := call(ctx, session, listingID, text); err != nil {
		ucLogger.Error("Backend rejected moderation request", err, nil)
		return nil, err
	}

	event := domain.ActivityEvent{
		Kind:       kind,
		ListingID:  listingID,
		ActorEmail: session.User.Email,
		Message:    text,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		// Событие вторично, действие на backend уже выполнено.
		ucLogger.Warn("Failed to publish activity event", port.Fields{"error": err.Error()})
	}

	result := &domain.ActionResult{}
	listings, err := loader.Execute(ctx, session)
	if err != nil {
		result.RefreshErr = fmt.Errorf("refresh after %s: %w", kind, err)
	} else {
		result.Listings = listings
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}

type ApproveListingUseCase struct {
	backend   port.ListingBackendPort
	loader    usecases_port.LoadPendingListingsUseCasePort
	publisher port.ActivityPublisherPort
}

func NewApproveListingUseCase(
	backend port.ListingBackendPort,
	loader usecases_port.LoadPendingListingsUseCasePort,
	publisher port.ActivityPublisherPort,
) *ApproveListingUseCase {
	return &ApproveListingUseCase{backend: backend, loader: loader, publisher: publisher}
}

func (uc *ApproveListingUseCase) Execute(ctx context.Context, session *domain.Session, listingID int64, decision domain.ApprovalDecision) (*domain.ActionResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "ApproveListing",
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	if !decision.Confirmed {
		ucLogger.Info("Approval not confirmed, nothing sent", nil)
		return &domain.ActionResult{Aborted: true}, nil
	}

	return moderate(ctx, ucLogger, uc.backend.ApproveListing, uc.loader, uc.publisher,
		session, listingID, decision.Message, domain.ActivityListingApproved)
}

type RejectListingUseCase struct {
	backend   port.ListingBackendPort
	loader    usecases_port.LoadPendingListingsUseCasePort
	publisher port.ActivityPublisherPort
}

func NewRejectListingUseCase(
	backend port.ListingBackendPort,
	loader usecases_port.LoadPendingListingsUseCasePort,
	publisher port.ActivityPublisherPort,
) *RejectListingUseCase {
	return &RejectListingUseCase{backend: backend, loader: loader, publisher: publisher}
}

func (uc *RejectListingUseCase) Execute(ctx context.Context, session *domain.Session, listingID int64, reason string) (*domain.ActionResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "RejectListing",
		"listing_id": listingID,
	})
	ucLogger.Info("Use case started", nil)

	return moderate(ctx, ucLogger, uc.backend.RejectListing, uc.loader, uc.publisher,
		session, listingID, reason, domain.ActivityListingRejected)
}
