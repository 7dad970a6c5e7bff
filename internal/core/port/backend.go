package port

import (
	"context"
	"listing-portal/internal/core/domain"
)

// ListingBackendPort - контракт клиента REST backend-а.
// Все вызовы, кроме публичного списка агентов, выполняются с токеном сессии.
type ListingBackendPort interface {
	GetPendingListings(ctx context.Context, session *domain.Session) ([]domain.Property, error)
	ApproveListing(ctx context.Context, session *domain.Session, id int64, message string) error
	RejectListing(ctx context.Context, session *domain.Session, id int64, reason string) error

	GetMyListings(ctx context.Context, session *domain.Session) ([]domain.Property, error)
	CreateProperty(ctx context.Context, session *domain.Session, property *domain.NewProperty) (*domain.Property, error)

	GetAgent(ctx context.Context, session *domain.Session, agentID int64) (*domain.Agent, error)
	// ListAgents пробует /api/agents с токеном, при ошибке - /api/agents/public.
	ListAgents(ctx context.Context, session *domain.Session) ([]domain.Agent, error)
}
