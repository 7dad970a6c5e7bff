package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
)

// LoadAgentsUseCase готовит выпадающий список агентов для формы создания объявления.
type LoadAgentsUseCase struct {
	backend port.ListingBackendPort
}

func NewLoadAgentsUseCase(backend port.ListingBackendPort) *LoadAgentsUseCase {
	return &LoadAgentsUseCase{backend: backend}
}

func (uc *LoadAgentsUseCase) Execute(ctx context.Context, session *domain.Session, selectedID string) ([]domain.AgentOption, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "LoadAgents"})

	agents, err := uc.backend.ListAgents(ctx, session)
	if err != nil {
		ucLogger.Error("Error loading agents for dropdown", err, nil)
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}

	ucLogger.Debug("Agents loaded", port.Fields{"count": len(agents)})
	return domain.AgentOptions(agents, selectedID, session.User), nil
}
