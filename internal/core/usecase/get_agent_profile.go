package usecase

import (
	"context"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
)

type GetAgentProfileUseCase struct {
	backend port.ListingBackendPort
}

func NewGetAgentProfileUseCase(backend port.ListingBackendPort) *GetAgentProfileUseCase {
	return &GetAgentProfileUseCase{backend: backend}
}

func (uc *GetAgentProfileUseCase) Execute(ctx context.Context, session *domain.Session) (*domain.Agent, error) {
	if session.User.AgentID == nil {
		return nil, nil
	}
	agentID := *session.User.AgentID

	agent, err := uc.backend.GetAgent(ctx, session, agentID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Could not load agent profile", port.Fields{
			"use_case": "GetAgentProfile",
			"agent_id": agentID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("failed to load agent profile: %w", err)
	}
	return agent, nil
}
