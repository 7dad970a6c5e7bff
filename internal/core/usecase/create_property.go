package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/port/usecases_port"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// CreatePropertyUseCase отправляет форму создания объявления.
// Одинаковые формы одной сессии, отправленные, пока первая в полете, присоединяются к ней
// (повторный клик). Разные формы уходят в backend каждая своим запросом.
type CreatePropertyUseCase struct {
	backend    port.ListingBackendPort
	properties usecases_port.LoadMyPropertiesUseCasePort
	stats      usecases_port.DashboardStatsUseCasePort
	publisher  port.ActivityPublisherPort

	group singleflight.Group

	mu       sync.Mutex
	inFlight map[string]int // token -> число отправок в полете
}

func NewCreatePropertyUseCase(
	backend port.ListingBackendPort,
	properties usecases_port.LoadMyPropertiesUseCasePort,
	stats usecases_port.DashboardStatsUseCasePort,
	publisher port.ActivityPublisherPort,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		backend:    backend,
		properties: properties,
		stats:      stats,
		publisher:  publisher,
		inFlight:   make(map[string]int),
	}
}

func (uc *CreatePropertyUseCase) InFlight(session *domain.Session) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inFlight[session.Token] > 0
}

func (uc *CreatePropertyUseCase) track(token string, delta int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[token] += delta; uc.inFlight[token] <= 0 {
		delete(uc.inFlight, token)
	}
}

// submissionKey - токен сессии плюс отпечаток нормализованной формы.
func submissionKey(token string, payload *domain.NewProperty) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint submission: %w", err)
	}
	return token + "/" + uuid.NewSHA1(uuid.NameSpaceOID, body).String(), nil
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, session *domain.Session, form domain.PropertyForm) (*domain.CreatePropertyResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateProperty",
		"user":     session.User.Email,
	})
	ucLogger.Info("Use case started", nil)

	payload, err := form.Normalize()
	if err != nil {
		ucLogger.Warn("Form validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	key, err := submissionKey(session.Token, payload)
	if err != nil {
		ucLogger.Error("Error creating property", err, nil)
		return nil, err
	}

	// Общий запрос не зависит от отмены контекста того, кто его начал:
	// присоединившиеся ждут результат, а каждый из них отменяет только свое ожидание.
	backendCtx := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(key, func() (interface{}, error) {
		uc.track(session.Token, 1)
		defer uc.track(session.Token, -1)
		return uc.backend.CreateProperty(backendCtx, session, payload)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		ucLogger.Warn("Client gone before submission finished", port.Fields{"error": ctx.Err().Error()})
		return nil, ctx.Err()
	}
	if res.Shared {
		ucLogger.Debug("Joined an identical in-flight submission", nil)
	}
	if res.Err != nil {
		ucLogger.Error("Error creating property", res.Err, nil)
		return nil, res.Err
	}
	created, _ := res.Val.(*domain.Property)

	if created == nil {
		// 201 без тела: объявление создано, но его id неизвестен, событие не отправляется.
		ucLogger.Warn("Backend returned no created listing, activity event skipped", nil)
	} else {
		event := domain.ActivityEvent{
			Kind:       domain.ActivityPropertyCreated,
			ListingID:  created.ID,
			ActorEmail: session.User.Email,
			Message:    created.Title,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.Publish(ctx, event); err != nil {
			ucLogger.Warn("Failed to publish activity event", port.Fields{"error": err.Error()})
		}
	}

	result := &domain.CreatePropertyResult{Created: created}
	if listings, err := uc.properties.Execute(ctx, session); err != nil {
		result.RefreshErr = fmt.Errorf("refresh after create: %w", err)
	} else {
		result.Listings = listings
	}
	if stats, err := uc.stats.Execute(ctx, session); err != nil {
		result.StatsErr = err
	} else {
		result.Stats = stats
	}

	ucLogger.Info("Use case finished successfully", nil)
	return result, nil
}
