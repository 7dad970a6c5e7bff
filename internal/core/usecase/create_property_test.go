package usecase

import (
	"context"
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreate(backend *fakeBackend, publisher *fakePublisher) *CreatePropertyUseCase {
	return NewCreatePropertyUseCase(backend, NewLoadMyPropertiesUseCase(backend), NewDashboardStatsUseCase(backend), publisher)
}

func validForm() domain.PropertyForm {
	return domain.PropertyForm{Title: "Villa", Address: "Hill 1", Price: "100", Type: "Villa", Status: "AVAILABLE", AssignedAgentID: "5"}
}

func TestCreateWithoutAgentMakesNoCall(t *testing.T) {
	backend := &fakeBackend{}
	uc := newCreate(backend, &fakePublisher{})

	form := validForm()
	form.AssignedAgentID = ""
	_, err := uc.Execute(context.Background(), agentSession(), form)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Empty(t, backend.calls)
}

func TestCreateSuccessRefreshesListAndStats(t *testing.T) {
	backend := &fakeBackend{
		created: &domain.Property{ID: 42, Title: "Villa"},
		mine:    []domain.Property{{ID: 42, Title: "Villa"}, {ID: 1}},
	}
	publisher := &fakePublisher{}
	uc := newCreate(backend, publisher)

	result, err := uc.Execute(context.Background(), agentSession(), validForm())
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.Created.ID)
	assert.Len(t, result.Listings, 2)
	assert.Equal(t, 2, result.Stats.ListingsCount)
	assert.NoError(t, result.RefreshErr)
	assert.NoError(t, result.StatsErr)
	assert.Equal(t, 1, backend.count("create"))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.ActivityPropertyCreated, publisher.events[0].Kind)
	assert.Equal(t, int64(42), publisher.events[0].ListingID)
}

func TestCreateFailureKeepsBackendMessage(t *testing.T) {
	backend := &fakeBackend{createErr: &domain.BackendError{StatusCode: 400, Message: "Price must be positive"}}
	uc := newCreate(backend, &fakePublisher{})

	_, err := uc.Execute(context.Background(), agentSession(), validForm())
	require.Error(t, err)
	assert.Equal(t, "Price must be positive", domain.FailureMessage(err, "Failed to create property."))
	assert.Equal(t, 0, backend.count("mine"))
}

func TestDuplicateSubmissionIssuesOnePost(t *testing.T) {
	backend := &fakeBackend{
		created:    &domain.Property{ID: 9},
		createGate: make(chan struct{}),
		createdIn:  make(chan struct{}),
	}
	uc := newCreate(backend, &fakePublisher{})
	session := agentSession()

	var wg sync.WaitGroup
	results := make([]*domain.CreatePropertyResult, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = uc.Execute(context.Background(), session, validForm())
	}()

	// первая отправка уже в полете
	<-backend.createdIn
	assert.True(t, uc.InFlight(session))

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = uc.Execute(context.Background(), session, validForm())
	}()

	// даем второй горутине присоединиться к запросу
	time.Sleep(100 * time.Millisecond)
	close(backend.createGate)
	wg.Wait()

	assert.Equal(t, 1, backend.count("create"))
	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, int64(9), results[0].Created.ID)
	assert.Equal(t, int64(9), results[1].Created.ID)
	assert.False(t, uc.InFlight(session))
}

func TestDifferentSubmissionsEachReachBackend(t *testing.T) {
	backend := &fakeBackend{
		echoCreated: true,
		createGate:  make(chan struct{}),
		createdIn:   make(chan struct{}),
	}
	uc := newCreate(backend, &fakePublisher{})
	session := agentSession()

	first, second := validForm(), validForm()
	first.Title = "First"
	second.Title = "Second, a different listing"

	var wg sync.WaitGroup
	results := make([]*domain.CreatePropertyResult, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = uc.Execute(context.Background(), session, first)
	}()
	<-backend.createdIn

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = uc.Execute(context.Background(), session, second)
	}()

	// вторая форма уходит в backend, пока первая еще в полете
	assert.Eventually(t, func() bool { return backend.count("create") == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, uc.InFlight(session))
	close(backend.createGate)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, "First", results[0].Created.Title)
	assert.Equal(t, "Second, a different listing", results[1].Created.Title)
	assert.NotEqual(t, results[0].Created.ID, results[1].Created.ID)
	assert.False(t, uc.InFlight(session))
}

func TestJoinedSubmissionSurvivesFirstClientCancel(t *testing.T) {
	backend := &fakeBackend{
		created:    &domain.Property{ID: 11, Title: "Villa"},
		createGate: make(chan struct{}),
		createdIn:  make(chan struct{}),
	}
	uc := newCreate(backend, &fakePublisher{})
	session := agentSession()

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.Execute(firstCtx, session, validForm())
		firstErr <- err
	}()
	<-backend.createdIn

	secondDone := make(chan struct{})
	var second *domain.CreatePropertyResult
	var secondErr error
	go func() {
		defer close(secondDone)
		second, secondErr = uc.Execute(context.Background(), session, validForm())
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(backend.createGate)
	<-secondDone

	require.NoError(t, secondErr)
	assert.Equal(t, int64(11), second.Created.ID)
	assert.Equal(t, 1, backend.count("create"))
	require.Len(t, backend.createCtxErr, 1)
	assert.NoError(t, backend.createCtxErr[0])
}

func TestCreateWithoutBodyLogsSkippedEvent(t *testing.T) {
	backend := &fakeBackend{mine: []domain.Property{{ID: 3}}}
	publisher := &fakePublisher{}
	uc := newCreate(backend, publisher)
	logger := newRecordingLogger()
	ctx := contextkeys.ContextWithLogger(context.Background(), logger)

	result, err := uc.Execute(ctx, agentSession(), validForm())
	require.NoError(t, err)

	assert.Nil(t, result.Created)
	assert.Len(t, result.Listings, 1)
	assert.Equal(t, 1, result.Stats.ListingsCount)
	assert.Empty(t, publisher.events)
	assert.True(t, logger.has("warn", "Backend returned no created listing, activity event skipped"))
}
