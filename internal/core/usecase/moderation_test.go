package usecase

import (
	"context"
	"errors"
	"listing-portal/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModeration(backend *fakeBackend, publisher *fakePublisher) (*ApproveListingUseCase, *RejectListingUseCase) {
	loader := NewLoadPendingListingsUseCase(backend)
	return NewApproveListingUseCase(backend, loader, publisher), NewRejectListingUseCase(backend, loader, publisher)
}

func TestApproveAbortsWithoutNetworkCall(t *testing.T) {
	tests := []struct {
		name     string
		decision domain.ApprovalDecision
	}{
		{"declined confirmation", domain.ApprovalDecision{Confirmed: false, Message: "ok"}},
		{"empty message", domain.ApprovalDecision{Confirmed: true, Message: ""}},
		{"blank message", domain.ApprovalDecision{Confirmed: true, Message: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			publisher := &fakePublisher{}
			approve, _ := newModeration(backend, publisher)

			result, err := approve.Execute(context.Background(), adminSession(), 7, tt.decision)
			require.NoError(t, err)
			assert.True(t, result.Aborted)
			assert.Empty(t, backend.calls)
			assert.Empty(t, publisher.events)
		})
	}
}

func TestApproveSuccessTrimsAndRefreshes(t *testing.T) {
	backend := &fakeBackend{pending: []domain.Property{{ID: 8, Title: "Flat"}}}
	publisher := &fakePublisher{}
	approve, _ := newModeration(backend, publisher)

	result, err := approve.Execute(context.Background(), adminSession(), 7, domain.ApprovalDecision{Confirmed: true, Message: "  Welcome aboard  "})
	require.NoError(t, err)

	assert.False(t, result.Aborted)
	assert.Equal(t, []string{"approve", "pending"}, backend.calls)
	assert.Equal(t, []string{"Welcome aboard"}, backend.sent)
	assert.Equal(t, []domain.Property{{ID: 8, Title: "Flat"}}, result.Listings)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.ActivityListingApproved, publisher.events[0].Kind)
	assert.Equal(t, int64(7), publisher.events[0].ListingID)
	assert.Equal(t, "root@example.com", publisher.events[0].ActorEmail)
}

func TestApproveFailureDoesNotRefresh(t *testing.T) {
	backend := &fakeBackend{moderation: &domain.BackendError{StatusCode: 400, Message: "Already approved"}}
	publisher := &fakePublisher{}
	approve, _ := newModeration(backend, publisher)

	result, err := approve.Execute(context.Background(), adminSession(), 7, domain.ApprovalDecision{Confirmed: true, Message: "ok"})
	require.Error(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "Already approved", domain.FailureMessage(err, "fallback"))
	assert.Equal(t, 0, backend.count("pending"))
	assert.Empty(t, publisher.events)
}

func TestRejectRequiresReason(t *testing.T) {
	backend := &fakeBackend{}
	_, reject := newModeration(backend, &fakePublisher{})

	result, err := reject.Execute(context.Background(), adminSession(), 3, " ")
	require.NoError(t, err)
	assert.True(t, result.Aborted)
	assert.Empty(t, backend.calls)
}

func TestRejectSendsTrimmedReason(t *testing.T) {
	backend := &fakeBackend{}
	publisher := &fakePublisher{err: errors.New("broker down")}
	_, reject := newModeration(backend, publisher)

	result, err := reject.Execute(context.Background(), adminSession(), 3, " Blurry photos ")
	require.NoError(t, err, "publish failure must not change the outcome")
	assert.Equal(t, []string{"Blurry photos"}, backend.sent)
	assert.Equal(t, 1, backend.count("pending"))
	assert.NoError(t, result.RefreshErr)
}

func TestRefreshFailureIsReportedSeparately(t *testing.T) {
	backend := &fakeBackend{pendingErr: &domain.BackendError{StatusCode: 500}}
	approve, _ := newModeration(backend, &fakePublisher{})

	result, err := approve.Execute(context.Background(), adminSession(), 1, domain.ApprovalDecision{Confirmed: true, Message: "ok"})
	require.NoError(t, err)
	assert.Error(t, result.RefreshErr)
	assert.Nil(t, result.Listings)
}
