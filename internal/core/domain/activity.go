package domain

import "time"

// ActivityKind - тип действия пользователя портала.
type ActivityKind string

const (
	ActivityListingApproved ActivityKind = "listing.approved"
	ActivityListingRejected ActivityKind = "listing.rejected"
	ActivityPropertyCreated ActivityKind = "property.created"
)

// ActivityEvent - событие об успешной мутации, уходит в шину событий.
type ActivityEvent struct {
	Kind       ActivityKind
	ListingID  int64
	ActorEmail string
	Message    string
	OccurredAt time.Time
}
