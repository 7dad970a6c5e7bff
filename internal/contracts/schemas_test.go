package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() map[string]any {
	return map[string]any{
		"title":         "Cabin",
		"address":       "Woods",
		"price":         nil,
		"type":          "House",
		"status":        "AVAILABLE",
		"description":   nil,
		"bedrooms":      2,
		"bathrooms":     nil,
		"areaSqFt":      850.5,
		"imageUrl":      nil,
		"imageUrls":     []string{},
		"facilities":    []string{"Gym"},
		"houseRules":    nil,
		"assignedAgent": map[string]any{"id": 5},
	}
}

func TestKeyFromPath(t *testing.T) {
	assert.Equal(t, CreatePropertyRequestV1, keyFromPath("schemas/create-property/v1.json"))
	assert.Equal(t, ActivityEventV1, keyFromPath("schemas/activity-event/v1.json"))
	assert.Equal(t, "", keyFromPath("schemas/broken.json"))
}

func TestValidateCreateProperty(t *testing.T) {
	require.NoError(t, Validate(CreatePropertyRequestV1, validCreatePayload()))

	fractionalBedrooms := validCreatePayload()
	fractionalBedrooms["bedrooms"] = 2.5
	assert.Error(t, Validate(CreatePropertyRequestV1, fractionalBedrooms))

	missingAgent := validCreatePayload()
	delete(missingAgent, "assignedAgent")
	assert.Error(t, Validate(CreatePropertyRequestV1, missingAgent))

	extra := validCreatePayload()
	extra["owner"] = "me"
	assert.Error(t, Validate(CreatePropertyRequestV1, extra))
}

func TestValidateActivityEvent(t *testing.T) {
	event := map[string]any{
		"event_id":    "0d5b3c1e-8f3a-4d53-9a61-0b6a3f1c2b7e",
		"event":       "listing.approved",
		"listing_id":  7,
		"actor_email": "root@example.com",
		"occurred_at": "2026-10-18T10:00:00Z",
	}
	require.NoError(t, Validate(ActivityEventV1, event))

	event["event"] = "listing.deleted"
	assert.Error(t, Validate(ActivityEventV1, event))
}

func TestValidateUnknownSchema(t *testing.T) {
	assert.Error(t, Validate("Nope/1.0.0", map[string]any{}))
}
