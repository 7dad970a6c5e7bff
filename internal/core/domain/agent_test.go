package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedValues(options []AgentOption) []string {
	var values []string
	for _, o := range options {
		if o.Selected {
			values = append(values, o.Value)
		}
	}
	return values
}

func TestAgentOptions(t *testing.T) {
	agents := []Agent{{ID: 1, Name: "Ann Lee"}, {ID: 2, Name: "Bob Smith"}, {ID: 3, Name: "Cid"}}
	agentID := int64(3)

	t.Run("empty list gives a disabled placeholder", func(t *testing.T) {
		options := AgentOptions(nil, "", User{})
		require.Len(t, options, 1)
		assert.Equal(t, "No agents available", options[0].Label)
		assert.True(t, options[0].Disabled)
		assert.Equal(t, "", options[0].Value)
	})

	t.Run("explicit selection wins", func(t *testing.T) {
		options := AgentOptions(agents, "2", User{AgentID: &agentID})
		assert.Equal(t, []string{"2"}, selectedValues(options))
	})

	t.Run("session agent id", func(t *testing.T) {
		options := AgentOptions(agents, "", User{Name: "Bob Smith", AgentID: &agentID})
		assert.Equal(t, []string{"3"}, selectedValues(options))
	})

	t.Run("name match ignores case and spaces", func(t *testing.T) {
		options := AgentOptions(agents, "", User{Name: "  bob SMITH "})
		assert.Equal(t, []string{"2"}, selectedValues(options))
	})

	t.Run("first agent by default", func(t *testing.T) {
		options := AgentOptions(agents, "", User{Name: "Nobody"})
		assert.Equal(t, []string{"1"}, selectedValues(options))
	})

	t.Run("unknown preferred id falls back to first", func(t *testing.T) {
		options := AgentOptions(agents, "99", User{Name: "Bob Smith"})
		assert.Equal(t, []string{"1"}, selectedValues(options))
	})
}

func TestAgentFirstName(t *testing.T) {
	assert.Equal(t, "Ann", Agent{Name: "Ann Lee"}.FirstName())
	assert.Equal(t, "", Agent{}.FirstName())
}

func TestSessionHasRole(t *testing.T) {
	s := &Session{User: User{Role: "admin"}}
	assert.True(t, s.HasRole(RoleAdmin))
	assert.False(t, s.HasRole(RoleAgent))
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "Title taken", FailureMessage(&BackendError{StatusCode: 400, Message: "Title taken", Body: `{"message":"Title taken"}`}, "fallback"))
	assert.Equal(t, "boom", FailureMessage(&BackendError{StatusCode: 500, Body: "boom"}, "fallback"))
	assert.Equal(t, "fallback", FailureMessage(&BackendError{StatusCode: 500}, "fallback"))
	assert.Equal(t, "fallback", FailureMessage(assert.AnError, "fallback"))
}
