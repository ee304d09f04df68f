package events

import (
	"encoding/json"
	"testing"

	"conesites/cmd/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCreated_SerializesFlat(t *testing.T) {
	raw, err := json.Marshal(NewEntityCreated(contract.EntityCandidate, "CAND-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ENTITY_CREATED","entity":"candidate","id":"CAND-1"}`, string(raw))
}

func TestEventTypes(t *testing.T) {
	assert.Equal(t, contract.EventAck, NewAck().GetType())
	assert.Equal(t, contract.EventSessionExpired, NewSessionExpired().GetType())
}
