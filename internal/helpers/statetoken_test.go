package helpers_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhouse/clubhouse-api/internal/helpers"
)

type tokenPayload struct {
	UserID string `json:"user_id"`
	FlowID string `json:"flow_id"`
}

func TestStateToken_RoundTrip(t *testing.T) {
	clock := helpers.FixedClock{Fixed: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)}
	payload := tokenPayload{UserID: "u1", FlowID: "RE123"}

	token, err := helpers.GenerateStateToken(payload, "secret", 30*time.Minute, clock)
	require.NoError(t, err)
	assert.Contains(t, token, ".")

	parsed, err := helpers.ParseStateToken[tokenPayload](token, "secret", clock)
	require.NoError(t, err)
	assert.Equal(t, payload, parsed)
}

func TestStateToken_WrongSecret(t *testing.T) {
	clock := helpers.FixedClock{Fixed: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)}

	token, err := helpers.GenerateStateToken(tokenPayload{FlowID: "RE123"}, "secret", 30*time.Minute, clock)
	require.NoError(t, err)

	_, err = helpers.ParseStateToken[tokenPayload](token, "other", clock)
	assert.ErrorIs(t, err, helpers.ErrTokenSignature)
}

func TestStateToken_Expired(t *testing.T) {
	issued := helpers.FixedClock{Fixed: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)}

	token, err := helpers.GenerateStateToken(tokenPayload{FlowID: "RE123"}, "secret", 30*time.Minute, issued)
	require.NoError(t, err)

	within := helpers.FixedClock{Fixed: issued.Fixed.Add(29 * time.Minute)}
	_, err = helpers.ParseStateToken[tokenPayload](token, "secret", within)
	assert.NoError(t, err)

	after := helpers.FixedClock{Fixed: issued.Fixed.Add(31 * time.Minute)}
	_, err = helpers.ParseStateToken[tokenPayload](token, "secret", after)
	assert.ErrorIs(t, err, helpers.ErrTokenExpired)
}

func TestStateToken_Tampered(t *testing.T) {
	clock := helpers.FixedClock{Fixed: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)}

	token, err := helpers.GenerateStateToken(tokenPayload{UserID: "u1"}, "secret", 30*time.Minute, clock)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)

	// flipping payload bytes must break the signature
	mutated := "A" + parts[0][1:]
	if mutated == parts[0] {
		mutated = "B" + parts[0][1:]
	}
	_, err = helpers.ParseStateToken[tokenPayload](mutated+"."+parts[1], "secret", clock)
	assert.Error(t, err)

	_, err = helpers.ParseStateToken[tokenPayload]("no-dot-separator", "secret", clock)
	assert.ErrorIs(t, err, helpers.ErrInvalidToken)

	_, err = helpers.ParseStateToken[tokenPayload](parts[0]+"."+parts[1]+"."+parts[1], "secret", clock)
	assert.ErrorIs(t, err, helpers.ErrInvalidToken)

	_, err = helpers.ParseStateToken[tokenPayload]("%%."+parts[1], "secret", clock)
	assert.ErrorIs(t, err, helpers.ErrInvalidToken)
}
