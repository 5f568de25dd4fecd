package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// State token errors.
var (
	ErrInvalidToken   = errors.New("invalid token format")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
)

// statePayload is the wire form of a state token: the caller's payload plus
// an expiry stamp, both covered by the signature.
type statePayload struct {
	Data      json.RawMessage `json:"d"`
	ExpiresAt int64           `json:"exp"`
}

// GenerateStateToken creates a tamper-evident, time-limited token by JSON
// encoding the payload and appending a truncated HMAC-SHA256 signature.
// Used to correlate mandate-setup redirects without trusting the client.
func GenerateStateToken[T any](payload T, secret string, ttl time.Duration, clock Clock) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	wrapped, err := json.Marshal(statePayload{
		Data:      data,
		ExpiresAt: clock.Now().Add(ttl).Unix(),
	})
	if err != nil {
		return "", err
	}

	payloadEnc := base64.RawURLEncoding.EncodeToString(wrapped)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(wrapped)
	sig := h.Sum(nil)[:16]
	sigEnc := base64.RawURLEncoding.EncodeToString(sig)

	return payloadEnc + "." + sigEnc, nil
}

// ParseStateToken verifies the token's signature and expiry and decodes the
// payload. It fails closed: any malformed, tampered or expired token is an error.
func ParseStateToken[T any](token string, secret string, clock Clock) (T, error) {
	var payload T
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return payload, ErrInvalidToken
	}

	wrapped, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return payload, ErrInvalidToken
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(wrapped)
	expectedSig := h.Sum(nil)[:16]

	if subtle.ConstantTimeCompare(sig, expectedSig) != 1 {
		return payload, ErrTokenSignature
	}

	var wrapper statePayload
	if err := json.Unmarshal(wrapped, &wrapper); err != nil {
		return payload, ErrInvalidToken
	}

	if clock.Now().Unix() > wrapper.ExpiresAt {
		return payload, ErrTokenExpired
	}

	if err := json.Unmarshal(wrapper.Data, &payload); err != nil {
		return payload, ErrInvalidToken
	}

	return payload, nil
}
