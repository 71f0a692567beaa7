package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func TestCreateAccessToken_RoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	claims := map[string]any{"sub": "42", "username": "ada", "is_admin": false}

	token, err := CreateAccessToken(claims, 30*time.Minute, testSignKey, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeAccessToken(token, testSignKey, now)
	require.NoError(t, err)

	assert.Equal(t, "42", decoded["sub"])
	assert.Equal(t, "ada", decoded["username"])
	assert.Equal(t, false, decoded["is_admin"])
	assert.Equal(t, float64(now.Add(30*time.Minute).Unix()), decoded[ExpiresAtClaim])
	assert.Len(t, decoded, 4)
}

func TestCreateAccessToken_DoesNotMutateInput(t *testing.T) {
	claims := map[string]any{"sub": "1"}

	_, err := CreateAccessToken(claims, time.Minute, testSignKey, time.Now())
	require.NoError(t, err)

	_, hasExp := claims[ExpiresAtClaim]
	assert.False(t, hasExp)
	assert.Len(t, claims, 1)
}

func TestCreateAccessToken_Deterministic(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	claims := map[string]any{"sub": "7"}

	first, err := CreateAccessToken(claims, time.Hour, testSignKey, now)
	require.NoError(t, err)
	second, err := CreateAccessToken(claims, time.Hour, testSignKey, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateAccessToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		key  string
	}{
		{"empty key", time.Hour, ""},
		{"zero ttl", 0, testSignKey},
		{"negative ttl", -time.Minute, testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateAccessToken(map[string]any{}, tt.ttl, tt.key, time.Now())
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestDecodeAccessToken_Expired(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	token, err := CreateAccessToken(map[string]any{"sub": "1"}, time.Minute, testSignKey, issuedAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{name: "just before expiry", now: issuedAt.Add(59 * time.Second)},
		{name: "at expiry", now: issuedAt.Add(time.Minute), wantErr: ErrAccessTokenExpired},
		{name: "long after expiry", now: issuedAt.Add(24 * time.Hour), wantErr: ErrAccessTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeAccessToken(token, testSignKey, tt.now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1", claims["sub"])
		})
	}
}

func TestDecodeAccessToken_Invalid(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	token, err := CreateAccessToken(map[string]any{"sub": "1"}, time.Hour, testSignKey, now)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "1"}).
		SignedString([]byte(testSignKey))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{"garbage", "not-a-token", testSignKey},
		{"empty", "", testSignKey},
		{"wrong key", token, "other-key"},
		{"tampered signature", tampered, testSignKey},
		{"alg none", noneToken, testSignKey},
		{"unexpected algorithm", hs512Token, testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeAccessToken(tt.token, tt.key, now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAccessTokenInvalid), "got %v", err)
			assert.False(t, errors.Is(err, ErrAccessTokenExpired))
			assert.Nil(t, claims)
		})
	}
}
