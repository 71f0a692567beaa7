package utils

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by [DecodeAccessToken]. Every failure is reported as exactly
// one of them so callers can branch with [errors.Is] without inspecting
// low-level JWT errors.
var (
	ErrAccessTokenExpired = errors.New("access token expired")
	ErrAccessTokenInvalid = errors.New("access token invalid")

	// ErrInvalidTokenParams is returned by [CreateAccessToken] for an empty
	// sign key or a non-positive lifetime.
	ErrInvalidTokenParams = errors.New("invalid params for creating access token")
)

// ExpiresAtClaim is the claim holding the absolute expiry (seconds since epoch).
const ExpiresAtClaim = "exp"

// CreateAccessToken copies claims, adds an "exp" claim equal to now+ttl and
// signs the result with HMAC-SHA256 using signKey.
//
// The input map is never modified. The output is deterministic for the same
// signKey, claims and now.
//
// Example usage:
//
//	token, err := utils.CreateAccessToken(map[string]any{"sub": "42"}, 30*time.Minute, "secret", time.Now())
func CreateAccessToken(claims map[string]any, ttl time.Duration, signKey string, now time.Time) (string, error) {
	if signKey == "" || ttl <= 0 {
		return "", ErrInvalidTokenParams
	}

	toEncode := make(jwt.MapClaims, len(claims)+1)
	maps.Copy(toEncode, claims)
	toEncode[ExpiresAtClaim] = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, toEncode)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing access token: %w", err)
	}

	return signed, nil
}

// DecodeAccessToken verifies the signature (HS256 only) and the expiry of
// tokenString against signKey at the instant now, and returns its claims.
//
// Returns:
//   - [ErrAccessTokenExpired] when now is at or past the "exp" claim;
//   - [ErrAccessTokenInvalid] (wrapping the parser error) for any other
//     signature or format failure.
func DecodeAccessToken(tokenString, signKey string, now time.Time) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrAccessTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrAccessTokenInvalid, err)
	}

	return claims, nil
}
