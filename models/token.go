// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessToken is returned by POST /api/auth/token.
//
// AccessToken holds the compact HS256 JWT; ExpiresIn is its lifetime in
// seconds counted from issuance.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenTypeBearer is the only token type issued by the API.
const TokenTypeBearer = "bearer"

// TokenVerification is returned by POST /api/auth/verify for a token that
// passed signature and expiry checks.
type TokenVerification struct {
	Valid  bool           `json:"valid"`
	Claims map[string]any `json:"claims"`
}
