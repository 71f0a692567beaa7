// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-crud-api/internal/config"
	"github.com/MKhiriev/go-crud-api/internal/logger"
	"github.com/MKhiriev/go-crud-api/internal/store"
	"github.com/MKhiriev/go-crud-api/internal/utils"
	"github.com/MKhiriev/go-crud-api/models"
)

// Claim names carried by issued access tokens.
const (
	ClaimSubject  = "sub"
	ClaimUsername = "username"
	ClaimIsAdmin  = "is_admin"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository and signs HS256 access
// tokens with the configured secret.
type authService struct {
	// userRepository is used to look up users by username when issuing tokens.
	userRepository store.UserRepository

	// jwtSecret is the HMAC secret used to sign and verify access tokens.
	jwtSecret string

	// tokenTTL is the default access token lifetime.
	tokenTTL time.Duration

	// now is the clock used for exp computation and validation.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		jwtSecret:      cfg.JWTSecret,
		tokenTTL:       cfg.AccessTokenTTL(),
		now:            time.Now,
		logger:         logger,
	}
}

func (a *authService) HashPassword(password string) string {
	return utils.HashPassword(password)
}

func (a *authService) VerifyPassword(password, encoded string) bool {
	return utils.VerifyPassword(password, encoded)
}

func (a *authService) CreateAccessToken(ctx context.Context, claims map[string]any, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = a.tokenTTL
	}

	token, err := utils.CreateAccessToken(claims, ttl, a.jwtSecret, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateAccessToken").Msg("failed to sign access token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// DecodeAccessToken verifies token and returns its claims. Expired tokens
// yield [ErrTokenExpired]; every other failure yields [ErrTokenInvalid].
func (a *authService) DecodeAccessToken(ctx context.Context, token string) (map[string]any, error) {
	claims, err := utils.DecodeAccessToken(token, a.jwtSecret, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.DecodeAccessToken").Msg("access token rejected")
		if errors.Is(err, utils.ErrAccessTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return map[string]any(claims), nil
}

// IssueToken authenticates username/password and returns a bearer token
// carrying the user's id, username and admin flag.
//
// Unknown users and wrong passwords are both reported as
// [ErrInvalidCredentials]; the inactive check runs only after the password
// has been verified.
func (a *authService) IssueToken(ctx context.Context, username, password string) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.AccessToken{}, ErrMissingRequiredFields
	}

	user, err := a.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("username", username).Msg("token requested for unknown user")
			return models.AccessToken{}, ErrInvalidCredentials
		}
		return models.AccessToken{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.VerifyPassword(password, user.PasswordHash) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.AccessToken{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return models.AccessToken{}, ErrUserInactive
	}

	token, err := a.CreateAccessToken(ctx, map[string]any{
		ClaimSubject:  strconv.FormatInt(user.ID, 10),
		ClaimUsername: user.Username,
		ClaimIsAdmin:  user.IsAdmin,
	}, a.tokenTTL)
	if err != nil {
		return models.AccessToken{}, err
	}

	return models.AccessToken{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   int64(a.tokenTTL / time.Second),
	}, nil
}

// VerifyToken decodes token and reports its claims.
func (a *authService) VerifyToken(ctx context.Context, token string) (models.TokenVerification, error) {
	if token == "" {
		return models.TokenVerification{}, ErrMissingRequiredFields
	}

	claims, err := a.DecodeAccessToken(ctx, token)
	if err != nil {
		return models.TokenVerification{}, err
	}

	return models.TokenVerification{Valid: true, Claims: claims}, nil
}
