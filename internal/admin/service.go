// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package admin implements dashboard authentication.

The dashboard has a single admin identity configured through the environment
(email plus bcrypt password hash), so there is no user table. A successful
login creates a Redis-tracked session and issues an RS256 JWT bound to it;
logout deletes the session, which revokes the token immediately.

Architecture:

  - Service: Credential verification and session lifecycle.
  - SessionStore: Redis-backed session liveness (see [RedisSessionStore]).
  - Security: Bcrypt comparison and RSA-signed JWTs via the sec package.
*/
package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashercourt/marquee/internal/platform/apperr"
	"github.com/ashercourt/marquee/internal/platform/constants"
	"github.com/ashercourt/marquee/internal/platform/sec"
	"github.com/ashercourt/marquee/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT bound to the given session.
	GenerateAccessToken(sessionID, email, role string, timeToLive time.Duration) (string, error)
}

// SessionStore abstracts session persistence so the service can be unit
// tested without a live Redis.
type SessionStore interface {
	Create(ctx context.Context, sessionID, email string, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
}

// Service implements the admin authentication use cases.
type Service struct {
	adminEmail        string
	adminPasswordHash string
	sessions          SessionStore
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs an admin [Service] from the configured credentials.
func NewService(adminEmail, adminPasswordHash string, sessions SessionStore, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		sessions:          sessions,
		tokenProvider:     tokenProvider,
		logger:            logger,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

/*
Login verifies the configured admin credentials and opens a session.

Description: Compares the submitted password against the environment-supplied
bcrypt hash, registers a Redis session, and issues a JWT bound to it.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Generic message on every failure path to prevent probing.
	emailMatches := subtle.ConstantTimeCompare([]byte(input.Email), []byte(service.adminEmail)) == 1
	if !emailMatches {
		// Burn a bcrypt comparison anyway so a wrong email costs the same
		// time as a wrong password.
		sec.CheckPasswordHash(input.Password, service.adminPasswordHash)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, service.adminPasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Time-sortable session ID, same scheme as catalog entity IDs.
	sessionID := uuidv7.New()

	if err := service.sessions.Create(context, sessionID, service.adminEmail, constants.AdminSessionTTL); err != nil {
		return nil, fmt.Errorf("admin_service_session_create_failed: %w", err)
	}

	token, err := service.tokenProvider.GenerateAccessToken(sessionID, service.adminEmail, string(sec.RoleAdmin), constants.AdminSessionTTL)
	if err != nil {
		// Roll back the orphaned session so it cannot linger for the TTL.
		_ = service.sessions.Revoke(context, sessionID)
		return nil, fmt.Errorf("admin_service_token_generation_failed: %w", err)
	}

	service.logger.Info("admin_login", slog.String("session_id", sessionID))

	return &LoginSession{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(constants.AdminSessionTTL),
		Email:       service.adminEmail,
		Role:        string(sec.RoleAdmin),
	}, nil
}

/*
Logout revokes the calling admin's session.

Description: Deletes the Redis session key. Every JWT carrying this session
ID is rejected from the next request onward.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, sessionID string) error {
	if err := service.sessions.Revoke(context, sessionID); err != nil {
		return fmt.Errorf("admin_service_logout_failed: %w", err)
	}

	service.logger.Info("admin_logout", slog.String("session_id", sessionID))
	return nil
}
