package services

import (
	"context"
	"fmt"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/models/dtos"
)

// AuthService authenticates portal accounts and manages their sessions.
type AuthService struct {
	users    *repositories.UserRepository
	sessions *common.SessionService
	tokens   *auth.TokenService
	metrics  *metrics.MetricsRegistry
	tokenTTL time.Duration
}

func NewAuthService(
	users *repositories.UserRepository,
	sessions *common.SessionService,
	tokens *auth.TokenService,
	metricsReg *metrics.MetricsRegistry,
	tokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		metrics:  metricsReg,
		tokenTTL: tokenTTL,
	}
}

// Login verifies the credential triple. Username, password, and selected role
// must all match the stored account; mismatches are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return nil, fmt.Errorf("username, password and role are required: %w", constants.ErrValidation)
	}

	role, err := constants.ParseRole(req.Role)
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	account, err := s.users.GetAccount(ctx, req.Username)
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	if account.Password != req.Password || account.Role != role {
		return nil, constants.ErrUnauthorized
	}

	session, err := s.sessions.CreateSession(account.Username, string(account.Role), account.Username, account.Avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokens.SignToken(session.SessionID, session.Username, session.Role, s.tokenTTL)
	if err != nil {
		s.sessions.DeleteSession(session.SessionID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.SessionsActive.Inc()

	return &dtos.LoginResponse{
		Token:    token,
		Username: account.Username,
		Role:     string(account.Role),
		Avatar:   account.Avatar,
	}, nil
}

// Logout drops the session; the bearer token dies with it.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.DeleteSession(sessionID)
	s.metrics.SessionsActive.Dec()
}
