package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aeromaint/opsdesk/internal/constants"
)

// SessionData carries the authenticated identity for one login
type SessionData struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService manages login sessions on top of the configured cache.
// Sessions are stored as JSON strings so the in-memory and Redis backends
// behave identically across a round trip.
type SessionService struct {
	cache CacheInterface
	ttl   time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(cache CacheInterface, ttl time.Duration) *SessionService {
	return &SessionService{
		cache: cache,
		ttl:   ttl,
	}
}

// CreateSession creates a new session for an authenticated account
func (s *SessionService) CreateSession(username, role, name, avatar string) (*SessionData, error) {
	now := time.Now()
	session := SessionData{
		SessionID: uuid.New().String(),
		Username:  username,
		Role:      role,
		Name:      name,
		Avatar:    avatar,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	s.cache.Set(s.key(session.SessionID), string(data), s.ttl)
	return &session, nil
}

// GetSession retrieves a session by id
func (s *SessionService) GetSession(sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(s.key(sessionID))
	if !found {
		return nil, errors.New("session not found")
	}

	raw, ok := val.(string)
	if !ok {
		return nil, errors.New("malformed session entry")
	}

	var session SessionData
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(sessionID)
		return nil, errors.New("session expired")
	}

	return &session, nil
}

// DeleteSession removes a session by id
func (s *SessionService) DeleteSession(sessionID string) {
	s.cache.Delete(s.key(sessionID))
}

func (s *SessionService) key(sessionID string) string {
	return string(constants.CachePrefixSession) + sessionID
}
