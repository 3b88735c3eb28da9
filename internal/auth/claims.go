package auth

import "aeromaint/opsdesk/internal/constants"

// Common interface for authenticated request identities.
type UserClaims interface {
	Username() string
	Role() constants.Role
	DisplayName() string
	Source() string
	SessionID() string
}

// SessionClaims is the identity carried by a bearer token that resolves
// to a live session.
type SessionClaims struct {
	UsernameValue  string
	RoleValue      constants.Role
	NameValue      string
	SessionIDValue string
}

func (c *SessionClaims) Username() string        { return c.UsernameValue }
func (c *SessionClaims) Role() constants.Role    { return c.RoleValue }
func (c *SessionClaims) DisplayName() string     { return c.NameValue }
func (c *SessionClaims) Source() string          { return "SESSION" }
func (c *SessionClaims) SessionID() string       { return c.SessionIDValue }
