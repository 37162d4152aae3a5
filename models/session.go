package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionRole is the single role string attached to a dashboard session.
// There is no permission engine behind it.
type SessionRole string

const (
	SessionRoleAdmin  SessionRole = "admin"
	SessionRoleViewer SessionRole = "viewer"
)

// Session is an explicit login session with a bounded lifecycle: issued at
// login, invalidated at logout or expiry. It replaces any ambient auth state.
type Session struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      SessionRole `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionClaims are the JWT claims carried by a session token
type SessionClaims struct {
	Username string      `json:"username"`
	Role     SessionRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the session login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and its session
type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}
