package middelware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"fleetdash-backend/models"
	"fleetdash-backend/utils"
	"fleetdash-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and validates dashboard session tokens. A session
// is an explicit object with a bounded lifecycle: created at login, revoked
// at logout, dead at expiry. Nothing ambient, nothing persisted.
type SessionManager struct {
	Config         *models.Config
	Logger         logger.Logger
	ActiveSessions map[string]models.Session // session ID -> session
	SessionMutex   sync.RWMutex
}

// NewSessionManager creates a new session manager
func NewSessionManager(cfg *models.Config, log logger.Logger) *SessionManager {
	return &SessionManager{
		Config:         cfg,
		Logger:         log,
		ActiveSessions: make(map[string]models.Session),
	}
}

// Login verifies a dashboard user's credentials and issues a session token.
// Users are declared in configuration; there is no account store behind
// this service.
func (m *SessionManager) Login(username, password string) (*models.LoginResponse, error) {
	var user *models.DashboardUser
	for i := range m.Config.Users {
		if m.Config.Users[i].Username == username {
			user = &m.Config.Users[i]
			break
		}
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("invalid username or password")
	}

	role := models.SessionRole(user.Role)
	if role != models.SessionRoleAdmin && role != models.SessionRoleViewer {
		role = models.SessionRoleViewer
	}

	now := time.Now()
	session := models.Session{
		ID:        uuid.New().String(),
		Username:  user.Username,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.Config.JWTExpiresIn),
	}

	claims := models.SessionClaims{
		Username: session.Username,
		Role:     session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.Username,
			Issuer:    m.Config.AppName,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.Config.JWTSecret))
	if err != nil {
		m.Logger.Errorf("Failed to sign session token: %v", err)
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	m.SessionMutex.Lock()
	m.ActiveSessions[session.ID] = session
	m.SessionMutex.Unlock()

	m.Logger.Infof("Session issued for user %s", session.Username)

	return &models.LoginResponse{Token: tokenString, Session: session}, nil
}

// ValidateToken parses and validates a session token, checking the signing
// method, expiry, and that the session is still active
func (m *SessionManager) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.Config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	m.SessionMutex.RLock()
	session, active := m.ActiveSessions[claims.ID]
	m.SessionMutex.RUnlock()

	if !active {
		return nil, fmt.Errorf("session has been revoked or expired")
	}
	if time.Now().After(session.ExpiresAt) {
		m.RevokeSession(claims.ID)
		return nil, fmt.Errorf("session expired")
	}

	return claims, nil
}

// RevokeSession invalidates a session immediately (logout)
func (m *SessionManager) RevokeSession(sessionID string) {
	m.SessionMutex.Lock()
	delete(m.ActiveSessions, sessionID)
	m.SessionMutex.Unlock()
}

// sessionCleanupInterval is how often the janitor sweeps expired sessions
// that were never presented again after expiry
const sessionCleanupInterval = 5 * time.Minute

// StartCleanup runs CleanupExpiredSessions on a fixed interval until ctx is
// cancelled
func (m *SessionManager) StartCleanup(ctx context.Context) {
	m.startCleanupEvery(ctx, sessionCleanupInterval)
}

func (m *SessionManager) startCleanupEvery(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CleanupExpiredSessions()
			}
		}
	}()
}

// CleanupExpiredSessions drops sessions past their expiry
func (m *SessionManager) CleanupExpiredSessions() {
	now := time.Now()
	m.SessionMutex.Lock()
	for id, session := range m.ActiveSessions {
		if now.After(session.ExpiresAt) {
			delete(m.ActiveSessions, id)
		}
	}
	m.SessionMutex.Unlock()
}

// AuthMiddleware requires a valid Bearer session token on the request
func (m *SessionManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.Logger.Warn("Missing Authorization header")
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Missing Authorization header",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: "Authorization header is required",
				},
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			m.Logger.Warn("Invalid Authorization header format")
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Invalid Authorization header format",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: "Authorization header must be in format: Bearer <token>",
				},
			})
			c.Abort()
			return
		}

		claims, err := m.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			m.Logger.Warnf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, models.APIResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
				Error: &models.APIError{
					Type:    "AuthenticationError",
					Details: err.Error(),
				},
			})
			c.Abort()
			return
		}

		c.Set("session_id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("role", string(claims.Role))

		c.Next()
	}
}

// RequireRole gates a route on the session's role string
func (m *SessionManager) RequireRole(required models.SessionRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != string(required) {
			c.JSON(http.StatusForbidden, models.APIResponse{
				Status:  "error",
				Code:    http.StatusForbidden,
				Message: "Insufficient role",
				Error: &models.APIError{
					Type:    "AuthorizationError",
					Details: fmt.Sprintf("route requires the %s role", required),
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
