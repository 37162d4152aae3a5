package controller

import (
	"context"
	"net/http"

	"fleetdash-backend/middelware"
	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// SessionController handles session login, validation and logout
type SessionController struct {
	ctx      context.Context
	sessions *middelware.SessionManager
	logger   logger.Logger
}

// NewSessionController creates a new session controller
func NewSessionController(ctx context.Context, sessions *middelware.SessionManager, log logger.Logger) *SessionController {
	return &SessionController{
		ctx:      ctx,
		sessions: sessions,
		logger:   log,
	}
}

// Login handles POST /api/v1/session/login
// @Summary Log in to the dashboard
// @Description Verify configured dashboard credentials and issue a session token
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Dashboard credentials"
// @Success 200 {object} models.APIResponse "Session issued"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /session/login [post]
func (h *SessionController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Username and password are required",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: err.Error(),
			},
		})
		return
	}

	resp, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warnf("Login failed for user %q: %v", req.Username, err)
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid username or password",
			Error: &models.APIError{
				Type: "AuthenticationError",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Session issued",
		Data:    resp,
	})
}

// Validate handles POST /api/v1/session/validate
// @Summary Validate a session token
// @Tags Session
// @Accept json
// @Produce json
// @Param token body object true "Token payload {\"token\": \"...\"}"
// @Success 200 {object} models.APIResponse "Token is valid"
// @Failure 401 {object} models.APIResponse "Token is invalid or expired"
// @Router /session/validate [post]
func (h *SessionController) Validate(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Token is required",
			Error: &models.APIError{
				Type:    "ValidationError",
				Field:   "token",
				Details: err.Error(),
			},
		})
		return
	}

	claims, err := h.sessions.ValidateToken(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Token is invalid or expired",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Token is valid",
		Data: gin.H{
			"session_id": claims.ID,
			"username":   claims.Username,
			"role":       claims.Role,
			"expires_at": claims.ExpiresAt,
		},
	})
}

// Logout handles POST /api/v1/session/logout
// @Summary Log out and revoke the session
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Session revoked"
// @Router /session/logout [post]
func (h *SessionController) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID != "" {
		h.sessions.RevokeSession(sessionID)
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Session revoked",
	})
}
