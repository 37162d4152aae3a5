package middelware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetdash-backend/models"
	"fleetdash-backend/utils"
	"fleetdash-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type SessionManagerTestSuite struct {
	suite.Suite
	manager *SessionManager
	config  *models.Config
}

func (s *SessionManagerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	adminHash, err := utils.HashPassword("admin-pass")
	s.Require().NoError(err)
	viewerHash, err := utils.HashPassword("viewer-pass")
	s.Require().NoError(err)

	s.config = &models.Config{
		AppName:      "fleetdash-backend",
		JWTSecret:    "test-secret-key",
		JWTExpiresIn: time.Hour,
		Users: []models.DashboardUser{
			{Username: "admin", PasswordHash: adminHash, Role: "admin"},
			{Username: "viewer", PasswordHash: viewerHash, Role: "viewer"},
		},
	}
	s.manager = NewSessionManager(s.config, logger.NewLogger("error", "text"))
}

func (s *SessionManagerTestSuite) TestLoginIssuesSession() {
	resp, err := s.manager.Login("admin", "admin-pass")
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("admin", resp.Session.Username)
	s.Equal(models.SessionRoleAdmin, resp.Session.Role)
	s.NotEmpty(resp.Session.ID)
	s.True(resp.Session.ExpiresAt.After(resp.Session.IssuedAt))

	s.manager.SessionMutex.RLock()
	_, active := s.manager.ActiveSessions[resp.Session.ID]
	s.manager.SessionMutex.RUnlock()
	s.True(active)
}

func (s *SessionManagerTestSuite) TestLoginRejectsWrongPassword() {
	resp, err := s.manager.Login("admin", "wrong")
	s.Error(err)
	s.Nil(resp)
}

func (s *SessionManagerTestSuite) TestLoginRejectsUnknownUser() {
	resp, err := s.manager.Login("nobody", "admin-pass")
	s.Error(err)
	s.Nil(resp)
}

func (s *SessionManagerTestSuite) TestLoginNormalizesUnknownRoleToViewer() {
	hash, err := utils.HashPassword("pw")
	s.Require().NoError(err)
	s.config.Users = append(s.config.Users, models.DashboardUser{
		Username: "odd", PasswordHash: hash, Role: "superuser",
	})

	resp, err := s.manager.Login("odd", "pw")
	s.Require().NoError(err)
	s.Equal(models.SessionRoleViewer, resp.Session.Role)
}

func (s *SessionManagerTestSuite) TestValidateTokenRoundTrip() {
	resp, err := s.manager.Login("viewer", "viewer-pass")
	s.Require().NoError(err)

	claims, err := s.manager.ValidateToken(resp.Token)
	s.Require().NoError(err)
	s.Equal("viewer", claims.Username)
	s.Equal(models.SessionRoleViewer, claims.Role)
	s.Equal(resp.Session.ID, claims.ID)
}

func (s *SessionManagerTestSuite) TestValidateTokenRejectsRevokedSession() {
	resp, err := s.manager.Login("admin", "admin-pass")
	s.Require().NoError(err)

	s.manager.RevokeSession(resp.Session.ID)

	_, err = s.manager.ValidateToken(resp.Token)
	s.Error(err)
	s.Contains(err.Error(), "revoked")
}

func (s *SessionManagerTestSuite) TestValidateTokenRejectsWrongSecret() {
	claims := models.SessionClaims{
		Username: "admin",
		Role:     models.SessionRoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "forged-session",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	forged, err := token.SignedString([]byte("wrong-secret"))
	s.Require().NoError(err)

	_, err = s.manager.ValidateToken(forged)
	s.Error(err)
}

func (s *SessionManagerTestSuite) TestValidateTokenRejectsGarbage() {
	_, err := s.manager.ValidateToken("not-a-token")
	s.Error(err)
}

func (s *SessionManagerTestSuite) TestCleanupExpiredSessions() {
	resp, err := s.manager.Login("admin", "admin-pass")
	s.Require().NoError(err)

	// Force the session past its expiry
	s.manager.SessionMutex.Lock()
	session := s.manager.ActiveSessions[resp.Session.ID]
	session.ExpiresAt = time.Now().Add(-time.Minute)
	s.manager.ActiveSessions[resp.Session.ID] = session
	s.manager.SessionMutex.Unlock()

	s.manager.CleanupExpiredSessions()

	s.manager.SessionMutex.RLock()
	_, active := s.manager.ActiveSessions[resp.Session.ID]
	s.manager.SessionMutex.RUnlock()
	s.False(active)
}

func (s *SessionManagerTestSuite) TestCleanupLoopSweepsExpiredSessions() {
	resp, err := s.manager.Login("admin", "admin-pass")
	s.Require().NoError(err)

	s.manager.SessionMutex.Lock()
	session := s.manager.ActiveSessions[resp.Session.ID]
	session.ExpiresAt = time.Now().Add(-time.Minute)
	s.manager.ActiveSessions[resp.Session.ID] = session
	s.manager.SessionMutex.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.manager.startCleanupEvery(ctx, 10*time.Millisecond)

	s.Eventually(func() bool {
		s.manager.SessionMutex.RLock()
		_, active := s.manager.ActiveSessions[resp.Session.ID]
		s.manager.SessionMutex.RUnlock()
		return !active
	}, 2*time.Second, 10*time.Millisecond, "expired session is swept without its token being presented")
}

func (s *SessionManagerTestSuite) newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append([]gin.HandlerFunc{s.manager.AuthMiddleware()}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	router.GET("/protected", chain...)
	return router
}

func (s *SessionManagerTestSuite) TestAuthMiddlewareMissingHeader() {
	router := s.newRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *SessionManagerTestSuite) TestAuthMiddlewareMalformedHeader() {
	router := s.newRouter()

	for _, header := range []string{"Bearer", "Token abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func (s *SessionManagerTestSuite) TestAuthMiddlewarePassesValidToken() {
	resp, err := s.manager.Login("viewer", "viewer-pass")
	s.Require().NoError(err)

	router := s.newRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"username":"viewer"`)
	s.Contains(w.Body.String(), `"role":"viewer"`)
}

func (s *SessionManagerTestSuite) TestRequireRoleRejectsViewer() {
	resp, err := s.manager.Login("viewer", "viewer-pass")
	s.Require().NoError(err)

	router := s.newRouter(s.manager.RequireRole(models.SessionRoleAdmin))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(w, req)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *SessionManagerTestSuite) TestRequireRoleAdmitsAdmin() {
	resp, err := s.manager.Login("admin", "admin-pass")
	s.Require().NoError(err)

	router := s.newRouter(s.manager.RequireRole(models.SessionRoleAdmin))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func TestSessionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerTestSuite))
}
