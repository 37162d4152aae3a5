package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetdash-backend/middelware"
	"fleetdash-backend/models"
	"fleetdash-backend/utils"
	"fleetdash-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type SessionControllerTestSuite struct {
	suite.Suite
	sessions   *middelware.SessionManager
	controller *SessionController
	router     *gin.Engine
}

func (s *SessionControllerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	hash, err := utils.HashPassword("secret")
	s.Require().NoError(err)

	cfg := &models.Config{
		AppName:      "fleetdash-backend",
		JWTSecret:    "controller-test-secret",
		JWTExpiresIn: time.Hour,
		Users: []models.DashboardUser{
			{Username: "operator", PasswordHash: hash, Role: "admin"},
		},
	}
	log := logger.NewLogger("error", "text")

	s.sessions = middelware.NewSessionManager(cfg, log)
	s.controller = NewSessionController(context.Background(), s.sessions, log)

	s.router = gin.New()
	session := s.router.Group("/api/v1/session")
	{
		session.POST("/login", s.controller.Login)
		session.POST("/validate", s.controller.Validate)
		session.POST("/logout", s.sessions.AuthMiddleware(), s.controller.Logout)
	}
}

func (s *SessionControllerTestSuite) postJSON(path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SessionControllerTestSuite) login() string {
	w := s.postJSON("/api/v1/session/login", models.LoginRequest{
		Username: "operator",
		Password: "secret",
	}, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	token := gjson.Get(w.Body.String(), "data.token").String()
	s.Require().NotEmpty(token)
	return token
}

func (s *SessionControllerTestSuite) TestLoginSuccess() {
	w := s.postJSON("/api/v1/session/login", models.LoginRequest{
		Username: "operator",
		Password: "secret",
	}, nil)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal("success", gjson.Get(body, "status").String())
	s.NotEmpty(gjson.Get(body, "data.token").String())
	s.Equal("operator", gjson.Get(body, "data.session.username").String())
	s.Equal("admin", gjson.Get(body, "data.session.role").String())
}

func (s *SessionControllerTestSuite) TestLoginWrongPassword() {
	w := s.postJSON("/api/v1/session/login", models.LoginRequest{
		Username: "operator",
		Password: "nope",
	}, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid username or password", gjson.Get(w.Body.String(), "message").String())
}

func (s *SessionControllerTestSuite) TestLoginMissingFields() {
	w := s.postJSON("/api/v1/session/login", gin.H{"username": "operator"}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SessionControllerTestSuite) TestValidateIssuedToken() {
	token := s.login()

	w := s.postJSON("/api/v1/session/validate", gin.H{"token": token}, nil)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal("operator", gjson.Get(body, "data.username").String())
	s.NotEmpty(gjson.Get(body, "data.session_id").String())
}

func (s *SessionControllerTestSuite) TestValidateRejectsGarbageToken() {
	w := s.postJSON("/api/v1/session/validate", gin.H{"token": "garbage"}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *SessionControllerTestSuite) TestValidateRequiresToken() {
	w := s.postJSON("/api/v1/session/validate", gin.H{}, nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SessionControllerTestSuite) TestLogoutRevokesSession() {
	token := s.login()

	w := s.postJSON("/api/v1/session/logout", gin.H{}, map[string]string{
		"Authorization": "Bearer " + token,
	})
	s.Equal(http.StatusOK, w.Code)

	// the token no longer validates once the session is revoked
	w = s.postJSON("/api/v1/session/validate", gin.H{"token": token}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *SessionControllerTestSuite) TestLogoutRequiresAuth() {
	w := s.postJSON("/api/v1/session/logout", gin.H{}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestSessionControllerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionControllerTestSuite))
}
