package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUsers map[string]models.User

func (m mockUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if id == "broken" {
		return nil, errors.New("db down")
	}
	u, ok := m[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func TestRoleMiddleware(t *testing.T) {
	users := mockUsers{
		"admin": {ID: "admin", Role: "admin"},
		"guest": {ID: "guest", Role: "guest"},
	}
	router := gin.New()
	router.GET("/admin", RoleMiddleware(users, "admin"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userRole"))
	})

	tests := []struct {
		name   string
		userID string
		want   int
	}{
		{"admin allowed", "admin", http.StatusOK},
		{"guest forbidden", "guest", http.StatusForbidden},
		{"unknown user", "ghost", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
		{"lookup failure", "broken", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.userID != "" {
				req.Header.Set(UserHeader, tt.userID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.Nop()))
	router.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrAlreadyCancelled) })
	router.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	tests := []struct {
		path string
		want int
	}{
		{"/app", http.StatusConflict},
		{"/plain", http.StatusInternalServerError},
		{"/ok", http.StatusOK},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Errorf("generated id header=%q body=%q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("X-Request-ID = %q, want abc", got)
	}
}
