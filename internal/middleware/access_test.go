package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(code string) *gin.Engine {
	router := gin.New()
	router.Use(CorrelationIDMiddleware(), AccessGate(code, func(c *gin.Context) {
		c.String(http.StatusUnauthorized, "access form")
	}))
	router.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/de/deck", func(c *gin.Context) { c.String(http.StatusOK, "deck") })
	router.GET("/api/v1/chapters", func(c *gin.Context) { c.String(http.StatusOK, "chapters") })
	return router
}

func TestAccessGate_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newGatedRouter("")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/chapters", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newGatedRouter("s3cret")

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"health stays open", "/health", "", http.StatusOK, "ok"},
		{"html without code shows form", "/de/deck", "", http.StatusUnauthorized, "access form"},
		{"api without code is json", "/api/v1/chapters", "", http.StatusUnauthorized, constants.AccessDenied},
		{"header code", "/api/v1/chapters", "s3cret", http.StatusOK, "chapters"},
		{"wrong header code", "/api/v1/chapters", "nope", http.StatusUnauthorized, "correlation_id"},
		{"query code", "/de/deck?code=s3cret", "", http.StatusOK, "deck"},
		{"wrong query code", "/de/deck?code=guess", "", http.StatusUnauthorized, "access form"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(AccessCodeHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAccessGate_QueryCodeSetsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newGatedRouter("s3cret")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/de/deck?code=s3cret", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AccessCookie, cookies[0].Name)
	assert.NotContains(t, cookies[0].Value, "s3cret")
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/de/deck", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	forged := httptest.NewRequest(http.MethodGet, "/de/deck", nil)
	forged.AddCookie(&http.Cookie{Name: AccessCookie, Value: "s3cret"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
