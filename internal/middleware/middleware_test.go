package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storedash-be/config"
	"storedash-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), CORS(cfg))
	handlers := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":     c.GetString(ContextUserID),
			"role":       c.GetString(ContextRole),
			"linkedName": c.GetString(ContextLinkedName),
		})
	})
	r.GET("/private", handlers...)
	return r
}

func token(t *testing.T, secret string, sub utils.TokenSubject, refresh bool) string {
	t.Helper()
	gen := utils.GenerateAccessToken
	if refresh {
		gen = utils.GenerateRefreshToken
	}
	tok, err := gen(sub, secret, time.Minute)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", FrontendURL: "http://localhost:3000"}
	r := testRouter(cfg)
	sub := utils.TokenSubject{UserID: "u1", Role: "manager", LinkedName: "Bob Jones"}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + token(t, "other", sub, false), http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + token(t, "secret", sub, true), http.StatusUnauthorized},
		{"valid access token", "Bearer " + token(t, "secret", sub, false), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"userID":"u1","role":"manager","linkedName":"Bob Jones"}`, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg, RequireAdmin())

	for role, want := range map[string]int{
		"user":       http.StatusForbidden,
		"manager":    http.StatusForbidden,
		"admin":      http.StatusOK,
		"superadmin": http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "secret", utils.TokenSubject{UserID: "u1", Role: role}, false))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRequestIDAndCORS(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret", FrontendURL: "http://dash.local"}
	r := testRouter(cfg)

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
		assert.Equal(t, "http://dash.local", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/private", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
