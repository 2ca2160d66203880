package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"uid":   "7",
		"role":  role,
		"aud":   "dev-client",
		"scope": "read write",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/restaurants/:id", BearerAuth(testSecret), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetUint(ContextUserID),
			"client_id": c.GetString(ContextClientID),
		})
	})
	return router
}

func TestBearerAuth(t *testing.T) {
	expired := validClaims("admin")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noUID := validClaims("admin")
	delete(noUID, "uid")

	testCases := []struct {
		name   string
		header string
		code   int
	}{
		{name: "admin token is accepted", header: "Bearer " + signToken(t, validClaims("admin"), testSecret), code: http.StatusOK},
		{name: "user token lacks permissions", header: "Bearer " + signToken(t, validClaims("user"), testSecret), code: http.StatusForbidden},
		{name: "missing header", header: "", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", code: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + signToken(t, expired, testSecret), code: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, validClaims("admin"), []byte("another-secret")), code: http.StatusUnauthorized},
		{name: "unknown role", header: "Bearer " + signToken(t, validClaims("owner"), testSecret), code: http.StatusUnauthorized},
		{name: "missing uid", header: "Bearer " + signToken(t, noUID, testSecret), code: http.StatusUnauthorized},
	}

	router := setupProtectedRouter()
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestBearerAuthSetsContext(t *testing.T) {
	router := setupProtectedRouter()
	req := httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, validClaims("admin"), testSecret))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"client_id":"dev-client"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/pizzas", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pizzas", nil))
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pizzas", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
		assert.Contains(t, buf.String(), `"path":"/pizzas"`)
	})
}
