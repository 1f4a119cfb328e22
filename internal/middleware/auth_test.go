package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adityachavhan45/blogbackend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	if err := logger.Initialize("error", filepath.Join(os.TempDir(), "blogbackend-test.log")); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authRouter(secret []byte) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return router
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := authRouter(testSecret)
	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_LegacyUserIDClaim(t *testing.T) {
	router := authRouter(testSecret)
	token := signToken(t, jwt.MapClaims{
		"userId": "legacy-user",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "legacy-user")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := authRouter(testSecret)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := authRouter(testSecret)

	w := doRequest(router, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router := authRouter([]byte("other-secret"))
	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := authRouter(testSecret)
	token := signToken(t, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingUserIDClaim(t *testing.T) {
	router := authRouter(testSecret)
	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
