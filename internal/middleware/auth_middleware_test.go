package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/auth"
)

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "ibookee.co.kr",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.RoleType) string {
	t.Helper()
	accessToken, _, _, _, err := svc.GenerateTokenPair(&models.User{
		ID:       7,
		Email:    "user@example.com",
		RoleType: role,
	})
	require.NoError(t, err)
	return accessToken
}

func protectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	router.GET("/secure", handlers...)
	return router
}

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestJWTAuthValidToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	router := protectedRouter(NewAuthMiddleware(svc))

	rec := performRequest(router, "Bearer "+issueToken(t, svc, models.RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":7`)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := protectedRouter(NewAuthMiddleware(newTestJWTService(time.Hour)))

	rec := performRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_008", errorCode(t, rec.Body.Bytes()))
}

func TestJWTAuthExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	router := protectedRouter(NewAuthMiddleware(svc))

	rec := performRequest(router, "Bearer "+issueToken(t, svc, models.RoleUser))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_006", errorCode(t, rec.Body.Bytes()))
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router := protectedRouter(NewAuthMiddleware(newTestJWTService(time.Hour)))

	rec := performRequest(router, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_005", errorCode(t, rec.Body.Bytes()))
}

func TestRoleRequiredAllowsAdmin(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m, m.RoleRequired(models.RoleAdmin))

	rec := performRequest(router, "Bearer "+issueToken(t, svc, models.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRequiredRejectsUser(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m, m.RoleRequired(models.RoleAdmin))

	rec := performRequest(router, "Bearer "+issueToken(t, svc, models.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTH_009", errorCode(t, rec.Body.Bytes()))
}
