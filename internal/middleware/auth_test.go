package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasansabbir220/task-manager/internal/auth"
	apierrors "github.com/mehedihasansabbir220/task-manager/internal/errors"
	"github.com/mehedihasansabbir220/task-manager/internal/models"
	"github.com/stretchr/testify/require"
)

func setupAuthMiddlewareRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return r
}

func doProtectedRequest(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestRequireAuth_MissingToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupAuthMiddlewareRouter(tokens)

	w := doProtectedRequest(t, r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)

	w = doProtectedRequest(t, r, "Basic dXNlcjpwYXNz")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupAuthMiddlewareRouter(tokens)

	w := doProtectedRequest(t, r, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)

	// Signed with a different key
	other := auth.NewTokenService("other-secret")
	forged, err := other.Issue(1, models.RoleUser)
	require.NoError(t, err)

	w = doProtectedRequest(t, r, "Bearer "+forged)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeUnauthorized, decodeAPIError(t, w).Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupAuthMiddlewareRouter(tokens)

	expired, err := tokens.IssueWithTTL(1, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	w := doProtectedRequest(t, r, "Bearer "+expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, apierrors.ErrCodeTokenExpired, decodeAPIError(t, w).Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	r := setupAuthMiddlewareRouter(tokens)

	token, err := tokens.Issue(42, models.RoleAdmin)
	require.NoError(t, err)

	w := doProtectedRequest(t, r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID uint64 `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, uint64(42), body.UserID)
	require.Equal(t, models.RoleAdmin, body.Role)
}
