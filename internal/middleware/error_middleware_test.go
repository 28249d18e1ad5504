package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp.Error.Code
}

func TestHandleAPIErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"generic not found", apperrors.ErrResourceNotFound, http.StatusNotFound, "RES_001"},
		{"project not found", apperrors.ErrProjectNotFound, http.StatusNotFound, "RES_001"},
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound, "RES_001"},
		{"setting not found", apperrors.ErrSettingNotFound, http.StatusNotFound, "RES_001"},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "RES_001"},
		{"wrapped not found", fmt.Errorf("lookup failed: %w", apperrors.ErrPostNotFound), http.StatusNotFound, "RES_001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "AUTH_006"},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized, "AUTH_005"},
		{"token not found", apperrors.ErrTokenNotFound, http.StatusUnauthorized, "AUTH_007"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "AUTH_009"},
		{"unknown provider", apperrors.ErrUnknownProvider, http.StatusBadRequest, "AUTH_010"},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict, "RES_002"},
		{"program full", apperrors.ErrProgramFull, http.StatusConflict, "RES_004"},
		{"image slot full", apperrors.ErrImageSlotFull, http.StatusConflict, "RES_004"},
		{"file type not allowed", apperrors.ErrFileTypeNotAllowed, http.StatusBadRequest, "VAL_002"},
		{"file too large", apperrors.ErrFileTooLarge, http.StatusBadRequest, "VAL_003"},
		{"invalid image", apperrors.ErrInvalidImage, http.StatusBadRequest, "VAL_001"},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"unexpected error", errors.New("pool exhausted"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := handleError(t, tc.err)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedCode, code)
		})
	}
}
