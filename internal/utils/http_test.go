package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext(t)

	err := SuccessResponse(c, http.StatusCreated, "Payment initiated", map[string]interface{}{
		"session_id": "sess-1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Payment initiated", resp.Message)
	assert.Equal(t, map[string]interface{}{"session_id": "sess-1"}, resp.Data)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext(t)

	err := ErrorResponseHandler(c, http.StatusConflict, "Refund would exceed original amount")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Refund would exceed original amount", resp.Error)
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestStatusHelpers(t *testing.T) {
	cases := []struct {
		name     string
		send     func(echo.Context, string) error
		message  string
		wantCode int
		wantMsg  string
	}{
		{"bad request", BadRequestResponse, "Invalid request payload", http.StatusBadRequest, "Invalid request payload"},
		{"unauthorized with message", UnauthorizedResponse, "Invalid credentials", http.StatusUnauthorized, "Invalid credentials"},
		{"unauthorized default", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", ForbiddenResponse, "", http.StatusForbidden, "Forbidden"},
		{"not found with message", NotFoundResponse, "Session not found", http.StatusNotFound, "Session not found"},
		{"not found default", NotFoundResponse, "", http.StatusNotFound, "Resource not found"},
		{"internal error default", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			require.NoError(t, tc.send(c, tc.message))
			assert.Equal(t, tc.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantMsg, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}
