// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

func TestLoginWithoutProviderIsUnavailable(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"admin@ffbazaar.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionEndpointTriState(t *testing.T) {
	r := newTestRouter(t)

	// No token presented.
	_, body := doRequest(t, r, http.MethodGet, "/v1/auth/session", nil)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, "absent", data["state"])
	assert.Nil(t, data["user"])

	// Valid session token.
	userID := uuid.New()
	token, err := utils.GenerateSessionToken(userID, "admin@ffbazaar.com", 1)
	require.NoError(t, err)

	_, body = doRequest(t, r, http.MethodGet, "/v1/auth/session", map[string]string{
		"Authorization": "Bearer " + token,
	})
	data = body.Data.(map[string]interface{})
	assert.Equal(t, "present", data["state"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, userID.String(), user["id"])
}
