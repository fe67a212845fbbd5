// internal/services/auth_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

func authConfig(providerURL string) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			ProviderURL: providerURL,
			AnonKey:     "anon-key",
			JWTSecret:   "test-secret",
		},
	}
}

func TestSignInSuccess(t *testing.T) {
	userID := uuid.New().String()
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@ffbazaar.com", body["email"])

		json.NewEncoder(w).Encode(Session{
			AccessToken: "token-123",
			TokenType:   "bearer",
			ExpiresIn:   3600,
			User:        Identity{ID: userID, Email: body["email"]},
		})
	}))
	defer provider.Close()

	svc := NewAuthService(authConfig(provider.URL))

	var events []SessionEvent
	svc.Subscribe(func(e SessionEvent) { events = append(events, e) })

	session, err := svc.SignIn(context.Background(), &LoginRequest{
		Email:    "admin@ffbazaar.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-123", session.AccessToken)
	assert.Equal(t, userID, session.User.ID)

	state, identity := svc.State()
	assert.Equal(t, SessionPresent, state)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.ID)

	require.Len(t, events, 1)
	assert.Equal(t, SessionPresent, events[0].State)
}

func TestSignInBadCredentials(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer provider.Close()

	svc := NewAuthService(authConfig(provider.URL))

	_, err := svc.SignIn(context.Background(), &LoginRequest{
		Email:    "admin@ffbazaar.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)

	state, _ := svc.State()
	assert.Equal(t, SessionAbsent, state)
}

func TestSignInWithoutProviderConfigured(t *testing.T) {
	svc := NewAuthService(authConfig(""))

	_, err := svc.SignIn(context.Background(), &LoginRequest{
		Email:    "admin@ffbazaar.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestSignInRejectsMalformedEmail(t *testing.T) {
	svc := NewAuthService(authConfig("http://unused"))

	_, err := svc.SignIn(context.Background(), &LoginRequest{
		Email:    "not-an-email",
		Password: "hunter22",
	})

	assert.Error(t, err)
}

func TestSessionForResolvesTriState(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(authConfig("http://unused"))

	// Freshly started, nothing observed yet.
	state, _ := svc.State()
	assert.Equal(t, SessionLoading, state)

	state, identity := svc.SessionFor("")
	assert.Equal(t, SessionAbsent, state)
	assert.Nil(t, identity)

	userID := uuid.New()
	token, err := utils.GenerateSessionToken(userID, "admin@ffbazaar.com", 1)
	require.NoError(t, err)

	state, identity = svc.SessionFor(token)
	assert.Equal(t, SessionPresent, state)
	require.NotNil(t, identity)
	assert.Equal(t, userID.String(), identity.ID)
	assert.Equal(t, "admin@ffbazaar.com", identity.Email)

	state, identity = svc.SessionFor("garbage")
	assert.Equal(t, SessionAbsent, state)
	assert.Nil(t, identity)
}

func TestSubscribeSeesEveryTransition(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(authConfig("http://unused"))

	var states []SessionState
	svc.Subscribe(func(e SessionEvent) { states = append(states, e.State) })

	token, err := utils.GenerateSessionToken(uuid.New(), "admin@ffbazaar.com", 1)
	require.NoError(t, err)

	svc.SessionFor(token)
	svc.SessionFor(token) // same state, no extra event
	svc.SignOut(context.Background(), "")

	assert.Equal(t, []SessionState{SessionPresent, SessionAbsent}, states)
}

func TestSignOutRevokesAtProvider(t *testing.T) {
	var gotLogout bool
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/logout" {
			gotLogout = true
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer provider.Close()

	svc := NewAuthService(authConfig(provider.URL))
	svc.SignOut(context.Background(), "token-123")

	assert.True(t, gotLogout)

	state, _ := svc.State()
	assert.Equal(t, SessionAbsent, state)
}
