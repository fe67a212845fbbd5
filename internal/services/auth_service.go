// internal/services/auth_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// SessionState is the three-state session model: the state starts as loading
// and only ever resolves to absent or present afterwards.
type SessionState string

const (
	SessionLoading SessionState = "loading"
	SessionAbsent  SessionState = "absent"
	SessionPresent SessionState = "present"
)

// Identity is the authenticated operator as the provider describes them.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the provider's password-grant response.
type Session struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        Identity `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionEvent is delivered to subscribers whenever the observed session
// state changes.
type SessionEvent struct {
	State SessionState
	User  *Identity
}

type SessionListener func(SessionEvent)

// AuthService delegates credential checks to the external identity provider
// and verifies the resulting session tokens locally with the provider's
// shared HS256 secret.
type AuthService struct {
	cfg    *config.Config
	client *http.Client

	mu        sync.Mutex
	state     SessionState
	user      *Identity
	listeners []SessionListener
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		state:  SessionLoading,
	}
}

// Subscribe registers a session-change listener. Subscriptions live for the
// whole process; there is no unsubscribe.
func (s *AuthService) Subscribe(fn SessionListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SignIn exchanges credentials for a session at the identity provider. Bad
// credentials come back as ErrInvalidCredentials; the caller renders them
// inline, nothing is thrown away.
func (s *AuthService) SignIn(ctx context.Context, req *LoginRequest) (*Session, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if s.cfg.Auth.ProviderURL == "" {
		return nil, ErrProviderUnavailable
	}

	payload, err := json.Marshal(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if err != nil {
		return nil, err
	}

	url := s.cfg.Auth.ProviderURL + "/auth/v1/token?grant_type=password"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", s.cfg.Auth.AnonKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		s.setState(SessionAbsent, nil)
		return nil, ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("%w: provider returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	s.setState(SessionPresent, &session.User)
	return &session, nil
}

// SignOut revokes the session at the provider and clears the observed state.
// The local state is cleared even when revocation fails; the failure is only
// logged.
func (s *AuthService) SignOut(ctx context.Context, accessToken string) {
	if s.cfg.Auth.ProviderURL != "" && accessToken != "" {
		url := s.cfg.Auth.ProviderURL + "/auth/v1/logout"
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err == nil {
			httpReq.Header.Set("apikey", s.cfg.Auth.AnonKey)
			httpReq.Header.Set("Authorization", "Bearer "+accessToken)
			resp, doErr := s.client.Do(httpReq)
			if doErr != nil {
				logrus.WithError(doErr).Warn("Session revocation at provider failed")
			} else {
				resp.Body.Close()
			}
		}
	}

	s.setState(SessionAbsent, nil)
}

// Verify checks a session token's signature and expiry locally.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	claims, err := utils.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: claims.Subject, Email: claims.Email}, nil
}

// SessionFor resolves the session state for a presented token. The first call
// after start is what moves the service out of the loading state.
func (s *AuthService) SessionFor(tokenString string) (SessionState, *Identity) {
	if tokenString == "" {
		s.setState(SessionAbsent, nil)
		return SessionAbsent, nil
	}

	identity, err := s.Verify(tokenString)
	if err != nil {
		s.setState(SessionAbsent, nil)
		return SessionAbsent, nil
	}

	s.setState(SessionPresent, identity)
	return SessionPresent, identity
}

// State returns the current observed session state.
func (s *AuthService) State() (SessionState, *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.user
}

func (s *AuthService) setState(state SessionState, user *Identity) {
	s.mu.Lock()
	if s.state == state {
		s.user = user
		s.mu.Unlock()
		return
	}
	s.state = state
	s.user = user
	listeners := make([]SessionListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	event := SessionEvent{State: state, User: user}
	for _, fn := range listeners {
		fn(event)
	}
}
