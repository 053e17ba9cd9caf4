package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// PasswordAuthenticator signs in against the Firebase Identity Toolkit
// email+password endpoint using the web API key. The Admin SDK cannot
// exchange a password for a session, so this goes through the same REST
// endpoint the web client uses.
type PasswordAuthenticator struct {
	apiKey   string
	endpoint string
	client   *http.Client
	changes  chan *Identity
}

// NewPasswordAuthenticator creates a PasswordAuthenticator for the given web
// API key.
func NewPasswordAuthenticator(apiKey string) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		apiKey:   apiKey,
		endpoint: signInEndpoint,
		client:   &http.Client{},
		changes:  make(chan *Identity, 4),
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

type signInError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges credentials for an identity. On failure no state change is
// emitted and the session is unchanged.
func (a *PasswordAuthenticator) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", a.endpoint, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr signInError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return nil, errors.New("sign-in rejected: " + apiErr.Error.Message)
		}
		return nil, fmt.Errorf("sign-in rejected with status %d", resp.StatusCode)
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	ident := &Identity{UID: out.LocalID, Email: out.Email, Token: out.IDToken}
	a.changes <- ident
	return ident, nil
}

// SignOut emits a signed-out state change. Firebase ID tokens are stateless;
// there is nothing to revoke server-side here.
func (a *PasswordAuthenticator) SignOut(ctx context.Context) error {
	a.changes <- nil
	return nil
}

// StateChanges returns the push-based authentication state stream. A nil
// identity means signed out.
func (a *PasswordAuthenticator) StateChanges() <-chan *Identity {
	return a.changes
}
