// internal/adapters/out/http/identity_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"texia/internal/application/usecase"
)

const defaultIdentityBaseURL = "https://identitytoolkit.googleapis.com"

// IdentityClient signs users in through the Identity Toolkit REST API
// (the Admin SDK has no password check, so login goes over HTTP).
type IdentityClient struct {
	client  *http.Client
	baseURL string // overridable for tests
	apiKey  string // Firebase web API key
}

func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultIdentityBaseURL
	}
	return &IdentityClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
	}
}

var _ usecase.CredentialSignIn = (*IdentityClient)(nil)

// SignInWithPassword exchanges email+password for a session. A
// rejected credential surfaces the provider's error code verbatim so
// the caller can show it.
func (c *IdentityClient) SignInWithPassword(ctx context.Context, email, password string) (usecase.Session, error) {
	if c.apiKey == "" {
		return usecase.Session{}, fmt.Errorf("identity api key is empty; sign-in not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return usecase.Session{}, fmt.Errorf("encode sign-in payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return usecase.Session{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[identity] sign-in request FAILED err=%v", err)
		return usecase.Session{}, fmt.Errorf("sign in: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := strings.TrimSpace(string(bodyBytes))
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		log.Printf("[identity] sign-in rejected status=%d msg=%s", resp.StatusCode, msg)
		return usecase.Session{}, fmt.Errorf("sign in failed: %s", msg)
	}

	var res struct {
		LocalID      string `json:"localId"`
		Email        string `json:"email"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return usecase.Session{}, fmt.Errorf("decode sign-in response: %w", err)
	}

	log.Printf("[identity] sign-in ok uid=%s", res.LocalID)
	return usecase.Session{
		UID:          res.LocalID,
		Email:        res.Email,
		IDToken:      res.IDToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
	}, nil
}
