// internal/adapters/out/http/identity_client_test.go
package httpout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInWithPasswordOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId":      "u1",
			"email":        "a@b.com",
			"idToken":      "tok",
			"refreshToken": "rtok",
			"expiresIn":    "3600",
		})
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, "test-key")

	got, err := c.SignInWithPassword(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, "tok", got.IDToken)
	assert.Equal(t, "rtok", got.RefreshToken)
	assert.Equal(t, "3600", got.ExpiresIn)
}

func TestSignInWithPasswordRejectionCarriesProviderCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_PASSWORD"}}`))
	}))
	defer srv.Close()

	c := NewIdentityClient(srv.URL, "test-key")

	_, err := c.SignInWithPassword(context.Background(), "a@b.com", "wrong1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
}

func TestSignInWithPasswordRequiresAPIKey(t *testing.T) {
	c := NewIdentityClient("", "")

	_, err := c.SignInWithPassword(context.Background(), "a@b.com", "secret1")
	assert.Error(t, err)
}
