// internal/adapters/in/http/handlers/fabric_image_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImageIssuer struct {
	exists  bool
	url     string
	signErr error
}

func (s *stubImageIssuer) Exists(context.Context, string) (bool, error) {
	return s.exists, nil
}

func (s *stubImageIssuer) IssueSignedViewURL(context.Context, string) (string, error) {
	return s.url, s.signErr
}

func TestFabricImageSignedURL(t *testing.T) {
	h := NewFabricImageHandler(&stubImageIssuer{exists: true, url: "https://storage.googleapis.com/b/telas/pima.jpg?X-Goog-Signature=abc"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/telas/imagen?path=telas/pima.jpg", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got["url"], "X-Goog-Signature")
}

func TestFabricImageMissingPath(t *testing.T) {
	h := NewFabricImageHandler(&stubImageIssuer{exists: true})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/telas/imagen", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFabricImageNotFound(t *testing.T) {
	h := NewFabricImageHandler(&stubImageIssuer{exists: false})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/telas/imagen?path=telas/nope.jpg", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFabricImageSignFailure(t *testing.T) {
	h := NewFabricImageHandler(&stubImageIssuer{exists: true, signErr: errors.New("iam: denied")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/telas/imagen?path=telas/pima.jpg", ""))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestFabricImageRequiresIdentity(t *testing.T) {
	h := NewFabricImageHandler(&stubImageIssuer{exists: true})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/telas/imagen?path=telas/pima.jpg", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
