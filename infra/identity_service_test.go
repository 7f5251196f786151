package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentity(tokenInfoURL string) *IdentityService {
	return &IdentityService{
		TokenInfoURL: tokenInfoURL,
		ClientID:     "my-client-id",
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestVerifyMapsIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "raw-token", r.URL.Query().Get("id_token"))
		fmt.Fprint(w, `{"aud":"my-client-id","sub":"google-123","email":"listener@example.com","name":"A Listener","picture":"https://img/a.jpg"}`)
	}))
	defer srv.Close()

	s := newTestIdentity(srv.URL)
	identity, err := s.Verify(context.Background(), "raw-token")

	require.NoError(t, err)
	assert.Equal(t, "google-123", identity.Subject)
	assert.Equal(t, "listener@example.com", identity.Email)
	assert.Equal(t, "A Listener", identity.Name)
	assert.Equal(t, "https://img/a.jpg", identity.AvatarURL)
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"aud":"someone-else","sub":"google-123","email":"listener@example.com"}`)
	}))
	defer srv.Close()

	s := newTestIdentity(srv.URL)
	_, err := s.Verify(context.Background(), "raw-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "audience")
}

func TestVerifyRejectsInvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	s := newTestIdentity(srv.URL)
	_, err := s.Verify(context.Background(), "garbage")

	assert.Error(t, err)
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	s := newTestIdentity("http://unused")
	_, err := s.Verify(context.Background(), "")
	assert.Error(t, err)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"aud":"my-client-id","email":""}`)
	}))
	defer srv.Close()

	s := newTestIdentity(srv.URL)
	_, err := s.Verify(context.Background(), "raw-token")

	assert.Error(t, err)
}
