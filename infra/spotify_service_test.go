package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestSpotify(tokenURL, apiURL string) *SpotifyService {
	return &SpotifyService{
		ClientID:     "client",
		ClientSecret: "secret",
		TokenURL:     tokenURL,
		APIURL:       apiURL,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		limiter:      rate.NewLimiter(rate.Inf, 1),
	}
}

func spotifyTestServer(t *testing.T, tokenCalls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "client", user)
		require.Equal(t, "secret", pass)
		fmt.Fprint(w, `{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"artists":{"items":[{"name":"Tulus","genres":["indonesian pop"],"images":[{"url":"https://img/tulus.jpg"}]}]}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchArtistReusesCachedToken(t *testing.T) {
	tokenCalls := 0
	srv := spotifyTestServer(t, &tokenCalls)
	s := newTestSpotify(srv.URL+"/token", srv.URL)

	for i := 0; i < 3; i++ {
		match, err := s.SearchArtist(context.Background(), "Tulus")
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "Tulus", match.Name)
		assert.Equal(t, "https://img/tulus.jpg", match.AvatarURL)
		assert.Equal(t, []string{"indonesian pop"}, match.Genres)
	}

	assert.Equal(t, 1, tokenCalls)
}

func TestSearchArtistRefreshesExpiredToken(t *testing.T) {
	tokenCalls := 0
	srv := spotifyTestServer(t, &tokenCalls)
	s := newTestSpotify(srv.URL+"/token", srv.URL)

	_, err := s.SearchArtist(context.Background(), "Tulus")
	require.NoError(t, err)

	// Force expiry; the next search must fetch a fresh token.
	s.mu.Lock()
	s.tokenExpiry = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	_, err = s.SearchArtist(context.Background(), "Tulus")
	require.NoError(t, err)

	assert.Equal(t, 2, tokenCalls)
}

// Enrichment fans out one search per artist name, so a cold cache sees
// several goroutines refresh at once. Duplicate refreshes are fine (last
// writer wins); every search must still come back with a usable token.
func TestSearchArtistConcurrentRefresh(t *testing.T) {
	var tokenCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		fmt.Fprint(w, `{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"artists":{"items":[{"name":"Tulus","genres":[],"images":[]}]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSpotify(srv.URL+"/token", srv.URL)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			match, err := s.SearchArtist(context.Background(), "Tulus")
			assert.NoError(t, err)
			assert.NotNil(t, match)
		}()
	}
	wg.Wait()

	calls := tokenCalls.Load()
	assert.GreaterOrEqual(t, calls, int32(1))
	assert.LessOrEqual(t, calls, int32(workers))
}

func TestSearchArtistNoMatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"tok-1","expires_in":3600}`)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"artists":{"items":[]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSpotify(srv.URL+"/token", srv.URL)
	match, err := s.SearchArtist(context.Background(), "Nobody")

	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestSearchArtistTokenFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := newTestSpotify(srv.URL+"/token", srv.URL)
	_, err := s.SearchArtist(context.Background(), "Tulus")

	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	s := &SpotifyService{}
	assert.False(t, s.Enabled())

	s.ClientID = "id"
	s.ClientSecret = "secret"
	assert.True(t, s.Enabled())
}
