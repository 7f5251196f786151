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
	"golang.org/x/time/rate"
)

func newTestDownloader(videoURL, trackURL string) *DownloaderService {
	return &DownloaderService{
		VideoAPIURL: videoURL,
		TrackAPIURL: trackURL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		limiter:     rate.NewLimiter(rate.Inf, 1),
		retryDelay:  0,
	}
}

func TestResolveVideoRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"success":true,"title":"Tulus - Gajah","thumbnail":"t.jpg","duration":222,"download_url":"https://cdn/file"}`)
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	resolved, err := s.ResolveVideo(context.Background(), "https://video/watch?v=1")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "Tulus - Gajah", resolved.Title)
	assert.Equal(t, 222, resolved.Duration)
	assert.Equal(t, "https://cdn/file", resolved.DownloadURL)
}

func TestResolveVideoGivesUpAfterThreeAttempts(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.ResolveVideo(context.Background(), "https://video/watch?v=1")

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestResolveTrackDoesNotRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.ResolveTrack(context.Background(), "https://track/123")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestResolveRejectsUpstreamFailureFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":false,"message":"unavailable"}`)
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.ResolveTrack(context.Background(), "https://track/123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
}

func TestResolveRejectsIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"title":"","download_url":""}`)
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.ResolveTrack(context.Background(), "https://track/123")

	assert.Error(t, err)
}

func TestFetchBinaryRetriesWhenAsked(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, "audio-bytes")
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	data, err := s.FetchBinary(context.Background(), srv.URL, true)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []byte("audio-bytes"), data)
}

func TestFetchBinaryRejectsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.FetchBinary(context.Background(), srv.URL, false)

	assert.Error(t, err)
}

func TestFetchBinarySendsBrowserHeaders(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	s := newTestDownloader(srv.URL, srv.URL)
	_, err := s.FetchBinary(context.Background(), srv.URL, false)

	require.NoError(t, err)
	assert.Equal(t, browserUserAgent, gotUA)
}
