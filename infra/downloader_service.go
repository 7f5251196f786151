package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Jeremi16/synify-be/config"
)

const (
	resolveRetryCount = 3
	resolveRetryDelay = 2 * time.Second

	// Some downloader CDNs reject non-browser clients.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	browserAccept    = "audio/webm,audio/ogg,audio/wav,audio/*;q=0.9,application/ogg;q=0.7,video/*;q=0.6,*/*;q=0.5"
)

// DownloaderService wraps the external resolution APIs: one for video-search
// style links, one for streaming-service track links. Both return a raw
// title, a thumbnail, a duration estimate and a direct binary-fetch URL.
type DownloaderService struct {
	VideoAPIURL string
	TrackAPIURL string
	APIKey      string

	httpClient *http.Client
	limiter    *rate.Limiter
	retryDelay time.Duration
}

type ResolvedSource struct {
	Title       string
	Thumbnail   string
	Duration    int
	DownloadURL string
}

type downloaderResponse struct {
	Success     bool   `json:"success"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Duration    int    `json:"duration"`
	DownloadURL string `json:"download_url"`
	Message     string `json:"message"`
}

func InitDownloaderService(cfg *config.EnvConfig) *DownloaderService {
	if cfg.Downloader.VideoAPIURL == "" || cfg.Downloader.TrackAPIURL == "" {
		panic("Downloader API URLs are not configured")
	}

	return &DownloaderService{
		VideoAPIURL: cfg.Downloader.VideoAPIURL,
		TrackAPIURL: cfg.Downloader.TrackAPIURL,
		APIKey:      cfg.Downloader.APIKey,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		retryDelay:  resolveRetryDelay,
	}
}

// ResolveVideo resolves a video-search link. The upstream is flaky, so the
// call is retried up to 3 times with a fixed delay before giving up.
func (s *DownloaderService) ResolveVideo(ctx context.Context, sourceURL string) (*ResolvedSource, error) {
	var lastErr error
	for attempt := 0; attempt < resolveRetryCount; attempt++ {
		if attempt > 0 {
			time.Sleep(s.retryDelay)
		}
		resolved, err := s.resolve(ctx, s.VideoAPIURL, sourceURL)
		if err == nil {
			return resolved, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("video resolution failed after %d attempts: %w", resolveRetryCount, lastErr)
}

// ResolveTrack resolves a streaming-service track link. Not retried.
func (s *DownloaderService) ResolveTrack(ctx context.Context, sourceURL string) (*ResolvedSource, error) {
	return s.resolve(ctx, s.TrackAPIURL, sourceURL)
}

func (s *DownloaderService) resolve(ctx context.Context, apiURL, sourceURL string) (*ResolvedSource, error) {
	if sourceURL == "" {
		return nil, fmt.Errorf("source URL cannot be empty")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?url=%s", apiURL, url.QueryEscape(sourceURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolve request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.APIKey != "" {
		req.Header.Set("X-API-Key", s.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("downloader API returned %d: %s", resp.StatusCode, raw)
	}

	var payload downloaderResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode downloader response: %w", err)
	}

	if !payload.Success {
		return nil, fmt.Errorf("downloader API reported failure: %s", payload.Message)
	}
	if payload.Title == "" || payload.DownloadURL == "" {
		return nil, fmt.Errorf("downloader response is missing title or download URL")
	}

	return &ResolvedSource{
		Title:       payload.Title,
		Thumbnail:   payload.Thumbnail,
		Duration:    payload.Duration,
		DownloadURL: payload.DownloadURL,
	}, nil
}

// FetchBinary downloads the audio bytes from a resolved direct URL using a
// realistic browser identity. When retry is set the fetch is attempted up to
// 3 times with the same fixed delay as resolution.
func (s *DownloaderService) FetchBinary(ctx context.Context, directURL string, retry bool) ([]byte, error) {
	attempts := 1
	if retry {
		attempts = resolveRetryCount
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.retryDelay)
		}
		data, err := s.fetchOnce(ctx, directURL)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}

	if retry {
		return nil, fmt.Errorf("binary fetch failed after %d attempts: %w", attempts, lastErr)
	}
	return nil, lastErr
}

func (s *DownloaderService) fetchOnce(ctx context.Context, directURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", browserAccept)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("binary fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("binary fetch returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read binary body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("binary fetch returned empty body")
	}

	return data, nil
}
