package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Jeremi16/synify-be/config"
)

// tokenExpirySlack refreshes the token slightly before the provider would
// reject it.
const tokenExpirySlack = 30 * time.Second

// SpotifyService enriches artist names via the streaming-service search API,
// credentialed through a client-credentials OAuth flow. The access token is
// cached in process memory with its expiry and refreshed on demand.
// Concurrent refreshes are tolerated: refreshing is idempotent and cheap, so
// the last writer wins and no lock is held across the network call. The
// mutex only guards the token/expiry pair itself.
type SpotifyService struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string

	httpClient *http.Client
	limiter    *rate.Limiter

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

type ArtistMatch struct {
	Name      string
	AvatarURL string
	Genres    []string
}

type spotifyTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type spotifySearchResponse struct {
	Artists struct {
		Items []struct {
			Name   string   `json:"name"`
			Genres []string `json:"genres"`
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"items"`
	} `json:"artists"`
}

func InitSpotifyService(cfg *config.EnvConfig) *SpotifyService {
	return &SpotifyService{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		TokenURL:     cfg.Spotify.TokenURL,
		APIURL:       strings.TrimSuffix(cfg.Spotify.APIURL, "/"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		limiter:      rate.NewLimiter(rate.Every(200*time.Millisecond), 2),
	}
}

// Enabled reports whether enrichment credentials are configured. Ingestion
// skips enrichment entirely when they are not.
func (s *SpotifyService) Enabled() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

func (s *SpotifyService) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	token, expiry := s.token, s.tokenExpiry
	s.mu.Unlock()

	if token != "" && time.Now().Before(expiry) {
		return token, nil
	}
	return s.refreshToken(ctx)
}

func (s *SpotifyService) refreshToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(s.ClientID, s.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, raw)
	}

	var tokenResp spotifyTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned empty access token")
	}

	s.mu.Lock()
	s.token = tokenResp.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenExpirySlack)
	s.mu.Unlock()

	return tokenResp.AccessToken, nil
}

// SearchArtist returns the best artist match for a name, or nil when the
// catalog has none.
func (s *SpotifyService) SearchArtist(ctx context.Context, name string) (*ArtistMatch, error) {
	if name == "" {
		return nil, fmt.Errorf("artist name cannot be empty")
	}

	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/search?q=%s&type=artist&limit=1", s.APIURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("artist search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("artist search returned %d: %s", resp.StatusCode, raw)
	}

	var result spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(result.Artists.Items) == 0 {
		return nil, nil
	}

	item := result.Artists.Items[0]
	match := &ArtistMatch{
		Name:   item.Name,
		Genres: item.Genres,
	}
	if len(item.Images) > 0 {
		match.AvatarURL = item.Images[0].URL
	}

	return match, nil
}
