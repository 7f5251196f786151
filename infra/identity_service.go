package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Jeremi16/synify-be/config"
)

// IdentityService verifies Google ID tokens against the public tokeninfo
// endpoint and maps the assertion to a local identity.
type IdentityService struct {
	TokenInfoURL string
	ClientID     string

	httpClient *http.Client
}

type VerifiedIdentity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

type tokenInfoResponse struct {
	Aud           string `json:"aud"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func InitIdentityService(cfg *config.EnvConfig) *IdentityService {
	if cfg.Google.ClientID == "" {
		panic("Google client ID is not configured")
	}

	return &IdentityService{
		TokenInfoURL: cfg.Google.TokenInfoURL,
		ClientID:     cfg.Google.ClientID,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify validates an opaque identity assertion. The token's audience must
// match this application's registered client ID.
func (s *IdentityService) Verify(ctx context.Context, idToken string) (*VerifiedIdentity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("id token cannot be empty")
	}

	u := fmt.Sprintf("%s?id_token=%s", s.TokenInfoURL, url.QueryEscape(idToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tokeninfo returned %d: %s", resp.StatusCode, raw)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if info.Aud != s.ClientID {
		return nil, fmt.Errorf("token audience %q does not match client ID", info.Aud)
	}

	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("tokeninfo response is missing subject or email")
	}

	return &VerifiedIdentity{
		Subject:   info.Sub,
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
	}, nil
}
