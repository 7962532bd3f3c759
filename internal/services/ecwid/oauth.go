package ecwid

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recommender/internal/config"
	"recommender/internal/logger"
)

const (
	authorizeURL = "https://my.ecwid.com/api/oauth/authorize"
	tokenURL     = "https://my.ecwid.com/api/oauth/token"
)

type OAuthService struct {
	config *config.Config
	logger *logger.Logger
}

func NewOAuthService(cfg *config.Config, logger *logger.Logger) *OAuthService {
	return &OAuthService{
		config: cfg,
		logger: logger,
	}
}

// GenerateAuthURL creates the Ecwid OAuth authorization URL
func (s *OAuthService) GenerateAuthURL(redirectURI string) (string, string, error) {
	// Generate a secure state parameter
	state, err := s.generateState()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate state: %w", err)
	}

	// Scopes needed to cache the catalog and order history and to write
	// storefront recommendations back
	scopes := "read_store_profile read_catalog update_catalog read_orders"

	authURL := fmt.Sprintf(
		"%s?client_id=%s&scope=%s&response_type=code&redirect_uri=%s&state=%s",
		authorizeURL,
		url.QueryEscape(s.config.EcwidClientID),
		url.QueryEscape(scopes),
		url.QueryEscape(redirectURI),
		state,
	)

	return authURL, state, nil
}

// ExchangeCodeForToken exchanges the authorization code for an access token
func (s *OAuthService) ExchangeCodeForToken(code, redirectURI string) (*TokenResponse, error) {
	data := url.Values{}
	data.Set("client_id", s.config.EcwidClientID)
	data.Set("client_secret", s.config.EcwidClientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)
	data.Set("grant_type", "authorization_code")

	req, err := http.NewRequest("POST", tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange failed with status: %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	return &tokenResp, nil
}

// generateState generates a cryptographically secure random state
func (s *OAuthService) generateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
