package ecwid

import (
	"net/url"
	"strings"
	"testing"

	"recommender/internal/config"
	"recommender/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAuthURL(t *testing.T) {
	cfg := &config.Config{EcwidClientID: "client-abc"}
	service := NewOAuthService(cfg, logger.New("error"))

	authURL, state, err := service.GenerateAuthURL("https://app.example.com/callback")
	require.NoError(t, err)
	require.NotEmpty(t, state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(authURL, "https://my.ecwid.com/api/oauth/authorize"))
	assert.Equal(t, "client-abc", parsed.Query().Get("client_id"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, state, parsed.Query().Get("state"))
	assert.Contains(t, parsed.Query().Get("scope"), "read_catalog")
	assert.Equal(t, "https://app.example.com/callback", parsed.Query().Get("redirect_uri"))
}

func TestGenerateAuthURL_StateIsUnique(t *testing.T) {
	cfg := &config.Config{EcwidClientID: "client-abc"}
	service := NewOAuthService(cfg, logger.New("error"))

	_, state1, err := service.GenerateAuthURL("https://app.example.com/callback")
	require.NoError(t, err)
	_, state2, err := service.GenerateAuthURL("https://app.example.com/callback")
	require.NoError(t, err)

	assert.NotEqual(t, state1, state2)
}
