package twitcheroo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "env-client")
	t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")
	t.Setenv("TWITCH_SCOPES", "bits:read channel:read:polls")
	t.Setenv("TWITCH_MAX_RETRIES", "5")
	t.Setenv("TWITCH_TIMEOUT", "2s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-client", cfg.ClientID)
	assert.Equal(t, "env-secret", cfg.ClientSecret)
	assert.Equal(t, []string{"bits:read", "channel:read:polls"}, cfg.Scopes)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "env-client")
	t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestConfigFromEnv_BlankScopesBehaveLikeUnset(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "env-client")
	t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")
	t.Setenv("TWITCH_SCOPES", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.Scopes)

	_, err = cfg.Client()
	require.NoError(t, err)
}

func TestConfigFromEnv_RequiredFields(t *testing.T) {
	t.Setenv("TWITCH_CLIENT_ID", "")
	t.Setenv("TWITCH_CLIENT_SECRET", "secret")
	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "TWITCH_CLIENT_ID")

	t.Setenv("TWITCH_CLIENT_ID", "client")
	t.Setenv("TWITCH_CLIENT_SECRET", "")
	_, err = ConfigFromEnv()
	assert.ErrorContains(t, err, "TWITCH_CLIENT_SECRET")
}

func TestConfig_Client(t *testing.T) {
	cfg := &Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Scopes:       []string{"bits:read"},
		MaxRetries:   4,
		Timeout:      3 * time.Second,
	}

	client, err := cfg.Client()
	require.NoError(t, err)

	assert.Equal(t, 4, client.maxRetries)
	assert.Equal(t, 3*time.Second, client.timeout)
	assert.True(t, client.creds.HasScope("bits:read"))
	assert.False(t, client.creds.HasScope("channel:read:polls"))
}

func TestConfig_Client_RejectsUnknownScope(t *testing.T) {
	cfg := &Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Scopes:       []string{"definitely:not:real"},
		MaxRetries:   3,
		Timeout:      time.Second,
	}

	_, err := cfg.Client()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely:not:real")
}
