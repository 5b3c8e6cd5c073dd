package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweakd/tweakd/config"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Auth: config.AuthConfig{
			OAuth: config.OAuthConfig{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
				RedirectURL:  "http://localhost:53134/callback",
				CallbackAddr: "127.0.0.1:53134",
				Scope:        "identify guilds.members.read",
			},
			LoginTimeout: 3 * time.Minute,
			HTTPTimeout:  30 * time.Second,
		},
		HTTP: config.HTTPConfig{Addr: "127.0.0.1:8686"},
		Tweaks: config.TweakConfig{
			CommandTimeout: 30 * time.Second,
		},
	}
}

func TestNewServices_WiresEverything(t *testing.T) {
	services, err := NewServices(&ServiceDeps{
		Config: testAppConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NotNil(t, services.Login)
	assert.NotNil(t, services.Tweaks)
	assert.NotNil(t, services.Specs)
	assert.NotNil(t, services.Metrics)
}

func TestNewServices_RejectsMissingCredentials(t *testing.T) {
	cfg := testAppConfig()
	cfg.Auth.OAuth.ClientID = ""

	_, err := NewServices(&ServiceDeps{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
}

func TestCallbackPathFromRedirectURL(t *testing.T) {
	tests := []struct {
		name        string
		redirectURL string
		want        string
		wantErr     bool
	}{
		{name: "standard callback", redirectURL: "http://localhost:53134/callback", want: "/callback"},
		{name: "custom path", redirectURL: "http://localhost:9000/oauth/done", want: "/oauth/done"},
		{name: "no path", redirectURL: "http://localhost:53134", want: "/"},
		{name: "unparseable", redirectURL: "http://local host/cb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := callbackPathFromRedirectURL(tt.redirectURL)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServer_DefaultAddr(t *testing.T) {
	services, err := NewServices(&ServiceDeps{
		Config: testAppConfig(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	server := NewHTTPServer(config.HTTPConfig{}, services, nil)
	assert.Equal(t, "127.0.0.1:8686", server.Addr)

	server = NewHTTPServer(config.HTTPConfig{Addr: "127.0.0.1:9999"}, services, nil)
	assert.Equal(t, "127.0.0.1:9999", server.Addr)
}
