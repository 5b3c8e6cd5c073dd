package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
)

func testConfig(tb testing.TB, overrides func(*ProviderConfig)) ProviderConfig {
	tb.Helper()
	cfg := ProviderConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURL:  "http://localhost:53134/callback",
		Scope:        "identify guilds.members.read",
		GuildID:      "guild-1",
	}
	if overrides != nil {
		overrides(&cfg)
	}
	return cfg
}

func TestNewProvider_Validation(t *testing.T) {
	tests := []struct {
		name     string
		override func(*ProviderConfig)
	}{
		{"missing client id", func(c *ProviderConfig) { c.ClientID = "" }},
		{"missing client secret", func(c *ProviderConfig) { c.ClientSecret = "" }},
		{"missing redirect url", func(c *ProviderConfig) { c.RedirectURL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(testConfig(t, tt.override))
			assert.Error(t, err)
		})
	}
}

func TestAuthCodeURL_Parameters(t *testing.T) {
	p, err := NewProvider(testConfig(t, nil))
	require.NoError(t, err)

	u, err := url.Parse(p.AuthCodeURL())
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "http://localhost:53134/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "identify guilds.members.read", q.Get("scope"))
	assert.False(t, q.Has("state"), "loopback capture flow carries no state")
}

func TestExchange_FormEncodedPost(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok1","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) {
		c.TokenURL = srv.URL + "/oauth2/token"
	}))
	require.NoError(t, err)

	grant, err := p.Exchange(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "tok1", grant.AccessToken)
	assert.Equal(t, "Bearer", grant.TokenType)
	assert.False(t, grant.ExpiresAt.IsZero())

	assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
	assert.Equal(t, "abc123", gotForm.Get("code"))
	assert.Equal(t, "client-1", gotForm.Get("client_id"))
	assert.Equal(t, "secret-1", gotForm.Get("client_secret"))
	assert.Equal(t, "http://localhost:53134/callback", gotForm.Get("redirect_uri"))
}

func TestExchange_EmptyCode(t *testing.T) {
	p, err := NewProvider(testConfig(t, nil))
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), "")
	assert.Error(t, err)
}

func TestExchange_RejectedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) {
		c.TokenURL = srv.URL + "/oauth2/token"
	}))
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestFetchIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/@me", r.URL.Path)
		require.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","username":"nova","avatar":"a1b2"}`))
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.APIBaseURL = srv.URL }))
	require.NoError(t, err)

	identity, err := p.FetchIdentity(context.Background(), domainauth.TokenGrant{AccessToken: "tok1", TokenType: "Bearer"})
	require.NoError(t, err)

	assert.Equal(t, domainauth.Identity{ID: "42", Username: "nova", Avatar: "a1b2"}, identity)
}

func TestFetchIdentity_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.APIBaseURL = srv.URL }))
	require.NoError(t, err)

	_, err = p.FetchIdentity(context.Background(), domainauth.TokenGrant{AccessToken: "tok1"})
	assert.Error(t, err)
}

func TestFetchIdentity_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"401: Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.APIBaseURL = srv.URL }))
	require.NoError(t, err)

	_, err = p.FetchIdentity(context.Background(), domainauth.TokenGrant{AccessToken: "expired"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestFetchRoles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/@me/guilds/guild-1/member", r.URL.Path)
		require.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roles":["r1","r2"],"nick":"nova"}`))
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.APIBaseURL = srv.URL }))
	require.NoError(t, err)

	roles, err := p.FetchRoles(context.Background(), domainauth.TokenGrant{AccessToken: "tok1", TokenType: "Bearer"})
	require.NoError(t, err)

	assert.Equal(t, domainauth.NewRoleSet("r1", "r2"), roles)
}

func TestFetchRoles_NotAMember(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unknown Guild"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.APIBaseURL = srv.URL }))
	require.NoError(t, err)

	_, err = p.FetchRoles(context.Background(), domainauth.TokenGrant{AccessToken: "tok1"})
	assert.Error(t, err, "the adapter reports the failure; the login flow decides it is non-fatal")
}

func TestFetchRoles_NoCommunityConfigured(t *testing.T) {
	p, err := NewProvider(testConfig(t, func(c *ProviderConfig) { c.GuildID = "" }))
	require.NoError(t, err)

	roles, err := p.FetchRoles(context.Background(), domainauth.TokenGrant{AccessToken: "tok1"})
	require.NoError(t, err)
	assert.Equal(t, 0, roles.Len())
}
