package discord

// Package discord implements the AuthProvider port against the Discord
// OAuth2 and REST APIs. Discord is plain OAuth2 (no discovery document,
// no id_token), so the adapter configures endpoints explicitly.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
	"golang.org/x/oauth2"
)

const (
	defaultAPIBaseURL = "https://discord.com/api"
	defaultAuthURL    = "https://discord.com/api/oauth2/authorize"
	defaultTokenURL   = "https://discord.com/api/oauth2/token"

	// maxErrorBody bounds how much of a provider error response is read
	// into an error message.
	maxErrorBody = 2048
)

// Provider implements the AuthProvider port using OAuth2.
type Provider struct {
	config     *oauth2.Config
	apiBaseURL string
	guildID    string
	httpClient *http.Client
}

// ProviderConfig holds configuration for the Discord provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string // space-delimited scope list

	// GuildID is the target community for the role fetch. Empty means no
	// community is configured and FetchRoles returns an empty set.
	GuildID string

	// APIBaseURL, AuthURL, and TokenURL override the Discord defaults
	// (primarily for tests).
	APIBaseURL string
	AuthURL    string
	TokenURL   string

	HTTPClient *http.Client // Optional, defaults to a 30s-timeout client
}

// NewProvider creates a new Discord provider.
func NewProvider(config ProviderConfig) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if config.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	apiBaseURL := strings.TrimSuffix(config.APIBaseURL, "/")
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	authURL := config.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURL,
			Scopes:       strings.Fields(config.Scope),
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
				// Discord accepts credentials in the form body; pinning the
				// style avoids the library's auth-style probe request.
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: apiBaseURL,
		guildID:    config.GuildID,
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the provider authorization URL for the configured
// client, redirect URI, and scopes, with response_type=code.
func (p *Provider) AuthCodeURL() string {
	return p.config.AuthCodeURL("")
}

// Exchange swaps an authorization code for a token grant via a single
// form-encoded POST to the token endpoint.
func (p *Provider) Exchange(ctx context.Context, code string) (domainauth.TokenGrant, error) {
	if code == "" {
		return domainauth.TokenGrant{}, errors.New("authorization code is required")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return domainauth.TokenGrant{}, fmt.Errorf("exchange code for token: %w", err)
	}

	return domainauth.TokenGrant{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expiry,
	}, nil
}

// userPayload is the provider's current-user response shape.
type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// FetchIdentity resolves the current user's profile.
func (p *Provider) FetchIdentity(ctx context.Context, grant domainauth.TokenGrant) (domainauth.Identity, error) {
	var user userPayload
	if err := p.getJSON(ctx, "/users/@me", grant, &user); err != nil {
		return domainauth.Identity{}, fmt.Errorf("fetch current user: %w", err)
	}
	if user.ID == "" {
		return domainauth.Identity{}, errors.New("provider returned a user without an id")
	}

	return domainauth.Identity{
		ID:       user.ID,
		Username: user.Username,
		Avatar:   user.Avatar,
	}, nil
}

// memberPayload is the provider's guild-member response shape.
type memberPayload struct {
	Roles []string `json:"roles"`
}

// FetchRoles resolves the user's role set within the configured community.
// The error is returned as-is; the login orchestration decides that a role
// fetch failure is not fatal.
func (p *Provider) FetchRoles(ctx context.Context, grant domainauth.TokenGrant) (domainauth.RoleSet, error) {
	if p.guildID == "" {
		return domainauth.RoleSet{}, nil
	}

	var member memberPayload
	path := fmt.Sprintf("/users/@me/guilds/%s/member", p.guildID)
	if err := p.getJSON(ctx, path, grant, &member); err != nil {
		return nil, fmt.Errorf("fetch guild member: %w", err)
	}

	return domainauth.NewRoleSet(member.Roles...), nil
}

// getJSON performs a bearer-authenticated GET against the provider API and
// decodes the JSON response into dst.
func (p *Provider) getJSON(ctx context.Context, path string, grant domainauth.TokenGrant, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBaseURL+path, nil)
	if err != nil {
		return err
	}

	tokenType := grant.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	req.Header.Set("Authorization", tokenType+" "+grant.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
