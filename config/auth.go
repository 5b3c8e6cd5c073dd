package config

import "time"

// OAuthConfig contains the OAuth client configuration for the identity
// provider. Client credentials have no defaults and must come from the
// environment; the reference deployment shipped with secrets baked into
// the source, which is exactly what this layout prevents.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID,required,notEmpty"`
	ClientSecret string `env:"CLIENT_SECRET,required,notEmpty"`

	// RedirectURL must match the redirect URI registered with the provider.
	// Its path determines which callback path the loopback listener accepts.
	RedirectURL string `env:"REDIRECT_URL" envDefault:"http://localhost:53134/callback"`

	// CallbackAddr is the loopback address the redirect listener binds.
	// The port must agree with RedirectURL.
	CallbackAddr string `env:"CALLBACK_ADDR" envDefault:"127.0.0.1:53134"`

	// Scope is the space-delimited OAuth scope list.
	Scope string `env:"SCOPE" envDefault:"identify guilds.members.read"`

	// APIBaseURL is the provider REST API base (overridable for tests).
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://discord.com/api"`

	// AuthURL and TokenURL override the provider OAuth endpoints.
	AuthURL  string `env:"AUTHORIZE_URL" envDefault:"https://discord.com/api/oauth2/authorize"`
	TokenURL string `env:"TOKEN_URL"     envDefault:"https://discord.com/api/oauth2/token"`
}

// TierConfig maps provider community roles to application access tiers.
type TierConfig struct {
	// GuildID is the target community whose member roles are consulted.
	GuildID string `env:"GUILD_ID"`

	// PremiumRoleID grants the premium tier when present in the member's roles.
	PremiumRoleID string `env:"PREMIUM_ROLE_ID"`

	// AdminRoleID grants the admin tier when present in the member's roles.
	AdminRoleID string `env:"ADMIN_ROLE_ID"`

	// OwnerUserID grants the admin tier to this user regardless of roles.
	OwnerUserID string `env:"OWNER_USER_ID"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	OAuth OAuthConfig `envPrefix:""`
	Tiers TierConfig  `envPrefix:""`

	// LoginTimeout bounds how long an unresolved login attempt may wait for
	// the redirect before failing. Zero disables the timeout.
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT" envDefault:"3m"`

	// HTTPTimeout bounds each individual call to the provider.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.LoginTimeout < 0 {
		a.LoginTimeout = 0
	}
	if a.HTTPTimeout <= 0 {
		a.HTTPTimeout = 30 * time.Second
	}
}
