package ports

// Package ports defines interfaces (hexagonal ports) for auth, command
// execution, and hardware inventory. Implementations live in
// internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
)

// AuthProvider talks to the identity provider: it builds the authorization
// URL and performs the three follow-up calls of the login flow.
type AuthProvider interface {
	// AuthCodeURL returns the provider authorization URL embedding the
	// client identifier, redirect URI, response type, and scope list.
	AuthCodeURL() string

	// Exchange swaps an authorization code for a token grant.
	Exchange(ctx context.Context, code string) (domainauth.TokenGrant, error)

	// FetchIdentity resolves the current user's profile with the grant.
	FetchIdentity(ctx context.Context, grant domainauth.TokenGrant) (domainauth.Identity, error)

	// FetchRoles resolves the user's role set within the target community.
	// Callers decide whether a failure here is fatal.
	FetchRoles(ctx context.Context, grant domainauth.TokenGrant) (domainauth.RoleSet, error)
}

// TierMapper derives the membership flags for an identity and its roles.
type TierMapper interface {
	Map(identity domainauth.Identity, roles domainauth.RoleSet) domainauth.Membership
}

// BrowserOpener presents a URL to the user via an OS-level browser surface.
type BrowserOpener interface {
	Open(url string) error
}
