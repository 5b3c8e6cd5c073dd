// Package auth provides hand-written test doubles for the auth ports.
// Behavior is injected per-method; unset methods fall back to benign
// defaults so tests only configure what they assert on.
package auth

import (
	"context"
	"sync"

	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
	"github.com/tweakd/tweakd/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider  = (*MockAuthProvider)(nil)
	_ ports.TierMapper    = (*MockTierMapper)(nil)
	_ ports.BrowserOpener = (*MockBrowserOpener)(nil)
)

// MockAuthProvider implements ports.AuthProvider with injectable behavior.
type MockAuthProvider struct {
	AuthCodeURLFunc   func() string
	ExchangeFunc      func(ctx context.Context, code string) (domainauth.TokenGrant, error)
	FetchIdentityFunc func(ctx context.Context, grant domainauth.TokenGrant) (domainauth.Identity, error)
	FetchRolesFunc    func(ctx context.Context, grant domainauth.TokenGrant) (domainauth.RoleSet, error)
}

func (m *MockAuthProvider) AuthCodeURL() string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc()
	}
	return "https://auth.example.test/authorize"
}

func (m *MockAuthProvider) Exchange(ctx context.Context, code string) (domainauth.TokenGrant, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return domainauth.TokenGrant{AccessToken: "test-token", TokenType: "Bearer"}, nil
}

func (m *MockAuthProvider) FetchIdentity(ctx context.Context, grant domainauth.TokenGrant) (domainauth.Identity, error) {
	if m.FetchIdentityFunc != nil {
		return m.FetchIdentityFunc(ctx, grant)
	}
	return domainauth.Identity{ID: "1", Username: "tester"}, nil
}

func (m *MockAuthProvider) FetchRoles(ctx context.Context, grant domainauth.TokenGrant) (domainauth.RoleSet, error) {
	if m.FetchRolesFunc != nil {
		return m.FetchRolesFunc(ctx, grant)
	}
	return domainauth.RoleSet{}, nil
}

// MockTierMapper implements ports.TierMapper with injectable behavior.
type MockTierMapper struct {
	MapFunc func(identity domainauth.Identity, roles domainauth.RoleSet) domainauth.Membership
}

func (m *MockTierMapper) Map(identity domainauth.Identity, roles domainauth.RoleSet) domainauth.Membership {
	if m.MapFunc != nil {
		return m.MapFunc(identity, roles)
	}
	return domainauth.Membership{}
}

// MockBrowserOpener records every URL it is asked to open.
type MockBrowserOpener struct {
	OpenFunc func(url string) error

	mu     sync.Mutex
	opened []string
}

func (m *MockBrowserOpener) Open(url string) error {
	m.mu.Lock()
	m.opened = append(m.opened, url)
	m.mu.Unlock()

	if m.OpenFunc != nil {
		return m.OpenFunc(url)
	}
	return nil
}

// Opened returns a copy of the URLs opened so far.
func (m *MockBrowserOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}
