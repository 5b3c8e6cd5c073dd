package auth

// Package auth contains domain-level types for identity and access tiers.
// It is pure and free of framework/adapter concerns.

import "time"

// AccessTier is the coarse permission level derived from community role
// membership. Keep string form for easy JSON surfacing.
type AccessTier string

const (
	TierGuest   AccessTier = "guest"
	TierPremium AccessTier = "premium"
	TierAdmin   AccessTier = "admin"
)

// Identity represents the authenticated principal returned by the provider.
// Adapters map provider-specific payloads into this shape.
type Identity struct {
	ID       string // stable provider user identifier
	Username string
	Avatar   string // avatar reference (provider hash or URL)
}

// TokenGrant is the provider's code-exchange result. It is ephemeral: held
// only long enough to make the follow-up profile and role queries, and
// never persisted.
type TokenGrant struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// RoleSet is the set of role identifiers the user holds within the target
// community. Membership checks are set-containment and order-independent.
type RoleSet map[string]struct{}

// NewRoleSet builds a RoleSet from role identifiers.
func NewRoleSet(ids ...string) RoleSet {
	rs := make(RoleSet, len(ids))
	for _, id := range ids {
		rs[id] = struct{}{}
	}
	return rs
}

// Has reports whether the role identifier is in the set.
func (r RoleSet) Has(id string) bool {
	_, ok := r[id]
	return ok
}

// Len returns the number of roles in the set.
func (r RoleSet) Len() int { return len(r) }

// Membership is the resolved access-tier view of an identity: independent
// premium/admin flags as the interactive surface consumes them.
type Membership struct {
	IsPremium bool `json:"isPremium"`
	IsAdmin   bool `json:"isAdmin"`
}

// Tier collapses the membership flags into a single AccessTier.
// Admin takes precedence over premium; the result is non-overlapping.
func (m Membership) Tier() AccessTier {
	switch {
	case m.IsAdmin:
		return TierAdmin
	case m.IsPremium:
		return TierPremium
	default:
		return TierGuest
	}
}
