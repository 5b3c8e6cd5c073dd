package authtier

import (
	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
)

// StaticTierMapper derives membership flags from configured role and owner
// identifiers. Derivation is pure: the same (identity, roles) input always
// produces the same membership.
type StaticTierMapper struct {
	// PremiumRoleID grants the premium flag when present in the role set.
	PremiumRoleID string
	// AdminRoleID grants the admin flag when present in the role set.
	AdminRoleID string
	// OwnerUserID grants the admin flag to this user regardless of roles.
	OwnerUserID string
}

func (m StaticTierMapper) Map(identity domainauth.Identity, roles domainauth.RoleSet) domainauth.Membership {
	isAdmin := (m.OwnerUserID != "" && identity.ID == m.OwnerUserID) ||
		(m.AdminRoleID != "" && roles.Has(m.AdminRoleID))
	isPremium := m.PremiumRoleID != "" && roles.Has(m.PremiumRoleID)

	return domainauth.Membership{
		IsPremium: isPremium,
		IsAdmin:   isAdmin,
	}
}
