// Package entitlement holds the access-control core: pure predicates
// over a resolved profile plus the resolver that produces one.
package entitlement

import (
	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// Role names one of the independent capability flags on a profile.
// The flags overlap: an admin implicitly carries every role.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleAuthor      Role = "author"
	RoleContributor Role = "contributor"
)

func hasRole(p *model.Profile, r Role) bool {
	switch r {
	case RoleAdmin:
		return p.IsAdmin
	case RoleAuthor:
		return p.IsAuthor
	case RoleContributor:
		return p.IsContributor
	default:
		return false
	}
}

// RequireRoles allows the profile when it carries at least one of the
// given roles. Admins pass every role check. A nil profile means no
// identity and denies as unauthenticated.
func RequireRoles(p *model.Profile, roles ...Role) error {
	if p == nil {
		return apperr.ErrUnauthenticated
	}
	if p.IsAdmin {
		return nil
	}
	for _, r := range roles {
		if hasRole(p, r) {
			return nil
		}
	}
	return apperr.ErrForbidden
}

// RequireAdmin allows only admins.
func RequireAdmin(p *model.Profile) error {
	return RequireRoles(p)
}

// RequireOwner allows admins and the owner of the target resource.
func RequireOwner(p *model.Profile, ownerID string) error {
	if p == nil {
		return apperr.ErrUnauthenticated
	}
	if p.IsAdmin || p.ID == ownerID {
		return nil
	}
	return apperr.ErrForbidden
}

// CheckSelfDemotion rejects an admin clearing their own admin flag,
// regardless of any other permission. isAdmin is the requested value,
// nil when the update does not touch the flag.
func CheckSelfDemotion(actor *model.Profile, targetID string, isAdmin *bool) error {
	if actor == nil || isAdmin == nil || *isAdmin {
		return nil
	}
	if actor.ID == targetID && actor.IsAdmin {
		return apperr.ErrSelfDemotion
	}
	return nil
}
