package auth

// Role names carried in token claims and stored on user records.
const (
	RoleNormal = "ROLE_NORMAL"
	RoleVIP    = "ROLE_VIP"
	RoleAdmin  = "ROLE_ADMIN"
)

// Principal is the per-request authenticated identity. The zero value is the
// anonymous principal: no identity, no roles, Authenticated false. Principals
// live in request context only and are never persisted.
type Principal struct {
	Email         string
	Roles         []string
	Authenticated bool
}

// HasAnyRole reports whether the principal holds at least one of roles.
// An unauthenticated principal holds no roles regardless of contents.
func (p Principal) HasAnyRole(roles ...string) bool {
	if !p.Authenticated {
		return false
	}
	for _, want := range roles {
		for _, have := range p.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
