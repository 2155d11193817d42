package identity

// principalKind discriminates the three caller identities the system knows
// about. The admin principal is issued by the fixed-credential admin login
// and has no backing user row, so it carries no user ID.
type principalKind int

const (
	kindAnonymous principalKind = iota
	kindUser
	kindAdmin
)

// Principal is the decoded caller identity for a request: anonymous, a
// specific registered child, or the global admin. Authorization decisions
// switch on the variant, never on a nullable-id heuristic.
type Principal struct {
	kind   principalKind
	userID uint
}

// Anonymous returns the principal for an unauthenticated caller.
func Anonymous() Principal {
	return Principal{kind: kindAnonymous}
}

// ForUser returns the principal for a registered child.
func ForUser(userID uint) Principal {
	return Principal{kind: kindUser, userID: userID}
}

// ForAdmin returns the global admin principal.
func ForAdmin() Principal {
	return Principal{kind: kindAdmin}
}

// IsAnonymous reports whether the caller presented no valid credential.
func (p Principal) IsAnonymous() bool {
	return p.kind == kindAnonymous
}

// IsAdmin reports whether the caller authenticated through the admin login.
func (p Principal) IsAdmin() bool {
	return p.kind == kindAdmin
}

// UserID returns the backing user row ID and true when the caller is a
// registered child. Admin and anonymous principals have no user ID.
func (p Principal) UserID() (uint, bool) {
	if p.kind != kindUser {
		return 0, false
	}
	return p.userID, true
}
