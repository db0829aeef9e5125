package domain

// Role is the authorization role carried by a verified identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Caller is the verified identity of the user issuing a request. It is
// produced by token verification and passed explicitly to every scoped
// operation.
type Caller struct {
	ID   string
	Role Role
}

// IsZero reports whether the caller carries no identity.
func (c Caller) IsZero() bool {
	return c.ID == ""
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
