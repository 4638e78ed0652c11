package marketplace

import "fmt"

// Role determines which dashboards an identity can reach.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ParseRole validates a role submitted through the sign-up form.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleSeller, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Identity is the authenticated user as known to the client: the backend's
// id, display name, email, and role. The role is immutable for the lifetime
// of a session; changing it requires re-authentication.
type Identity struct {
	ID          string `json:"_id"`
	DisplayName string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}
