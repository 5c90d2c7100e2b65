// Package entities contains core business entities.
package entities

// Role grants access to dashboard sections.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSecretario Role = "secretario"
	RoleTesorero   Role = "tesorero"
	RoleMiembro    Role = "miembro"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSecretario, RoleTesorero, RoleMiembro:
		return true
	}
	return false
}

// User is a dashboard account. PasswordHash never leaves the server.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Name         string
}

// Session is the result of a successful login.
type Session struct {
	User  User
	Token string
}
