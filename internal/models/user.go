package models

import "time"

// Role is the closed set of account roles. Authorization rules are expressed
// as predicates over roles in the authz package.
type Role string

const (
	RoleExplorer Role = "explorer"
	RoleCreator  Role = "creator"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleExplorer, RoleCreator, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// ParseRole returns the role for s, or false when s is not a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPrivate is the credential row for a user, keyed by UserID. It never
// leaves the dataset; PasswordHash is a bcrypt hash.
type UserPrivate struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}
