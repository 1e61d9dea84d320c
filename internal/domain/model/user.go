package model

// Role is a user's access tier. Values outside the known set are stored as is.
type Role string

const (
	RoleFree    Role = "free"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

// Privileged reports whether the role grants more than basic access.
func (r Role) Privileged() bool {
	return r == RolePremium || r == RoleAdmin
}

// User represents a single directory entry.
type User struct {
	ID   int64
	Name string
	Role Role
}
