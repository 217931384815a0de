package domain

import "time"

// Role controls access to administrative operations.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the public slice of a user embedded in other records.
type UserSummary struct {
	ID    string
	Email string
	Name  string
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}
