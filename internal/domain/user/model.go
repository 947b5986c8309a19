package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleCoach   Role = "coach"
)

var AllRoles = map[Role]struct{}{
	RoleAdmin:   {},
	RoleUser:    {},
	RoleManager: {},
	RoleCoach:   {},
}

// ParseRole normalizes a role name, defaulting to RoleUser when empty.
func ParseRole(v string) (Role, error) {
	value := Role(strings.ToLower(strings.TrimSpace(v)))
	if value == "" {
		return RoleUser, nil
	}
	if _, ok := AllRoles[value]; !ok {
		return "", fmt.Errorf("invalid role: %s", v)
	}
	return value, nil
}

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if len(u.Username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	if _, ok := AllRoles[u.Role]; !ok {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}

	return nil
}

// Summary is the public projection joined into team details.
type Summary struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Role      Role
}

func (u User) Summary() Summary {
	return Summary{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Principal is the authenticated requester extracted from a bearer token.
type Principal struct {
	UserID   string
	Username string
	Role     Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
