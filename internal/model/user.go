package model

import "strings"

// Role is the closed set of roles recognized by the assignment rules.
type Role int

const (
	RoleUser Role = iota
	RoleLead
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "Manager"
	case RoleLead:
		return "Lead"
	default:
		return "User"
	}
}

// ParseRole maps a role name to a Role. Unknown or empty names are RoleUser.
func ParseRole(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manager":
		return RoleManager
	case "lead":
		return RoleLead
	default:
		return RoleUser
	}
}

// CanAssign reports whether a user with role r may assign a task to the
// given assignee. self is true when assigner and assignee are the same user.
//
//	Manager → anyone
//	Lead    → plain Users, or themselves
//	User    → themselves only
func (r Role) CanAssign(assignee Role, self bool) bool {
	switch r {
	case RoleManager:
		return true
	case RoleLead:
		return assignee == RoleUser || self
	default:
		return self
	}
}

// User is a directory entry.
type User struct {
	ID        string
	FirstName string
	LastName  string
}

// FullName returns "First Last".
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
