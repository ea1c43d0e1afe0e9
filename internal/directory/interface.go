package directory

import (
	"context"

	"task-planner/internal/model"
)

// CategoryStore enumerates task categories. Order is significant: extraction
// resolves verbatim category mentions by enumeration order.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// UserDirectory answers identity questions for extraction and timer auditing.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (model.User, error)

	// Roles returns the role names of a user, primary role first.
	// An empty slice means the user holds the default "User" role.
	Roles(ctx context.Context, userID string) ([]string, error)
}

// PrimaryRole maps a Roles() answer to the user's effective role.
func PrimaryRole(roles []string) model.Role {
	if len(roles) == 0 {
		return model.RoleUser
	}
	return model.ParseRole(roles[0])
}
