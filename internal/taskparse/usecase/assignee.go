package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"task-planner/internal/directory"
	"task-planner/internal/model"
	"task-planner/internal/taskparse"
)

// assigneePatterns capture a candidate name after an assignment lead-in.
// Checked in order; the first pattern yielding a known user is used.
var assigneePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:assign|delegate|give)\s+to\s+(.+?)(?:\s+by|\s+on|\s+due|\.|$)`),
	regexp.MustCompile(`(?i)for\s+(.+?)(?:\s+to\s+|$)`),
}

// extractAssignee resolves an assignment mention against the user directory
// and enforces the role-based assignment rules. When the candidate fails the
// permission check, the result is marked failed and the draft keeps the
// requesting user as assignee. When no candidate resolves, the assignee
// stays the requesting user without failure.
func (uc *implUseCase) extractAssignee(ctx context.Context, input string, sc model.Scope, res *taskparse.ExtractionResult) {
	for _, re := range assigneePatterns {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}

		assignee, ok := uc.findUserByName(ctx, name)
		if !ok {
			continue
		}

		requesterRole := uc.roleOf(ctx, sc.UserID)
		assigneeRole := uc.roleOf(ctx, assignee.ID)
		self := assignee.ID == sc.UserID

		if requesterRole.CanAssign(assigneeRole, self) {
			res.Draft.AssignedToUserID = assignee.ID
			return
		}

		res.Success = false
		res.ErrorMessage = fmt.Sprintf("you don't have permission to assign tasks to %s", name)
		return
	}
}

// findUserByName matches by first name, last name, or "first last" full
// name, case-insensitively.
func (uc *implUseCase) findUserByName(ctx context.Context, name string) (model.User, bool) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "extractAssignee: listing users failed: %v", err)
		return model.User{}, false
	}

	for _, u := range users {
		if strings.EqualFold(u.FirstName, name) ||
			strings.EqualFold(u.LastName, name) ||
			strings.EqualFold(u.FullName(), name) {
			return u, true
		}
	}
	return model.User{}, false
}

func (uc *implUseCase) roleOf(ctx context.Context, userID string) model.Role {
	roles, err := uc.users.Roles(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "extractAssignee: roles lookup for %s failed: %v", userID, err)
		return model.RoleUser
	}
	return directory.PrimaryRole(roles)
}
