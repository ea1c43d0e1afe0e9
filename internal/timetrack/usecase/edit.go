package usecase

import (
	"context"
	"errors"

	"task-planner/internal/directory"
	"task-planner/internal/model"
	"task-planner/internal/timetrack"
	"task-planner/internal/timetrack/repository"
)

func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input timetrack.EditInput) (timetrack.SessionOutput, error) {
	s, err := uc.repo.GetOne(ctx, input.LogID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.SessionOutput{}, timetrack.ErrLogNotFound
		}
		uc.l.Errorf(ctx, "timetrack.usecase.Edit.GetOne: %v", err)
		return timetrack.SessionOutput{}, err
	}

	if s.UserID != sc.UserID {
		role, err := uc.requesterRole(ctx, sc)
		if err != nil {
			return timetrack.SessionOutput{}, err
		}
		if role != model.RoleManager {
			return timetrack.SessionOutput{}, timetrack.ErrNotOwner
		}
	}

	// Only the caller-editable fields change. Ownership and pause
	// bookkeeping stay as recorded.
	if input.StartTime != nil {
		s.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		s.EndTime = input.EndTime
	}
	if input.Description != nil {
		s.Description = *input.Description
	}

	s, err = uc.repo.Update(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Edit.Update: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) AddDescription(ctx context.Context, sc model.Scope, input timetrack.AddDescriptionInput) (timetrack.SessionOutput, error) {
	s, err := uc.repo.GetOne(ctx, input.LogID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.SessionOutput{}, timetrack.ErrLogNotFound
		}
		uc.l.Errorf(ctx, "timetrack.usecase.AddDescription.GetOne: %v", err)
		return timetrack.SessionOutput{}, err
	}

	if s.UserID != sc.UserID {
		return timetrack.SessionOutput{}, timetrack.ErrNotOwner
	}
	if s.EndTime == nil || uc.now().Sub(*s.EndTime) > uc.descWindow {
		return timetrack.SessionOutput{}, timetrack.ErrEditWindowClosed
	}

	s.Description = input.Description

	s, err = uc.repo.Update(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.AddDescription.Update: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) requesterRole(ctx context.Context, sc model.Scope) (model.Role, error) {
	roles, err := uc.users.Roles(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.requesterRole: %v", err)
		return model.RoleUser, err
	}
	return directory.PrimaryRole(roles), nil
}
