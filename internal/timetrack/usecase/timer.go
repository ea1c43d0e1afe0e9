package usecase

import (
	"context"
	"errors"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/timetrack"
	"task-planner/internal/timetrack/repository"
)

// foldPause adds the outstanding pause interval to the session's total and
// clears the pause markers. Sub-minute intervals fold to zero.
func foldPause(s *model.TimerSession, now time.Time) {
	if s.IsPaused && s.PauseTime != nil {
		if mins := int(now.Sub(*s.PauseTime).Minutes()); mins > 0 {
			s.TotalPausedMinutes += mins
		}
	}
	s.IsPaused = false
	s.PauseTime = nil
}

func (uc *implUseCase) Start(ctx context.Context, sc model.Scope, input timetrack.StartInput) (timetrack.SessionOutput, error) {
	if input.TaskID == "" {
		return timetrack.SessionOutput{}, timetrack.ErrTaskRequired
	}

	now := uc.now()

	// A user accrues time on at most one task. Stop whatever is running
	// before opening the new session.
	prev, err := uc.repo.FindActiveByUser(ctx, sc.UserID)
	if err == nil {
		foldPause(&prev, now)
		end := now
		prev.EndTime = &end
		if _, err := uc.repo.Update(ctx, prev); err != nil {
			uc.l.Errorf(ctx, "timetrack.usecase.Start.Update: %v", err)
			return timetrack.SessionOutput{}, err
		}
	} else if !errors.Is(err, repository.ErrSessionNotFound) {
		uc.l.Errorf(ctx, "timetrack.usecase.Start.FindActiveByUser: %v", err)
		return timetrack.SessionOutput{}, err
	}

	s, err := uc.repo.Create(ctx, repository.CreateSessionOptions{
		TaskID:    input.TaskID,
		UserID:    sc.UserID,
		StartTime: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Start.Create: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) Pause(ctx context.Context, sc model.Scope, input timetrack.PauseInput) (timetrack.SessionOutput, error) {
	if input.TaskID == "" {
		return timetrack.SessionOutput{}, timetrack.ErrTaskRequired
	}

	s, err := uc.repo.FindActive(ctx, input.TaskID, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.SessionOutput{}, timetrack.ErrNoRunningTimer
		}
		uc.l.Errorf(ctx, "timetrack.usecase.Pause.FindActive: %v", err)
		return timetrack.SessionOutput{}, err
	}
	if s.IsPaused {
		return timetrack.SessionOutput{}, timetrack.ErrNoRunningTimer
	}

	now := uc.now()
	s.IsPaused = true
	s.PauseTime = &now

	s, err = uc.repo.Update(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Pause.Update: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) Resume(ctx context.Context, sc model.Scope, input timetrack.ResumeInput) (timetrack.SessionOutput, error) {
	if input.TaskID == "" {
		return timetrack.SessionOutput{}, timetrack.ErrTaskRequired
	}

	s, err := uc.repo.FindActive(ctx, input.TaskID, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.SessionOutput{}, timetrack.ErrNoPausedTimer
		}
		uc.l.Errorf(ctx, "timetrack.usecase.Resume.FindActive: %v", err)
		return timetrack.SessionOutput{}, err
	}
	if !s.IsPaused {
		return timetrack.SessionOutput{}, timetrack.ErrNoPausedTimer
	}

	foldPause(&s, uc.now())

	s, err = uc.repo.Update(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Resume.Update: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) Stop(ctx context.Context, sc model.Scope, input timetrack.StopInput) (timetrack.SessionOutput, error) {
	if input.TaskID == "" {
		return timetrack.SessionOutput{}, timetrack.ErrTaskRequired
	}

	s, err := uc.repo.FindActive(ctx, input.TaskID, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.SessionOutput{}, timetrack.ErrNoActiveTimer
		}
		uc.l.Errorf(ctx, "timetrack.usecase.Stop.FindActive: %v", err)
		return timetrack.SessionOutput{}, err
	}

	now := uc.now()
	foldPause(&s, now)
	s.EndTime = &now
	if input.Description != "" {
		s.Description = input.Description
	}

	s, err = uc.repo.Update(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Stop.Update: %v", err)
		return timetrack.SessionOutput{}, err
	}

	return uc.output(s), nil
}

func (uc *implUseCase) output(s model.TimerSession) timetrack.SessionOutput {
	return timetrack.SessionOutput{
		Session:         s,
		DurationMinutes: s.DurationMinutesAt(uc.now()),
	}
}
