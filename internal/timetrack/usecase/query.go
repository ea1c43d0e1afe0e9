package usecase

import (
	"context"
	"errors"

	"task-planner/internal/model"
	"task-planner/internal/timetrack"
	"task-planner/internal/timetrack/repository"
)

// defaultReportDays is the report lookback when no range is given.
const defaultReportDays = 30

func (uc *implUseCase) Active(ctx context.Context, sc model.Scope) (timetrack.ActiveOutput, error) {
	s, err := uc.repo.FindActiveByUser(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return timetrack.ActiveOutput{}, nil
		}
		uc.l.Errorf(ctx, "timetrack.usecase.Active.FindActiveByUser: %v", err)
		return timetrack.ActiveOutput{}, err
	}

	return timetrack.ActiveOutput{
		Sessions: []timetrack.SessionOutput{uc.output(s)},
	}, nil
}

func (uc *implUseCase) ForTask(ctx context.Context, sc model.Scope, taskID string) (timetrack.LogsOutput, error) {
	if taskID == "" {
		return timetrack.LogsOutput{}, timetrack.ErrTaskRequired
	}

	sessions, err := uc.repo.ListByTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.ForTask.ListByTask: %v", err)
		return timetrack.LogsOutput{}, err
	}

	return timetrack.LogsOutput{Sessions: uc.outputs(sessions)}, nil
}

func (uc *implUseCase) Report(ctx context.Context, sc model.Scope, input timetrack.ReportInput) (timetrack.ReportOutput, error) {
	role, err := uc.requesterRole(ctx, sc)
	if err != nil {
		return timetrack.ReportOutput{}, err
	}
	if role != model.RoleManager && role != model.RoleLead {
		return timetrack.ReportOutput{}, timetrack.ErrNotPermitted
	}

	now := uc.now()
	from := input.From
	to := input.To
	if from.IsZero() {
		from = now.AddDate(0, 0, -defaultReportDays)
	}
	if to.IsZero() {
		to = now.AddDate(0, 0, 1)
	}

	sessions, err := uc.repo.ListByRange(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "timetrack.usecase.Report.ListByRange: %v", err)
		return timetrack.ReportOutput{}, err
	}

	out := timetrack.ReportOutput{
		Sessions: uc.outputs(sessions),
		From:     from,
		To:       to,
	}
	for _, s := range out.Sessions {
		out.TotalMinutes += s.DurationMinutes
	}
	return out, nil
}

func (uc *implUseCase) outputs(sessions []model.TimerSession) []timetrack.SessionOutput {
	outs := make([]timetrack.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		outs = append(outs, uc.output(s))
	}
	return outs
}
