package usecase

import (
	"context"
	"strings"

	"task-planner/internal/model"
	"task-planner/internal/taskparse"
)

// Extract runs the extraction pipeline: title → due date → priority →
// category → assignee → description. Faults inside any extractor are caught
// here and reported as a failed result with the partial draft preserved;
// Extract never propagates a panic to the caller.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input taskparse.ExtractInput) (res taskparse.ExtractionResult, err error) {
	if strings.TrimSpace(input.Text) == "" {
		return taskparse.ExtractionResult{}, taskparse.ErrEmptyInput
	}

	now := uc.now()
	res = taskparse.ExtractionResult{
		Success: true,
		Draft: model.TaskDraft{
			Priority:         model.PriorityMedium,
			AssignedToUserID: sc.UserID,
			AssignedByUserID: sc.UserID,
			AssignedOn:       now,
		},
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "Extract: recovered fault: %v", r)
			res.Success = false
			res.ErrorMessage = "failed to parse task"
			err = nil
		}
	}()

	uc.l.Infof(ctx, "Extract: user=%s input_length=%d", sc.UserID, len(input.Text))

	res.Draft.Title = extractTitle(input.Text)
	res.Draft.DueDate = uc.extractDueDate(input.Text, now)
	res.Draft.Priority = extractPriority(input.Text)
	res.Draft.CategoryID = uc.extractCategoryID(ctx, input.Text)
	uc.extractAssignee(ctx, input.Text, sc, &res)
	res.Draft.Description = deriveDescription(input.Text, res.Draft)

	return res, nil
}

// extractCategoryID fetches the category list at call time; a store failure
// leaves the category absent rather than failing extraction.
func (uc *implUseCase) extractCategoryID(ctx context.Context, input string) *string {
	categories, err := uc.categories.ListCategories(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: listing categories failed: %v", err)
		return nil
	}
	return extractCategory(input, categories)
}
