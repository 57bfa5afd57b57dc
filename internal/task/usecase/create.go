package usecase

import (
	"context"
	"strings"

	"ai-task-tracker/internal/enrichment"
	"ai-task-tracker/internal/task"
)

// Create builds a draft, enriches it when possible and inserts it.
// Enrichment failures never fail the creation.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	draft := uc.repo.NewTask(input.Title)

	enriched := false
	if uc.enricher != nil {
		res, err := uc.enrich(ctx, input.Title)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Create enrich %s: %v", draft.ID, err)
		} else {
			draft.Priority = res.Priority
			draft.EstimatedTime = res.EstimatedTime
			enriched = true
		}
	}

	if err := uc.repo.InsertTask(ctx, draft); err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: draft, Enriched: enriched}, nil
}

// enrich calls the enricher outside of any store lock, bounded by enrichTimeout.
func (uc *implUseCase) enrich(ctx context.Context, title string) (enrichment.Result, error) {
	if uc.enrichTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.enrichTimeout)
		defer cancel()
	}
	return uc.enricher.Analyze(ctx, title)
}
