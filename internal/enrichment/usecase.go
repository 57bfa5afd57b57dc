package enrichment

import (
	"context"
	"fmt"
	"strings"

	"ai-task-tracker/pkg/claude"
)

// Analyze asks the completion API about title and scrapes the answer.
func (uc *implUseCase) Analyze(ctx context.Context, title string) (Result, error) {
	if strings.TrimSpace(title) == "" {
		return Result{}, ErrEmptyTitle
	}

	if uc.cache != nil {
		if res, ok := uc.cache.Get(title); ok {
			uc.l.Debugf(ctx, "enrichment.Analyze: cache hit for %q", title)
			return res, nil
		}
	}

	if !uc.limiter.Allow() {
		return Result{}, ErrThrottled
	}

	resp, err := uc.client.Complete(ctx, &claude.Request{Prompt: BuildPrompt(title)})
	if err != nil {
		return Result{}, fmt.Errorf("enrichment: complete: %w", err)
	}
	if strings.TrimSpace(resp.Completion) == "" {
		return Result{}, ErrEmptyCompletion
	}

	res := ParseCompletion(resp.Completion)
	uc.l.Debugf(ctx, "enrichment.Analyze: model=%s priority=%q estimated_time=%q", uc.client.Model(), res.Priority, res.EstimatedTime)

	if uc.cache != nil {
		uc.cache.Add(title, res)
	}

	return res, nil
}
