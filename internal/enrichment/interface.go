package enrichment

import "context"

// UseCase suggests a priority and a time estimate for a task title.
// Any failure is returned to the caller, which decides whether to fall back.
type UseCase interface {
	Analyze(ctx context.Context, title string) (Result, error)
}
