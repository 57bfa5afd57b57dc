package usecase

import (
	"time"

	"ai-task-tracker/internal/enrichment"
	"ai-task-tracker/internal/task/repository"
	pkgLog "ai-task-tracker/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	enricher      enrichment.UseCase
	enrichTimeout time.Duration
}

// New creates a new task UseCase instance.
// enricher may be nil, in which case tasks are created without enrichment.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	enricher enrichment.UseCase,
	enrichTimeout time.Duration,
) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		enricher:      enricher,
		enrichTimeout: enrichTimeout,
	}
}
