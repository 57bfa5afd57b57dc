package httpserver

import (
	"context"

	taskHTTP "ai-task-tracker/internal/task/delivery/http"
	taskRepo "ai-task-tracker/internal/task/repository/memory"
	taskUC "ai-task-tracker/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(srv.gin, h)
func (srv HTTPServer) setupTaskDomain(ctx context.Context) error {
	// 1. Repository
	repo := taskRepo.New(srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.enricher, srv.enrichmentTimeout)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /tasks
	taskHTTP.RegisterRoutes(srv.gin, h)

	if srv.enricher == nil {
		srv.l.Warnf(ctx, "Task domain registered without enrichment")
	} else {
		srv.l.Infof(ctx, "Task domain registered with enrichment (timeout %s)", srv.enrichmentTimeout)
	}
	return nil
}
