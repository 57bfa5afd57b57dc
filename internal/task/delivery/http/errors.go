package http

import (
	"context"
	"errors"
	"net/http"

	"ai-task-tracker/internal/task"
	pkgErrors "ai-task-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are logged and rendered as 500.
func (h *handler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrIDMismatch),
		errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.l.Errorf(ctx, "task.delivery.http: unhandled error: %v", err)
		return pkgErrors.ErrInternalServerError
	}
}
