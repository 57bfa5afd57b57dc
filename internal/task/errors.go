package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrIDMismatch      = errors.New("body id does not match path id")
	ErrInvalidPriority = errors.New("priority must be one of High, Medium, Low")
)
