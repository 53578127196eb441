package repository

import "errors"

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskLimitReached is returned when a project already holds the
	// maximum number of tasks
	ErrTaskLimitReached = errors.New("task limit reached")
)
