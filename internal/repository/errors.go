package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task does not exist or belongs to another user
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")
)
