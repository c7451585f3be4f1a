package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrMissingCompanyID = errors.New("company id is required to list tasks")
)
