package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProfileNotLoaded = errors.New("employee profile has not been loaded")
)
