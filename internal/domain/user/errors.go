package user

import "errors"

var (
	ErrSupervisorNotFound = errors.New("supervisor not found")
	ErrEmailExists        = errors.New("email already registered")
)
