package model

import "errors"

var (
	// ErrNotFound is returned when a task or stored key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a task id is already in use.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a task, status or configuration is not valid.
	ErrNotValid = errors.New("not valid")
)
