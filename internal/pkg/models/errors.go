package models

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidCoordinate = errors.New("invalid location coordinates")
	ErrUnauthorized      = errors.New("actor is not allowed to perform this action")
	ErrInvalidStatus     = errors.New("unknown request status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrStatusConflict    = errors.New("request status changed concurrently")
	ErrInvalidInput      = errors.New("invalid input")
)
