package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrSessionNotFound    = errors.New("planning session not found")
	ErrIncompleteSession  = errors.New("planning session is incomplete")
	ErrInvalidStep        = errors.New("invalid planning step")
	ErrDestinationMissing = errors.New("destination not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUpstreamFailure    = errors.New("upstream provider failure")
	ErrStoreError         = errors.New("store error")
)
