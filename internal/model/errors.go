package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrForbidden      = errors.New("player may only modify their own profile")
	ErrInvalidProfile = errors.New("invalid profile")

	// Search errors
	ErrInvalidFilter = errors.New("invalid search filter")

	// Contact errors
	ErrEmptyMessage         = errors.New("message must not be empty")
	ErrMessageTooLong       = errors.New("message is too long")
	ErrContactNotAllowed    = errors.New("player does not accept contact")
	ErrNotificationNotFound = errors.New("notification not found")
)
