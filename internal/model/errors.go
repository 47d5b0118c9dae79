package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidGrid  = errors.New("invalid grid")
	ErrEmptyWord    = errors.New("word must not be empty")
	ErrInvalidScore = errors.New("score must not be negative")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrNoBoard         = errors.New("no board in session")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
