package services

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionNotActive   = errors.New("session not active")
	ErrAlreadyConfessed   = errors.New("confession already submitted for this session")
	ErrConfessionNotFound = errors.New("confession not found")
	ErrEmptyConfession    = errors.New("confession cannot be empty or just whitespace")
)
