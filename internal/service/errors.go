package service

import "errors" // Sentinel error values

// Typed errors returned by the service layer. Handlers map these onto
// HTTP statuses; anything else is treated as an internal failure.
var (
	ErrInvalidInput       = errors.New("invalid input")            // Malformed or out-of-range field
	ErrDuplicateEmail     = errors.New("email already registered") // Registration conflict
	ErrInvalidCredentials = errors.New("invalid credentials")      // Login failure
	ErrNotFound           = errors.New("not found")                // Missing, or not owned by the caller
)
