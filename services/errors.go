package services

import "errors"

// Error taxonomy for the in-memory stores. All of these are synchronous,
// recoverable-by-caller errors; none are fatal to the process.
var (
	ErrUnknownUser        = errors.New("unknown user")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidMessage     = errors.New("invalid message")
	ErrSelfLike           = errors.New("users cannot like themselves")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrExpiredOTP         = errors.New("OTP expired or not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidEmail       = errors.New("not a valid UWC email address")
)
