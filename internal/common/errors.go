// Package common defines shared constants and sentinel errors used across
// the application. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Sign-up validation errors. Recoverable: the CLI re-prompts instead of
	// aborting the whole flow.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and contain one special character")

	// Login / password reset errors.
	ErrEmailNotFound          = errors.New("email not found")
	ErrIncorrectPassword      = errors.New("incorrect password")
	ErrTooManyAttempts        = errors.New("too many failed login attempts")
	ErrSecurityAnswerMismatch = errors.New("incorrect security answer")

	// Store errors. A missing store file at startup is non-fatal: the process
	// starts with zero registered users. A write failure is fatal to the
	// triggering operation only and must not corrupt prior records.
	ErrStoreUnavailable  = errors.New("user data store not found")
	ErrStoreWriteFailure = errors.New("store write failure")

	// Gateway errors. Reported to the user, never propagated as a crash.
	ErrRemoteFetch = errors.New("remote fetch failure")
)
