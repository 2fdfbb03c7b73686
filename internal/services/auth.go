// Package services contains the application services of the space data CLI.
// This file defines the authentication service: sign-up, login with a
// per-session attempt budget, and security-question password reset.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spacedata/internal/common"
	"github.com/dmitrijs2005/spacedata/internal/cryptox"
	"github.com/dmitrijs2005/spacedata/internal/logging"
	"github.com/dmitrijs2005/spacedata/internal/models"
	"github.com/dmitrijs2005/spacedata/internal/repositories/users"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: validate, hash and durably register a new user.
//   - NewLoginSession: start a login attempt sequence with a fixed budget.
//   - SecurityQuestion / VerifySecurityAnswer / ResetPassword: the
//     forgot-password flow.
//   - ValidateNewEmail / ValidatePassword: exposed separately so the CLI can
//     re-prompt on recoverable validation errors without restarting a flow.
//
// Every mutating operation writes through to durable storage before the
// in-memory directory is touched, so a crash in between leaves storage as
// the (older but consistent) source of truth.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte, question, answer string) (*models.UserRecord, error)
	NewLoginSession() *LoginSession
	SecurityQuestion(email string) (string, error)
	VerifySecurityAnswer(email, answer string) error
	ResetPassword(ctx context.Context, email, answer string, newPassword []byte) error
	ValidateNewEmail(email string) error
	ValidatePassword(password []byte) error
}

// authService is the concrete AuthService backed by a durable user
// repository and a password hasher. The directory it owns is the only
// in-process copy of the credentials; there is no ambient global state.
type authService struct {
	repo          users.Repository
	hasher        cryptox.Hasher
	dir           models.Directory
	attemptsLimit int
	log           logging.Logger
}

// NewAuthService loads the user directory from repo and returns a ready
// service. A missing store is non-fatal: it is logged and the service starts
// with zero registered users. Any other load error is returned.
func NewAuthService(ctx context.Context, repo users.Repository, hasher cryptox.Hasher, attemptsLimit int, log logging.Logger) (AuthService, error) {
	dir, err := repo.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrStoreUnavailable) {
			return nil, fmt.Errorf("loading user directory: %w", err)
		}
		log.Warn(ctx, "user data file not found, starting with empty directory")
	}
	log.Info(ctx, "user directory loaded", "users", len(dir))

	return &authService{
		repo:          repo,
		hasher:        hasher,
		dir:           dir,
		attemptsLimit: attemptsLimit,
		log:           log,
	}, nil
}

// SignUp registers a new user.
//
// Validation order: duplicate email, email format, password strength. On
// success the password is hashed, the record is appended to durable storage
// first and only then inserted into the in-memory directory.
func (s *authService) SignUp(ctx context.Context, email string, password []byte, question, answer string) (*models.UserRecord, error) {
	if err := s.ValidateNewEmail(email); err != nil {
		return nil, err
	}
	if err := s.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.UserRecord{
		Email:            email,
		HashedPassword:   hash,
		SecurityQuestion: question,
		SecurityAnswer:   answer,
	}

	if err := s.repo.Append(ctx, user); err != nil {
		return nil, err
	}
	s.dir[email] = user

	s.log.Info(ctx, "user registered", "email", email)
	return user.Clone(), nil
}

// SecurityQuestion returns the stored security question for email, or
// common.ErrEmailNotFound.
func (s *authService) SecurityQuestion(email string) (string, error) {
	user, ok := s.dir[email]
	if !ok {
		return "", common.ErrEmailNotFound
	}
	return user.SecurityQuestion, nil
}

// VerifySecurityAnswer matches answer against the stored plaintext answer.
// The comparison is exact and case-sensitive.
func (s *authService) VerifySecurityAnswer(email, answer string) error {
	user, ok := s.dir[email]
	if !ok {
		return common.ErrEmailNotFound
	}
	if answer != user.SecurityAnswer {
		return common.ErrSecurityAnswerMismatch
	}
	return nil
}

// ResetPassword overwrites the user's password hash after verifying the
// security answer and the new password's strength. The full directory is
// rewritten durably before the in-memory record is updated.
func (s *authService) ResetPassword(ctx context.Context, email, answer string, newPassword []byte) error {
	if err := s.VerifySecurityAnswer(email, answer); err != nil {
		return err
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	updated := s.dir[email].Clone()
	updated.HashedPassword = hash

	next := make(models.Directory, len(s.dir))
	for k, v := range s.dir {
		next[k] = v
	}
	next[email] = updated

	if err := s.repo.WriteAll(ctx, next); err != nil {
		return err
	}
	s.dir[email] = updated

	s.log.Info(ctx, "password reset", "email", email)
	return nil
}

// NewLoginSession starts a fresh attempt sequence with the configured budget.
func (s *authService) NewLoginSession() *LoginSession {
	return &LoginSession{svc: s, remaining: s.attemptsLimit}
}

// LoginSession tracks consecutive failed login attempts within one login
// flow. The counter lives in memory only and is not shared across sessions
// or processes; restarting the flow resets it.
type LoginSession struct {
	svc       *authService
	remaining int
	lockedOut bool
}

// CheckEmail reports whether email is registered. An unknown email consumes
// one attempt from the budget, so callers can check the email before asking
// for a password.
func (ls *LoginSession) CheckEmail(ctx context.Context, email string) error {
	if ls.lockedOut {
		return common.ErrTooManyAttempts
	}
	if _, ok := ls.svc.dir[email]; !ok {
		ls.fail(ctx, email)
		return common.ErrEmailNotFound
	}
	return nil
}

// VerifyPassword tries to authenticate once. A nil error means success and
// restores the full attempt budget; a wrong password (or an email that
// disappeared since CheckEmail) consumes one attempt. Once the budget is
// exhausted every further call returns common.ErrTooManyAttempts without
// checking credentials.
func (ls *LoginSession) VerifyPassword(ctx context.Context, email string, password []byte) error {
	if ls.lockedOut {
		return common.ErrTooManyAttempts
	}

	user, ok := ls.svc.dir[email]
	if !ok {
		ls.fail(ctx, email)
		return common.ErrEmailNotFound
	}

	if !ls.svc.hasher.Verify(password, user.HashedPassword) {
		ls.fail(ctx, email)
		return common.ErrIncorrectPassword
	}

	ls.remaining = ls.svc.attemptsLimit
	ls.svc.log.Info(ctx, "login successful", "email", email)
	return nil
}

// Attempt checks the email and verifies the password in one call.
func (ls *LoginSession) Attempt(ctx context.Context, email string, password []byte) error {
	if err := ls.CheckEmail(ctx, email); err != nil {
		return err
	}
	return ls.VerifyPassword(ctx, email, password)
}

func (ls *LoginSession) fail(ctx context.Context, email string) {
	ls.remaining--
	ls.svc.log.Warn(ctx, "failed login attempt", "email", email, "remaining", ls.remaining)
	if ls.remaining <= 0 {
		ls.lockedOut = true
	}
}

// LockedOut reports whether the attempt budget has been exhausted.
func (ls *LoginSession) LockedOut() bool {
	return ls.lockedOut
}
