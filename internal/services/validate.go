package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/spacedata/internal/common"
)

// emailRe accepts the basic local@domain.tld shape; it is a registration
// sanity check, not a full RFC 5322 validator.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minPasswordLen    = 8
	specialCharacters = `!@#$%^&*(),.?":{}|<>`
)

// ValidateNewEmail checks that email is not yet registered and has a valid
// shape, in that order.
func (s *authService) ValidateNewEmail(email string) error {
	if _, ok := s.dir[email]; ok {
		return common.ErrDuplicateEmail
	}
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters and
// at least one special character. Length is counted in characters, not
// bytes, so multibyte input is not over-counted.
func (s *authService) ValidatePassword(password []byte) error {
	if utf8.RuneCount(password) < minPasswordLen {
		return common.ErrWeakPassword
	}
	if !strings.ContainsAny(string(password), specialCharacters) {
		return common.ErrWeakPassword
	}
	return nil
}
