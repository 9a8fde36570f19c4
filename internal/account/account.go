// Package account backs the login modal and the newsletter box. There is no
// account service: inputs are checked for shape and then politely refused.
package account

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("email address is not valid")
	ErrEmptyPassword        = errors.New("password is required")
	ErrSignInUnavailable    = errors.New("sign-in is not available yet")
	ErrSubscribeUnavailable = errors.New("newsletter sign-up is not available yet")
)

// ValidateEmail accepts a bare address such as name@example.com.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

// LoginForm mirrors the fields of the login modal.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

func (f LoginForm) Validate() error {
	if err := ValidateEmail(f.Email); err != nil {
		return err
	}
	if f.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Submit validates the form. A valid form still fails with
// ErrSignInUnavailable; nothing is stored or sent.
func (f LoginForm) Submit() error {
	if err := f.Validate(); err != nil {
		return err
	}
	return ErrSignInUnavailable
}

// Subscribe validates a newsletter address and reports that sign-up is
// not available.
func Subscribe(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ErrSubscribeUnavailable
}

// MaskEmail hides most of the local part, e.g. "j***@example.com".
func MaskEmail(s string) string {
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return s
	}
	_, n := utf8.DecodeRuneInString(s)
	return s[:n] + strings.Repeat("*", 3) + s[at:]
}
