package user

import (
	"regexp"
	"strings"
)

const (
	minPasswordLength = 8
	// bcrypt input limit
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is stored lower case so lookups are case insensitive.
type Email struct{ value string }

func NewEmail(s string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

func (e Email) Value() string { return e.value }

// Password is a plaintext secret on its way to bcrypt. It is never persisted.
type Password struct{ value string }

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < minPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

// Credentials is a login attempt that passed shape validation.
type Credentials struct {
	Email    Email
	Password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	addr, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	secret, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: addr, Password: secret}, nil
}
