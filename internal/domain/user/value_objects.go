package user

import (
	"regexp"
	"strings"

	"vehicle-rental/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.New("invalid email format")
	ErrInvalidRole     = errs.New("invalid role")
	ErrPasswordTooWeak = errs.New("password must be at least 8 characters long")
	ErrEmptyName       = errs.New("first and last name are required")
	ErrNameTooLong     = errs.New("name is too long (max 100 characters)")
)

const MaxNamePartLength = 100

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type FullName struct {
	first string
	last  string
}

func NewFullName(first, last string) (FullName, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return FullName{}, ErrEmptyName
	}
	if len(first) > MaxNamePartLength || len(last) > MaxNamePartLength {
		return FullName{}, ErrNameTooLong
	}
	return FullName{first: first, last: last}, nil
}

func (n FullName) First() string { return n.first }
func (n FullName) Last() string  { return n.last }

func (n FullName) String() string {
	return n.first + " " + n.last
}
