// Package user defines the account entity behind caller identities and the
// validation applied to registration and login payloads.
package user

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

const (
	maxNameLen     = 50
	minPasswordLen = 6
)

// User is a registered account. PasswordHash is a bcrypt hash and is never
// serialized to clients.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         domain.Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Caller returns the identity this user acts as.
func (u *User) Caller() domain.Caller {
	return domain.Caller{ID: u.ID, Role: u.Role}
}

// Registration is a validated sign-up request.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Credentials is a validated login request.
type Credentials struct {
	Email    string
	Password string
}

// NormalizeEmail lower-cases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegistration checks a sign-up request and returns every violation.
func ValidateRegistration(name, email, password string) (Registration, error) {
	var fields []domain.FieldError

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		fields = append(fields, domain.FieldError{Field: "name", Message: "Please add a name"})
	case utf8.RuneCountInString(name) > maxNameLen:
		fields = append(fields, domain.FieldError{Field: "name", Message: "Name cannot be more than 50 characters"})
	}

	email = NormalizeEmail(email)
	if fe, ok := checkEmail(email); !ok {
		fields = append(fields, fe)
	}

	switch {
	case password == "":
		fields = append(fields, domain.FieldError{Field: "password", Message: "Please add a password"})
	case utf8.RuneCountInString(password) < minPasswordLen:
		fields = append(fields, domain.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	if len(fields) > 0 {
		return Registration{}, &domain.ValidationError{Fields: fields}
	}
	return Registration{Name: name, Email: email, Password: password}, nil
}

// ValidateCredentials checks that a login request carries both fields.
// Password rules are not re-applied so accounts created under older rules
// can still sign in.
func ValidateCredentials(email, password string) (Credentials, error) {
	var fields []domain.FieldError

	email = NormalizeEmail(email)
	if email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Message: "Please provide an email"})
	}
	if password == "" {
		fields = append(fields, domain.FieldError{Field: "password", Message: "Please provide a password"})
	}

	if len(fields) > 0 {
		return Credentials{}, &domain.ValidationError{Fields: fields}
	}
	return Credentials{Email: email, Password: password}, nil
}

func checkEmail(email string) (domain.FieldError, bool) {
	if email == "" {
		return domain.FieldError{Field: "email", Message: "Please add an email"}, false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndexByte(email, '@')+1:], ".") {
		return domain.FieldError{Field: "email", Message: "Please add a valid email"}, false
	}
	return domain.FieldError{}, true
}
