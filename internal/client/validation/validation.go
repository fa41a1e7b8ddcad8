// Package validation holds the credential validators used by the session
// service and the terminal forms. All functions are pure.
package validation

import (
	"regexp"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxNameLength     = 50
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a single validation. Error is empty when IsValid.
type Result struct {
	IsValid bool
	Error   string
}

var ok = Result{IsValid: true}

func fail(msg string) Result {
	return Result{IsValid: false, Error: msg}
}

// ValidateEmail requires a non-empty local@domain.tld shaped address.
func ValidateEmail(email string) Result {
	if email == "" {
		return fail("Email is required")
	}
	if !emailRegex.MatchString(email) {
		return fail("Please enter a valid email address")
	}
	return ok
}

// ValidatePassword requires at least MinPasswordLength characters.
func ValidatePassword(password string) Result {
	if password == "" {
		return fail("Password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fail("Password must be at least 6 characters")
	}
	return ok
}

// ValidateName requires between MinNameLength and MaxNameLength characters.
func ValidateName(name string) Result {
	if name == "" {
		return fail("Name is required")
	}
	n := utf8.RuneCountInString(name)
	if n < MinNameLength {
		return fail("Name must be at least 2 characters")
	}
	if n > MaxNameLength {
		return fail("Name must be less than 50 characters")
	}
	return ok
}

// ValidateConfirmPassword checks the confirmation equals the password.
func ValidateConfirmPassword(password, confirm string) Result {
	if confirm == "" {
		return fail("Please confirm your password")
	}
	if password != confirm {
		return fail("Passwords do not match")
	}
	return ok
}

// Field names reported by FieldResult.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FieldResult is a Result tagged with the field that produced it.
type FieldResult struct {
	Result
	Field string
}

// ValidateLoginForm checks email then password and returns the first failure.
func ValidateLoginForm(email, password string) FieldResult {
	return first(
		FieldResult{ValidateEmail(email), FieldEmail},
		FieldResult{ValidatePassword(password), FieldPassword},
	)
}

// ValidateSignupForm checks name, email, password and, when confirm is not
// nil, the confirmation. The first failure in that order is returned.
func ValidateSignupForm(name, email, password string, confirm *string) FieldResult {
	checks := []FieldResult{
		{ValidateName(name), FieldName},
		{ValidateEmail(email), FieldEmail},
		{ValidatePassword(password), FieldPassword},
	}
	if confirm != nil {
		checks = append(checks, FieldResult{ValidateConfirmPassword(password, *confirm), FieldConfirmPassword})
	}
	return first(checks...)
}

func first(checks ...FieldResult) FieldResult {
	for _, c := range checks {
		if !c.IsValid {
			return c
		}
	}
	return FieldResult{Result: ok}
}
