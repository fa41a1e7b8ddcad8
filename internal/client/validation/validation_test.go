package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  Result
	}{
		{"empty", "", Result{false, "Email is required"}},
		{"valid", "demo@example.com", Result{IsValid: true}},
		{"subdomain", "a.b@mail.example.org", Result{IsValid: true}},
		{"no at", "demo.example.com", Result{false, "Please enter a valid email address"}},
		{"two ats", "a@b@c.com", Result{false, "Please enter a valid email address"}},
		{"no dot after at", "demo@example", Result{false, "Please enter a valid email address"}},
		{"whitespace", "de mo@example.com", Result{false, "Please enter a valid email address"}},
		{"empty local", "@example.com", Result{false, "Please enter a valid email address"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Equal(t, Result{false, "Password is required"}, ValidatePassword(""))
	assert.Equal(t, Result{false, "Password must be at least 6 characters"}, ValidatePassword("short"))
	assert.True(t, ValidatePassword("123456").IsValid)
	assert.True(t, ValidatePassword("password123").IsValid)
}

func TestValidateName(t *testing.T) {
	assert.Equal(t, Result{false, "Name is required"}, ValidateName(""))
	assert.Equal(t, Result{false, "Name must be at least 2 characters"}, ValidateName("A"))
	assert.True(t, ValidateName("Al").IsValid)
	assert.True(t, ValidateName(strings.Repeat("x", 50)).IsValid)
	assert.Equal(t, Result{false, "Name must be less than 50 characters"}, ValidateName(strings.Repeat("x", 51)))
	assert.True(t, ValidateName("Зоя").IsValid, "length counts characters, not bytes")
}

func TestValidateConfirmPassword(t *testing.T) {
	assert.Equal(t, Result{false, "Please confirm your password"}, ValidateConfirmPassword("secret1", ""))
	assert.Equal(t, Result{false, "Passwords do not match"}, ValidateConfirmPassword("secret1", "secret2"))
	assert.True(t, ValidateConfirmPassword("secret1", "secret1").IsValid)
}

func TestValidateLoginForm_FirstFailureInOrder(t *testing.T) {
	r := ValidateLoginForm("bad", "x")
	assert.False(t, r.IsValid)
	assert.Equal(t, FieldEmail, r.Field)

	r = ValidateLoginForm("demo@example.com", "x")
	assert.Equal(t, FieldPassword, r.Field)
	assert.Equal(t, "Password must be at least 6 characters", r.Error)

	r = ValidateLoginForm("demo@example.com", "password123")
	assert.True(t, r.IsValid)
	assert.Empty(t, r.Field)
}

func TestValidateSignupForm_FirstFailureInOrder(t *testing.T) {
	mismatch := "other123"
	match := "secret1"

	tests := []struct {
		name      string
		n, e, p   string
		confirm   *string
		wantField string
	}{
		{"name first", "A", "bad", "x", nil, FieldName},
		{"email second", "Al", "bad", "x", nil, FieldEmail},
		{"password third", "Al", "a@b.com", "short", nil, FieldPassword},
		{"confirm last", "Al", "a@b.com", "secret1", &mismatch, FieldConfirmPassword},
		{"confirm skipped when nil", "Al", "a@b.com", "secret1", nil, ""},
		{"all valid", "Al", "a@b.com", "secret1", &match, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateSignupForm(tt.n, tt.e, tt.p, tt.confirm)
			assert.Equal(t, tt.wantField, r.Field)
			assert.Equal(t, tt.wantField == "", r.IsValid)
		})
	}
}
