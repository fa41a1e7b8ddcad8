// Package models defines the client-side data models shared by the session
// service, the state store and the terminal client.
package models

import "time"

// CreatedAtLayout is the ISO-8601 layout used for User.CreatedAt
// (UTC, millisecond precision, "Z" suffix).
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// User is the authenticated account as seen by the client. It is the value
// persisted as the session artifact.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// LoginCredentials is the input of a login attempt.
type LoginCredentials struct {
	Email    string
	Password string
}

// SignupCredentials is the input of an account registration.
type SignupCredentials struct {
	Name     string
	Email    string
	Password string
}

// FormatCreatedAt renders t in CreatedAtLayout.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}
