// Package directory is the mock identity provider: a mapping from email to
// credential record. Records are created by signup and never updated or
// deleted. Email is the unique key.
package directory

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authflow/internal/client/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// CredentialRecord is one account. Password is kept in plain text: the
// directory is a stand-in for a remote service, not a credential vault.
type CredentialRecord struct {
	ID        string
	Email     string
	Name      string
	Password  string
	CreatedAt time.Time
}

// User projects the record to the client-side User.
func (r *CredentialRecord) User() *models.User {
	return &models.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: models.FormatCreatedAt(r.CreatedAt),
	}
}

// Repository stores credential records keyed by email.
//
// Get returns ErrNotFound for an unknown email; Create returns
// ErrAlreadyExists when the email is taken and leaves the existing record
// untouched.
type Repository interface {
	Get(ctx context.Context, email string) (*CredentialRecord, error)
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, rec *CredentialRecord) error
	Count(ctx context.Context) (int, error)
}
