package services

import (
	"errors"

	"github.com/dmitrijs2005/authflow/internal/client/validation"
)

// Kind discriminates session failures. Callers branch on Kind (or on the
// matching sentinel via errors.Is), never on message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInvalidCredentials
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Sentinels, one per Kind.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("account already exists")
	ErrStorage            = errors.New("storage failure")
)

// User-visible messages.
const (
	MsgNoAccount          = "No account found with this email address"
	MsgInvalidCredentials = "Invalid password. Please check your credentials."
	MsgAccountExists      = "An account with this email already exists"
	MsgStorage            = "Could not save your session. Please try again."
	MsgDirectory          = "Authentication service is unavailable. Please try again."
)

// Error is the failure type returned by the session service.
type Error struct {
	Kind Kind
	// Field names the offending input for KindValidation.
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel that corresponds to e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindConflict:
		return ErrConflict
	case KindStorage:
		return ErrStorage
	}
	return nil
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func validationError(r validation.FieldResult) *Error {
	return &Error{Kind: KindValidation, Field: r.Field, Message: r.Error}
}

func storageError(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}
