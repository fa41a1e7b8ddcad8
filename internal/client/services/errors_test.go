package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesOnlyItsKind(t *testing.T) {
	sentinels := map[Kind]error{
		KindValidation:         ErrValidation,
		KindNotFound:           ErrNotFound,
		KindInvalidCredentials: ErrInvalidCredentials,
		KindConflict:           ErrConflict,
		KindStorage:            ErrStorage,
	}
	for kind, want := range sentinels {
		err := fmt.Errorf("wrapped: %w", &Error{Kind: kind, Message: "m"})
		for other, s := range sentinels {
			assert.Equal(t, other == kind, errors.Is(err, s), "%s vs %s", kind, other)
		}
		assert.True(t, errors.Is(err, want))
		assert.Equal(t, kind, KindOf(err))
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk")
	err := storageError("boom", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "boom", err.Error())
}

func TestKindOf_Foreign(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("x")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "invalid_credentials", KindInvalidCredentials.String())
}
