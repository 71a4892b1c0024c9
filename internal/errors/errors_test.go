package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("plain_message", func(t *testing.T) {
		err := NewUserError("unknown action", "run 'tally actions'")
		assert.Equal(t, "unknown action", err.Error())
		assert.Equal(t, "run 'tally actions'", err.Suggestion)
	})

	t.Run("with_field_context", func(t *testing.T) {
		err := NewUserErrorWithField("action", "bump", "unknown action", "run 'tally actions'")
		assert.Equal(t, "unknown action: 'bump'", err.Error())
		assert.Equal(t, "action", err.Field)
	})
}

func TestSystemError(t *testing.T) {
	cause := New("permission denied")

	t.Run("plain", func(t *testing.T) {
		err := NewSystemError("cannot read config", cause)
		assert.Equal(t, "cannot read config", err.Error())
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("with_op", func(t *testing.T) {
		err := NewSystemErrorWithOp("config load", "cannot read config", cause)
		assert.Equal(t, "cannot read config during config load", err.Error())
	})
}

func TestClassifiers(t *testing.T) {
	ue := NewUserError("bad input", "")
	se := NewSystemError("broken", nil)

	assert.True(t, IsUserError(ue))
	assert.False(t, IsUserError(se))
	assert.True(t, IsSystemError(se))
	assert.False(t, IsSystemError(ue))

	// Classification survives wrapping.
	wrapped := Wrap(ue, "while parsing arguments")
	assert.True(t, IsUserError(wrapped))

	got, ok := AsUserError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "bad input", got.Message)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrInvalidPayload, "parsing '%s'", "abc")
	assert.True(t, Is(err, ErrInvalidPayload))
	assert.Equal(t, fmt.Sprintf("parsing 'abc': %v", ErrInvalidPayload), err.Error())
}
