package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrInvalidInput, "unknown format")
	assert.Equal(t, errors.ErrInvalidInput, err.Code)
	assert.NotNil(t, err.Details)
	assert.Equal(t, "[INVALID_INPUT] unknown format", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "settings file already exists: %s", "a.yaml")
	assert.Equal(t, "[ALREADY_EXISTS] settings file already exists: a.yaml", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrSourceRead, "read"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrSourceRead, "read %s", "x"))
	})

	t.Run("wrapped error is reachable", func(t *testing.T) {
		base := stderrors.New("permission denied")
		err := errors.Wrapf(base, errors.ErrSourceRead, "failed to read %s", "works.json")
		require.NotNil(t, err)
		assert.Equal(t, "[SOURCE_READ] failed to read works.json: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})
}

func TestErrorCodes(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrSourceDecode, "bad yaml").WithDetail("line", 3))

	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode))
	assert.False(t, errors.IsErrorCode(err, errors.ErrSourceRead))
	assert.Equal(t, errors.ErrSourceDecode, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrSourceDecode, "")))
}
