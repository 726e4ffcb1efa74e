package errors_test

import (
	stderrors "errors"
	"testing"

	"ferry/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestListingError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.NewListingError("cannot read directory", "/etc/private", errors.ListingUnreadable, cause)

	assert.Contains(t, err.Error(), "cannot read directory")
	assert.Contains(t, err.Error(), "/etc/private")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, "/etc/private", err.Path())
	assert.Equal(t, errors.ListingUnreadable, err.Kind())
	assert.Equal(t, cause, errors.Unwrap(err))

	assert.True(t, errors.IsListingUnreadable(err))
	assert.False(t, errors.IsTransferEngineFailed(err))
}

func TestTransferError(t *testing.T) {
	err := errors.NewTransferError("copy failed", "/a/file", "/b/file",
		errors.TransferEngineFailed, stderrors.New("disk full"))

	assert.Contains(t, err.Error(), "/a/file -> /b/file")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "/a/file", err.Source())
	assert.Equal(t, "/b/file", err.Dest())

	assert.True(t, errors.IsTransferEngineFailed(err))
	assert.False(t, errors.IsTransferLaunchFailed(err))

	launch := errors.NewTransferError("copy failed", "/a", "/b",
		errors.TransferLaunchFailed, stderrors.New("executable file not found"))
	assert.True(t, errors.IsTransferLaunchFailed(launch))
	assert.False(t, errors.IsTransferEngineFailed(launch))
}

func TestConfigError(t *testing.T) {
	err := errors.NewConfigError("invalid value", "status_ticks", nil)

	assert.Contains(t, err.Error(), "status_ticks")
	assert.Equal(t, "status_ticks", err.Param())
	assert.True(t, errors.IsInvalidConfig(err))
	assert.False(t, errors.IsNoSelection(err))
}

func TestNoSelection(t *testing.T) {
	assert.True(t, errors.IsNoSelection(errors.ErrNoSelection))

	wrapped := errors.Wrap(errors.ErrNoSelection, "transfer aborted")
	assert.True(t, errors.IsNoSelection(wrapped), "predicate sees through wrapping")
}

func TestWrapping(t *testing.T) {
	t.Run("wrap preserves the cause", func(t *testing.T) {
		cause := stderrors.New("root cause")
		err := errors.Wrap(cause, "context")
		assert.Equal(t, "context: root cause", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("wrapping nil yields nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, "context"))
		assert.Nil(t, errors.Wrapf(nil, "context %d", 1))
	})

	t.Run("formatted constructors", func(t *testing.T) {
		err := errors.Newf("pane %d out of range", 7)
		assert.Equal(t, "pane 7 out of range", err.Error())
	})
}
