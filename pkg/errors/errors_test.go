package errors_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/gamebox/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrManifestCorrupt, "manifest is not valid TOML")

	assert.Equal(t, errors.ErrManifestCorrupt, err.Code)
	assert.Equal(t, "[MANIFEST_CORRUPT] manifest is not valid TOML", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := errors.Wrap(cause, errors.ErrFolderCreate, "could not create documentation folder")

		require.NotNil(t, err)
		assert.Equal(t, cause, err.Unwrap())
		assert.Contains(t, err.Error(), "FOLDER_CREATE")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should not happen"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "should not %s", "happen"))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrTargetOutsideGamebox, "path %q escapes the gamebox", "../escape")

	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetOutsideGamebox))
	assert.False(t, errors.IsErrorCode(err, errors.ErrManifestCorrupt))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain error"), errors.ErrTargetOutsideGamebox))
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrIndexOutOfRange, "launcher index 5 out of range")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.Equal(t, errors.ErrIndexOutOfRange, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotInDocsFolder, "file is outside the documentation folder").
		WithDetail("path", "/tmp/Zork.boxer/MANUAL.TXT")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/tmp/Zork.boxer/MANUAL.TXT", details["path"])
}
