package pagemd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagemd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagemd.Errorf(pagemd.ENOTFOUND, "content not found on %q", "example.com")

	assert.Equal(t, pagemd.ENOTFOUND, pagemd.ErrorCode(err))
	assert.Equal(t, "content not found on \"example.com\"", pagemd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemd.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemd.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("convert page.html: %w", pagemd.Errorf(pagemd.EINVALID, "empty HTML input"))

	assert.Equal(t, pagemd.EINVALID, pagemd.ErrorCode(err))
	assert.Equal(t, "empty HTML input", pagemd.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pagemd.EINTERNAL, pagemd.ErrorCode(err))
	assert.Equal(t, "Internal error.", pagemd.ErrorMessage(err))
}
