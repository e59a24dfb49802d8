package chatsnap_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/chatsnap"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := chatsnap.Errorf(chatsnap.ENOTFOUND, "transcript %q not found", "conversation.md")

	assert.Equal(t, chatsnap.ENOTFOUND, chatsnap.ErrorCode(err))
	assert.Equal(t, "transcript \"conversation.md\" not found", chatsnap.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chatsnap.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, chatsnap.EINTERNAL, chatsnap.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chatsnap.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", chatsnap.ErrorMessage(errors.New("boom")))
}
