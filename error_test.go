package bard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdanford/bard"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := bard.Errorf(bard.ENOTFOUND, "play %q not found", "Hamlet")

	assert.Equal(t, bard.ENOTFOUND, bard.ErrorCode(err))
	assert.Equal(t, "play \"Hamlet\" not found", bard.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bard.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bard.EINTERNAL, bard.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bard.ErrorMessage(nil))
}
