package palabras_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/palabras"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := palabras.Errorf(palabras.ENOTFOUND, "no %s entry for %q", "Spanish", "kauppa")

	assert.Equal(t, palabras.ENOTFOUND, palabras.ErrorCode(err))
	assert.Equal(t, "no Spanish entry for \"kauppa\"", palabras.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, palabras.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, palabras.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch ser: %w", palabras.Errorf(palabras.ETIMEOUT, "request timed out"))

	assert.Equal(t, palabras.ETIMEOUT, palabras.ErrorCode(err))
	assert.Equal(t, "request timed out", palabras.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, palabras.EINTERNAL, palabras.ErrorCode(err))
	assert.Equal(t, "Internal error.", palabras.ErrorMessage(err))
}
