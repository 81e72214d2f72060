package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroedit/internal/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.InvalidArgument("bad slot name")
	assert.Equal(t, "INVALID_ARGUMENT: bad slot name", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("boom"), "decode failed")
	assert.Equal(t, "INTERNAL: decode failed: boom", wrapped.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("no such version")
	outer := errors.Wrap(inner, "loading catalog")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(outer))
	assert.True(t, errors.IsNotFound(outer))
	assert.True(t, stderrors.Is(outer, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestWithMeta(t *testing.T) {
	err := errors.FailedPrecondition("slot conflict").
		WithMeta("category", "side").
		WithMeta("owners", []string{"Statue of Legion"})

	meta := errors.GetMeta(err)
	require.NotNil(t, meta)
	assert.Equal(t, "side", meta["category"])
}

func TestGetCodeDefaults(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)

	err = errors.NewValidationBuilder().
		RequiredField("Catalog").
		Fieldf("Version", "unknown version %q", "hd").
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Catalog")
}
