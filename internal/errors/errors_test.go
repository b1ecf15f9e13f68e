package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahgbank/gbank-api/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("item not found")
	wrapped := errors.Wrap(base, "failed to load item")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "failed to load item")
	assert.Contains(t, wrapped.Error(), "item not found")
}

func TestWrapDefaultsToInternal(t *testing.T) {
	wrapped := errors.Wrapf(assert.AnError, "failed to fetch %s", "12345")

	assert.True(t, errors.IsInternal(wrapped))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "no-op"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := errors.WrapWithCode(assert.AnError, errors.CodeUnavailable, "store unreachable")

	assert.True(t, errors.IsUnavailable(wrapped))
	assert.Equal(t, "store unreachable", errors.GetMessage(wrapped))
}

func TestGetCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errors.Code
	}{
		{name: "nil error", err: nil, want: errors.CodeOK},
		{name: "plain error", err: assert.AnError, want: errors.CodeInternal},
		{name: "invalid argument", err: errors.InvalidArgument("bad input"), want: errors.CodeInvalidArgument},
		{name: "already exists", err: errors.AlreadyExistsf("character %s exists", "Thrall"), want: errors.CodeAlreadyExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errors.GetCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, 404, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, 409, errors.CodeAlreadyExists.HTTPStatus())
	assert.Equal(t, 500, errors.CodeInternal.HTTPStatus())
	assert.Equal(t, 503, errors.CodeUnavailable.HTTPStatus())
}
