package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	nf := NotFound("cart")
	assert.EqualError(t, nf, "cart not found")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsInvalidInput(nf))

	inv := Invalid("quantity must be at least 1")
	assert.True(t, IsInvalidInput(inv))
	assert.False(t, IsNotFound(inv))
}

func TestWrapKeepsKind(t *testing.T) {
	base := NotFound("order")
	wrapped := Wrap("get order o-1", base)

	assert.True(t, errors.Is(wrapped, base))
	assert.True(t, IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "get order o-1")
}
