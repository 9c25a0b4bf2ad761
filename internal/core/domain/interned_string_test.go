package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ccflags/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("/work/fw/build")
	is2 := domain.NewInternedString("/work/fw/build")

	assert.Equal(t, is1.Value(), is2.Value(), "identical strings share a handle")
	assert.Equal(t, is1, is2, "interned strings are comparable map keys")
	assert.Equal(t, "/work/fw/build", is1.String())
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	assert.NotPanics(t, func() {
		assert.Empty(t, zero.String())
	})
	assert.NotEqual(t, zero, domain.NewInternedString(""))
}
