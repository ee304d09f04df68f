package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCNPJValid(t *testing.T) {
	assert.True(t, IsCNPJValid("11222333000181"))
	assert.True(t, IsCNPJValid("11.222.333/0001-81"))

	assert.False(t, IsCNPJValid("11222333000182"))
	assert.False(t, IsCNPJValid("00000000000000"))
	assert.False(t, IsCNPJValid("1122233300018"))
	assert.False(t, IsCNPJValid(""))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "123", FormatCNPJ("123"))
}

type sanitizeTarget struct {
	Name     string
	Optional *string
	Missing  *string
	Tags     []string
	Count    int
}

func TestSanitize(t *testing.T) {
	opt := "  value "
	target := &sanitizeTarget{
		Name:     "  Ana  ",
		Optional: &opt,
		Tags:     []string{" a", "b "},
		Count:    3,
	}

	Sanitize(target)

	require.Equal(t, "Ana", target.Name)
	require.Equal(t, "value", *target.Optional)
	require.Nil(t, target.Missing)
	require.Equal(t, []string{"a", "b"}, target.Tags)
	require.Equal(t, 3, target.Count)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	require.Panics(t, func() { Sanitize(sanitizeTarget{}) })
}

func TestDeref(t *testing.T) {
	v := 7
	require.Equal(t, 7, Deref(&v, 1))
	require.Equal(t, 1, Deref[int](nil, 1))
}
