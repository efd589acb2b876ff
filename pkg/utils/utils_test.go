package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := NewID(PrefixSale)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, PrefixSale))
	assert.Len(t, id, len(PrefixSale)+idLength)

	other := MustNewID(PrefixSale)
	assert.NotEqual(t, id, other)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(""))
	assert.True(t, ValidDate("2025-03-14"))
	assert.False(t, ValidDate("14/03/2025"))
	assert.False(t, ValidDate("2025-13-01"))
}
