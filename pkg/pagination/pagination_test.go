package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata(25, 1, 10)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.False(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)

	meta = NewMetadata(25, 3, 10)
	assert.True(t, meta.HasPrevious)
	assert.False(t, meta.HasNext)

	meta = NewMetadata(0, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)

	// exact multiple does not gain an extra page
	meta = NewMetadata(20, 2, 10)
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNext)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 40, Offset(5, 10))
}
