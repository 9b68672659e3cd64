package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("EmptyLength", func(t *testing.T) {
		var b Buffer
		assert.Equal(t, 0, b.Len())

		n, err := b.ReadInto(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("ReplaceAndRead", func(t *testing.T) {
		var b Buffer
		assert.Equal(t, 3, b.Replace([]byte{1, 2, 3}))
		assert.Equal(t, 3, b.Len())

		dst := make([]byte, 8)
		n, err := b.ReadInto(dst)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []byte{1, 2, 3}, dst[:n])
	})

	t.Run("ReplaceIsWholesale", func(t *testing.T) {
		var b Buffer
		b.Replace([]byte("a longer first value"))
		b.Replace([]byte("short"))
		assert.Equal(t, []byte("short"), b.Bytes())
	})

	t.Run("ReplaceCopiesSource", func(t *testing.T) {
		var b Buffer
		src := []byte{9, 9}
		b.Replace(src)
		src[0] = 0
		assert.Equal(t, []byte{9, 9}, b.Bytes())
	})

	t.Run("DestinationTooSmall", func(t *testing.T) {
		var b Buffer
		b.Replace([]byte{1, 2, 3, 4})

		dst := []byte{7, 7}
		n, err := b.ReadInto(dst)
		assert.ErrorIs(t, err, ErrBufferTooSmall)
		assert.Equal(t, 0, n)
		assert.Equal(t, []byte{7, 7}, dst)
	})

	t.Run("ReplaceWithNilClears", func(t *testing.T) {
		var b Buffer
		b.Replace([]byte{1})
		assert.Equal(t, 0, b.Replace(nil))
		assert.Equal(t, 0, b.Len())
	})
}

func TestDefaultAndReset(t *testing.T) {
	t.Cleanup(Reset)

	Default().Replace([]byte{1, 2})
	assert.Equal(t, 2, Default().Len())
	assert.Same(t, Default(), Default())

	Reset()
	assert.Equal(t, 0, Default().Len())
}
