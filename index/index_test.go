package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitspan/order"
)

func TestNewIdx(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, n := range []uint8{0, 1, 7} {
			idx, err := NewIdx[uint8](n)
			require.NoError(t, err)
			assert.Equal(t, BitIdx[uint8](n), idx)
		}
	})

	t.Run("width is rejected", func(t *testing.T) {
		_, err := NewIdx[uint8](8)
		var rangeErr *ErrIdxRange
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, uint8(8), rangeErr.Index)
		assert.Equal(t, uint8(8), rangeErr.Width)
	})

	t.Run("wider element accepts wider index", func(t *testing.T) {
		_, err := NewIdx[uint64](63)
		assert.NoError(t, err)
		_, err = NewIdx[uint64](64)
		assert.Error(t, err)
	})
}

func TestNewTail(t *testing.T) {
	t.Run("boundary value is valid", func(t *testing.T) {
		tail, err := NewTail[uint8](8)
		require.NoError(t, err)
		assert.True(t, tail.IsFull())
	})

	t.Run("beyond boundary is rejected", func(t *testing.T) {
		_, err := NewTail[uint8](9)
		var rangeErr *ErrTailRange
		assert.ErrorAs(t, err, &rangeErr)
	})

	t.Run("full marker", func(t *testing.T) {
		assert.Equal(t, BitTail[uint32](32), FullTail[uint32]())
		assert.True(t, FullTail[uint16]().IsFull())
		tail, err := NewTail[uint16](3)
		require.NoError(t, err)
		assert.False(t, tail.IsFull())
	})
}

func TestNewPos(t *testing.T) {
	pos, err := NewPos[uint16](15)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8000), pos.Mask())

	_, err = NewPos[uint16](16)
	var rangeErr *ErrPosRange
	assert.ErrorAs(t, err, &rangeErr)
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name     string
		start    uint8
		by       int64
		elements int64
		idx      uint8
	}{
		{name: "zero displacement", start: 5, by: 0, elements: 0, idx: 5},
		{name: "within element", start: 2, by: 3, elements: 0, idx: 5},
		{name: "forward across boundary", start: 5, by: 5, elements: 1, idx: 2},
		{name: "forward many elements", start: 0, by: 25, elements: 3, idx: 1},
		{name: "backward within element", start: 5, by: -3, elements: 0, idx: 2},
		{name: "backward across boundary", start: 2, by: -3, elements: -1, idx: 7},
		{name: "backward many elements", start: 0, by: -17, elements: -3, idx: 7},
		{name: "landing exactly on boundary", start: 3, by: 5, elements: 1, idx: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := NewIdx[uint8](tt.start)
			require.NoError(t, err)

			elements, next := idx.Offset(tt.by)
			assert.Equal(t, tt.elements, elements)
			assert.Equal(t, BitIdx[uint8](tt.idx), next)
		})
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for start := uint8(0); start < 8; start++ {
		for by := int64(-40); by <= 40; by++ {
			idx, err := NewIdx[uint8](start)
			require.NoError(t, err)

			there, mid := idx.Offset(by)
			back, end := mid.Offset(-by)

			assert.Equal(t, idx, end, "start=%d by=%d", start, by)
			assert.Equal(t, int64(0), there+back, "start=%d by=%d", start, by)
		}
	}
}

func TestPosAndSelect(t *testing.T) {
	t.Run("lsb0", func(t *testing.T) {
		idx, err := NewIdx[uint8](2)
		require.NoError(t, err)
		assert.Equal(t, BitPos[uint8](2), idx.Pos(order.Lsb0))
		assert.Equal(t, uint8(0b0000_0100), idx.Select(order.Lsb0))
	})

	t.Run("msb0", func(t *testing.T) {
		idx, err := NewIdx[uint8](2)
		require.NoError(t, err)
		assert.Equal(t, BitPos[uint8](5), idx.Pos(order.Msb0))
		assert.Equal(t, uint8(0b0010_0000), idx.Select(order.Msb0))
	})
}

func TestMaskUpTo(t *testing.T) {
	assert.Equal(t, uint8(0), MaskUpTo[uint8](0))
	assert.Equal(t, uint8(0b0000_0001), MaskUpTo[uint8](1))
	assert.Equal(t, uint8(0b0001_1111), MaskUpTo[uint8](5))
	assert.Equal(t, uint8(0xFF), MaskUpTo[uint8](8))

	// Saturates at the full mask for any oversized count.
	assert.Equal(t, uint8(0xFF), MaskUpTo[uint8](9))
	assert.Equal(t, uint8(0xFF), MaskUpTo[uint8](1<<40))
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), MaskUpTo[uint64](64))
	assert.Equal(t, uint64(0x7), MaskUpTo[uint64](3))
}
