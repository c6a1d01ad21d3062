package bitvec

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitspan/order"
	"github.com/hupe1980/bitspan/store"
)

func roundTrip[T store.Element](t *testing.T, src *Vector[T], opts ...Option) *Vector[T] {
	t.Helper()

	var buf bytes.Buffer
	n, err := src.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	dst := New[T](opts...)
	rn, err := dst.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), rn)
	return dst
}

func TestWriteReadRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"none": CodecNone,
		"zstd": CodecZstd,
		"lz4":  CodecLZ4,
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			src := New[uint8](WithCodec(codec))
			for i := 0; i < 300; i++ {
				src.Push(i%5 == 0)
			}

			dst := roundTrip(t, src)
			require.Equal(t, src.Len(), dst.Len())
			for i := uint64(0); i < src.Len(); i++ {
				want, err := src.Get(i)
				require.NoError(t, err)
				got, err := dst.Get(i)
				require.NoError(t, err)
				require.Equal(t, want, got, "bit %d", i)
			}
		})
	}
}

func TestRoundTripEmpty(t *testing.T) {
	src := New[uint32](WithCodec(CodecZstd))
	dst := roundTrip(t, src)
	assert.Equal(t, uint64(0), dst.Len())
}

func TestRoundTripTrimmedHead(t *testing.T) {
	src := New[uint8]()
	for i := 0; i < 24; i++ {
		src.Push(i%2 == 0)
	}
	src.TrimFront(5)

	dst := roundTrip(t, src)
	require.Equal(t, src.Len(), dst.Len())
	for i := uint64(0); i < src.Len(); i++ {
		want, _ := src.Get(i)
		got, err := dst.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "bit %d", i)
	}
}

func TestRoundTripWideElement(t *testing.T) {
	src := New[uint64](WithCodec(CodecLZ4))
	for i := 0; i < 1000; i++ {
		src.Push(i%97 == 0)
	}

	dst := roundTrip(t, src)
	require.Equal(t, src.Len(), dst.Len())
	eq, err := dst.Get(97)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestReadFromRejects(t *testing.T) {
	src := New[uint8]()
	src.Push(true)

	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	require.NoError(t, err)
	snapshot := buf.Bytes()

	t.Run("width mismatch", func(t *testing.T) {
		dst := New[uint16]()
		_, err := dst.ReadFrom(bytes.NewReader(snapshot))
		var mismatch *ErrWidthMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, uint8(8), mismatch.Stored)
		assert.Equal(t, uint8(16), mismatch.Want)
	})

	t.Run("bad head", func(t *testing.T) {
		bad := bytes.Clone(snapshot)
		bad[1] = 200
		dst := New[uint8]()
		_, err := dst.ReadFrom(bytes.NewReader(bad))
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("unknown codec", func(t *testing.T) {
		bad := bytes.Clone(snapshot)
		bad[2] = 0x7F
		dst := New[uint8]()
		_, err := dst.ReadFrom(bytes.NewReader(bad))
		var unknown *ErrUnknownCodec
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("oversized compressed size", func(t *testing.T) {
		// A block header claiming a near-uint32-max compressed size must be
		// rejected as corrupt on every platform, never tripped over as a
		// negative slice bound.
		hdr := make([]byte, headerSize)
		hdr[0] = 8
		hdr[2] = byte(CodecZstd)
		binary.LittleEndian.PutUint64(hdr[3:], 8)
		binary.LittleEndian.PutUint32(hdr[11:], blockHeaderSize)

		block := make([]byte, blockHeaderSize)
		binary.LittleEndian.PutUint32(block[0:], 1)
		binary.LittleEndian.PutUint32(block[4:], 0xFFFFFFF0)

		dst := New[uint8]()
		_, err := dst.ReadFrom(bytes.NewReader(append(hdr, block...)))
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("truncated header", func(t *testing.T) {
		dst := New[uint8]()
		_, err := dst.ReadFrom(bytes.NewReader(snapshot[:4]))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("truncated payload", func(t *testing.T) {
		dst := New[uint8]()
		_, err := dst.ReadFrom(bytes.NewReader(snapshot[:len(snapshot)-1]))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestReadFromKeepsOrder(t *testing.T) {
	src := New[uint8](WithOrder(order.Msb0))
	for i := 0; i < 10; i++ {
		src.Push(i < 5)
	}

	// Snapshots carry raw elements; the reader must decode with its own
	// ordering policy, which here matches the writer's.
	dst := roundTrip(t, src, WithOrder(order.Msb0))
	for i := uint64(0); i < 10; i++ {
		got, err := dst.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i < 5, got, "bit %d", i)
	}
}

func TestCodecString(t *testing.T) {
	assert.Equal(t, "none", CodecNone.String())
	assert.Equal(t, "zstd", CodecZstd.String())
	assert.Equal(t, "lz4", CodecLZ4.String())
	assert.Equal(t, "unknown", Codec(9).String())
}
