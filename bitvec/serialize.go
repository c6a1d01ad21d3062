package bitvec

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitspan"
	"github.com/hupe1980/bitspan/index"
	"github.com/hupe1980/bitspan/internal/conv"
	"github.com/hupe1980/bitspan/internal/mem"
	"github.com/hupe1980/bitspan/store"
)

// Codec selects the snapshot payload compression.
type Codec uint8

const (
	// CodecNone stores the element payload verbatim.
	CodecNone Codec = iota
	// CodecZstd compresses the payload with zstd.
	CodecZstd
	// CodecLZ4 compresses the payload with the lz4 block format.
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Snapshot layout, all little-endian:
//
//	[0]    element width in bits
//	[1]    head index within the first element
//	[2]    codec byte
//	[3:11] bit length
//	[11:15] payload byte count
//	[15:]  payload (see block layout below for compressed codecs)
const headerSize = 15

// Compressed payload block layout, shared by both codecs:
//
//	[0:4] uncompressed byte count
//	[4:8] compressed byte count, 0 when stored raw
//	[8:]  data
const blockHeaderSize = 8

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// WriteTo serializes the vector with the codec it was configured with.
// It implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	raw := v.encodeElements()
	payload, err := compressPayload(v.codec, raw)
	if err != nil {
		return 0, err
	}

	size, err := conv.IntToUint32(len(payload))
	if err != nil {
		return 0, fmt.Errorf("payload size: %w", err)
	}

	hdr := make([]byte, headerSize)
	hdr[0] = store.Bits[T]()
	hdr[1] = uint8(v.span.Head())
	hdr[2] = byte(v.codec)
	binary.LittleEndian.PutUint64(hdr[3:], v.span.Len())
	binary.LittleEndian.PutUint32(hdr[11:], size)

	var n int64
	written, err := w.Write(hdr)
	n += int64(written)
	if err != nil {
		return n, err
	}

	written, err = w.Write(payload)
	n += int64(written)
	return n, err
}

// ReadFrom replaces the vector's contents with a snapshot. The ordering
// policy and configured codec are kept; the codec recorded in the snapshot
// governs decoding. It implements io.ReaderFrom.
func (v *Vector[T]) ReadFrom(r io.Reader) (int64, error) {
	hdr := make([]byte, headerSize)
	hn, err := io.ReadFull(r, hdr)
	n := int64(hn)
	if err != nil {
		return n, err
	}

	if width := store.Bits[T](); hdr[0] != width {
		return n, &ErrWidthMismatch{Stored: hdr[0], Want: width}
	}
	head, err := index.NewIdx[T](hdr[1])
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	codec := Codec(hdr[2])
	bits := binary.LittleEndian.Uint64(hdr[3:])
	if bits > bitspan.MaxBits {
		return n, fmt.Errorf("%w: bit length %d exceeds ceiling", ErrCorruptSnapshot, bits)
	}
	payloadSize, err := conv.Uint64ToInt(uint64(binary.LittleEndian.Uint32(hdr[11:])))
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	payload := make([]byte, payloadSize)
	pn, err := io.ReadFull(r, payload)
	n += int64(pn)
	if err != nil {
		return n, err
	}

	size := int(unsafe.Sizeof(T(0)))
	count := elementsTouched[T](uint8(head), bits)
	raw, err := decompressPayload(codec, payload, count*size)
	if err != nil {
		return n, err
	}
	if len(raw) != count*size {
		return n, fmt.Errorf("%w: payload holds %d bytes, want %d", ErrCorruptSnapshot, len(raw), count*size)
	}

	elems := mem.AlignedElems[T](count)
	for i := range elems {
		var e uint64
		for b := 0; b < size; b++ {
			e |= uint64(raw[i*size+b]) << (8 * b)
		}
		elems[i] = store.Resize[T](e)
	}

	v.elems = elems
	v.rebuild(head, bits)
	return n, nil
}

func elementsTouched[T store.Element](head uint8, bits uint64) int {
	if bits == 0 {
		return 0
	}
	w := uint64(store.Bits[T]())
	return int((uint64(head) + bits + w - 1) / w)
}

// encodeElements lays the touched elements out little-endian.
func (v *Vector[T]) encodeElements() []byte {
	size := int(unsafe.Sizeof(T(0)))
	count := int(v.span.Elements())

	out := make([]byte, count*size)
	for i := 0; i < count; i++ {
		e := store.Resize[uint64](v.elems[i])
		for b := 0; b < size; b++ {
			out[i*size+b] = byte(e >> (8 * b))
		}
	}
	return out
}

func compressPayload(c Codec, raw []byte) ([]byte, error) {
	if c == CodecNone {
		return raw, nil
	}

	// The block header records sizes in 32 bits; a payload that cannot be
	// framed faithfully must fail the write, not truncate.
	rawSize, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, fmt.Errorf("uncompressed payload size: %w", err)
	}

	switch c {
	case CodecZstd:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		return wrapBlock(rawSize, raw, enc.EncodeAll(raw, nil)), nil

	case CodecLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		cn, err := lz4.CompressBlock(raw, dst, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if cn == 0 {
			// Incompressible; stored raw inside the block.
			return wrapBlock(rawSize, raw, nil), nil
		}
		return wrapBlock(rawSize, raw, dst[:cn]), nil

	default:
		return nil, &ErrUnknownCodec{Codec: uint8(c)}
	}
}

// wrapBlock frames a compressed payload; a nil or oversized compressed form
// falls back to storing raw. rawSize is the checked 32-bit size of raw, so
// the compressed length (always smaller when used) needs no second check.
func wrapBlock(rawSize uint32, raw, compressed []byte) []byte {
	if len(compressed) == 0 || len(compressed) >= len(raw) {
		out := make([]byte, blockHeaderSize+len(raw))
		binary.LittleEndian.PutUint32(out[0:], rawSize)
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[blockHeaderSize:], raw)
		return out
	}

	out := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], rawSize)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[blockHeaderSize:], compressed)
	return out
}

func decompressPayload(c Codec, payload []byte, want int) ([]byte, error) {
	switch c {
	case CodecNone:
		return payload, nil
	case CodecZstd, CodecLZ4:
	default:
		return nil, &ErrUnknownCodec{Codec: uint8(c)}
	}

	if len(payload) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptSnapshot)
	}
	rawSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(payload[0:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	compSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(payload[4:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if rawSize != want {
		return nil, fmt.Errorf("%w: block holds %d bytes, want %d", ErrCorruptSnapshot, rawSize, want)
	}

	if compSize == 0 {
		if len(payload) < blockHeaderSize+rawSize {
			return nil, fmt.Errorf("%w: raw block truncated", ErrCorruptSnapshot)
		}
		return payload[blockHeaderSize : blockHeaderSize+rawSize], nil
	}
	if len(payload) < blockHeaderSize+compSize {
		return nil, fmt.Errorf("%w: compressed block truncated", ErrCorruptSnapshot)
	}
	data := payload[blockHeaderSize : blockHeaderSize+compSize]

	switch c {
	case CodecZstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(data, make([]byte, 0, rawSize))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(out) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptSnapshot)
		}
		return out, nil

	default: // CodecLZ4
		out := make([]byte, rawSize)
		un, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if un != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptSnapshot)
		}
		return out, nil
	}
}
