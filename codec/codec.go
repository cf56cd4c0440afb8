// Package codec implements the canonical wire framing shared by every
// transaction structure: little-endian fixed-width integers and u32
// length-prefixed byte vectors, in a fixed field order. Encoding the same
// logical value always yields identical bytes, which the hash and signature
// layers depend on.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMalformedEncoding is returned when decoding receives truncated,
// over-long, or structurally invalid input.
var ErrMalformedEncoding = errors.New("malformed encoding")

// maxVecLen bounds a single length-prefixed vector. Real fields (addresses,
// keys, signatures) are well under 100 bytes; the cap keeps corrupt input
// from driving large allocations.
const maxVecLen = 4096

// Writer accumulates the canonical wire form of a value.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// PutBytes appends p as a u32 length-prefixed vector.
func (w *Writer) PutBytes(p []byte) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(len(p)))
	w.buf = append(w.buf, p...)
}

// PutRaw appends p with no prefix, for fields of a priori known width.
func (w *Writer) PutRaw(p []byte) {
	w.buf = append(w.buf, p...)
}

func (w *Writer) PutInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

func (w *Writer) PutInt64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reader consumes a canonical encoding. Every read checks the remaining
// input and fails with ErrMalformedEncoding instead of reading out of
// bounds; Done rejects trailing garbage.
type Reader struct {
	buf []byte
	off int
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

func (r *Reader) remaining() int {
	return len(r.buf) - r.off
}

// Bytes reads a u32 length-prefixed vector.
func (r *Reader) Bytes() ([]byte, error) {
	if r.remaining() < 4 {
		return nil, fmt.Errorf("%w: truncated vector length at offset %d", ErrMalformedEncoding, r.off)
	}
	n := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	if n > maxVecLen {
		return nil, fmt.Errorf("%w: vector length %d exceeds limit", ErrMalformedEncoding, n)
	}
	if r.remaining() < int(n) {
		return nil, fmt.Errorf("%w: vector of %d bytes truncated at offset %d", ErrMalformedEncoding, n, r.off)
	}
	p := make([]byte, n)
	copy(p, r.buf[r.off:])
	r.off += int(n)
	return p, nil
}

// Raw reads exactly n unprefixed bytes.
func (r *Reader) Raw(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: expected %d raw bytes at offset %d", ErrMalformedEncoding, n, r.off)
	}
	p := make([]byte, n)
	copy(p, r.buf[r.off:])
	r.off += n
	return p, nil
}

func (r *Reader) Int32() (int32, error) {
	if r.remaining() < 4 {
		return 0, fmt.Errorf("%w: truncated int32 at offset %d", ErrMalformedEncoding, r.off)
	}
	v := int32(binary.LittleEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

func (r *Reader) Int64() (int64, error) {
	if r.remaining() < 8 {
		return 0, fmt.Errorf("%w: truncated int64 at offset %d", ErrMalformedEncoding, r.off)
	}
	v := int64(binary.LittleEndian.Uint64(r.buf[r.off:]))
	r.off += 8
	return v, nil
}

// Done fails if any input remains unconsumed, so an over-long encoding is
// rejected rather than silently ignored.
func (r *Reader) Done() error {
	if r.remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedEncoding, r.remaining())
	}
	return nil
}
