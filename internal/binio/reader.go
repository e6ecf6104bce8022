// Package binio provides little-endian primitive reads over a seekable byte
// source. The VDF wire format stores every multi-byte integer little-endian,
// so all helpers here decode with encoding/binary.LittleEndian.
package binio

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader wraps an io.ReadSeeker with fixed-width little-endian decode
// helpers. A short read anywhere surfaces as io.ErrUnexpectedEOF (or io.EOF
// when nothing was read); callers treat either as a hard decode failure.
//
// Reader is not safe for concurrent use: Offset/SeekTo manipulate the shared
// stream position.
type Reader struct {
	rs  io.ReadSeeker
	tmp [8]byte
}

// NewReader wraps rs. The Reader does not buffer; hand it a bytes.Reader or a
// bufio-backed source when the underlying medium is slow.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

func (r *Reader) fill(n int) ([]byte, error) {
	b := r.tmp[:n]
	if _, err := io.ReadFull(r.rs, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (byte, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian int64.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadF32 reads a little-endian IEEE-754 single-precision float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFull fills p from the stream, failing on a short read.
func (r *Reader) ReadFull(p []byte) error {
	_, err := io.ReadFull(r.rs, p)
	return err
}

// ReadAll consumes the stream from the current position to its end.
func (r *Reader) ReadAll() ([]byte, error) {
	return io.ReadAll(r.rs)
}

// Offset reports the current stream position.
func (r *Reader) Offset() (int64, error) {
	return r.rs.Seek(0, io.SeekCurrent)
}

// SeekTo repositions the stream to an absolute offset.
func (r *Reader) SeekTo(off int64) error {
	_, err := r.rs.Seek(off, io.SeekStart)
	return err
}
