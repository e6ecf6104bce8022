package vdf

import "errors"

var (
	// ErrUnsupportedVersion indicates the file's leading magic is not a
	// recognized format revision.
	ErrUnsupportedVersion = errors.New("vdf: unsupported version")
	// ErrInvalidType indicates a tag byte outside the recognized set. The
	// wrapping error carries the offending byte.
	ErrInvalidType = errors.New("vdf: invalid type tag")
	// ErrStringTable indicates the string table failed its integrity check:
	// declared count vs decoded fragments, or an out-of-range key index.
	ErrStringTable = errors.New("vdf: string table integrity")
	// ErrTooDeep indicates tree nesting exceeded MaxTreeDepth.
	ErrTooDeep = errors.New("vdf: key-value nesting too deep")
)
