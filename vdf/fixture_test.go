package vdf

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// binWriter builds wire fixtures for tests. It is the encode half the
// decoder deliberately does not ship.
type binWriter struct {
	bytes.Buffer
}

func (w *binWriter) u8(v byte)     { w.WriteByte(v) }
func (w *binWriter) u16(v uint16)  { w.Write(binary.LittleEndian.AppendUint16(nil, v)) }
func (w *binWriter) u32(v uint32)  { w.Write(binary.LittleEndian.AppendUint32(nil, v)) }
func (w *binWriter) u64(v uint64)  { w.Write(binary.LittleEndian.AppendUint64(nil, v)) }
func (w *binWriter) i64(v int64)   { w.u64(uint64(v)) }
func (w *binWriter) raw(b []byte)  { w.Write(b) }
func (w *binWriter) cstr(s string) { w.WriteString(s); w.WriteByte(0) }

func (w *binWriter) wstr(s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		w.u16(u)
	}
	w.u16(0)
}

// entry emits one tree entry with an inline key.
func (w *binWriter) entry(tag byte, key string) {
	w.u8(tag)
	w.cstr(key)
}

// int32Entry emits a complete int32-family entry with an inline key.
func (w *binWriter) int32Entry(tag byte, key string, v int32) {
	w.entry(tag, key)
	w.u32(uint32(v))
}

// appHeader emits the fixed app record header that precedes the tree.
func (w *binWriter) appHeader(id uint32) {
	w.u32(id)
	w.u32(100)        // size
	w.u32(2)          // state
	w.u32(1700000000) // last_update
	w.u64(0)          // access_token
	w.raw(make([]byte, checksumSize))
	w.u32(1) // change_number
	w.raw(make([]byte, checksumSize))
}
