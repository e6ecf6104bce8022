package vdf

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueType enumerates the variants a decoded Value can hold. The wire tag
// byte determines the variant; exactly one payload field is meaningful per
// type.
type ValueType uint8

const (
	// TypeString is a narrow (UTF-8) string.
	TypeString ValueType = iota
	// TypeWideString is a UTF-16LE string, decoded to UTF-8.
	TypeWideString
	// TypeInt32 is a 32-bit signed integer.
	TypeInt32
	// TypePointer shares Int32's wire shape under a distinct semantic tag.
	TypePointer
	// TypeColor is a 32-bit packed color, wire-identical to Int32.
	TypeColor
	// TypeUint64 is a 64-bit unsigned integer.
	TypeUint64
	// TypeInt64 is a 64-bit signed integer.
	TypeInt64
	// TypeFloat32 is a 32-bit IEEE-754 float.
	TypeFloat32
	// TypeKeyValues is a nested tree.
	TypeKeyValues
)

// String returns the conventional short name for the variant.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeWideString:
		return "wstring"
	case TypeInt32:
		return "int32"
	case TypePointer:
		return "pointer"
	case TypeColor:
		return "color"
	case TypeUint64:
		return "uint64"
	case TypeInt64:
		return "int64"
	case TypeFloat32:
		return "float32"
	case TypeKeyValues:
		return "keyvalues"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// Value is one decoded tree entry: a closed tagged union. Type selects which
// payload field is active; the others hold their zero value. A TypeKeyValues
// value never carries a scalar payload and vice versa.
//
// The msgpack tags exist for the vdfcache store; they are not a wire format.
type Value struct {
	Type ValueType `msgpack:"t"`

	Str    string    `msgpack:"s,omitempty"`
	Int    int32     `msgpack:"i,omitempty"`
	Uint64 uint64    `msgpack:"u,omitempty"`
	Int64  int64     `msgpack:"q,omitempty"`
	Float  float32   `msgpack:"f,omitempty"`
	KV     KeyValues `msgpack:"k,omitempty"`
}

// String renders the payload for display.
func (v *Value) String() string {
	switch v.Type {
	case TypeString, TypeWideString:
		return v.Str
	case TypeInt32, TypePointer, TypeColor:
		return strconv.FormatInt(int64(v.Int), 10)
	case TypeUint64:
		return strconv.FormatUint(v.Uint64, 10)
	case TypeInt64:
		return strconv.FormatInt(v.Int64, 10)
	case TypeFloat32:
		return strconv.FormatFloat(float64(v.Float), 'g', -1, 32)
	case TypeKeyValues:
		return fmt.Sprintf("<keyvalues: %d entries>", len(v.KV))
	}
	return "<invalid>"
}

// MarshalJSON emits the active payload directly: strings as JSON strings,
// numbers as JSON numbers, nested trees as objects. Variant tags are not
// preserved; use the msgpack encoding when fidelity matters.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case TypeString, TypeWideString:
		return json.Marshal(v.Str)
	case TypeInt32, TypePointer, TypeColor:
		return json.Marshal(v.Int)
	case TypeUint64:
		return json.Marshal(v.Uint64)
	case TypeInt64:
		return json.Marshal(v.Int64)
	case TypeFloat32:
		return json.Marshal(v.Float)
	case TypeKeyValues:
		return json.Marshal(v.KV)
	}
	return nil, fmt.Errorf("vdf: cannot marshal value type %v", v.Type)
}
