package vdf

import (
	"fmt"

	"github.com/steamkit/vdf/internal/binio"
)

// KeyValues is one decoded tree: key to typed value. Duplicate keys on the
// wire resolve last-write-wins; entry order is not preserved.
type KeyValues map[string]*Value

// Get descends nested trees along keys and returns the value at the end of
// the path, or nil when any step is absent or a non-final step is not itself
// a tree. An empty path returns nil.
func (kv KeyValues) Get(keys ...string) *Value {
	if len(keys) == 0 {
		return nil
	}
	v, ok := kv[keys[0]]
	if !ok {
		return nil
	}
	if len(keys) == 1 {
		return v
	}
	if v.Type != TypeKeyValues {
		return nil
	}
	return v.KV.Get(keys[1:]...)
}

// treeMode selects which sentinel byte closes trees. A decode session picks
// one mode up front and every nested tree in that session uses it; the two
// bytes are format revisions of the tree encoding, not mixable within a file.
// No known file selects modeAlt, but the encoding reserves it.
type treeMode byte

const (
	modeDefault treeMode = treeMode(tagEnd)
	modeAlt     treeMode = treeMode(tagEndAlt)
)

// decodeKeyValues decodes one tree from the stream. table is non-nil when
// keys are stored as string-table indices rather than inline text.
func decodeKeyValues(r *binio.Reader, mode treeMode, table *StringTable) (KeyValues, error) {
	return decodeTree(r, mode, table, 0)
}

func decodeTree(r *binio.Reader, mode treeMode, table *StringTable, depth int) (KeyValues, error) {
	if depth >= MaxTreeDepth {
		return nil, fmt.Errorf("%w (limit %d)", ErrTooDeep, MaxTreeDepth)
	}

	node := make(KeyValues)
	for {
		tag, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		if tag == byte(mode) {
			return node, nil
		}
		switch tag {
		case tagTree, tagString, tagWideString, tagInt32, tagPointer,
			tagColor, tagUint64, tagInt64, tagFloat32:
		default:
			// Rejected before the key is touched: the tag decides how the
			// rest of the stream is framed, and that includes the sentinel
			// the session did not select.
			return nil, fmt.Errorf("%w 0x%02X", ErrInvalidType, tag)
		}

		key, err := readKey(r, table)
		if err != nil {
			return nil, err
		}

		var v *Value
		switch tag {
		case tagTree:
			sub, err := decodeTree(r, mode, table, depth+1)
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeKeyValues, KV: sub}
		case tagString:
			s, err := readString(r)
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeString, Str: s}
		case tagWideString:
			s, err := readWideString(r)
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeWideString, Str: s}
		case tagInt32, tagPointer, tagColor:
			n, err := r.ReadI32()
			if err != nil {
				return nil, err
			}
			t := TypeInt32
			switch tag {
			case tagPointer:
				t = TypePointer
			case tagColor:
				t = TypeColor
			}
			v = &Value{Type: t, Int: n}
		case tagUint64:
			n, err := r.ReadU64()
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeUint64, Uint64: n}
		case tagInt64:
			n, err := r.ReadI64()
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeInt64, Int64: n}
		case tagFloat32:
			n, err := r.ReadF32()
			if err != nil {
				return nil, err
			}
			v = &Value{Type: TypeFloat32, Float: n}
		default:
			return nil, fmt.Errorf("%w 0x%02X", ErrInvalidType, tag)
		}
		node[key] = v
	}
}

// readKey reads the entry key preceding a payload: a table index in the
// current appinfo revision, inline NUL-terminated text otherwise.
func readKey(r *binio.Reader, table *StringTable) (string, error) {
	if table != nil {
		idx, err := r.ReadU32()
		if err != nil {
			return "", err
		}
		return table.Lookup(idx)
	}
	return readString(r)
}
