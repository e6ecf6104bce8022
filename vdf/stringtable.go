package vdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/steamkit/vdf/internal/binio"
)

// StringTable is the de-duplicated key table of the current appinfo revision.
// Keys in record trees are stored as u32 indices into it instead of inline
// text. It is loaded once per file and read-only afterwards.
type StringTable struct {
	strings []string
}

// Len returns the number of table entries.
func (st *StringTable) Len() int {
	if st == nil {
		return 0
	}
	return len(st.strings)
}

// Lookup resolves a key index. An out-of-range index means the stream is
// framed wrong and fails the decode.
func (st *StringTable) Lookup(i uint32) (string, error) {
	if st == nil || int64(i) >= int64(len(st.strings)) {
		return "", fmt.Errorf("%w: index %d out of range (table has %d)", ErrStringTable, i, st.Len())
	}
	return st.strings[i], nil
}

// readStringTable loads the out-of-band key table. The stream is positioned
// at the 8-byte table offset; the table block at that offset is a u32 entry
// count followed by NUL-terminated strings filling the rest of the file.
// The cursor is restored to just past the offset field before returning, so
// record decoding continues where the header left off.
//
// Not reentrant: it repositions the shared cursor.
func readStringTable(r *binio.Reader) (*StringTable, error) {
	tableOffset, err := r.ReadI64()
	if err != nil {
		return nil, err
	}
	saved, err := r.Offset()
	if err != nil {
		return nil, err
	}
	if err := r.SeekTo(tableOffset); err != nil {
		return nil, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	raw, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	table := make([]string, 0, count)
	for _, frag := range bytes.Split(raw, []byte{0}) {
		if len(frag) == 0 {
			continue
		}
		table = append(table, strings.ToValidUTF8(string(frag), "�"))
	}
	if uint64(len(table)) != uint64(count) {
		return nil, fmt.Errorf("%w: declared %d strings, decoded %d", ErrStringTable, count, len(table))
	}

	if err := r.SeekTo(saved); err != nil {
		return nil, err
	}
	return &StringTable{strings: table}, nil
}
