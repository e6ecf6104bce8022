package vdf

import (
	"fmt"
	"io"

	"github.com/steamkit/vdf/internal/binio"
)

// App is one per-app record: the fixed header fields as stored, plus the
// decoded metadata tree. Header fields are opaque to the decoder; checksums
// are not verified and ChangeNumber is not interpreted beyond storage.
//
// Record layout after the id:
//
//	Offset  Size  Field
//	------  ----  -------------------------
//	 0x00    4    size
//	 0x04    4    state
//	 0x08    4    last_update
//	 0x0C    8    access_token
//	 0x14   20    checksum (text form)
//	 0x28    4    change_number
//	 0x2C   20    checksum (binary form)
//	 0x40    —    key-values tree
type App struct {
	Size           uint32             `msgpack:"sz"`
	State          uint32             `msgpack:"st"`
	LastUpdate     uint32             `msgpack:"lu"`
	AccessToken    uint64             `msgpack:"at"`
	ChecksumText   [checksumSize]byte `msgpack:"ct"`
	ChecksumBinary [checksumSize]byte `msgpack:"cb"`
	ChangeNumber   uint32             `msgpack:"cn"`
	KeyValues      KeyValues          `msgpack:"kv"`
}

// Get performs a hierarchical lookup in the app's tree; see KeyValues.Get.
func (a *App) Get(keys ...string) *Value {
	return a.KeyValues.Get(keys...)
}

// AppInfo is a fully decoded appinfo.vdf: the file header plus every record
// keyed by app id. Immutable once returned; safe for concurrent reads.
type AppInfo struct {
	Magic    uint32
	Universe uint32
	Apps     map[uint32]*App
}

// ReadAppInfo decodes an entire appinfo.vdf from r. The source must be
// seekable: the current revision stores its key table out-of-band and the
// decoder jumps there and back once before reading records.
//
// The magic is checked before anything else; an unrecognized value fails
// with ErrUnsupportedVersion without touching the rest of the file. Records
// repeat until a zero id; a duplicate id silently replaces the earlier
// record. Any framing problem aborts the whole decode with no partial
// result.
func ReadAppInfo(rs io.ReadSeeker) (*AppInfo, error) {
	r := binio.NewReader(rs)

	magic, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if magic != MagicV28 && magic != MagicV29 {
		return nil, fmt.Errorf("%w 0x%08X", ErrUnsupportedVersion, magic)
	}
	universe, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	var table *StringTable
	if magic == MagicV29 {
		if table, err = readStringTable(r); err != nil {
			return nil, err
		}
	}

	info := &AppInfo{
		Magic:    magic,
		Universe: universe,
		Apps:     make(map[uint32]*App),
	}
	for {
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if id == appInfoEndID {
			return info, nil
		}

		app := &App{}
		if app.Size, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if app.State, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if app.LastUpdate, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if app.AccessToken, err = r.ReadU64(); err != nil {
			return nil, err
		}
		if err = r.ReadFull(app.ChecksumText[:]); err != nil {
			return nil, err
		}
		if app.ChangeNumber, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if err = r.ReadFull(app.ChecksumBinary[:]); err != nil {
			return nil, err
		}
		if app.KeyValues, err = decodeKeyValues(r, modeDefault, table); err != nil {
			return nil, err
		}
		info.Apps[id] = app
	}
}
