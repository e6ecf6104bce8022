package vdf

import (
	"io"

	"github.com/steamkit/vdf/internal/binio"
)

// Package is one per-package record. PICS is an opaque 8-byte field carried
// by the format with no documented meaning; it is stored untouched.
//
// Record layout after the id:
//
//	Offset  Size  Field
//	------  ----  --------------
//	 0x00   20    checksum
//	 0x14    4    change_number
//	 0x18    8    pics (opaque)
//	 0x20    —    key-values tree
type Package struct {
	Checksum     [checksumSize]byte `msgpack:"ck"`
	ChangeNumber uint32             `msgpack:"cn"`
	PICS         uint64             `msgpack:"pi"`
	KeyValues    KeyValues          `msgpack:"kv"`
}

// Get performs a hierarchical lookup in the package's tree; see KeyValues.Get.
func (p *Package) Get(keys ...string) *Value {
	return p.KeyValues.Get(keys...)
}

// PackageInfo is a fully decoded packageinfo.vdf. Immutable once returned;
// safe for concurrent reads.
type PackageInfo struct {
	Magic    uint32
	Universe uint32
	Packages map[uint32]*Package
}

// ReadPackageInfo decodes an entire packageinfo.vdf from r. Unlike appinfo,
// the package file has no revision gate and no string table: keys are always
// inline. Records repeat until the all-ones id; duplicates overwrite.
func ReadPackageInfo(rs io.ReadSeeker) (*PackageInfo, error) {
	r := binio.NewReader(rs)

	magic, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	universe, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	info := &PackageInfo{
		Magic:    magic,
		Universe: universe,
		Packages: make(map[uint32]*Package),
	}
	for {
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if id == packageInfoEndID {
			return info, nil
		}

		pkg := &Package{}
		if err = r.ReadFull(pkg.Checksum[:]); err != nil {
			return nil, err
		}
		if pkg.ChangeNumber, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if pkg.PICS, err = r.ReadU64(); err != nil {
			return nil, err
		}
		if pkg.KeyValues, err = decodeKeyValues(r, modeDefault, nil); err != nil {
			return nil, err
		}
		info.Packages[id] = pkg
	}
}
