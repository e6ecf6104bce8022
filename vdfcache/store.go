// Package vdfcache persists decoded app and package records in a bbolt
// database. Decoding a full appinfo.vdf touches every record in the file;
// tools that repeatedly look up a handful of ids can warm the cache once and
// then fetch single records without re-decoding.
//
// Records are stored msgpack-encoded under their big-endian u32 id, one
// bucket per record kind, plus a meta bucket carrying each file's header
// fields. The cache is a plain materialization of decoded data; it never
// feeds back into decoding.
package vdfcache

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/steamkit/vdf/vdf"
)

var (
	bucketApps     = []byte("apps")
	bucketPackages = []byte("packages")
	bucketMeta     = []byte("meta")

	metaApps     = []byte("appinfo")
	metaPackages = []byte("packageinfo")
)

// ErrNotFound indicates the requested id is not in the cache.
var ErrNotFound = errors.New("vdfcache: not found")

// Meta holds the per-file header fields shared by all records of one kind.
type Meta struct {
	Magic    uint32 `msgpack:"m"`
	Universe uint32 `msgpack:"u"`
}

// Store is a bbolt-backed record cache. Safe for concurrent use; bbolt
// serializes writers internally.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o666, nil)
	if err != nil {
		return nil, fmt.Errorf("vdfcache: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketApps, bucketPackages, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vdfcache: init buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func idKey(id uint32) []byte {
	var k [4]byte
	binary.BigEndian.PutUint32(k[:], id) // big-endian so cursor order is id order
	return k[:]
}

// PutAppInfo stores every record of a decoded appinfo.vdf plus its header
// fields, replacing any records already cached under the same ids.
func (s *Store) PutAppInfo(info *vdf.AppInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := putMeta(tx, metaApps, info.Magic, info.Universe); err != nil {
			return err
		}
		b := tx.Bucket(bucketApps)
		for id, app := range info.Apps {
			raw, err := msgpack.Marshal(app)
			if err != nil {
				return fmt.Errorf("vdfcache: encode app %d: %w", id, err)
			}
			if err := b.Put(idKey(id), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// PutPackageInfo stores every record of a decoded packageinfo.vdf plus its
// header fields.
func (s *Store) PutPackageInfo(info *vdf.PackageInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := putMeta(tx, metaPackages, info.Magic, info.Universe); err != nil {
			return err
		}
		b := tx.Bucket(bucketPackages)
		for id, pkg := range info.Packages {
			raw, err := msgpack.Marshal(pkg)
			if err != nil {
				return fmt.Errorf("vdfcache: encode package %d: %w", id, err)
			}
			if err := b.Put(idKey(id), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

func putMeta(tx *bbolt.Tx, key []byte, magic, universe uint32) error {
	raw, err := msgpack.Marshal(Meta{Magic: magic, Universe: universe})
	if err != nil {
		return err
	}
	return tx.Bucket(bucketMeta).Put(key, raw)
}

// App fetches one cached app record.
func (s *Store) App(id uint32) (*vdf.App, error) {
	var app vdf.App
	if err := s.get(bucketApps, id, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Package fetches one cached package record.
func (s *Store) Package(id uint32) (*vdf.Package, error) {
	var pkg vdf.Package
	if err := s.get(bucketPackages, id, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *Store) get(bucket []byte, id uint32, out any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucket).Get(idKey(id))
		if raw == nil {
			return fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		if err := msgpack.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("vdfcache: decode id %d: %w", id, err)
		}
		return nil
	})
}

// AppMeta returns the cached appinfo header fields.
func (s *Store) AppMeta() (Meta, error) {
	return s.meta(metaApps)
}

// PackageMeta returns the cached packageinfo header fields.
func (s *Store) PackageMeta() (Meta, error) {
	return s.meta(metaPackages)
}

func (s *Store) meta(key []byte) (Meta, error) {
	var m Meta
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketMeta).Get(key)
		if raw == nil {
			return fmt.Errorf("%w: %s meta", ErrNotFound, key)
		}
		return msgpack.Unmarshal(raw, &m)
	})
	return m, err
}

// AppIDs lists cached app ids in ascending order.
func (s *Store) AppIDs() ([]uint32, error) {
	return s.ids(bucketApps)
}

// PackageIDs lists cached package ids in ascending order.
func (s *Store) PackageIDs() ([]uint32, error) {
	return s.ids(bucketPackages)
}

func (s *Store) ids(bucket []byte) ([]uint32, error) {
	var out []uint32
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, _ []byte) error {
			out = append(out, binary.BigEndian.Uint32(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
