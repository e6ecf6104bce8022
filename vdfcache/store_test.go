package vdfcache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steamkit/vdf/vdf"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testAppInfo() *vdf.AppInfo {
	return &vdf.AppInfo{
		Magic:    vdf.MagicV29,
		Universe: 1,
		Apps: map[uint32]*vdf.App{
			570: {
				Size:         123,
				State:        4,
				ChangeNumber: 99,
				KeyValues: vdf.KeyValues{
					"common": {Type: vdf.TypeKeyValues, KV: vdf.KeyValues{
						"name":   {Type: vdf.TypeString, Str: "Dota 2"},
						"gameid": {Type: vdf.TypeUint64, Uint64: 570},
					}},
				},
			},
			730: {
				ChangeNumber: 7,
				KeyValues:    vdf.KeyValues{},
			},
		},
	}
}

func TestStoreAppRoundTrip(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.PutAppInfo(testAppInfo()))

	app, err := s.App(570)
	require.NoError(t, err)
	require.Equal(t, uint32(123), app.Size)
	require.Equal(t, uint32(99), app.ChangeNumber)

	v := app.Get("common", "name")
	require.NotNil(t, v)
	require.Equal(t, vdf.TypeString, v.Type)
	require.Equal(t, "Dota 2", v.Str)

	g := app.Get("common", "gameid")
	require.NotNil(t, g)
	require.Equal(t, uint64(570), g.Uint64)

	meta, err := s.AppMeta()
	require.NoError(t, err)
	require.Equal(t, Meta{Magic: vdf.MagicV29, Universe: 1}, meta)

	ids, err := s.AppIDs()
	require.NoError(t, err)
	require.Equal(t, []uint32{570, 730}, ids)
}

func TestStorePackageRoundTrip(t *testing.T) {
	s := openTestStore(t)

	info := &vdf.PackageInfo{
		Magic:    vdf.MagicV28,
		Universe: 1,
		Packages: map[uint32]*vdf.Package{
			39: {
				ChangeNumber: 5,
				PICS:         42,
				KeyValues: vdf.KeyValues{
					"billingtype": {Type: vdf.TypeInt32, Int: 1},
				},
			},
		},
	}
	require.NoError(t, s.PutPackageInfo(info))

	pkg, err := s.Package(39)
	require.NoError(t, err)
	require.Equal(t, uint64(42), pkg.PICS)
	require.Equal(t, int32(1), pkg.Get("billingtype").Int)

	ids, err := s.PackageIDs()
	require.NoError(t, err)
	require.Equal(t, []uint32{39}, ids)
}

func TestStoreNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.App(1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Package(1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.AppMeta()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorePutReplaces(t *testing.T) {
	s := openTestStore(t)
	info := testAppInfo()
	require.NoError(t, s.PutAppInfo(info))

	info.Apps[570].ChangeNumber = 100
	require.NoError(t, s.PutAppInfo(info))

	app, err := s.App(570)
	require.NoError(t, err)
	require.Equal(t, uint32(100), app.ChangeNumber)
}
