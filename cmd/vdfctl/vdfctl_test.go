package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steamkit/vdf/vdf"
	"github.com/steamkit/vdf/vdfcache"
)

// writeAppInfoFixture writes a legacy-revision appinfo file with a single
// app: id 570, tree {"common": {"name": "Dota 2"}}.
func writeAppInfoFixture(t *testing.T) string {
	t.Helper()
	var b bytes.Buffer
	u32 := func(v uint32) { b.Write(binary.LittleEndian.AppendUint32(nil, v)) }
	u64 := func(v uint64) { b.Write(binary.LittleEndian.AppendUint64(nil, v)) }
	cstr := func(s string) { b.WriteString(s); b.WriteByte(0) }

	u32(vdf.MagicV28)
	u32(1) // universe
	u32(570)
	u32(0) // size
	u32(0) // state
	u32(0) // last_update
	u64(0) // access_token
	b.Write(make([]byte, 20))
	u32(1) // change_number
	b.Write(make([]byte, 20))
	b.WriteByte(0x00) // tree entry
	cstr("common")
	b.WriteByte(0x01) // string entry
	cstr("name")
	cstr("Dota 2")
	b.WriteByte(0x08) // close inner
	b.WriteByte(0x08) // close outer
	u32(0)            // end of records

	path := filepath.Join(t.TempDir(), "appinfo.vdf")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
	return path
}

func TestRunInfoAndGet(t *testing.T) {
	packages = false
	path := writeAppInfoFixture(t)

	require.NoError(t, runInfo(path))
	require.NoError(t, runGet(path, "570", []string{"common", "name"}))

	err := runGet(path, "570", []string{"common", "missing"})
	require.ErrorContains(t, err, "not found")

	err = runGet(path, "9", []string{"common"})
	require.ErrorContains(t, err, "no app")
}

func TestLookup(t *testing.T) {
	packages = false
	path := writeAppInfoFixture(t)

	v, err := lookup(path, 570, []string{"common", "name"})
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "Dota 2", v.Str)
}

func TestCacheWarmAndGet(t *testing.T) {
	packages = false
	path := writeAppInfoFixture(t)
	cachePath = filepath.Join(t.TempDir(), "cache.db")

	require.NoError(t, runCacheWarm(path))

	store, err := vdfcache.Open(cachePath)
	require.NoError(t, err)
	defer store.Close()

	kv, err := cachedKeyValues(store, 570)
	require.NoError(t, err)
	require.Equal(t, "Dota 2", kv.Get("common", "name").Str)
}

func TestParseID(t *testing.T) {
	id, err := parseID("4294967295")
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFFFFFF), id)

	_, err = parseID("not-a-number")
	require.Error(t, err)
	_, err = parseID("4294967296")
	require.Error(t, err)
}
