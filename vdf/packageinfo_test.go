package vdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPackageInfoSinglePackage(t *testing.T) {
	checksum := bytes.Repeat([]byte{0x33}, checksumSize)

	var w binWriter
	w.u32(MagicV28)
	w.u32(1)
	w.u32(39) // package id
	w.raw(checksum)
	w.u32(777)                // change_number
	w.u64(0xDEADBEEF00000001) // pics
	w.entry(tagTree, "extended")
	w.int32Entry(tagInt32, "allowcrossregiontrading", 0)
	w.u8(tagEnd)
	w.u8(tagEnd)
	w.u32(packageInfoEndID)

	info, err := ReadPackageInfo(bytes.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, MagicV28, info.Magic)
	require.Equal(t, uint32(1), info.Universe)
	require.Len(t, info.Packages, 1)

	pkg := info.Packages[39]
	require.NotNil(t, pkg)
	require.Equal(t, checksum, pkg.Checksum[:])
	require.Equal(t, uint32(777), pkg.ChangeNumber)
	require.Equal(t, uint64(0xDEADBEEF00000001), pkg.PICS)

	v := pkg.Get("extended", "allowcrossregiontrading")
	require.NotNil(t, v)
	require.Equal(t, int32(0), v.Int)
	require.Nil(t, pkg.Get("extended", "missing"))
}

func TestReadPackageInfoEmpty(t *testing.T) {
	var w binWriter
	w.u32(MagicV28)
	w.u32(1)
	w.u32(packageInfoEndID)

	info, err := ReadPackageInfo(bytes.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Empty(t, info.Packages)
}

func TestReadPackageInfoZeroIDIsARecord(t *testing.T) {
	// zero terminates appinfo but is an ordinary package id here
	var w binWriter
	w.u32(MagicV28)
	w.u32(1)
	w.u32(0)
	w.raw(make([]byte, checksumSize))
	w.u32(1)
	w.u64(0)
	w.u8(tagEnd)
	w.u32(packageInfoEndID)

	info, err := ReadPackageInfo(bytes.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Len(t, info.Packages, 1)
	require.NotNil(t, info.Packages[0])
}

func TestReadPackageInfoTruncated(t *testing.T) {
	var w binWriter
	w.u32(MagicV28)
	w.u32(1)
	w.u32(39)
	w.raw(make([]byte, 10)) // half a checksum

	_, err := ReadPackageInfo(bytes.NewReader(w.Bytes()))
	require.Error(t, err)
}
