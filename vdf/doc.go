// Package vdf decodes Valve's binary key-value metadata files: the
// per-app appinfo.vdf and the per-package packageinfo.vdf.
//
// Both files carry a short header followed by a flat run of records, each a
// fixed-width header plus one tree of typed values, terminated by a reserved
// record id. The tree encoding is a tagged stream: one tag byte per entry
// selecting the payload type, a key (inline NUL-terminated text, or a string
// table index in the newer appinfo revision), then the payload, until a
// sentinel tag closes the tree.
//
// Decoding is strict. An unknown tag, an unsupported file version, a string
// table whose contents disagree with its declared count, or a short read
// anywhere aborts the whole decode; the format's tag widths leave no safe way
// to resynchronize. Decoded collections are immutable and safe for
// concurrent reads.
//
// Typical use:
//
//	info, err := vdf.OpenAppInfo("appinfo.vdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	app := info.Apps[570]
//	if v := app.Get("common", "name"); v != nil {
//		fmt.Println(v)
//	}
package vdf
