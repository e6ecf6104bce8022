package vdf

// Tag bytes preceding every tree entry. The tag fully determines the payload
// shape that follows the key:
//
//	Tag    Payload
//	----   ------------------------------------------------
//	0x00   none; a nested tree follows, closed by a sentinel
//	0x01   NUL-terminated narrow string
//	0x02   4-byte signed integer
//	0x03   4-byte IEEE-754 float
//	0x04   4-byte signed integer ("pointer")
//	0x05   NUL-terminated UTF-16LE string
//	0x06   4-byte signed integer (packed color)
//	0x07   8-byte unsigned integer
//	0x0A   8-byte signed integer
//
// 0x08 and 0x0B are sentinels closing the current tree; which one applies is
// fixed for a whole decode session.
const (
	tagTree       byte = 0x00
	tagString     byte = 0x01
	tagInt32      byte = 0x02
	tagFloat32    byte = 0x03
	tagPointer    byte = 0x04
	tagWideString byte = 0x05
	tagColor      byte = 0x06
	tagUint64     byte = 0x07
	tagEnd        byte = 0x08
	tagInt64      byte = 0x0A
	tagEndAlt     byte = 0x0B
)

// Recognized appinfo.vdf format versions. Any other leading magic rejects
// the file.
const (
	// MagicV28 identifies the legacy revision: keys are stored inline.
	MagicV28 uint32 = 0x07564428
	// MagicV29 identifies the current revision: keys are u32 indices into an
	// out-of-band string table addressed by an offset after the file header.
	MagicV29 uint32 = 0x07564429
)

const (
	// MaxTreeDepth bounds tree nesting. Real appinfo payloads stay in the
	// single digits; the guard exists so corrupted or adversarial input fails
	// with a decode error instead of exhausting the stack.
	MaxTreeDepth = 256

	// checksumSize is the width of the SHA-1 digests embedded in record
	// headers. The decoder stores them opaquely.
	checksumSize = 20
)

// Reserved record ids terminating the record loops.
const (
	appInfoEndID     uint32 = 0
	packageInfoEndID uint32 = 0xFFFFFFFF
)
