// Package objfile reads and writes the section table of linker object
// files. Only placement-relevant fields are carried; code and data payloads
// travel separately and are outside this package's concern.
//
// Object file layout (little-endian):
//
//	Offset  Size  Description
//	0x00    4     Magic "GBS" followed by the format version byte (0x01).
//	0x04    4     Section count (u32).
//	0x08    ...   Section records, back to back.
//
// Section record layout:
//
//	n+1   Name, NUL-terminated.
//	4     Size in bytes (u32).
//	1     Region kind tag (see sect.Kind).
//	4     Requested address; 0xFFFFFFFF when floating.
//	4     Requested bank; 0xFFFFFFFF when floating.
//	1     Requested alignment as a bit count; 0 when none.
//
// A file must contain exactly its declared sections and nothing after them.
package objfile

import (
	"errors"
	"fmt"
)

// Magic identifies an object file; the last byte is the format version.
var Magic = []byte{'G', 'B', 'S', 0x01}

const (
	headerSize = 8 // magic + section count

	// minRecordSize is the shortest section record the decoder will even
	// look at: a name's NUL terminator followed by the fixed fields. Used
	// to reject section counts that cannot possibly fit the file.
	minRecordSize = 1 + 4 + 1 + 4 + 4 + 1

	// Floating marks an address or bank field as unconstrained.
	Floating = 0xFFFFFFFF

	// MaxAlignBits bounds the alignment bit count; the address bus is
	// 16 bits wide, so anything larger can never be satisfied.
	MaxAlignBits = 16
)

// Sentinel errors for structural problems. Loader-level corruption is an
// error, not a placement diagnostic: nothing downstream can run over a
// file that cannot be decoded.
var (
	ErrNotObject = errors.New("objfile: bad magic")
	ErrTruncated = errors.New("objfile: unexpected end of file")
)

// formatErr wraps a structural complaint with the file offset it was
// detected at.
func formatErr(off int, format string, args ...any) error {
	return fmt.Errorf("objfile: at offset %#x: %s", off, fmt.Sprintf(format, args...))
}
