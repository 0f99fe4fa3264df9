package objfile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dmgtools/sectkit/internal/mmfile"
	"github.com/dmgtools/sectkit/sect"
)

// cursor walks the raw image with a sticky error, so record decoding reads
// as a straight sequence of field reads with one check at the end.
type cursor struct {
	data []byte
	off  int
	err  error
}

func (c *cursor) u8() byte {
	if c.err != nil {
		return 0
	}
	if c.off+1 > len(c.data) {
		c.err = ErrTruncated
		return 0
	}
	b := c.data[c.off]
	c.off++
	return b
}

func (c *cursor) u32() uint32 {
	if c.err != nil {
		return 0
	}
	if c.off+4 > len(c.data) {
		c.err = ErrTruncated
		return 0
	}
	v := binary.LittleEndian.Uint32(c.data[c.off:])
	c.off += 4
	return v
}

func (c *cursor) str() string {
	if c.err != nil {
		return ""
	}
	i := bytes.IndexByte(c.data[c.off:], 0)
	if i < 0 {
		c.err = ErrTruncated
		return ""
	}
	s := string(c.data[c.off : c.off+i])
	c.off += i + 1
	return s
}

// Read decodes the section table from a raw object image.
func Read(data []byte) ([]*sect.Section, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[:len(Magic)], Magic) {
		return nil, fmt.Errorf("%w: % x", ErrNotObject, data[:len(Magic)])
	}

	c := &cursor{data: data, off: len(Magic)}
	count := c.u32()
	if int64(count)*minRecordSize > int64(len(data)-headerSize) {
		return nil, fmt.Errorf("objfile: section count %d cannot fit in %d bytes: %w",
			count, len(data), ErrTruncated)
	}

	sections := make([]*sect.Section, 0, count)
	for i := uint32(0); i < count; i++ {
		start := c.off
		s, err := readSection(c)
		if err != nil {
			return nil, fmt.Errorf("objfile: section %d (starting at offset %#x): %w", i, start, err)
		}
		sections = append(sections, s)
	}

	if c.off != len(data) {
		return nil, formatErr(c.off, "%d trailing bytes after %d sections", len(data)-c.off, count)
	}
	return sections, nil
}

func readSection(c *cursor) (*sect.Section, error) {
	s := &sect.Section{}
	s.Name = c.str()
	s.Size = c.u32()
	kind := c.u8()
	org := c.u32()
	bank := c.u32()
	align := c.u8()
	if c.err != nil {
		return nil, c.err
	}

	if s.Name == "" {
		return nil, fmt.Errorf("empty section name")
	}

	// The kind tag is carried verbatim even when out of range; rejecting
	// it with a precise diagnostic is the validator's job.
	s.Kind = sect.Kind(kind)

	if org != Floating {
		s.Org = org
		s.OrgFixed = true
	}
	if bank != Floating {
		s.Bank = bank
		s.BankFixed = true
	}
	if align > MaxAlignBits {
		return nil, fmt.Errorf("alignment of %d bits cannot fit a 16-bit address", align)
	}
	if align > 0 {
		s.AlignMask = 1<<align - 1
		s.AlignFixed = true
	}
	return s, nil
}

// ReadFile maps the object at path and decodes its section table. The
// returned sections do not alias the file contents.
func ReadFile(path string) ([]*sect.Section, error) {
	data, release, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer release()

	sections, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sections, nil
}
