package objfile

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"os"

	"github.com/dmgtools/sectkit/sect"
)

// Builder assembles an object image section by section. It is the write-side
// counterpart of Read and is used by tools that emit objects and by tests
// that need well-formed inputs.
type Builder struct {
	sections []*sect.Section
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a section record. The section is encoded at Bytes time, so
// later mutations through s are visible in the output.
func (b *Builder) Add(s *sect.Section) *Builder {
	b.sections = append(b.sections, s)
	return b
}

// Bytes encodes the accumulated section table.
func (b *Builder) Bytes() ([]byte, error) {
	out := append([]byte{}, Magic...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(b.sections)))

	for _, s := range b.sections {
		if s.Name == "" {
			return nil, fmt.Errorf("objfile: cannot encode a nameless section")
		}
		out = append(out, s.Name...)
		out = append(out, 0)
		out = binary.LittleEndian.AppendUint32(out, s.Size)
		out = append(out, byte(s.Kind))

		org := uint32(Floating)
		if s.OrgFixed {
			org = s.Org
		}
		out = binary.LittleEndian.AppendUint32(out, org)

		bank := uint32(Floating)
		if s.BankFixed {
			bank = s.Bank
		}
		out = binary.LittleEndian.AppendUint32(out, bank)

		align, err := alignBits(s)
		if err != nil {
			return nil, err
		}
		out = append(out, align)
	}
	return out, nil
}

// WriteFile encodes the section table and writes it to path.
func (b *Builder) WriteFile(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// alignBits converts a section's alignment mask back to the on-disk bit
// count, rejecting masks that are not a power of two minus one.
func alignBits(s *sect.Section) (byte, error) {
	if !s.AlignFixed || s.AlignMask == 0 {
		return 0, nil
	}
	n := bits.Len32(s.AlignMask)
	if s.AlignMask != 1<<n-1 || n > MaxAlignBits {
		return 0, fmt.Errorf("objfile: section %q: alignment mask %#x is not encodable", s.Name, s.AlignMask)
	}
	return byte(n), nil
}
