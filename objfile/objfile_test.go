package objfile

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmgtools/sectkit/sect"
)

// buildImage encodes the given sections, failing the test on encode errors.
func buildImage(t *testing.T, sections ...*sect.Section) []byte {
	t.Helper()
	b := NewBuilder()
	for _, s := range sections {
		b.Add(s)
	}
	data, err := b.Bytes()
	require.NoError(t, err)
	return data
}

func TestRoundTrip(t *testing.T) {
	in := []*sect.Section{
		{Name: "header", Kind: sect.ROM0, Size: 0x150, Org: 0x0100, OrgFixed: true},
		{Name: "engine", Kind: sect.ROMX, Size: 0x2000, Bank: 3, BankFixed: true},
		{Name: "tiles", Kind: sect.VRAM, Size: 0x800, AlignMask: 0xF, AlignFixed: true},
		{Name: "scratch", Kind: sect.WRAM0, Size: 0x40},
	}

	out, err := Read(buildImage(t, in...))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestReadEmptyTable(t *testing.T) {
	out, err := Read(buildImage(t))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestReadBadMagic(t *testing.T) {
	data := buildImage(t, &sect.Section{Name: "a", Kind: sect.ROM0, Size: 1})
	data[0] = 'X'

	_, err := Read(data)
	require.ErrorIs(t, err, ErrNotObject)
}

func TestReadTruncated(t *testing.T) {
	data := buildImage(t, &sect.Section{Name: "a", Kind: sect.ROM0, Size: 1})

	for _, cut := range []int{1, len(Magic), headerSize + 1, len(data) - 1} {
		_, err := Read(data[:cut])
		require.ErrorIs(t, err, ErrTruncated, "cut at %d", cut)
	}
}

func TestReadAbsurdSectionCount(t *testing.T) {
	data := append([]byte{}, Magic...)
	data = binary.LittleEndian.AppendUint32(data, 0xFFFFFFFF)

	_, err := Read(data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot fit")
}

func TestReadTrailingGarbage(t *testing.T) {
	data := buildImage(t, &sect.Section{Name: "a", Kind: sect.ROM0, Size: 1})
	data = append(data, 0xAA)

	_, err := Read(data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "trailing bytes")
}

func TestReadEmptyName(t *testing.T) {
	// Hand-roll a record with a zero-length name.
	data := append([]byte{}, Magic...)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = append(data, 0)                              // name ""
	data = binary.LittleEndian.AppendUint32(data, 1)    // size
	data = append(data, byte(sect.ROM0))                // kind
	data = binary.LittleEndian.AppendUint32(data, 0xFFFFFFFF)
	data = binary.LittleEndian.AppendUint32(data, 0xFFFFFFFF)
	data = append(data, 0) // align

	_, err := Read(data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty section name")
}

func TestReadOversizedAlignment(t *testing.T) {
	data := buildImage(t, &sect.Section{Name: "a", Kind: sect.ROM0, Size: 1})
	data[len(data)-1] = MaxAlignBits + 1

	_, err := Read(data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "alignment")
}

func TestReadCarriesUnknownKind(t *testing.T) {
	// An out-of-range kind tag must survive decoding untouched; the
	// validator owns its rejection.
	data := buildImage(t, &sect.Section{Name: "a", Kind: sect.Kind(0x7F), Size: 1})

	out, err := Read(data)
	require.NoError(t, err)
	require.Equal(t, sect.Kind(0x7F), out[0].Kind)
	require.False(t, out[0].Kind.Valid())
}

func TestAlignmentRejectsNonMask(t *testing.T) {
	b := NewBuilder().Add(&sect.Section{Name: "a", Kind: sect.ROM0, Size: 1, AlignMask: 0x6, AlignFixed: true})
	_, err := b.Bytes()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not encodable")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.o")
	want := []*sect.Section{{Name: "hud", Kind: sect.VRAM, Size: 0x100}}
	require.NoError(t, NewBuilder().Add(want[0]).WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadFileErrorsNamePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.o")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.o")
}
