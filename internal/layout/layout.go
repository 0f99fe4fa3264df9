// Package layout houses the static memory model of the target platform: the
// closed set of memory region kinds, their address windows, size limits, and
// legal bank ranges. Everything in here is constant data about the hardware;
// higher-level packages orchestrate sections against it but never change it.
package layout

// Kind identifies one of the platform's physical memory regions.
type Kind uint8

// The platform's memory regions. The numeric values double as on-disk tags in
// object files, so their order must not change.
const (
	ROM0  Kind = iota // fixed low ROM, always mapped
	ROMX              // banked ROM, switchable 16 KiB window
	VRAM              // video RAM
	SRAM              // cartridge static RAM
	WRAM0             // fixed low working RAM
	WRAMX             // banked working RAM
	OAM               // object attribute memory
	HRAM              // high RAM
	KindCount
)

// Valid reports whether k is one of the known region kinds. Object files
// carry the kind as a raw byte, so unknown values are reachable from
// corrupt or foreign input.
func (k Kind) Valid() bool { return k < KindCount }

// String returns the region's display name, as used in diagnostics.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return regions[k].Name
}

// Region describes the static attributes of one region kind.
type Region struct {
	Name string // display name used in diagnostics

	// Base is the first address of the region when viewed unbanked.
	Base uint16

	// MaxSize is the largest byte size a single section of this kind may
	// have, equal to the banked window size.
	MaxSize uint16

	// MinBank and MaxBank bound the legal bank indices, inclusive. When
	// they are equal the region is not truly banked and the bank is forced.
	MinBank uint32
	MaxBank uint32
}

// End returns the last valid address of the region, derived from Base and
// MaxSize so that table edits stay consistent.
func (r Region) End() uint16 { return r.Base + r.MaxSize - 1 }

// Banked reports whether the region offers a real bank choice.
func (r Region) Banked() bool { return r.MinBank != r.MaxBank }

// regions is the one table describing the platform. Indexed literals keep
// each row pinned to its Kind; the array length pins completeness.
var regions = [KindCount]Region{
	ROM0:  {Name: "ROM0", Base: 0x0000, MaxSize: 0x4000, MinBank: 0, MaxBank: 0},
	ROMX:  {Name: "ROMX", Base: 0x4000, MaxSize: 0x4000, MinBank: 1, MaxBank: 511},
	VRAM:  {Name: "VRAM", Base: 0x8000, MaxSize: 0x2000, MinBank: 0, MaxBank: 1},
	SRAM:  {Name: "SRAM", Base: 0xA000, MaxSize: 0x2000, MinBank: 0, MaxBank: 15},
	WRAM0: {Name: "WRAM0", Base: 0xC000, MaxSize: 0x1000, MinBank: 0, MaxBank: 0},
	WRAMX: {Name: "WRAMX", Base: 0xD000, MaxSize: 0x1000, MinBank: 1, MaxBank: 7},
	OAM:   {Name: "OAM", Base: 0xFE00, MaxSize: 0x00A0, MinBank: 0, MaxBank: 0},
	HRAM:  {Name: "HRAM", Base: 0xFF80, MaxSize: 0x007F, MinBank: 0, MaxBank: 0},
}

// Get returns the static attributes of k. The caller must have validated k;
// Get panics on an out-of-range kind because the table has no row for it.
func Get(k Kind) Region {
	return regions[k]
}

// All returns the table rows in kind order, for listings.
func All() []Region {
	out := make([]Region, KindCount)
	copy(out, regions[:])
	return out
}
