package sect

import "github.com/dmgtools/sectkit/internal/layout"

// Kind identifies the memory region a section is destined for.
// Re-exported from internal/layout for the public API.
type Kind = layout.Kind

// The platform's memory regions.
const (
	ROM0  = layout.ROM0
	ROMX  = layout.ROMX
	VRAM  = layout.VRAM
	SRAM  = layout.SRAM
	WRAM0 = layout.WRAM0
	WRAMX = layout.WRAMX
	OAM   = layout.OAM
	HRAM  = layout.HRAM

	// KindCount bounds the valid kinds; values at or above it only occur
	// in corrupt input.
	KindCount = layout.KindCount
)

// Region describes the static attributes of a region kind.
// Re-exported from internal/layout.
type Region = layout.Region

// RegionOf returns the static layout attributes for a valid kind.
func RegionOf(k Kind) Region { return layout.Get(k) }

// Regions returns the whole layout table in kind order.
func Regions() []Region { return layout.All() }

// Section is a named placement request: a blob of a known size that wants to
// live somewhere in a region, optionally pinned to a bank, an address, or an
// alignment. The loader creates sections; the validation pass may normalize
// the constraint fields in place; nothing mutates a section after the pass.
type Section struct {
	// Name is the section's identity and is globally unique.
	Name string

	// Kind selects the target region. The validation pass may retarget it
	// under build-mode aliasing.
	Kind Kind

	// Size in bytes.
	Size uint32

	// Bank is meaningful only when BankFixed is set.
	Bank      uint32
	BankFixed bool

	// Org is the requested fixed address, meaningful only when OrgFixed is
	// set. Kept wider than the 16-bit bus so corrupt requests can be
	// rejected rather than silently wrapped.
	Org      uint32
	OrgFixed bool

	// AlignMask is a power-of-two-minus-one mask; 0 means no alignment
	// requested. Meaningful only when AlignFixed is set.
	AlignMask  uint32
	AlignFixed bool
}

// Modes are the build-mode flags, read-only for the duration of a
// validation pass. Each independently retargets or restricts certain kinds.
type Modes struct {
	// ROM32k addresses all ROM as a single 32 KiB-visible bank; ROMX
	// sections collapse into ROM0.
	ROM32k bool

	// SingleWRAM treats banked working RAM as a single bank.
	SingleWRAM bool

	// DMGOnly targets hardware without a second video-RAM bank.
	DMGOnly bool
}
