package sect

import (
	"fmt"

	"github.com/dmgtools/sectkit/internal/layout"
)

// Check validates one section against the platform layout and the active
// build modes. It returns the normalized section and one diagnostic per
// violation found; the pass accumulates instead of stopping at the first
// problem, so a single run reports everything that is wrong.
//
// Normalization tightens loose constraints into equivalent strong ones:
// a degenerate bank range forces the bank, and an alignment that leaves
// exactly one satisfying address in the region becomes a fixed address.
// Check is deterministic and idempotent on its own output.
func Check(s Section, modes Modes) (Section, []Diagnostic) {
	var diags []Diagnostic
	fail := func(format string, args ...any) {
		diags = append(diags, Diagnostic{Severity: SevError, Section: s.Name, Message: fmt.Sprintf(format, args...)})
	}

	// An unknown kind means the loader handed us garbage; none of the
	// layout-table checks below are meaningful for it.
	if !s.Kind.Valid() {
		fail("invalid region kind %d", uint8(s.Kind))
		return s, diags
	}

	// Build-mode aliasing. The three modes are independent and all of
	// them are checked on every pass.
	if modes.ROM32k && s.Kind == layout.ROMX {
		if s.BankFixed && s.Bank != 1 {
			fail("ROMX sections must be in bank 1 when ROM is a single 32 KiB bank")
		} else {
			// A pin to the single visible bank is vacuous once the
			// section lives in ROM0; release it so the bank check
			// judges the section against ROM0's range.
			s.Kind = layout.ROM0
			s.Bank = 0
			s.BankFixed = false
		}
	}
	if modes.SingleWRAM && s.Kind == layout.WRAMX {
		// No retargeting happens for WRAMX; the guard lives here so all
		// mode restrictions sit together.
		if s.BankFixed && s.Bank != 1 {
			fail("WRAMX sections must be in bank 1 when WRAM is a single bank")
		}
	}
	if modes.DMGOnly && s.Kind == layout.VRAM && s.BankFixed && s.Bank == 1 {
		fail("VRAM bank 1 does not exist on DMG")
	}

	// A 1-bit mask constrains nothing at byte granularity, and dropping it
	// here keeps later mask arithmetic well-defined.
	if s.AlignFixed && s.AlignMask == 1 {
		s.AlignFixed = false
	}

	r := layout.Get(s.Kind)

	if s.BankFixed && (s.Bank < r.MinBank || s.Bank > r.MaxBank) {
		if r.MinBank == r.MaxBank {
			fail("cannot place in bank %d, it must be %d", s.Bank, r.MinBank)
		} else {
			fail("cannot place in bank %d, it must be between %d and %d", s.Bank, r.MinBank, r.MaxBank)
		}
	}

	if s.Size > uint32(r.MaxSize) {
		fail("bigger than the max size for %s: %#x > %#x", r.Name, s.Size, r.MaxSize)
	}

	// A region with no real bank choice has no unfixed state.
	if !r.Banked() {
		s.Bank = r.MinBank
		s.BankFixed = true
	}

	if s.AlignFixed {
		if s.OrgFixed {
			// Both pinned: either they agree and the alignment is
			// redundant, or they contradict each other.
			if s.Org&s.AlignMask != 0 {
				fail("fixed address %#x doesn't match the %#x alignment", s.Org, s.AlignMask+1)
			} else {
				s.AlignFixed = false
			}
		} else if uint32(r.End())&^s.AlignMask == uint32(r.Base) {
			// The region's span masked by the alignment collapses to the
			// base address: exactly one address satisfies the constraint,
			// so the loose alignment becomes a fixed address.
			s.Org = uint32(r.Base)
			s.OrgFixed = true
			s.AlignFixed = false
		}
	}

	if s.OrgFixed {
		if s.Org < uint32(r.Base) || s.Org > uint32(r.End()) {
			fail("fixed address %#x is outside of range [%#x; %#x]", s.Org, r.Base, r.End())
		}
		if end := uint64(s.Org) + uint64(s.Size); end > uint64(r.End())+1 {
			fail("end address %#x is greater than last address %#x", end, uint32(r.End())+1)
		}
	}

	return s, diags
}

// CheckAll runs Check over every registered section, writing each normalized
// section back in place, and aggregates the findings into one report.
// Sections are independent of each other, so iteration order cannot change
// the verdict.
func CheckAll(reg *Registry, modes Modes) *Report {
	rep := NewReport()
	reg.ForEach(func(s *Section) {
		normalized, diags := Check(*s, modes)
		*s = normalized
		for _, d := range diags {
			rep.Add(d)
		}
	})
	return rep
}
