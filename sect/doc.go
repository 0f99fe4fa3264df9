// Package sect is the section-placement validation core of the linker: a
// registry of named, typed memory sections and a validation pass that checks
// every section's placement constraints against the platform's memory model
// before any packing is attempted.
//
// # Overview
//
// A Section is a placement request: a named blob of a known size aimed at
// one of the platform's memory regions, optionally pinned to a bank, a
// fixed address, or an alignment. The Registry holds all sections of one
// link, keyed by globally unique name. CheckAll runs the Placement
// Validator over every registered section and aggregates a pass/fail
// verdict with one diagnostic per violation found.
//
// # Validation
//
// Check is an error-accumulating pass, not fail-fast: every problem a
// section has is reported in one run. In order it
//
//   - rejects unknown region kinds (loader corruption),
//   - applies build-mode aliasing (Modes) with its contradiction guards,
//   - drops trivial 1-bit alignment masks,
//   - checks the bank against the region's legal bank range,
//   - checks the size against the region's window size,
//   - tightens constraints that are mathematically equivalent to stronger
//     ones (degenerate bank ranges, alignments with a single satisfying
//     address in range),
//   - checks fixed addresses against the region's address window.
//
// Normalization mutates only the checked section's own fields and is
// idempotent, so re-running a pass over already-validated sections yields
// the same state and an empty report.
//
// # Quick Start
//
//	reg := sect.NewRegistry()
//	for _, s := range loaded {
//		if _, err := reg.Insert(s); err != nil {
//			return err
//		}
//	}
//	rep := sect.CheckAll(reg, sect.Modes{DMGOnly: true})
//	if !rep.Passed() {
//		fmt.Print(rep.FormatText())
//	}
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Both insertion and
// the validation sweep mutate shared state; embed behind external
// synchronization (single writer during load, read-only afterwards).
package sect
