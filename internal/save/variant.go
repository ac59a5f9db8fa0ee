// Package save decodes raw Pokémon console save buffers into a
// generation-agnostic preview and reconciles that preview against an
// already-tracked roster.
//
// The package is pure: it takes a byte slice (≤ 1 MiB) and returns a
// *Preview or a typed error. It performs no I/O, holds no state between
// calls, and never mutates its input. The only process-wide data are the
// read-only lookup tables in the dex subpackage.
//
// Pipeline: Detect → per-variant validate/decode → dex mapping → Preview.
// Reconcile is a separate pure step over a Preview plus a roster snapshot.
package save

// Variant identifies one supported on-disk save layout family. Every
// buffer maps to exactly one Variant or is rejected by Detect.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantGen1            // Red/Blue/Yellow: fixed offsets, 8-bit checksum
	VariantGen2            // Gold/Silver/Crystal: fixed offsets, 16-bit checksum
	VariantGen3            // Ruby/Sapphire/FRLG/Emerald: shuffled checksummed sections
	VariantGen4            // Diamond/Pearl/Platinum/HGSS: NDS block layout
	VariantGen5            // Black/White and sequels: NDS block layout, wider trainer block
)

// Generation returns the numeric console generation for the variant,
// or 0 for VariantUnknown.
func (v Variant) Generation() int {
	switch v {
	case VariantGen1:
		return 1
	case VariantGen2:
		return 2
	case VariantGen3:
		return 3
	case VariantGen4:
		return 4
	case VariantGen5:
		return 5
	}
	return 0
}

func (v Variant) String() string {
	switch v {
	case VariantGen1:
		return "gen1"
	case VariantGen2:
		return "gen2"
	case VariantGen3:
		return "gen3"
	case VariantGen4:
		return "gen4"
	case VariantGen5:
		return "gen5"
	}
	return "unknown"
}

// MaxBufferSize is the hard cap on input size. Real cartridge saves top out
// at 512 KiB; anything larger is rejected before probing.
const MaxBufferSize = 1 << 20
