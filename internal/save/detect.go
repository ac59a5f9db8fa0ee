package save

// detect.go classifies a raw buffer into a Variant. Classification is
// total and deterministic: signatures are probed largest-layout-first,
// and a buffer that matches no variant's size and signature is rejected
// rather than guessed at.
//
// The Game Boy layouts (Gen1/Gen2) share a 32 KiB size and carry no magic
// bytes, so their checksums double as the confirming signature. The GBA
// layout is identified by the magic word in its first section footer, and
// the NDS layouts by the general-block footer echoing its own block size.

import "encoding/binary"

const (
	gb1SaveSize = 0x8000 // Red/Blue/Yellow and Gold/Silver/Crystal

	gen3SaveSize    = 0x20000
	gen3SectionSize = 0x1000
	gen3Magic       = 0x08012025

	ndsSaveSize = 0x80000
)

func u16le(b []byte, off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }
func u32le(b []byte, off int) uint32 { return binary.LittleEndian.Uint32(b[off:]) }
func u16be(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off:]) }

// Detect classifies the buffer. It returns ErrNotRecognized when no
// variant claims the buffer, and a TruncatedError when a signature
// matched but the buffer is shorter than that variant requires.
func Detect(data []byte) (Variant, error) {
	if len(data) == 0 || len(data) > MaxBufferSize {
		return VariantUnknown, ErrNotRecognized
	}

	// GBA: magic word in the footer of the first 4 KiB section.
	if len(data) >= gen3SectionSize && u32le(data, gen3SectionSize-8) == gen3Magic {
		if len(data) < gen3SaveSize {
			return VariantUnknown, &TruncatedError{Variant: VariantGen3, Size: len(data), Want: gen3SaveSize}
		}
		if len(data) == gen3SaveSize {
			return VariantGen3, nil
		}
		return VariantUnknown, ErrNotRecognized
	}

	// NDS: the general block ends in a footer that records the block size.
	if layout := probeNDS(data); layout != nil {
		if len(data) < ndsSaveSize {
			return VariantUnknown, &TruncatedError{Variant: layout.variant, Size: len(data), Want: ndsSaveSize}
		}
		if len(data) == ndsSaveSize {
			return layout.variant, nil
		}
		return VariantUnknown, ErrNotRecognized
	}

	// Game Boy: exact size, confirmed by whichever checksum validates.
	if len(data) == gb1SaveSize {
		if gen1ChecksumValid(data) {
			return VariantGen1, nil
		}
		if gen2Layout(data) != nil {
			return VariantGen2, nil
		}
	}

	return VariantUnknown, ErrNotRecognized
}
