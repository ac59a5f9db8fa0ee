package save

// gen3.go decodes the GBA layout (Ruby/Sapphire, FireRed/LeafGreen,
// Emerald). The cartridge holds two 57,344-byte save slots, each split
// into 14 fixed-size sections that rotate physical position on every
// save. Sections are identified by the tag in their footer and must be
// re-sorted before use; each carries a 16-bit folded word-sum checksum
// over its validated data length.
//
// Creature records hide their four 12-byte substructures behind a
// personality-derived permutation and an XOR stream keyed on
// personality ^ trainer id, with a word-sum checksum verified after
// decryption.

import (
	"fmt"
	"strings"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save/dex"
)

const (
	gen3SlotSections = 14
	gen3SlotSize     = gen3SlotSections * gen3SectionSize

	gen3FooterTag   = 0xFF4
	gen3FooterSum   = 0xFF6
	gen3FooterMagic = 0xFF8
	gen3FooterIndex = 0xFFC

	gen3PartyMax = 6
	gen3MonSize  = 100
)

// Validated data length per section tag. The trainer and rival sections
// are shorter than the storage sections; the final section only holds the
// tail of the storage buffer.
var gen3SectionLengths = [gen3SlotSections]int{
	3884, 3968, 3968, 3968, 3848, 3968, 3968,
	3968, 3968, 3968, 3968, 3968, 3968, 2000,
}

// Per-sub-variant offsets inside the re-sorted sections.
type gen3Offsets struct {
	game          string
	partyCountOff int // in section 1
	partyOff      int
	badgesOff     int // in section 2
}

var (
	gen3RubySapphire = &gen3Offsets{game: "Ruby/Sapphire", partyCountOff: 0x234, partyOff: 0x238, badgesOff: 0x290}
	gen3Emerald      = &gen3Offsets{game: "Emerald", partyCountOff: 0x234, partyOff: 0x238, badgesOff: 0x290}
	gen3FireRedLeaf  = &gen3Offsets{game: "FireRed/LeafGreen", partyCountOff: 0x34, partyOff: 0x38, badgesOff: 0x264}
)

// gen3SectionChecksum sums little-endian 32-bit words over the section's
// validated length and folds the carry into 16 bits.
func gen3SectionChecksum(body []byte, length int) uint16 {
	var sum uint32
	for off := 0; off < length; off += 4 {
		sum += u32le(body, off)
	}
	return uint16(sum>>16) + uint16(sum)
}

// validateGen3 picks the active slot and returns its sections ordered by
// tag. Every section of the active slot must carry the magic word, a
// unique in-range tag, and a valid checksum; one bad section fails the
// whole decode because later sections are only trustworthy if the whole
// slot is.
func validateGen3(data []byte) ([gen3SlotSections][]byte, error) {
	var sections [gen3SlotSections][]byte

	slotBase := -1
	slotIndex := uint32(0)
	for _, base := range []int{0, gen3SlotSize} {
		if u32le(data, base+gen3FooterMagic) != gen3Magic {
			continue
		}
		idx := u32le(data, base+gen3FooterIndex)
		if slotBase < 0 || idx > slotIndex {
			slotBase, slotIndex = base, idx
		}
	}
	if slotBase < 0 {
		return sections, ErrNotRecognized
	}

	var seen uint16
	for i := 0; i < gen3SlotSections; i++ {
		off := slotBase + i*gen3SectionSize
		body := data[off : off+gen3SectionSize]
		if u32le(body, gen3FooterMagic) != gen3Magic {
			return sections, &ChecksumError{
				Variant: VariantGen3, Section: fmt.Sprintf("section %d signature", i),
				Offset: off + gen3FooterMagic, Want: gen3Magic, Got: u32le(body, gen3FooterMagic),
			}
		}
		tag := int(u16le(body, gen3FooterTag))
		if tag >= gen3SlotSections || seen&(1<<uint(tag)) != 0 {
			return sections, &ChecksumError{
				Variant: VariantGen3, Section: "section table",
				Offset: off + gen3FooterTag, Want: (1 << gen3SlotSections) - 1, Got: uint32(seen),
			}
		}
		want := u16le(body, gen3FooterSum)
		got := gen3SectionChecksum(body, gen3SectionLengths[tag])
		if got != want {
			return sections, &ChecksumError{
				Variant: VariantGen3, Section: fmt.Sprintf("section %d", tag),
				Offset: off, Want: uint32(want), Got: uint32(got),
			}
		}
		seen |= 1 << uint(tag)
		sections[tag] = body
	}
	return sections, nil
}

func decodeGen3(data []byte) (*Preview, error) {
	sections, err := validateGen3(data)
	if err != nil {
		return nil, err
	}

	// Trainer section: name, then the game-code word picks the sub-variant.
	s0 := sections[0]
	var o *gen3Offsets
	switch u32le(s0, 0xAC) {
	case 0:
		o = gen3RubySapphire
	case 1:
		o = gen3FireRedLeaf
	default:
		o = gen3Emerald
	}

	trainer := decodedTrainer{
		name:   decodeGen3Text(s0[0:8]),
		badges: sections[2][o.badgesOff],
	}
	if trainer.name == "" {
		return nil, &FieldRangeError{Variant: VariantGen3, Field: "trainer name", Value: 0}
	}

	count := int(u32le(sections[1], o.partyCountOff))
	if count > gen3PartyMax {
		return nil, &FieldRangeError{Variant: VariantGen3, Field: "party count", Value: count}
	}
	mons := make([]Creature, 0, count)
	for i := 0; i < count; i++ {
		rec := sections[1][o.partyOff+i*gen3MonSize : o.partyOff+(i+1)*gen3MonSize]
		mon, err := decodeGen3Mon(rec, i)
		if err != nil {
			return nil, err
		}
		mons = append(mons, mon)
	}

	return buildPreview(VariantGen3, o.game, trainer, mons)
}

// blockOrders lists the 24 substructure permutations in lexicographic
// order; the personality value modulo 24 selects which blocks occupy
// which physical position. Shared by the GBA and NDS codecs.
var blockOrders = [24][4]byte{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// decodeGen3Mon runs the record pipeline: decrypt the 48-byte payload,
// verify its checksum, undo the block permutation, then read typed
// fields.
func decodeGen3Mon(rec []byte, slot int) (Creature, error) {
	pid := u32le(rec, 0)
	otid := u32le(rec, 4)

	payload := make([]byte, 48)
	key := pid ^ otid
	for w := 0; w < 12; w++ {
		v := u32le(rec, 32+w*4) ^ key
		payload[w*4] = byte(v)
		payload[w*4+1] = byte(v >> 8)
		payload[w*4+2] = byte(v >> 16)
		payload[w*4+3] = byte(v >> 24)
	}

	var sum uint16
	for w := 0; w < 24; w++ {
		sum += u16le(payload, w*2)
	}
	if want := u16le(rec, 28); sum != want {
		return Creature{}, &ChecksumError{
			Variant: VariantGen3, Section: fmt.Sprintf("party slot %d", slot),
			Offset: 28, Want: uint32(want), Got: uint32(sum),
		}
	}

	// Undo the permutation: block order is Growth, Attacks, EVs, Misc.
	var blocks [4][]byte
	order := blockOrders[pid%24]
	for pos := 0; pos < 4; pos++ {
		blocks[order[pos]] = payload[pos*12 : pos*12+12]
	}
	growth, misc := blocks[0], blocks[3]

	index := int(u16le(growth, 0))
	id, ok := dex.Gen3Species(index)
	if !ok {
		return Creature{}, &UnknownSpeciesError{Variant: VariantGen3, Slot: slot, Index: index}
	}
	name, ok := dex.SpeciesName(id)
	if !ok {
		return Creature{}, &UnknownSpeciesError{Variant: VariantGen3, Slot: slot, Index: index}
	}
	level := int(rec[84])
	if level < 1 || level > 100 {
		return Creature{}, &FieldRangeError{Variant: VariantGen3, Slot: slot, Field: "level", Value: level}
	}

	mon := Creature{
		PokeID: id,
		Name:   name,
		Nature: dex.Nature(pid),
		Level:  level,
		Status: StatusParty,
	}
	if u32le(misc, 4)&(1<<30) != 0 {
		mon.Status = StatusEgg
	} else if u16le(rec, 86) == 0 {
		mon.Status = StatusFainted
	}
	if origin, ok := dex.OriginGame(int(u16le(misc, 2) >> 7 & 0xF)); ok {
		mon.CaughtOn = origin
	}
	if n := decodeGen3Text(rec[8:18]); n != "" && !strings.EqualFold(n, name) {
		mon.Nickname = n
	}
	return mon, nil
}
