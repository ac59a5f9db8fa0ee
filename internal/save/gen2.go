package save

// gen2.go decodes the Gold/Silver/Crystal layout. Same 32 KiB cartridge
// as Gen1 but with relocated structures, a 16-bit little-endian byte-sum
// checksum, and an egg marker in the species list. Crystal moved several
// structures, so it is a sub-variant with its own offset table; which
// sub-variant a buffer is falls out of which checksum validates.

import (
	"strings"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save/dex"
)

type gen2Offsets struct {
	game      string
	nameOff   int
	badgesOff int
	partyOff  int
	boxOff    int
	sumLo     int // checksummed range, inclusive
	sumHi     int
	sumAt     int
}

var gen2GoldSilver = &gen2Offsets{
	game:    "Gold/Silver",
	nameOff: 0x200B, badgesOff: 0x23E4,
	partyOff: 0x288A, boxOff: 0x2D6C,
	sumLo: 0x2009, sumHi: 0x2D68, sumAt: 0x2D69,
}

var gen2Crystal = &gen2Offsets{
	game:    "Crystal",
	nameOff: 0x200B, badgesOff: 0x23E5,
	partyOff: 0x2865, boxOff: 0x2D10,
	sumLo: 0x2009, sumHi: 0x2B82, sumAt: 0x2D0D,
}

const (
	gen2PartyMax = 6
	gen2BoxMax   = 20
	gen2PartyRec = 48
	gen2BoxRec   = 32
	gen2EggMark  = 0xFD // species-list entry marking an egg
)

func gen2Checksum(data []byte, o *gen2Offsets) uint16 {
	var sum uint16
	for _, b := range data[o.sumLo : o.sumHi+1] {
		sum += uint16(b)
	}
	return sum
}

// gen2Layout returns the sub-variant whose checksum validates, or nil.
func gen2Layout(data []byte) *gen2Offsets {
	for _, o := range []*gen2Offsets{gen2GoldSilver, gen2Crystal} {
		if gen2Checksum(data, o) == u16le(data, o.sumAt) {
			return o
		}
	}
	return nil
}

func decodeGen2(data []byte) (*Preview, error) {
	o := gen2Layout(data)
	if o == nil {
		return nil, &ChecksumError{
			Variant: VariantGen2, Section: "main data",
			Offset: gen2GoldSilver.sumAt,
			Want:   uint32(gen2Checksum(data, gen2GoldSilver)),
			Got:    uint32(u16le(data, gen2GoldSilver.sumAt)),
		}
	}

	trainer := decodedTrainer{
		name:   decodeGen12Text(data[o.nameOff : o.nameOff+gb1NameLen]),
		badges: data[o.badgesOff],
	}
	if trainer.name == "" {
		return nil, &FieldRangeError{Variant: VariantGen2, Field: "trainer name", Value: 0}
	}

	var mons []Creature

	partyCount := int(data[o.partyOff])
	if partyCount > gen2PartyMax {
		return nil, &FieldRangeError{Variant: VariantGen2, Field: "party count", Value: partyCount}
	}
	recBase := o.partyOff + 2 + gen2PartyMax
	nickBase := recBase + gen2PartyMax*gen2PartyRec + gen2PartyMax*gb1NameLen
	for i := 0; i < partyCount; i++ {
		marker := data[o.partyOff+1+i]
		if marker == gb1SpeciesEnd {
			break
		}
		rec := data[recBase+i*gen2PartyRec : recBase+(i+1)*gen2PartyRec]
		nick := data[nickBase+i*gb1NameLen : nickBase+(i+1)*gb1NameLen]
		mon, err := decodeGen2Mon(rec, nick, i)
		if err != nil {
			return nil, err
		}
		if marker == gen2EggMark {
			mon.Status = StatusEgg
		} else if u16be(rec, 0x22) == 0 {
			mon.Status = StatusFainted
		}
		mons = append(mons, mon)
	}

	boxCount := int(data[o.boxOff])
	if boxCount > gen2BoxMax {
		return nil, &FieldRangeError{Variant: VariantGen2, Field: "box count", Value: boxCount}
	}
	boxRecBase := o.boxOff + 2 + gen2BoxMax
	boxNickBase := boxRecBase + gen2BoxMax*gen2BoxRec + gen2BoxMax*gb1NameLen
	for i := 0; i < boxCount; i++ {
		marker := data[o.boxOff+1+i]
		if marker == gb1SpeciesEnd {
			break
		}
		rec := data[boxRecBase+i*gen2BoxRec : boxRecBase+(i+1)*gen2BoxRec]
		nick := data[boxNickBase+i*gb1NameLen : boxNickBase+(i+1)*gb1NameLen]
		mon, err := decodeGen2Mon(rec, nick, gen2PartyMax+i)
		if err != nil {
			return nil, err
		}
		mon.Status = StatusStored
		if marker == gen2EggMark {
			mon.Status = StatusEgg
		}
		mons = append(mons, mon)
	}

	return buildPreview(VariantGen2, o.game, trainer, mons)
}

// decodeGen2Mon decodes the 32-byte prefix shared by party and box
// records: species at 0x00, level at 0x1F.
func decodeGen2Mon(rec, nick []byte, slot int) (Creature, error) {
	id, ok := dex.Gen2Species(int(rec[0]))
	if !ok {
		return Creature{}, &UnknownSpeciesError{Variant: VariantGen2, Slot: slot, Index: int(rec[0])}
	}
	name, _ := dex.SpeciesName(id)
	level := int(rec[0x1F])
	if level < 1 || level > 100 {
		return Creature{}, &FieldRangeError{Variant: VariantGen2, Slot: slot, Field: "level", Value: level}
	}

	mon := Creature{
		PokeID: id,
		Name:   name,
		Level:  level,
		Status: StatusParty,
	}
	if n := decodeGen12Text(nick); n != "" && !strings.EqualFold(n, name) {
		mon.Nickname = n
	}
	return mon, nil
}
