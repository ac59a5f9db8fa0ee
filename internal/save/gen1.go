package save

// gen1.go decodes the original Game Boy layout (Red/Blue/Yellow). All
// structures sit at fixed absolute offsets; multi-byte integers are
// big-endian. Integrity is a single 8-bit complement checksum over the
// main data region.

import (
	"strings"

	"github.com/chris-tela/nuzlocke-tracker-sub000/internal/save/dex"
)

const (
	gen1NameOff    = 0x2598
	gen1BadgesOff  = 0x2602
	gen1PartyOff   = 0x2F2C
	gen1BoxOff     = 0x30C0
	gen1ChecksumLo = 0x2598 // checksummed region, inclusive
	gen1ChecksumHi = 0x3522
	gen1ChecksumAt = 0x3523

	gen1PartyMax   = 6
	gen1BoxMax     = 20
	gen1PartyRec   = 44
	gen1BoxRec     = 33
	gb1NameLen     = 11
	gb1SpeciesEnd  = 0xFF // sentinel terminating species lists
)

func gen1Checksum(data []byte) byte {
	var sum byte
	for _, b := range data[gen1ChecksumLo : gen1ChecksumHi+1] {
		sum += b
	}
	return ^sum
}

func gen1ChecksumValid(data []byte) bool {
	return gen1Checksum(data) == data[gen1ChecksumAt]
}

func decodeGen1(data []byte) (*Preview, error) {
	if got, want := data[gen1ChecksumAt], gen1Checksum(data); got != want {
		return nil, &ChecksumError{
			Variant: VariantGen1, Section: "main data",
			Offset: gen1ChecksumAt, Want: uint32(want), Got: uint32(got),
		}
	}

	trainer := decodedTrainer{
		name:   decodeGen12Text(data[gen1NameOff : gen1NameOff+gb1NameLen]),
		badges: data[gen1BadgesOff],
	}
	if trainer.name == "" {
		return nil, &FieldRangeError{Variant: VariantGen1, Field: "trainer name", Value: 0}
	}

	var mons []Creature

	// Party: count byte, sentinel-terminated species list, 44-byte records,
	// then OT names and nicknames as parallel arrays.
	partyCount := int(data[gen1PartyOff])
	if partyCount > gen1PartyMax {
		return nil, &FieldRangeError{Variant: VariantGen1, Field: "party count", Value: partyCount}
	}
	recBase := gen1PartyOff + 2 + gen1PartyMax
	nickBase := recBase + gen1PartyMax*gen1PartyRec + gen1PartyMax*gb1NameLen
	for i := 0; i < partyCount; i++ {
		if data[gen1PartyOff+1+i] == gb1SpeciesEnd {
			break
		}
		rec := data[recBase+i*gen1PartyRec : recBase+(i+1)*gen1PartyRec]
		nick := data[nickBase+i*gb1NameLen : nickBase+(i+1)*gb1NameLen]
		mon, err := decodeGen1Mon(rec, nick, i, int(rec[33]), u16be(rec, 1) == 0)
		if err != nil {
			return nil, err
		}
		mons = append(mons, mon)
	}

	// Current box: same shape with 33-byte records and the level stored in
	// the box-level byte.
	boxCount := int(data[gen1BoxOff])
	if boxCount > gen1BoxMax {
		return nil, &FieldRangeError{Variant: VariantGen1, Field: "box count", Value: boxCount}
	}
	boxRecBase := gen1BoxOff + 2 + gen1BoxMax
	boxNickBase := boxRecBase + gen1BoxMax*gen1BoxRec + gen1BoxMax*gb1NameLen
	for i := 0; i < boxCount; i++ {
		if data[gen1BoxOff+1+i] == gb1SpeciesEnd {
			break
		}
		rec := data[boxRecBase+i*gen1BoxRec : boxRecBase+(i+1)*gen1BoxRec]
		nick := data[boxNickBase+i*gb1NameLen : boxNickBase+(i+1)*gb1NameLen]
		mon, err := decodeGen1Mon(rec, nick, gen1PartyMax+i, int(rec[3]), false)
		if err != nil {
			return nil, err
		}
		mon.Status = StatusStored
		mons = append(mons, mon)
	}

	return buildPreview(VariantGen1, "Red/Blue/Yellow", trainer, mons)
}

// decodeGen1Mon decodes the shared prefix of party and box records.
// level comes from a different byte in each, so the caller passes it in.
func decodeGen1Mon(rec, nick []byte, slot, level int, fainted bool) (Creature, error) {
	id, ok := dex.Gen1Species(int(rec[0]))
	if !ok {
		return Creature{}, &UnknownSpeciesError{Variant: VariantGen1, Slot: slot, Index: int(rec[0])}
	}
	name, ok := dex.SpeciesName(id)
	if !ok {
		return Creature{}, &UnknownSpeciesError{Variant: VariantGen1, Slot: slot, Index: int(rec[0])}
	}
	if level < 1 || level > 100 {
		return Creature{}, &FieldRangeError{Variant: VariantGen1, Slot: slot, Field: "level", Value: level}
	}

	mon := Creature{
		PokeID: id,
		Name:   name,
		Level:  level,
		Status: StatusParty,
	}
	if fainted {
		mon.Status = StatusFainted
	}
	if n := decodeGen12Text(nick); n != "" && !strings.EqualFold(n, name) {
		mon.Nickname = n
	}
	return mon, nil
}
