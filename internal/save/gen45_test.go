package save

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeGen4Golden(t *testing.T) {
	data := buildNDSSave(ndsLayouts[0], "DAWN", 0b0000_0111, []ndsMonSpec{
		{pid: 0x12345678, species: 393, ability: 67, level: 14, curHP: 40, female: true, origin: 10, nick: "PIP"},
		{pid: 0xC8, species: 396, level: 9, curHP: 0, origin: 11},
		{pid: 0x2000, species: 447, level: 1, curHP: 12, egg: true},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := &Preview{
		Generation:         4,
		Game:               "Diamond/Pearl",
		CompatibleVersions: []string{"Diamond", "Pearl"},
		TrainerName:        "DAWN",
		Badges:             []string{"Coal Badge", "Forest Badge", "Cobble Badge"},
		Pokemon: []Creature{
			{PokeID: 393, Name: "Piplup", Nickname: "PIP", Nature: "Gentle", Ability: "Torrent", Gender: "female", Level: 14, Status: StatusParty, CaughtOn: "Diamond"},
			{PokeID: 396, Name: "Starly", Nature: "Hardy", Gender: "male", Level: 9, Status: StatusFainted, CaughtOn: "Pearl"},
			{PokeID: 447, Name: "Riolu", Nature: "Quiet", Gender: "male", Level: 1, Status: StatusEgg},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("preview mismatch (-want +got):\n%s", diff)
	}
}

// Gen5 records carry an explicit nature byte that overrides the
// personality-derived one.
func TestDecodeGen5ExplicitNature(t *testing.T) {
	data := buildNDSSave(ndsLayouts[3], "HILDA", 0, []ndsMonSpec{
		{pid: 0x0F0F0F0F, species: 495, nature: 15, level: 5, curHP: 20, origin: 21},
	})

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Generation != 5 || got.Game != "Black/White" {
		t.Fatalf("Game = %q gen %d, want Black/White gen 5", got.Game, got.Generation)
	}
	mon := got.Pokemon[0]
	if mon.Nature != "Modest" {
		t.Errorf("Nature = %q, want Modest (explicit byte, not personality)", mon.Nature)
	}
	if mon.Name != "Snivy" || mon.CaughtOn != "Black" || mon.Gender != "male" {
		t.Errorf("unexpected creature: %+v", mon)
	}
}

// Every layout's footer size echo must route the buffer to its own
// decoder and no other.
func TestDecodeGen45Layouts(t *testing.T) {
	for _, l := range ndsLayouts {
		t.Run(l.game, func(t *testing.T) {
			data := buildNDSSave(l, "ROSA", 0, []ndsMonSpec{
				{pid: 77, species: 25, level: 30, curHP: 70},
			})
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Game != l.game {
				t.Errorf("Game = %q, want %q", got.Game, l.game)
			}
			if got.Pokemon[0].Name != "Pikachu" {
				t.Errorf("Pokemon[0].Name = %q, want Pikachu", got.Pokemon[0].Name)
			}
		})
	}
}

func TestDecodeGen45BlockCRCMismatch(t *testing.T) {
	data := buildNDSSave(ndsLayouts[1], "LUCAS", 0, []ndsMonSpec{
		{pid: 99, species: 390, level: 12, curHP: 33},
	})
	data[ndsLayouts[1].nameOff] ^= 0x01

	_, err := Decode(data)
	var sum *ChecksumError
	if !errors.As(err, &sum) {
		t.Fatalf("Decode() error = %v, want ChecksumError", err)
	}
	if sum.Section != "general block" {
		t.Errorf("Section = %q, want general block", sum.Section)
	}
}

func TestDecodeGen45CorruptCreature(t *testing.T) {
	l := ndsLayouts[2]
	data := buildNDSSave(l, "ETHAN", 0, []ndsMonSpec{
		{pid: 424242, species: 152, level: 7, curHP: 21},
	})
	// Corrupt the encrypted block area, then restamp the general CRC so
	// only the record-level checksum can catch it.
	data[l.partyOff+8] ^= 0x80
	putU16le(data, l.blockSize-4, crc16(data[:l.blockSize-4]))

	_, err := Decode(data)
	var sum *ChecksumError
	if !errors.As(err, &sum) {
		t.Fatalf("Decode() error = %v, want ChecksumError", err)
	}
	if sum.Section != "party slot 0" {
		t.Errorf("Section = %q, want party slot 0", sum.Section)
	}
}

func TestDecodeGen45UnknownSpecies(t *testing.T) {
	// 600 is a valid Gen5 index but out of range for a Gen4 record.
	data := buildNDSSave(ndsLayouts[0], "BARRY", 0, []ndsMonSpec{
		{pid: 1, species: 600, level: 10, curHP: 25},
	})
	_, err := Decode(data)
	var unknown *UnknownSpeciesError
	if !errors.As(err, &unknown) {
		t.Fatalf("Decode() error = %v, want UnknownSpeciesError", err)
	}
	if unknown.Index != 600 {
		t.Errorf("Index = %d, want 600", unknown.Index)
	}
}
