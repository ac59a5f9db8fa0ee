package save

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Decoding never mutates its input and yields identical previews on
// repeated runs over the same buffer.
func TestDecodeDeterministic(t *testing.T) {
	fixtures := map[string][]byte{
		"gen1": buildGen1Save("RED", 0b0000_0011,
			[]gbMon{{species: 0x54, level: 12, curHP: 30, nick: "SPARKY"}}, nil),
		"gen3": gen3Fixture(),
		"gen4": buildNDSSave(ndsLayouts[0], "DAWN", 0, []ndsMonSpec{
			{pid: 0x12345678, species: 393, level: 14, curHP: 40},
		}),
	}
	for name, data := range fixtures {
		t.Run(name, func(t *testing.T) {
			orig := append([]byte(nil), data...)

			first, err := Decode(data)
			if err != nil {
				t.Fatalf("first Decode() error = %v", err)
			}
			second, err := Decode(data)
			if err != nil {
				t.Fatalf("second Decode() error = %v", err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("previews differ between runs:\n%s", diff)
			}
			if diff := cmp.Diff(orig, data); diff != "" {
				t.Errorf("input buffer mutated:\n%s", diff)
			}
		})
	}
}
