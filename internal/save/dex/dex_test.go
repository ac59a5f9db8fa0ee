package dex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpeciesName(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "Bulbasaur"},
		{25, "Pikachu"},
		{151, "Mew"},
		{251, "Celebi"},
		{252, "Treecko"},
		{386, "Deoxys"},
		{493, "Arceus"},
		{494, "Victini"},
		{649, "Genesect"},
	}
	for _, tt := range tests {
		got, ok := SpeciesName(tt.id)
		if !ok || got != tt.want {
			t.Errorf("SpeciesName(%d) = %q, %v, want %q", tt.id, got, ok, tt.want)
		}
	}
	for _, id := range []int{0, -1, MaxSpecies + 1} {
		if _, ok := SpeciesName(id); ok {
			t.Errorf("SpeciesName(%d) resolved, want miss", id)
		}
	}
}

func TestGen1Species(t *testing.T) {
	tests := []struct {
		index int
		want  int
		ok    bool
	}{
		{0x99, 1, true},  // Bulbasaur
		{0x54, 25, true}, // Pikachu
		{0x15, 151, true},
		{0x1F, 0, false}, // MissingNo gap
		{0x00, 0, false},
		{0xFF, 0, false},
	}
	for _, tt := range tests {
		got, ok := Gen1Species(tt.index)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Gen1Species(%#x) = %d, %v, want %d, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

// Later-generation indices are national dex order with a per-generation
// cap; Gen3 inserts the Hoenn block after an unused gap.
func TestGenerationSpeciesRanges(t *testing.T) {
	if got, ok := Gen2Species(152); !ok || got != 152 {
		t.Errorf("Gen2Species(152) = %d, %v, want 152", got, ok)
	}
	if _, ok := Gen2Species(252); ok {
		t.Error("Gen2Species(252) resolved, want miss")
	}

	if got, ok := Gen3Species(277); !ok || got != 252 {
		t.Errorf("Gen3Species(277) = %d, %v, want 252 (Treecko)", got, ok)
	}
	if got, ok := Gen3Species(411); !ok || got != 386 {
		t.Errorf("Gen3Species(411) = %d, %v, want 386 (Deoxys)", got, ok)
	}
	if _, ok := Gen3Species(260); ok {
		t.Error("Gen3Species(260) resolved, want miss in the unused gap")
	}

	if _, ok := Gen4Species(494); ok {
		t.Error("Gen4Species(494) resolved, want miss past Arceus")
	}
	if got, ok := Gen5Species(649); !ok || got != 649 {
		t.Errorf("Gen5Species(649) = %d, %v, want 649", got, ok)
	}
}

func TestBadgeNames(t *testing.T) {
	got := BadgeNames("Red/Blue/Yellow", 0b1000_0101)
	want := []string{"Boulder Badge", "Thunder Badge", "Earth Badge"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BadgeNames mismatch:\n%s", diff)
	}

	if got := BadgeNames("Red/Blue/Yellow", 0); got != nil {
		t.Errorf("BadgeNames with no flags = %v, want nil", got)
	}
	if got := BadgeNames("No Such Game", 0xFF); got != nil {
		t.Errorf("BadgeNames for unknown label = %v, want nil", got)
	}
}

func TestNature(t *testing.T) {
	if got := Nature(0); got != "Hardy" {
		t.Errorf("Nature(0) = %q, want Hardy", got)
	}
	if got := Nature(24); got != "Quirky" {
		t.Errorf("Nature(24) = %q, want Quirky", got)
	}
	if got := Nature(25); got != "Hardy" {
		t.Errorf("Nature(25) = %q, want Hardy (wraps)", got)
	}
}

func TestAbility(t *testing.T) {
	if got, ok := Ability(67); !ok || got != "Torrent" {
		t.Errorf("Ability(67) = %q, %v, want Torrent", got, ok)
	}
	if _, ok := Ability(0); ok {
		t.Error("Ability(0) resolved, want miss")
	}
}

func TestOriginGame(t *testing.T) {
	if got, ok := OriginGame(10); !ok || got != "Diamond" {
		t.Errorf("OriginGame(10) = %q, %v, want Diamond", got, ok)
	}
	if _, ok := OriginGame(0); ok {
		t.Error("OriginGame(0) resolved, want miss")
	}
}

func TestGameByLabel(t *testing.T) {
	g, ok := GameByLabel("HeartGold/SoulSilver")
	if !ok {
		t.Fatal("HeartGold/SoulSilver not registered")
	}
	if g.Generation != 4 {
		t.Errorf("Generation = %d, want 4", g.Generation)
	}
	want := []string{"HeartGold", "SoulSilver"}
	if diff := cmp.Diff(want, g.Versions); diff != "" {
		t.Errorf("Versions mismatch:\n%s", diff)
	}
}
