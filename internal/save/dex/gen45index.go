package dex

// The NDS games store species in national dex order; only the cap moves
// between generations.

// Gen4Species maps a Diamond/Pearl era species index to a national dex
// number (capped at Arceus).
func Gen4Species(index int) (int, bool) {
	if index < 1 || index > 493 {
		return 0, false
	}
	return index, true
}

// Gen5Species maps a Black/White era species index to a national dex
// number (capped at Genesect).
func Gen5Species(index int) (int, bool) {
	if index < 1 || index > MaxSpecies {
		return 0, false
	}
	return index, true
}
