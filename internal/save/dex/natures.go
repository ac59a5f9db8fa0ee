package dex

// The 25 natures, indexed by personality value % 25. The order is fixed
// across every generation that has natures.
var natureNames = [25]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

// Nature returns the nature name for a raw nature value. Values are taken
// modulo 25, mirroring how the games derive nature from the personality
// value, so every input resolves.
func Nature(value uint32) string {
	return natureNames[value%25]
}
