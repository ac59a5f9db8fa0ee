package dex

// Badge names per region, in flag-bit order (bit 0 first). Badge bytes in
// every generation set one bit per earned badge in gym order.

var kantoBadges = []string{
	"Boulder Badge", "Cascade Badge", "Thunder Badge", "Rainbow Badge",
	"Soul Badge", "Marsh Badge", "Volcano Badge", "Earth Badge",
}

var johtoBadges = []string{
	"Zephyr Badge", "Hive Badge", "Plain Badge", "Fog Badge",
	"Storm Badge", "Mineral Badge", "Glacier Badge", "Rising Badge",
}

var hoennBadges = []string{
	"Stone Badge", "Knuckle Badge", "Dynamo Badge", "Heat Badge",
	"Balance Badge", "Feather Badge", "Mind Badge", "Rain Badge",
}

var sinnohBadges = []string{
	"Coal Badge", "Forest Badge", "Cobble Badge", "Fen Badge",
	"Relic Badge", "Mine Badge", "Icicle Badge", "Beacon Badge",
}

var unovaBadges = []string{
	"Trio Badge", "Basic Badge", "Insect Badge", "Bolt Badge",
	"Quake Badge", "Jet Badge", "Freeze Badge", "Legend Badge",
}

var unova2Badges = []string{
	"Basic Badge", "Toxic Badge", "Insect Badge", "Bolt Badge",
	"Quake Badge", "Jet Badge", "Legend Badge", "Wave Badge",
}

// BadgeNames expands a badge flag byte into the earned badge names for a
// game family, in bit order. Duplicate bits cannot occur in a byte, so the
// result is naturally duplicate-free.
func BadgeNames(label string, flags byte) []string {
	g, ok := games[label]
	if !ok {
		return nil
	}
	var out []string
	for i, name := range g.Badges {
		if flags&(1<<uint(i)) != 0 {
			out = append(out, name)
		}
	}
	return out
}
