package dex

// The GBA games keep 1-251 in national dex order, leave 252-276 unused,
// and store the Hoenn species at 277-411 in Hoenn dex order. This table
// maps that 277-411 range to national dex numbers.
var gen3Hoenn = [135]uint16{
	252, 253, 254, 255, 256, 257, 258, 259, 260, // Treecko through Swampert
	261, 262, 263, 264, 265, 266, 267, 268, 269,
	270, 271, 272, 273, 274, 275, 290, 291, 292,
	276, 277, 285, 286, 327, 278, 279, 283, 284,
	320, 321, 300, 301, 352, 343, 344, 299, 324,
	302, 339, 340, 370, 341, 342, 349, 350, 318,
	319, 328, 329, 330, 296, 297, 309, 310, 322,
	323, 363, 364, 365, 331, 332, 361, 362, 337,
	338, 298, 325, 326, 311, 312, 303, 307, 308,
	333, 334, 360, 355, 356, 315, 287, 288, 289,
	316, 317, 357, 293, 294, 295, 366, 367, 368,
	359, 353, 354, 336, 335, 369, 304, 305, 306,
	351, 313, 314, 345, 346, 347, 348, 280, 281,
	282, 371, 372, 373, 374, 375, 376, 377, 378,
	379, 382, 383, 384, 380, 381, 385, 386, 358, // Registeel through Chimecho
}

// Gen3Species maps a GBA internal species index to a national dex number.
func Gen3Species(index int) (int, bool) {
	switch {
	case index >= 1 && index <= 251:
		return index, true
	case index >= 277 && index <= 411:
		return int(gen3Hoenn[index-277]), true
	}
	return 0, false
}
