package save

// Decode runs the full pipeline over a raw save buffer: detect the
// layout, validate integrity, decode the generation-specific structures,
// and assemble the canonical preview. It is deterministic and never
// returns a partial result: any integrity or range failure aborts the
// whole decode, because a plausible-looking but wrong preview would
// poison the caller's tracked roster.
func Decode(data []byte) (*Preview, error) {
	variant, err := Detect(data)
	if err != nil {
		return nil, err
	}
	// Exhaustive over supported variants; a new Variant member must be
	// dispatched here before Detect may return it.
	switch variant {
	case VariantGen1:
		return decodeGen1(data)
	case VariantGen2:
		return decodeGen2(data)
	case VariantGen3:
		return decodeGen3(data)
	case VariantGen4, VariantGen5:
		return decodeGen45(data)
	}
	return nil, ErrNotRecognized
}
