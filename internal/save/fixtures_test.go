package save

// fixtures_test.go synthesizes valid save buffers for the decoder tests.
// Builders are the mirror image of the decode path: they place structures
// at the documented offsets, apply the per-generation encryption and
// permutation, and stamp valid checksums, so tests can corrupt exactly
// one thing at a time and assert the failure.

import "unicode/utf16"

// ============================================================================
// Text encoders
// ============================================================================

func encodeGen12Text(s string, width int) []byte {
	out := make([]byte, width)
	for i := range out {
		out[i] = 0x50
	}
	for i, r := range s {
		if i >= width {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			out[i] = 0x80 + byte(r-'A')
		case r >= 'a' && r <= 'z':
			out[i] = 0xA0 + byte(r-'a')
		case r >= '0' && r <= '9':
			out[i] = 0xF6 + byte(r-'0')
		case r == ' ':
			out[i] = 0x7F
		}
	}
	return out
}

func encodeGen3TextFixture(s string, width int) []byte {
	out := make([]byte, width)
	for i := range out {
		out[i] = 0xFF
	}
	for i, r := range s {
		if i >= width {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			out[i] = 0xBB + byte(r-'A')
		case r >= 'a' && r <= 'z':
			out[i] = 0xD5 + byte(r-'a')
		case r >= '0' && r <= '9':
			out[i] = 0xA1 + byte(r-'0')
		case r == ' ':
			out[i] = 0x00
		}
	}
	return out
}

func encodeUTF16Fixture(s string, units int) []byte {
	out := make([]byte, units*2)
	for i := 0; i < units; i++ {
		out[i*2] = 0xFF
		out[i*2+1] = 0xFF
	}
	for i, u := range utf16.Encode([]rune(s)) {
		if i >= units {
			break
		}
		out[i*2] = byte(u)
		out[i*2+1] = byte(u >> 8)
	}
	return out
}

func putU16le(b []byte, off int, v uint16) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func putU32le(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

func putU16be(b []byte, off int, v uint16) {
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

// ============================================================================
// Gen1 / Gen2 builders
// ============================================================================

type gbMon struct {
	species byte
	level   byte
	curHP   uint16
	nick    string
	egg     bool // Gen2 only
}

func buildGen1Save(name string, badges byte, party, box []gbMon) []byte {
	data := make([]byte, gb1SaveSize)
	copy(data[gen1NameOff:], encodeGen12Text(name, gb1NameLen))
	data[gen1BadgesOff] = badges

	data[gen1PartyOff] = byte(len(party))
	recBase := gen1PartyOff + 2 + gen1PartyMax
	nickBase := recBase + gen1PartyMax*gen1PartyRec + gen1PartyMax*gb1NameLen
	for i := 0; i <= gen1PartyMax; i++ {
		data[gen1PartyOff+1+i] = gb1SpeciesEnd
	}
	for i, m := range party {
		data[gen1PartyOff+1+i] = m.species
		rec := data[recBase+i*gen1PartyRec:]
		rec[0] = m.species
		putU16be(rec, 1, m.curHP)
		rec[33] = m.level
		copy(data[nickBase+i*gb1NameLen:], encodeGen12Text(m.nick, gb1NameLen))
	}

	data[gen1BoxOff] = byte(len(box))
	boxRecBase := gen1BoxOff + 2 + gen1BoxMax
	boxNickBase := boxRecBase + gen1BoxMax*gen1BoxRec + gen1BoxMax*gb1NameLen
	for i := 0; i <= gen1BoxMax; i++ {
		data[gen1BoxOff+1+i] = gb1SpeciesEnd
	}
	for i, m := range box {
		data[gen1BoxOff+1+i] = m.species
		rec := data[boxRecBase+i*gen1BoxRec:]
		rec[0] = m.species
		rec[3] = m.level
		copy(data[boxNickBase+i*gb1NameLen:], encodeGen12Text(m.nick, gb1NameLen))
	}

	data[gen1ChecksumAt] = gen1Checksum(data)
	return data
}

func buildGen2Save(o *gen2Offsets, name string, badges byte, party, box []gbMon) []byte {
	data := make([]byte, gb1SaveSize)
	copy(data[o.nameOff:], encodeGen12Text(name, gb1NameLen))
	data[o.badgesOff] = badges

	data[o.partyOff] = byte(len(party))
	recBase := o.partyOff + 2 + gen2PartyMax
	nickBase := recBase + gen2PartyMax*gen2PartyRec + gen2PartyMax*gb1NameLen
	for i := 0; i <= gen2PartyMax; i++ {
		data[o.partyOff+1+i] = gb1SpeciesEnd
	}
	for i, m := range party {
		data[o.partyOff+1+i] = m.species
		if m.egg {
			data[o.partyOff+1+i] = gen2EggMark
		}
		rec := data[recBase+i*gen2PartyRec:]
		rec[0] = m.species
		rec[0x1F] = m.level
		putU16be(rec, 0x22, m.curHP)
		copy(data[nickBase+i*gb1NameLen:], encodeGen12Text(m.nick, gb1NameLen))
	}

	data[o.boxOff] = byte(len(box))
	boxRecBase := o.boxOff + 2 + gen2BoxMax
	boxNickBase := boxRecBase + gen2BoxMax*gen2BoxRec + gen2BoxMax*gb1NameLen
	for i := 0; i <= gen2BoxMax; i++ {
		data[o.boxOff+1+i] = gb1SpeciesEnd
	}
	for i, m := range box {
		data[o.boxOff+1+i] = m.species
		rec := data[boxRecBase+i*gen2BoxRec:]
		rec[0] = m.species
		rec[0x1F] = m.level
		copy(data[boxNickBase+i*gb1NameLen:], encodeGen12Text(m.nick, gb1NameLen))
	}

	putU16le(data, o.sumAt, gen2Checksum(data, o))
	return data
}

// ============================================================================
// Gen3 builder
// ============================================================================

type gen3MonSpec struct {
	pid     uint32
	otid    uint32
	species uint16 // internal index
	level   byte
	curHP   uint16
	nick    string
	egg     bool
	origin  int // game-of-origin code, 0 for none
}

func encodeGen3Mon(m gen3MonSpec) []byte {
	rec := make([]byte, gen3MonSize)
	putU32le(rec, 0, m.pid)
	putU32le(rec, 4, m.otid)
	copy(rec[8:18], encodeGen3TextFixture(m.nick, 10))
	rec[84] = m.level
	putU16le(rec, 86, m.curHP)

	var blocks [4][12]byte
	putU16le(blocks[0][:], 0, m.species)
	putU16le(blocks[3][:], 2, uint16(m.origin)<<7)
	if m.egg {
		putU32le(blocks[3][:], 4, 1<<30)
	}

	payload := make([]byte, 48)
	order := blockOrders[m.pid%24]
	for pos := 0; pos < 4; pos++ {
		copy(payload[pos*12:], blocks[order[pos]][:])
	}
	var sum uint16
	for w := 0; w < 24; w++ {
		sum += u16le(payload, w*2)
	}
	putU16le(rec, 28, sum)

	key := m.pid ^ m.otid
	for w := 0; w < 12; w++ {
		putU32le(rec, 32+w*4, u32le(payload, w*4)^key)
	}
	return rec
}

type gen3Spec struct {
	gameCode  uint32 // 0 RS, 1 FRLG, other Emerald
	name      string
	badges    byte
	party     []gen3MonSpec
	saveIndex uint32
	rotation  int // physical rotation of section tags
}

func buildGen3Save(spec gen3Spec) []byte {
	data := make([]byte, gen3SaveSize)
	o := gen3RubySapphire
	switch spec.gameCode {
	case 1:
		o = gen3FireRedLeaf
	default:
		if spec.gameCode != 0 {
			o = gen3Emerald
		}
	}

	// Section contents, keyed by tag.
	contents := make([][]byte, gen3SlotSections)
	for tag := range contents {
		contents[tag] = make([]byte, gen3SectionSize)
	}
	copy(contents[0][0:8], encodeGen3TextFixture(spec.name, 7))
	contents[0][7] = 0xFF
	putU32le(contents[0], 0xAC, spec.gameCode)
	putU32le(contents[1], o.partyCountOff, uint32(len(spec.party)))
	for i, m := range spec.party {
		copy(contents[1][o.partyOff+i*gen3MonSize:], encodeGen3Mon(m))
	}
	contents[2][o.badgesOff] = spec.badges

	// Lay sections down rotated so decode has to re-sort by tag.
	for tag := 0; tag < gen3SlotSections; tag++ {
		pos := (tag + spec.rotation) % gen3SlotSections
		body := contents[tag]
		putU16le(body, gen3FooterTag, uint16(tag))
		putU16le(body, gen3FooterSum, gen3SectionChecksum(body, gen3SectionLengths[tag]))
		putU32le(body, gen3FooterMagic, gen3Magic)
		putU32le(body, gen3FooterIndex, spec.saveIndex)
		copy(data[pos*gen3SectionSize:], body)
	}
	return data
}

// ============================================================================
// Gen4 / Gen5 builder
// ============================================================================

type ndsMonSpec struct {
	pid     uint32
	species uint16
	ability byte
	level   byte
	curHP   uint16
	female  bool
	nature  byte // Gen5 explicit nature byte
	origin  byte
	nick    string
	egg     bool
}

func encodeNDSMon(m ndsMonSpec) []byte {
	rec := make([]byte, ndsMonSize)
	putU32le(rec, 0, m.pid)

	var blocks [4][32]byte
	putU16le(blocks[0][:], 0, m.species)
	blocks[0][13] = m.ability
	if m.egg {
		putU32le(blocks[1][:], 16, 1<<30)
	}
	if m.female {
		blocks[1][24] |= 0x02
	}
	blocks[1][25] = m.nature
	copy(blocks[2][0:22], encodeUTF16Fixture(m.nick, 11))
	blocks[2][23] = m.origin

	blockData := make([]byte, 128)
	order := blockOrders[(m.pid>>13&0x1F)%24]
	for pos := 0; pos < 4; pos++ {
		copy(blockData[pos*32:], blocks[order[pos]][:])
	}
	var sum uint16
	for w := 0; w < 64; w++ {
		sum += u16le(blockData, w*2)
	}
	putU16le(rec, 6, sum)

	// XOR stream: encrypting is decrypting.
	lcrngDecrypt(rec[8:136], blockData, uint32(sum))

	ext := make([]byte, 100)
	ext[4] = m.level
	putU16le(ext, 6, m.curHP)
	lcrngDecrypt(rec[136:236], ext, m.pid)
	return rec
}

func buildNDSSave(l *ndsLayout, name string, badges byte, party []ndsMonSpec) []byte {
	data := make([]byte, ndsSaveSize)
	copy(data[l.nameOff:], encodeUTF16Fixture(name, ndsNameLen+1))
	data[l.badgesOff] = badges
	data[l.partyCountOff] = byte(len(party))
	for i, m := range party {
		copy(data[l.partyOff+i*ndsMonSize:], encodeNDSMon(m))
	}
	putU32le(data, l.blockSize-12, 1) // save index
	putU32le(data, l.blockSize-8, uint32(l.blockSize))
	putU16le(data, l.blockSize-4, crc16(data[:l.blockSize-4]))
	return data
}
