package save

// charset.go decodes the proprietary text encodings used by the cartridge
// saves. Names are normalized to UTF-8; a byte outside the known table
// decodes to '?' rather than failing the whole file, since names are
// cosmetic and the integrity checks have already passed by the time text
// is read.

import (
	"strings"
	"unicode/utf16"
)

// decodeGen12Text decodes a Game Boy era string. Strings are padded and
// terminated with 0x50.
func decodeGen12Text(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c == 0x50 {
			break
		}
		b.WriteRune(gen12Rune(c))
	}
	return b.String()
}

func gen12Rune(c byte) rune {
	switch {
	case c >= 0x80 && c <= 0x99:
		return rune('A' + c - 0x80)
	case c >= 0xA0 && c <= 0xB9:
		return rune('a' + c - 0xA0)
	case c >= 0xF6:
		return rune('0' + c - 0xF6)
	case c == 0x7F:
		return ' '
	}
	switch c {
	case 0xE3:
		return '-'
	case 0xE6:
		return '?'
	case 0xE7:
		return '!'
	case 0xE8, 0xF2:
		return '.'
	case 0xF3:
		return '/'
	case 0xF4:
		return ','
	}
	return '?'
}

// decodeGen3Text decodes a GBA string. Strings are terminated with 0xFF.
func decodeGen3Text(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c == 0xFF {
			break
		}
		b.WriteRune(gen3Rune(c))
	}
	return b.String()
}

func gen3Rune(c byte) rune {
	switch {
	case c == 0x00:
		return ' '
	case c >= 0xA1 && c <= 0xAA:
		return rune('0' + c - 0xA1)
	case c >= 0xBB && c <= 0xD4:
		return rune('A' + c - 0xBB)
	case c >= 0xD5 && c <= 0xEE:
		return rune('a' + c - 0xD5)
	}
	switch c {
	case 0xAB:
		return '!'
	case 0xAC:
		return '?'
	case 0xAD:
		return '.'
	case 0xAE:
		return '-'
	case 0xBA:
		return '/'
	}
	return '?'
}

// decodeUTF16Text decodes an NDS era string: little-endian UTF-16 code
// units terminated with 0xFFFF. raw must hold n code units (2n bytes).
func decodeUTF16Text(raw []byte, n int) string {
	units := make([]uint16, 0, n)
	for i := 0; i < n && i*2+1 < len(raw); i++ {
		u := uint16(raw[i*2]) | uint16(raw[i*2+1])<<8
		if u == 0xFFFF {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}
