package save

// errors.go defines the closed failure set for save decoding and
// reconciliation. Handlers match these with errors.Is / errors.As and map
// them to user-facing messages; every error carries the position context
// (offset, section, slot) needed to diagnose a bad file without the raw
// bytes.

import (
	"errors"
	"fmt"
)

// ErrNotRecognized is returned when a buffer matches no supported save
// layout. Detection never guesses: a buffer that fails the size and
// signature probes of every variant is rejected outright.
var ErrNotRecognized = errors.New("save file format not recognized")

// TruncatedError is returned when a buffer is positively identified as a
// variant (its signature matched) but is shorter than that variant requires.
type TruncatedError struct {
	Variant Variant
	Size    int // actual buffer length
	Want    int // expected length for the variant
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated %s save: got %d bytes, want %d", e.Variant, e.Size, e.Want)
}

// ChecksumError is returned when a section, block, or creature record fails
// its integrity check, or when a structural marker (section tag, block
// footer) is inconsistent. A single mismatch fails the whole decode.
type ChecksumError struct {
	Variant Variant
	Section string // human label: "section 1", "general block", "party slot 3"
	Offset  int    // byte offset of the failed region in the buffer
	Want    uint32
	Got     uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%s checksum mismatch in %s at offset 0x%X: want 0x%X, got 0x%X",
		e.Variant, e.Section, e.Offset, e.Want, e.Got)
}

// UnknownSpeciesError is returned when a decoded species index has no
// canonical mapping. This is a hard failure: an unmapped index means the
// record was misread or the table set is wrong, and silently defaulting
// would corrupt the caller's tracked roster.
type UnknownSpeciesError struct {
	Variant Variant
	Slot    int // zero-based position in decode order
	Index   int // the generation-local species index
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("%s slot %d: unknown species index 0x%X", e.Variant, e.Slot, e.Index)
}

// FieldRangeError is returned when a decoded field is outside its valid
// bounds after decryption and unshuffling. Out-of-range fields are never
// clamped.
type FieldRangeError struct {
	Variant Variant
	Slot    int
	Field   string
	Value   int
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%s slot %d: field %s out of range: %d", e.Variant, e.Slot, e.Field, e.Value)
}

// GameMismatchError is returned by Reconcile when the target game is not
// among the versions the decoded save is compatible with.
type GameMismatchError struct {
	Target     string
	Game       string
	Compatible []string
}

func (e *GameMismatchError) Error() string {
	return fmt.Sprintf("save from %s is not compatible with %s (compatible: %v)",
		e.Game, e.Target, e.Compatible)
}
