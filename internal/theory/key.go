package theory

import "fmt"

// DiatonicMode is one of the seven modes of the diatonic scale,
// numbered by the major-scale degree each mode starts on.
type DiatonicMode int

const (
	Ionian DiatonicMode = iota + 1
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

// ModeMajor and ModeMinor are the common-practice names for Ionian and
// Aeolian.
const (
	ModeMajor = Ionian
	ModeMinor = Aeolian
)

var modeNames = map[DiatonicMode]string{
	Ionian:     "ionian",
	Dorian:     "dorian",
	Phrygian:   "phrygian",
	Lydian:     "lydian",
	Mixolydian: "mixolydian",
	Aeolian:    "aeolian",
	Locrian:    "locrian",
}

func (m DiatonicMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses a mode name. "major" and "minor" are accepted as
// aliases for ionian and aeolian.
func ParseMode(s string) (DiatonicMode, error) {
	switch s {
	case "major", "":
		return ModeMajor, nil
	case "minor":
		return ModeMinor, nil
	}
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %q", s)
}

// Ascending whole/half step pattern of the major scale, in semitones.
var majorSteps = [7]int{2, 2, 1, 2, 2, 2, 1}

// Key is a musical key: a tonic pitch plus a diatonic mode.
type Key struct {
	Tonic Pitch
	Mode  DiatonicMode
}

// NewKey creates a key from a tonic and mode.
func NewKey(tonic Pitch, mode DiatonicMode) Key {
	return Key{Tonic: tonic, Mode: mode}
}

// MajorKey creates a major key on the given tonic.
func MajorKey(tonic Pitch) Key {
	return NewKey(tonic, ModeMajor)
}

// MinorKey creates a natural minor key on the given tonic.
func MinorKey(tonic Pitch) Key {
	return NewKey(tonic, ModeMinor)
}

// Scale returns the seven diatonic pitches of the key in ascending
// order starting from the tonic, spelled with one letter per degree.
func (k Key) Scale() [7]Pitch {
	var scale [7]Pitch
	scale[0] = k.Tonic

	tonicChroma := int(k.Tonic.Class())
	rotation := int(k.Mode) - 1

	cumulative := 0
	for i := 1; i < 7; i++ {
		cumulative += majorSteps[(rotation+i-1)%7]

		letter := LetterFromStep(k.Tonic.Letter.Step() + i)
		wantChroma := (tonicChroma + cumulative) % 12

		accidental := wantChroma - letter.Semitones()
		// Normalize to the nearest spelling (keeps Cb/B# style offsets
		// within a single alteration of the letter).
		for accidental > 6 {
			accidental -= 12
		}
		for accidental < -6 {
			accidental += 12
		}

		scale[i] = Pitch{Letter: letter, Accidental: accidental}
	}

	return scale
}

// RelativePitch returns the pitch at the given 1-based scale degree.
func (k Key) RelativePitch(degree int) Pitch {
	return k.Scale()[degree-1]
}

// AccidentalOf returns the accidental the key signature applies to the
// given letter.
func (k Key) AccidentalOf(letter Letter) int {
	for _, p := range k.Scale() {
		if p.Letter == letter {
			return p.Accidental
		}
	}
	// Every letter appears exactly once in a diatonic scale.
	panic(fmt.Sprintf("letter %s not found in scale of %s %s", letter, k.Tonic, k.Mode))
}

// Sharps returns the key signature as the number of sharps (positive)
// or flats (negative).
func (k Key) Sharps() int {
	total := 0
	for _, p := range k.Scale() {
		total += p.Accidental
	}
	return total
}

// String renders the key as e.g. "Eb major" or "C# dorian".
func (k Key) String() string {
	mode := k.Mode.String()
	switch k.Mode {
	case ModeMajor:
		mode = "major"
	case ModeMinor:
		mode = "minor"
	}
	return fmt.Sprintf("%s %s", k.Tonic, mode)
}
