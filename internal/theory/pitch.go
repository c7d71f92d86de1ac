package theory

import (
	"fmt"
	"strings"
)

// Letter is a white-key note name (C through B).
type Letter int

const (
	LetterC Letter = iota
	LetterD
	LetterE
	LetterF
	LetterG
	LetterA
	LetterB
)

// Semitone offsets of each letter above C.
var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Positions on the circle of fifths relative to C (F=-1, C=0, G=1, ...).
var letterFifths = [7]int{0, 2, 4, -1, 1, 3, 5}

// LetterFromStep returns the letter at the given diatonic step,
// wrapping modulo 7 so negative steps are valid.
func LetterFromStep(step int) Letter {
	return Letter(((step % 7) + 7) % 7)
}

// Step returns the diatonic step index of the letter (C=0 .. B=6).
func (l Letter) Step() int {
	return int(l)
}

// Semitones returns the letter's semitone offset above C.
func (l Letter) Semitones() int {
	return letterSemitones[l]
}

func (l Letter) String() string {
	return letterNames[l]
}

// PitchClass is one of the 12 chromatic pitch classes (C=0 .. B=11).
type PitchClass int

// Pitch is a spelled pitch: a letter plus an accidental offset in
// semitones (negative = flats, positive = sharps). Enharmonic spellings
// like F# and Gb are distinct values with the same pitch class.
type Pitch struct {
	Letter     Letter
	Accidental int
}

// NewPitch creates a pitch from a letter and accidental offset.
func NewPitch(letter Letter, accidental int) Pitch {
	return Pitch{Letter: letter, Accidental: accidental}
}

// Convenience pitch constructors for the naturals and common accidentals.
var (
	C      = Pitch{LetterC, 0}
	CSharp = Pitch{LetterC, 1}
	DFlat  = Pitch{LetterD, -1}
	D      = Pitch{LetterD, 0}
	DSharp = Pitch{LetterD, 1}
	EFlat  = Pitch{LetterE, -1}
	E      = Pitch{LetterE, 0}
	F      = Pitch{LetterF, 0}
	FSharp = Pitch{LetterF, 1}
	GFlat  = Pitch{LetterG, -1}
	G      = Pitch{LetterG, 0}
	GSharp = Pitch{LetterG, 1}
	AFlat  = Pitch{LetterA, -1}
	A      = Pitch{LetterA, 0}
	ASharp = Pitch{LetterA, 1}
	BFlat  = Pitch{LetterB, -1}
	B      = Pitch{LetterB, 0}
)

// Class returns the pitch class (0-11) of the pitch.
func (p Pitch) Class() PitchClass {
	chroma := (p.Letter.Semitones() + p.Accidental) % 12
	if chroma < 0 {
		chroma += 12
	}
	return PitchClass(chroma)
}

// FifthsFromC returns the pitch's position on the circle of fifths
// relative to C (Bb=-2, F=-1, C=0, G=1, D=2, ...).
func (p Pitch) FifthsFromC() int {
	return letterFifths[p.Letter] + 7*p.Accidental
}

// Transpose moves the pitch by the given interval, preserving spelling.
// The octave component of compound intervals is discarded.
func (p Pitch) Transpose(ivl Interval) Pitch {
	return Note{Pitch: p, Octave: 4}.Transpose(ivl).Pitch
}

// String renders the pitch as a note name, e.g. "Eb", "F#", "Bbb".
func (p Pitch) String() string {
	name := p.Letter.String()
	switch {
	case p.Accidental > 0:
		return name + strings.Repeat("#", p.Accidental)
	case p.Accidental < 0:
		return name + strings.Repeat("b", -p.Accidental)
	default:
		return name
	}
}

// ParsePitch parses a spelled pitch name like "C", "Eb", "F#", "Bbb".
func ParsePitch(s string) (Pitch, error) {
	if s == "" {
		return Pitch{}, fmt.Errorf("empty pitch name")
	}

	letterChar := strings.ToUpper(s[:1])
	var letter Letter
	found := false
	for i, name := range letterNames {
		if name == letterChar {
			letter = Letter(i)
			found = true
			break
		}
	}
	if !found {
		return Pitch{}, fmt.Errorf("invalid note letter: %s", letterChar)
	}

	accidental := 0
	for _, r := range s[1:] {
		switch r {
		case '#':
			accidental++
		case 'b':
			accidental--
		default:
			return Pitch{}, fmt.Errorf("invalid accidental in pitch %q", s)
		}
	}

	return Pitch{Letter: letter, Accidental: accidental}, nil
}
