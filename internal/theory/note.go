package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Note is a registered pitch: a spelled pitch plus an octave in
// scientific pitch notation (C4 = middle C).
type Note struct {
	Pitch  Pitch
	Octave int
}

// NewNote creates a note from a pitch and octave.
func NewNote(pitch Pitch, octave int) Note {
	return Note{Pitch: pitch, Octave: octave}
}

// Semitones returns the note's absolute semitone position, aligned with
// MIDI numbering (C4 = 60). Accidentals cross octave boundaries, so
// Cb4 sits one semitone below C4.
func (n Note) Semitones() int {
	return 12*(n.Octave+1) + n.Pitch.Letter.Semitones() + n.Pitch.Accidental
}

// MIDI returns the note's MIDI note number.
func (n Note) MIDI() int {
	return n.Semitones()
}

// diatonicPosition is the note's letter position on an absolute
// diatonic staff (C4 = 35).
func (n Note) diatonicPosition() int {
	return 7*n.Octave + n.Pitch.Letter.Step()
}

// Compare orders notes by absolute pitch height, breaking enharmonic
// ties by spelling (flatter spellings first). Returns -1, 0, or 1.
func (n Note) Compare(other Note) int {
	if d := n.Semitones() - other.Semitones(); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}

	if d := n.Pitch.FifthsFromC() - other.Pitch.FifthsFromC(); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}

	return 0
}

// Less reports whether n sounds below other.
func (n Note) Less(other Note) bool {
	return n.Compare(other) < 0
}

// SemitonesTo returns the signed semitone distance from n up to other.
func (n Note) SemitonesTo(other Note) int {
	return other.Semitones() - n.Semitones()
}

// DistanceTo returns the directed, spelled interval from n to other.
func (n Note) DistanceTo(other Note) Interval {
	diff := other.diatonicPosition() - n.diatonicPosition()
	semis := n.SemitonesTo(other)

	descending := diff < 0 || (diff == 0 && semis < 0)
	if descending {
		asc := other.DistanceTo(n)
		return asc.Neg()
	}

	number := diff + 1
	steps := diff
	octaves := steps / 7
	rem := steps % 7
	base := diatonicSemitones[rem] + 12*octaves

	d := semis - base

	var quality IntervalQuality
	if isPerfectClass(number) {
		switch {
		case d == 0:
			quality = Perfect
		case d > 0:
			quality = Augmented(d)
		default:
			quality = Diminished(-d)
		}
	} else {
		switch {
		case d == 0:
			quality = Major
		case d == -1:
			quality = Minor
		case d > 0:
			quality = Augmented(d)
		default:
			quality = Diminished(-d - 1)
		}
	}

	return Interval{Number: number, Qual: quality}
}

// Transpose moves the note by the given interval, preserving spelling.
func (n Note) Transpose(ivl Interval) Note {
	steps := ivl.Number - 1
	if ivl.Number < 0 {
		steps = ivl.Number + 1
	}

	pos := n.diatonicPosition() + steps
	octave := pos / 7
	step := pos % 7
	if step < 0 {
		step += 7
		octave--
	}

	letter := LetterFromStep(step)
	targetSemis := n.Semitones() + ivl.Semitones()
	accidental := targetSemis - (12*(octave+1) + letter.Semitones())

	return Note{Pitch: Pitch{Letter: letter, Accidental: accidental}, Octave: octave}
}

// String renders the note as a name with octave, e.g. "Bb4".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Pitch, n.Octave)
}

// ParseNote parses a note name with octave like "C4", "Bb2", "F#5".
// Negative octaves ("Cb-1") are accepted.
func ParseNote(s string) (Note, error) {
	if len(s) < 2 {
		return Note{}, fmt.Errorf("note name too short: %s", s)
	}

	split := len(s)
	for i, r := range s {
		if i == 0 {
			continue
		}
		if r == '-' || (r >= '0' && r <= '9') {
			split = i
			break
		}
	}

	pitch, err := ParsePitch(s[:split])
	if err != nil {
		return Note{}, err
	}

	octave, err := strconv.Atoi(strings.TrimSpace(s[split:]))
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in note %q: %w", s, err)
	}

	return Note{Pitch: pitch, Octave: octave}, nil
}
