package voiceleading

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// Quality is a triad or seventh quality.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
)

var qualityNames = [...]string{"major", "minor", "diminished", "augmented"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "unknown"
	}
	return qualityNames[q]
}

// RomanChord is an analytical chord: a scale degree with triad quality,
// optional seventh quality, and inversion, all relative to a key.
// Values are immutable once constructed.
type RomanChord struct {
	Degree         int // 1-7
	TriadQuality   Quality
	SeventhQuality Quality // meaningful only when HasSeventh
	HasSeventh     bool
	Inversion      int
}

// NewTriad creates a triad on the given scale degree. Inversions 0-2
// are valid.
func NewTriad(degree int, quality Quality, inversion int) (RomanChord, error) {
	return newRomanChord(RomanChord{
		Degree:       degree,
		TriadQuality: quality,
		Inversion:    inversion,
	})
}

// NewSeventhChord creates a seventh chord on the given scale degree.
// Inversions 0-3 are valid.
func NewSeventhChord(degree int, triad, seventh Quality, inversion int) (RomanChord, error) {
	return newRomanChord(RomanChord{
		Degree:         degree,
		TriadQuality:   triad,
		SeventhQuality: seventh,
		HasSeventh:     true,
		Inversion:      inversion,
	})
}

func newRomanChord(c RomanChord) (RomanChord, error) {
	if c.Degree < 1 || c.Degree > 7 {
		return RomanChord{}, fmt.Errorf("scale degree %d out of range 1-7", c.Degree)
	}

	maxInversion := c.Len() - 1
	if c.Inversion < 0 || c.Inversion > maxInversion {
		return RomanChord{}, fmt.Errorf("inversion %d invalid for a %d-tone chord", c.Inversion, c.Len())
	}

	return c, nil
}

// WithInversion returns a copy of the chord in the given inversion.
func (c RomanChord) WithInversion(inversion int) (RomanChord, error) {
	c.Inversion = inversion
	return newRomanChord(c)
}

// Len returns the number of chord tones (3, or 4 with a seventh).
func (c RomanChord) Len() int {
	if c.HasSeventh {
		return 4
	}
	return 3
}

// ModeHasRaisedLeadingTone reports whether the mode conventionally
// raises its seventh degree to form a leading tone. Only the natural
// minor (aeolian) mode does; the other modes keep their diatonic
// seventh.
func ModeHasRaisedLeadingTone(mode theory.DiatonicMode) bool {
	return mode == theory.Aeolian
}

// LeadingTone returns the key's leading tone: the seventh scale degree,
// raised a chromatic semitone in raised-leading-tone modes.
func LeadingTone(key theory.Key) theory.Pitch {
	vii := key.Scale()[6]
	if ModeHasRaisedLeadingTone(key.Mode) {
		vii = vii.Transpose(theory.AugmentedUnison)
	}
	return vii
}

// RootInKey returns the chord's root pitch in the given key. In
// raised-leading-tone modes a chord on degree VII is built on the
// raised leading tone.
func (c RomanChord) RootInKey(key theory.Key) theory.Pitch {
	if c.Degree == 7 && ModeHasRaisedLeadingTone(key.Mode) {
		return LeadingTone(key)
	}
	return key.RelativePitch(c.Degree)
}

// thirdInterval maps triad quality to the root-third interval.
func (c RomanChord) thirdInterval() theory.Interval {
	if c.TriadQuality == Major || c.TriadQuality == Augmented {
		return theory.MajorThird
	}
	return theory.MinorThird
}

// fifthInterval maps triad quality to the root-fifth interval.
func (c RomanChord) fifthInterval() theory.Interval {
	switch c.TriadQuality {
	case Diminished:
		return theory.DiminishedFifth
	case Augmented:
		return theory.AugmentedFifth
	default:
		return theory.PerfectFifth
	}
}

// seventhInterval maps seventh quality to the root-seventh interval.
func (c RomanChord) seventhInterval() theory.Interval {
	switch c.SeventhQuality {
	case Major:
		return theory.MajorSeventh
	case Diminished:
		return theory.DiminishedSeventh
	default:
		return theory.MinorSeventh
	}
}

// Pitches returns the chord tones in ascending close position: root,
// third, fifth, and the seventh when present.
func (c RomanChord) Pitches(key theory.Key) []theory.Pitch {
	root := c.RootInKey(key)

	pitches := []theory.Pitch{
		root,
		root.Transpose(c.thirdInterval()),
		root.Transpose(c.fifthInterval()),
	}

	if c.HasSeventh {
		pitches = append(pitches, root.Transpose(c.seventhInterval()))
	}

	return pitches
}

// Bass returns the pitch the bass voice must carry for the chord's
// inversion.
func (c RomanChord) Bass(key theory.Key) theory.Pitch {
	return c.Pitches(key)[c.Inversion]
}

// PitchClassSet returns the set of pitch classes of the chord's tones.
func (c RomanChord) PitchClassSet(key theory.Key) theory.PitchClassSet {
	return theory.PitchClassSetOf(c.Pitches(key)...)
}

// DiatonicChord builds the chord that stacking diatonic thirds on the
// given degree produces. In raised-leading-tone modes the seventh
// degree is raised for the chords that carry it as root or third (V
// and VII), giving the conventional major dominant and diminished
// leading-tone chord. withSeventh adds the diatonic seventh.
func DiatonicChord(degree int, key theory.Key, withSeventh bool) (RomanChord, error) {
	if degree < 1 || degree > 7 {
		return RomanChord{}, fmt.Errorf("scale degree %d out of range 1-7", degree)
	}

	scale := key.Scale()
	if ModeHasRaisedLeadingTone(key.Mode) && (degree == 5 || degree == 7) {
		scale[6] = scale[6].Transpose(theory.AugmentedUnison)
	}

	root := scale[degree-1]
	third := scale[(degree+1)%7]
	fifth := scale[(degree+3)%7]

	thirdIvl := pitchIntervalUp(root, third)
	fifthIvl := pitchIntervalUp(root, fifth)

	var triad Quality
	switch {
	case thirdIvl == theory.MajorThird && fifthIvl == theory.AugmentedFifth:
		triad = Augmented
	case thirdIvl == theory.MajorThird:
		triad = Major
	case fifthIvl == theory.DiminishedFifth:
		triad = Diminished
	default:
		triad = Minor
	}

	if !withSeventh {
		return NewTriad(degree, triad, 0)
	}

	seventh := scale[(degree+5)%7]

	var seventhQuality Quality
	switch pitchIntervalUp(root, seventh) {
	case theory.MajorSeventh:
		seventhQuality = Major
	case theory.DiminishedSeventh:
		seventhQuality = Diminished
	default:
		seventhQuality = Minor
	}

	return NewSeventhChord(degree, triad, seventhQuality, 0)
}

// pitchIntervalUp returns the ascending simple interval from one pitch
// up to the next occurrence of the other.
func pitchIntervalUp(from, to theory.Pitch) theory.Interval {
	lower := theory.NewNote(from, 4)
	upper := theory.NewNote(to, 4)
	if upper.Compare(lower) < 0 {
		upper.Octave++
	}
	return lower.DistanceTo(upper).Simple()
}

// Roman numeral names per degree; case is adjusted by quality.
var degreeNumerals = [8]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}

// Inversion figures for triads and seventh chords.
var (
	triadFigures   = [3]string{"", "6", "64"}
	seventhFigures = [4]string{"7", "65", "43", "42"}
)

// String renders the chord as an analytical symbol, e.g. "I", "ii6",
// "V7", "viio65".
func (c RomanChord) String() string {
	numeral := degreeNumerals[c.Degree]

	switch c.TriadQuality {
	case Minor, Diminished:
		numeral = strings.ToLower(numeral)
	}

	switch c.TriadQuality {
	case Diminished:
		numeral += "o"
	case Augmented:
		numeral += "+"
	}

	if c.HasSeventh {
		return numeral + seventhFigures[c.Inversion]
	}
	return numeral + triadFigures[c.Inversion]
}
