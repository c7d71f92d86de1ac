package theory

import (
	"fmt"
	"strings"
)

// QualityKind classifies an interval quality.
type QualityKind int

const (
	QualityPerfect QualityKind = iota
	QualityMajor
	QualityMinor
	QualityAugmented
	QualityDiminished
)

// IntervalQuality is an interval quality, with Degree carrying the
// multiplicity for augmented/diminished qualities (1 = singly
// augmented, 2 = doubly, ...). Degree is 0 for perfect/major/minor.
type IntervalQuality struct {
	Kind   QualityKind
	Degree int
}

var (
	Perfect = IntervalQuality{Kind: QualityPerfect}
	Major   = IntervalQuality{Kind: QualityMajor}
	Minor   = IntervalQuality{Kind: QualityMinor}
)

// Augmented returns an n-times augmented quality.
func Augmented(n int) IntervalQuality {
	return IntervalQuality{Kind: QualityAugmented, Degree: n}
}

// Diminished returns an n-times diminished quality.
func Diminished(n int) IntervalQuality {
	return IntervalQuality{Kind: QualityDiminished, Degree: n}
}

func (q IntervalQuality) String() string {
	switch q.Kind {
	case QualityPerfect:
		return "P"
	case QualityMajor:
		return "M"
	case QualityMinor:
		return "m"
	case QualityAugmented:
		return strings.Repeat("A", q.Degree)
	case QualityDiminished:
		return strings.Repeat("d", q.Degree)
	}
	return "?"
}

// Interval is a directed, spelled interval. Number is the diatonic
// number (1 = unison, 2 = second, 8 = octave, 10 = tenth, ...), negated
// for descending intervals; it is never 0. Direction for intervals with
// Number ±1 (unisons) is carried by the quality's semitone offset.
type Interval struct {
	Number int
	Qual   IntervalQuality
}

// Common intervals used throughout the rule set.
var (
	PerfectUnison     = Interval{1, Perfect}
	AugmentedUnison   = Interval{1, Augmented(1)}
	MinorSecond       = Interval{2, Minor}
	MajorSecond       = Interval{2, Major}
	MinorThird        = Interval{3, Minor}
	MajorThird        = Interval{3, Major}
	PerfectFourth     = Interval{4, Perfect}
	AugmentedFourth   = Interval{4, Augmented(1)}
	DiminishedFifth   = Interval{5, Diminished(1)}
	PerfectFifth      = Interval{5, Perfect}
	AugmentedFifth    = Interval{5, Augmented(1)}
	MinorSixth        = Interval{6, Minor}
	MajorSixth        = Interval{6, Major}
	DiminishedSeventh = Interval{7, Diminished(1)}
	MinorSeventh      = Interval{7, Minor}
	MajorSeventh      = Interval{7, Major}
	PerfectOctave     = Interval{8, Perfect}
	MajorTenth        = Interval{10, Major}
)

// Semitones of the major/perfect interval for each simple number
// (unison through seventh).
var diatonicSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// isPerfectClass reports whether the simple form of the number is a
// unison, fourth, fifth, or octave.
func isPerfectClass(number int) bool {
	switch simpleNumber(number) {
	case 1, 4, 5, 8:
		return true
	}
	return false
}

// simpleNumber reduces a (positive) interval number to the range 1-8,
// mapping exact octaves and their compounds to 8, not 1.
func simpleNumber(number int) int {
	if number < 0 {
		number = -number
	}
	if number <= 8 {
		return number
	}
	m := (number - 1) % 7
	if m == 0 {
		return 8
	}
	return m + 1
}

// qualityOffset is the semitone adjustment the quality applies to the
// major/perfect size of the number.
func qualityOffset(q IntervalQuality, perfectClass bool) int {
	switch q.Kind {
	case QualityPerfect, QualityMajor:
		return 0
	case QualityMinor:
		return -1
	case QualityAugmented:
		return q.Degree
	case QualityDiminished:
		if perfectClass {
			return -q.Degree
		}
		return -q.Degree - 1
	}
	return 0
}

// Semitones returns the signed semitone width of the interval.
func (i Interval) Semitones() int {
	n := i.Number
	neg := n < 0
	if neg {
		n = -n
	}

	steps := n - 1
	octaves := steps / 7
	rem := steps % 7

	semis := diatonicSemitones[rem] + 12*octaves + qualityOffset(i.Qual, isPerfectClass(n))

	if neg {
		return -semis
	}
	return semis
}

// Quality returns the interval's quality.
func (i Interval) Quality() IntervalQuality {
	return i.Qual
}

// IsAscending reports whether the interval moves upward. A perfect
// unison is not ascending.
func (i Interval) IsAscending() bool {
	return i.Semitones() > 0
}

// IsDescending reports whether the interval moves downward.
func (i Interval) IsDescending() bool {
	return i.Semitones() < 0
}

// Simple reduces the interval to within one octave, preserving
// direction and quality. Exact octaves and their compounds reduce to an
// octave, not a unison.
func (i Interval) Simple() Interval {
	n := simpleNumber(i.Number)
	if i.Number < 0 {
		n = -n
	}
	return Interval{Number: n, Qual: i.Qual}
}

// Abs returns the ascending version of the interval.
func (i Interval) Abs() Interval {
	if i.Number < 0 {
		return Interval{Number: -i.Number, Qual: i.Qual}
	}
	// Descending augmented unisons have a positive number; flip by sign
	// of the semitone width instead.
	if i.Number == 1 && i.Semitones() < 0 {
		return i.Neg()
	}
	return i
}

// Neg returns the interval in the opposite direction.
func (i Interval) Neg() Interval {
	if simpleNumber(i.Number) == 1 && i.Number > 0 {
		// A descending unison keeps number 1; direction lives in the
		// quality for these, so invert augmented <-> diminished.
		switch i.Qual.Kind {
		case QualityAugmented:
			return Interval{Number: 1, Qual: Diminished(i.Qual.Degree)}
		case QualityDiminished:
			return Interval{Number: 1, Qual: Augmented(i.Qual.Degree)}
		default:
			return i
		}
	}
	return Interval{Number: -i.Number, Qual: i.Qual}
}

// SimpleNumber returns the 1-8 diatonic number of the interval,
// ignoring direction.
func (i Interval) SimpleNumber() int {
	return simpleNumber(i.Number)
}

func (i Interval) String() string {
	n := i.Number
	sign := ""
	if n < 0 {
		n = -n
		sign = "-"
	}
	return fmt.Sprintf("%s%s%d", sign, i.Qual, n)
}
