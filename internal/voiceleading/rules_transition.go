package voiceleading

import (
	"fmt"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// harmonicInterval returns the interval between two voices of a
// voicing, measured upward from the lower-sounding note.
func harmonicInterval(voicing Voicing, a, b Voice) theory.Interval {
	lo, hi := voicing.Note(a), voicing.Note(b)
	if hi.Compare(lo) < 0 {
		lo, hi = hi, lo
	}
	return lo.DistanceTo(hi)
}

// voicePairs calls fn for every unordered voice pair, upper voice
// first, until fn reports a violation.
func voicePairs(fn func(upper, lower Voice) *Violation) *Violation {
	for i := 0; i < NumVoices-1; i++ {
		for j := i + 1; j < NumVoices; j++ {
			if v := fn(Voices[i], Voices[j]); v != nil {
				return v
			}
		}
	}
	return nil
}

// ParallelIntervalRule forbids two voices from sounding the same
// perfect interval across a transition while both of them move.
// Intervals are compared by simple semitone width, so a twelfth
// counts as a fifth.
type ParallelIntervalRule struct {
	Interval theory.Interval
}

func (r ParallelIntervalRule) Name() string {
	return fmt.Sprintf("parallel %ss", r.Interval)
}

func (r ParallelIntervalRule) Evaluate(_ theory.Key, _, _ RomanChord, first, second Voicing) *Violation {
	target := r.Interval.Semitones()

	return voicePairs(func(upper, lower Voice) *Violation {
		if first.Note(upper) == second.Note(upper) || first.Note(lower) == second.Note(lower) {
			return nil
		}

		firstIvl := harmonicInterval(first, upper, lower)
		secondIvl := harmonicInterval(second, upper, lower)

		if firstIvl.Simple().Abs().Semitones() == target && secondIvl.Simple().Abs().Semitones() == target {
			return &Violation{Rule: r.Name(), Voices: []Voice{upper, lower}, Interval: &r.Interval}
		}
		return nil
	})
}

// UnequalFifthsRule forbids a voice pair from moving between a perfect
// fifth and a diminished fifth in either direction.
type UnequalFifthsRule struct{}

func (UnequalFifthsRule) Name() string { return "unequal fifths" }

func (r UnequalFifthsRule) Evaluate(_ theory.Key, _, _ RomanChord, first, second Voicing) *Violation {
	return voicePairs(func(upper, lower Voice) *Violation {
		firstIvl := harmonicInterval(first, upper, lower).Simple()
		secondIvl := harmonicInterval(second, upper, lower).Simple()

		perfectToDim := firstIvl == theory.PerfectFifth && secondIvl == theory.DiminishedFifth
		dimToPerfect := firstIvl == theory.DiminishedFifth && secondIvl == theory.PerfectFifth

		if perfectToDim || dimToPerfect {
			return &Violation{Rule: r.Name(), Voices: []Voice{upper, lower}}
		}
		return nil
	})
}

// DirectFifthsOctavesRule forbids the soprano and a lower voice from
// arriving at a perfect fifth or octave in similar motion, unless the
// soprano moves by step.
type DirectFifthsOctavesRule struct{}

func (DirectFifthsOctavesRule) Name() string { return "direct fifths or octaves" }

func (r DirectFifthsOctavesRule) Evaluate(_ theory.Key, _, _ RomanChord, first, second Voicing) *Violation {
	sopranoDir := first.Note(Soprano).Compare(second.Note(Soprano))
	if sopranoDir == 0 {
		return nil
	}

	for _, voice := range Voices[1:] {
		if first.Note(voice).Compare(second.Note(voice)) != sopranoDir {
			continue
		}

		arrival := harmonicInterval(second, Soprano, voice).Simple()
		if arrival != theory.PerfectFifth && arrival != theory.PerfectOctave {
			continue
		}

		sopranoMotion := first.Note(Soprano).DistanceTo(second.Note(Soprano)).Simple().Abs()
		if sopranoMotion.Number != 2 {
			return &Violation{Rule: r.Name(), Voices: []Voice{Soprano, voice}, Interval: &arrival}
		}
	}
	return nil
}

// SimilarIntoUnisonRule forbids two voices from converging onto the
// same note in similar motion.
type SimilarIntoUnisonRule struct{}

func (SimilarIntoUnisonRule) Name() string { return "similar motion into unison" }

func (r SimilarIntoUnisonRule) Evaluate(_ theory.Key, _, _ RomanChord, first, second Voicing) *Violation {
	return voicePairs(func(upper, lower Voice) *Violation {
		if second.Note(upper) == second.Note(lower) &&
			MotionBetween(upper, lower, first, second) == Similar {
			return &Violation{Rule: r.Name(), Voices: []Voice{upper, lower}}
		}
		return nil
	})
}

// LeadingToneResolutionRule requires a voice sounding the leading tone
// to resolve up a minor second to the tonic when the next chord is the
// tonic chord. The rule only fires in modes whose seventh degree sits
// a minor second below the tonic. One exception: over a
// first-inversion leading-tone seventh chord the soprano may instead
// fall to the dominant.
type LeadingToneResolutionRule struct{}

func (LeadingToneResolutionRule) Name() string { return "unresolved leading tone" }

func (r LeadingToneResolutionRule) Evaluate(key theory.Key, from, to RomanChord, first, second Voicing) *Violation {
	if to.Degree != 1 {
		return nil
	}

	leadingTone := LeadingTone(key)
	if pitchIntervalUp(leadingTone, key.Tonic) != theory.MinorSecond {
		return nil
	}

	tonicClass := key.Tonic.Class()
	dominantClass := key.RelativePitch(5).Class()
	sevenSixFive := from.Degree == 7 && from.HasSeventh && from.Inversion == 1

	for _, voice := range Voices {
		firstNote := first.Note(voice)
		secondNote := second.Note(voice)

		if firstNote.Pitch.Class() != leadingTone.Class() {
			continue
		}

		if secondNote.Pitch.Class() == tonicClass && firstNote.SemitonesTo(secondNote) == 1 {
			continue
		}

		// The melody may drop from the leading tone to the dominant
		// over a vii 6-5 chord.
		if voice == Soprano && sevenSixFive &&
			secondNote.Pitch.Class() == dominantClass && secondNote.Less(firstNote) {
			continue
		}

		return &Violation{Rule: r.Name(), Voices: []Voice{voice}}
	}
	return nil
}

// ChordalSeventhResolutionRule requires a voice sounding the chordal
// seventh to hold it or step down in the next voicing.
type ChordalSeventhResolutionRule struct{}

func (ChordalSeventhResolutionRule) Name() string { return "unresolved chordal seventh" }

func (r ChordalSeventhResolutionRule) Evaluate(key theory.Key, from, _ RomanChord, first, second Voicing) *Violation {
	if !from.HasSeventh {
		return nil
	}

	seventhClass := from.Pitches(key)[3].Class()

	for _, voice := range Voices {
		firstNote := first.Note(voice)
		secondNote := second.Note(voice)

		if firstNote.Pitch.Class() != seventhClass {
			continue
		}
		if firstNote == secondNote {
			continue
		}

		motion := firstNote.DistanceTo(secondNote)
		if motion.IsDescending() && motion.Abs().Number == 2 {
			continue
		}

		return &Violation{Rule: r.Name(), Voices: []Voice{voice}, Interval: &motion}
	}
	return nil
}

// MelodicIntervalsRule forbids augmented melodic intervals, and
// diminished ones other than an exact diminished fifth.
type MelodicIntervalsRule struct{}

func (MelodicIntervalsRule) Name() string { return "forbidden melodic interval" }

func (r MelodicIntervalsRule) Evaluate(_ theory.Key, _, _ RomanChord, first, second Voicing) *Violation {
	for _, voice := range Voices {
		firstNote := first.Note(voice)
		secondNote := second.Note(voice)

		if firstNote == secondNote {
			continue
		}

		motion := firstNote.DistanceTo(secondNote)

		switch motion.Qual.Kind {
		case theory.QualityAugmented:
			return &Violation{Rule: r.Name(), Voices: []Voice{voice}, Interval: &motion}
		case theory.QualityDiminished:
			if motion.Abs() != theory.DiminishedFifth {
				return &Violation{Rule: r.Name(), Voices: []Voice{voice}, Interval: &motion}
			}
		}
	}
	return nil
}
