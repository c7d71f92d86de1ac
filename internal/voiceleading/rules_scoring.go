package voiceleading

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// OuterVoiceMotionScore penalizes the motion type between soprano and
// bass: oblique is free, contrary cheap, similar dearer, parallel
// worst.
type OuterVoiceMotionScore struct{}

func (OuterVoiceMotionScore) Name() string { return "outer-voice motion" }

func (OuterVoiceMotionScore) Score(_ theory.Key, _, _ RomanChord, first, second Voicing) int {
	switch MotionBetween(Soprano, Bass, first, second) {
	case Oblique:
		return 0
	case Contrary:
		return 1
	case Similar:
		return 2
	default:
		return 4
	}
}

// MelodicSmoothnessScore penalizes each voice's leap size in tiers of
// absolute simple semitone motion. Steps are free; a leap of a seventh
// or octave costs the most.
type MelodicSmoothnessScore struct{}

func (MelodicSmoothnessScore) Name() string { return "melodic smoothness" }

func (MelodicSmoothnessScore) Score(_ theory.Key, _, _ RomanChord, first, second Voicing) int {
	penalty := 0

	for _, voice := range Voices {
		firstNote := first.Note(voice)
		secondNote := second.Note(voice)

		if firstNote == secondNote {
			continue
		}

		semis := firstNote.DistanceTo(secondNote).Simple().Abs().Semitones()
		if semis < 0 {
			semis = -semis
		}

		switch {
		case semis <= 2:
		case semis <= 4:
			penalty += 1
		case semis <= 6:
			penalty += 2
		case semis == 7:
			penalty += 4
		default:
			penalty += 8
		}
	}

	return penalty
}

// CommonTonesScore penalizes voices that give up a pitch class shared
// by both chords instead of holding it.
type CommonTonesScore struct{}

func (CommonTonesScore) Name() string { return "abandoned common tones" }

func (CommonTonesScore) Score(key theory.Key, from, to RomanChord, first, second Voicing) int {
	common := from.PitchClassSet(key).Intersect(to.PitchClassSet(key))
	if common.IsEmpty() {
		return 0
	}

	penalty := 0
	for _, voice := range Voices {
		firstNote := first.Note(voice)

		if common.Has(firstNote.Pitch.Class()) && firstNote != second.Note(voice) {
			penalty++
		}
	}
	return penalty
}

// UnisonScore penalizes every pair of voices sounding the exact same
// note. Not part of the default scorer set.
type UnisonScore struct{}

func (UnisonScore) Name() string { return "voice unisons" }

func (UnisonScore) Score(_ theory.Key, _ RomanChord, voicing Voicing) int {
	penalty := 0
	for i := 0; i < NumVoices-1; i++ {
		for j := i + 1; j < NumVoices; j++ {
			if voicing[i] == voicing[j] {
				penalty++
			}
		}
	}
	return penalty
}
