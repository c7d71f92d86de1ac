package voiceleading

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// Spacing limits between adjacent voices, in semitones.
const (
	maxUpperSpacing = 12 // soprano-alto and alto-tenor: an octave
	maxLowerSpacing = 16 // tenor-bass: a major tenth
)

func countClass(voicing Voicing, pc theory.PitchClass) int {
	n := 0
	for _, note := range voicing {
		if note.Pitch.Class() == pc {
			n++
		}
	}
	return n
}

// fifthMayBeOmitted reports whether the chord's fifth is dispensable:
// only a plain major or minor triad may drop it. Diminished and
// augmented triads are defined by their fifth, and a seventh chord in
// four voices has a home for every tone.
func fifthMayBeOmitted(chord RomanChord) bool {
	if chord.HasSeventh {
		return false
	}
	return chord.TriadQuality == Major || chord.TriadQuality == Minor
}

// VoiceRangesRule requires every voice to sing within its register.
type VoiceRangesRule struct{}

func (VoiceRangesRule) Name() string { return "voice out of range" }

func (r VoiceRangesRule) Evaluate(_ theory.Key, _ RomanChord, voicing Voicing) *Violation {
	for _, voice := range Voices {
		if !voice.Range().Contains(voicing.Note(voice)) {
			return &Violation{Rule: r.Name(), Voices: []Voice{voice}}
		}
	}
	return nil
}

// SpacingRule forbids voice crossing and caps the gap between adjacent
// voices: an octave between the upper voices, a major tenth between
// tenor and bass.
type SpacingRule struct{}

func (SpacingRule) Name() string { return "spacing" }

func (r SpacingRule) Evaluate(_ theory.Key, _ RomanChord, voicing Voicing) *Violation {
	for i := 0; i < NumVoices-1; i++ {
		upper, lower := Voices[i], Voices[i+1]

		gap := voicing.Note(lower).SemitonesTo(voicing.Note(upper))
		if gap < 0 {
			return &Violation{Rule: "voice crossing", Voices: []Voice{upper, lower}}
		}

		limit := maxUpperSpacing
		if lower == Bass {
			limit = maxLowerSpacing
		}
		if gap > limit {
			return &Violation{Rule: r.Name(), Voices: []Voice{upper, lower}}
		}
	}
	return nil
}

// CompletelyVoicedRule requires every chord tone to sound. The fifth
// of a plain major or minor triad may be omitted.
type CompletelyVoicedRule struct{}

func (CompletelyVoicedRule) Name() string { return "incomplete chord" }

func (r CompletelyVoicedRule) Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	pitches := chord.Pitches(key)
	sounding := voicing.PitchClassSet()
	full := chord.PitchClassSet(key)

	if sounding == full {
		return nil
	}
	if fifthMayBeOmitted(chord) && sounding == full.Without(pitches[2].Class()) {
		return nil
	}
	return &Violation{Rule: r.Name()}
}

// CorrectBassRule requires the bass to carry the pitch the chord's
// inversion names.
type CorrectBassRule struct{}

func (CorrectBassRule) Name() string { return "wrong bass note" }

func (r CorrectBassRule) Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	if voicing.Note(Bass).Pitch != chord.Bass(key) {
		return &Violation{Rule: r.Name(), Voices: []Voice{Bass}}
	}
	return nil
}

// RootPositionDoublingRule requires a root-position triad to double
// its root. A seventh-degree chord built on a raised leading tone is
// exempt, since doubling that tone is forbidden outright.
type RootPositionDoublingRule struct{}

func (RootPositionDoublingRule) Name() string { return "root not doubled" }

func (r RootPositionDoublingRule) Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	if chord.HasSeventh || chord.Inversion != 0 {
		return nil
	}

	if chord.Degree == 7 && ModeHasRaisedLeadingTone(key.Mode) {
		return nil
	}

	if countClass(voicing, chord.RootInKey(key).Class()) < 2 {
		return &Violation{Rule: r.Name()}
	}
	return nil
}

// SixFourDoublingRule requires a six-four triad to double its bass,
// the chord fifth.
type SixFourDoublingRule struct{}

func (SixFourDoublingRule) Name() string { return "six-four bass not doubled" }

func (r SixFourDoublingRule) Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	if chord.HasSeventh || chord.Inversion != 2 {
		return nil
	}

	if countClass(voicing, chord.Bass(key).Class()) < 2 {
		return &Violation{Rule: r.Name(), Voices: []Voice{Bass}}
	}
	return nil
}

// NoDoubledTendencyTonesRule forbids doubling the leading tone or the
// chordal seventh.
type NoDoubledTendencyTonesRule struct{}

func (NoDoubledTendencyTonesRule) Name() string { return "doubled tendency tone" }

func (r NoDoubledTendencyTonesRule) Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	if countClass(voicing, LeadingTone(key).Class()) > 1 {
		return &Violation{Rule: r.Name()}
	}

	if chord.HasSeventh {
		seventh := chord.Pitches(key)[3]
		if countClass(voicing, seventh.Class()) > 1 {
			return &Violation{Rule: r.Name()}
		}
	}
	return nil
}
