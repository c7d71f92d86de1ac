package voiceleading

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// CandidateVoicing is a voicing that passed every single-voicing hard
// constraint, together with its intrinsic penalty score.
type CandidateVoicing struct {
	Voicing Voicing
	Score   int
}

// RuleSet bundles the constraint and scoring catalogs the generator
// and search engines evaluate. The zero value checks and scores
// nothing; use DefaultRuleSet for the standard part-writing rules.
type RuleSet struct {
	VoicingRules      []VoicingRule
	TransitionRules   []TransitionRule
	VoicingScorers    []VoicingScorer
	TransitionScorers []TransitionScorer
}

// DefaultRuleSet returns the standard four-part harmony rule catalog.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		VoicingRules:      DefaultVoicingRules(),
		TransitionRules:   DefaultTransitionRules(),
		VoicingScorers:    DefaultVoicingScorers(),
		TransitionScorers: DefaultTransitionScorers(),
	}
}

// notesInRange lists every registration of the given pitches that fits
// the range, in pitch order then octave order.
func notesInRange(pitches []theory.Pitch, r VoiceRange) []theory.Note {
	var notes []theory.Note
	for _, pitch := range pitches {
		for octave := r.Min.Octave - 1; octave <= r.Max.Octave+1; octave++ {
			note := theory.NewNote(pitch, octave)
			if r.Contains(note) {
				notes = append(notes, note)
			}
		}
	}
	return notes
}

// GenerateCandidateVoicings enumerates every four-voice registration
// of the chord's tones that satisfies all single-voicing hard
// constraints, each scored by the voicing scorers. The enumeration
// order is fixed, so repeated calls yield identical slices.
func (rs RuleSet) GenerateCandidateVoicings(key theory.Key, chord RomanChord) []CandidateVoicing {
	pitches := chord.Pitches(key)

	var perVoice [NumVoices][]theory.Note
	for _, voice := range Voices {
		perVoice[voice] = notesInRange(pitches, voice.Range())
	}

	var candidates []CandidateVoicing
	for _, s := range perVoice[Soprano] {
		for _, a := range perVoice[Alto] {
			for _, t := range perVoice[Tenor] {
				for _, b := range perVoice[Bass] {
					voicing := NewVoicing(s, a, t, b)

					if CheckVoicing(rs.VoicingRules, key, chord, voicing) != nil {
						continue
					}

					candidates = append(candidates, CandidateVoicing{
						Voicing: voicing,
						Score:   ScoreVoicing(rs.VoicingScorers, key, chord, voicing),
					})
				}
			}
		}
	}
	return candidates
}

// GenerateCandidateVoicings enumerates the valid voicings of a chord
// under the default rule catalog.
func GenerateCandidateVoicings(key theory.Key, chord RomanChord) []CandidateVoicing {
	return DefaultRuleSet().GenerateCandidateVoicings(key, chord)
}
