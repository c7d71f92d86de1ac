package voiceleading

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// TransitionKey addresses one candidate pair across two adjacent
// chords by their indices in the respective candidate slices.
type TransitionKey struct {
	From int
	To   int
}

// TransitionTable maps each candidate pair that survives the pairwise
// hard constraints to its transition penalty. Pairs absent from the
// table are invalid.
type TransitionTable map[TransitionKey]int

// BuildTransitionTable evaluates every candidate pair between two
// adjacent chords against the pairwise hard constraints and records a
// penalty for each surviving pair.
func (rs RuleSet) BuildTransitionTable(key theory.Key, from, to RomanChord, fromCandidates, toCandidates []CandidateVoicing) TransitionTable {
	table := make(TransitionTable)

	for i, first := range fromCandidates {
		for j, second := range toCandidates {
			if CheckTransition(rs.TransitionRules, key, from, to, first.Voicing, second.Voicing) != nil {
				continue
			}

			table[TransitionKey{From: i, To: j}] = ScoreTransition(
				rs.TransitionScorers, key, from, to, first.Voicing, second.Voicing,
			)
		}
	}
	return table
}

// BuildTransitionTable builds a transition table under the default
// rule catalog.
func BuildTransitionTable(key theory.Key, from, to RomanChord, fromCandidates, toCandidates []CandidateVoicing) TransitionTable {
	return DefaultRuleSet().BuildTransitionTable(key, from, to, fromCandidates, toCandidates)
}
