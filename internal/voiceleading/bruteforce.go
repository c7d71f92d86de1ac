package voiceleading

import (
	"sort"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// BruteForceSearch enumerates the same solution set as Search without
// transition tables: it extends voicing sequences one chord at a time
// and re-evaluates the rule predicates directly on every pair it
// visits. It exists as an independent oracle for cross-checking the
// table-driven engine and is far too slow for long progressions.
func (rs RuleSet) BruteForceSearch(key theory.Key, progression []RomanChord, starting *Voicing) []Solution {
	if len(progression) == 0 {
		return nil
	}

	layers := make([][]CandidateVoicing, len(progression))
	for i, chord := range progression {
		if i == 0 && starting != nil {
			if CheckVoicing(rs.VoicingRules, key, chord, *starting) != nil {
				return nil
			}
			layers[0] = []CandidateVoicing{{
				Voicing: *starting,
				Score:   ScoreVoicing(rs.VoicingScorers, key, chord, *starting),
			}}
			continue
		}
		layers[i] = rs.GenerateCandidateVoicings(key, chord)
	}

	var solutions []Solution
	prefix := make([]Voicing, 0, len(progression))

	var extend func(position, score int)
	extend = func(position, score int) {
		if position == len(progression) {
			voicings := make([]Voicing, len(prefix))
			copy(voicings, prefix)
			solutions = append(solutions, Solution{Score: score, Voicings: voicings})
			return
		}

		chord := progression[position]
		for _, candidate := range layers[position] {
			edge := 0
			if position > 0 {
				prev := prefix[position-1]
				prevChord := progression[position-1]

				if CheckTransition(rs.TransitionRules, key, prevChord, chord, prev, candidate.Voicing) != nil {
					continue
				}
				edge = ScoreTransition(rs.TransitionScorers, key, prevChord, chord, prev, candidate.Voicing)
			}

			prefix = append(prefix, candidate.Voicing)
			extend(position+1, score+candidate.Score+edge)
			prefix = prefix[:len(prefix)-1]
		}
	}
	extend(0, 0)

	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].Score < solutions[j].Score
	})
	return solutions
}

// BruteForceSearch runs the naive enumeration under the default rule
// catalog.
func BruteForceSearch(key theory.Key, progression []RomanChord, starting *Voicing) []Solution {
	return DefaultRuleSet().BruteForceSearch(key, progression, starting)
}
