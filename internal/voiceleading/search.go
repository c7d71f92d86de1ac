package voiceleading

import (
	"sort"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// Solution is one complete rule-satisfying voicing sequence for a
// progression, with its total penalty score.
type Solution struct {
	Score    int
	Voicings []Voicing
}

// Search enumerates every voicing sequence for the progression that
// satisfies all hard constraints, sorted ascending by total penalty.
//
// The progression is modeled as a layered graph: the candidates for
// chord i form layer i, and an edge connects two candidates in
// adjacent layers iff the pairwise hard constraints hold. Candidate
// sets and transition tables are built once up front; the backtracking
// walk then only follows edges present in the tables. When a starting
// voicing is given, layer 0 holds exactly that voicing (which must
// itself satisfy the single-voicing constraints). An empty progression
// yields no solutions.
func (rs RuleSet) Search(key theory.Key, progression []RomanChord, starting *Voicing) []Solution {
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

	tables := make([]TransitionTable, len(progression)-1)
	for i := 0; i < len(progression)-1; i++ {
		tables[i] = rs.BuildTransitionTable(
			key, progression[i], progression[i+1], layers[i], layers[i+1],
		)
	}

	var solutions []Solution
	path := make([]int, len(progression))

	var walk func(layer, score int)
	walk = func(layer, score int) {
		if layer == len(progression) {
			voicings := make([]Voicing, len(path))
			for i, idx := range path {
				voicings[i] = layers[i][idx].Voicing
			}
			solutions = append(solutions, Solution{Score: score, Voicings: voicings})
			return
		}

		for idx, candidate := range layers[layer] {
			edge := 0
			if layer > 0 {
				weight, ok := tables[layer-1][TransitionKey{From: path[layer-1], To: idx}]
				if !ok {
					continue
				}
				edge = weight
			}

			path[layer] = idx
			walk(layer+1, score+candidate.Score+edge)
		}
	}
	walk(0, 0)

	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].Score < solutions[j].Score
	})
	return solutions
}

// Search runs the layered search under the default rule catalog.
func Search(key theory.Key, progression []RomanChord, starting *Voicing) []Solution {
	return DefaultRuleSet().Search(key, progression, starting)
}
