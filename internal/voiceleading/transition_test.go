package voiceleading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

func TestTransitionTableClosure(t *testing.T) {
	key := theory.MajorKey(theory.EFlat)
	rs := DefaultRuleSet()

	pairs := [][2]string{
		{"I", "V6"},
		{"V6", "I"},
		{"IV", "V7"},
		{"V7", "I"},
	}

	for _, pair := range pairs {
		t.Run(pair[0]+" to "+pair[1], func(t *testing.T) {
			from := chordOf(t, pair[0], key)
			to := chordOf(t, pair[1], key)

			fromCandidates := rs.GenerateCandidateVoicings(key, from)
			toCandidates := rs.GenerateCandidateVoicings(key, to)
			require.NotEmpty(t, fromCandidates)
			require.NotEmpty(t, toCandidates)

			table := rs.BuildTransitionTable(key, from, to, fromCandidates, toCandidates)
			assert.NotEmpty(t, table)

			for i, first := range fromCandidates {
				for j, second := range toCandidates {
					violation := CheckTransition(rs.TransitionRules, key, from, to, first.Voicing, second.Voicing)
					weight, ok := table[TransitionKey{From: i, To: j}]

					if violation != nil {
						assert.False(t, ok, "invalid pair (%d,%d) present in table: %s", i, j, violation)
						continue
					}

					require.True(t, ok, "valid pair (%d,%d) missing from table", i, j)
					assert.Equal(t,
						ScoreTransition(rs.TransitionScorers, key, from, to, first.Voicing, second.Voicing),
						weight,
					)
				}
			}
		})
	}
}
