package voiceleading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

func cadenceProgression(t *testing.T, key theory.Key) []RomanChord {
	t.Helper()

	progression, err := ParseProgression("I V6 I IV V7 I", key)
	require.NoError(t, err)
	return progression
}

func TestSearchMatchesBruteForce(t *testing.T) {
	key := theory.MajorKey(theory.EFlat)
	progression := cadenceProgression(t, key)
	starting := voicingOf(t, "Bb4", "Eb4", "G3", "Eb3")

	fast := Search(key, progression, &starting)
	slow := BruteForceSearch(key, progression, &starting)

	require.NotEmpty(t, fast)
	assert.Equal(t, slow, fast)
}

func TestSearchEmptyProgression(t *testing.T) {
	key := theory.MajorKey(theory.C)

	assert.Empty(t, Search(key, nil, nil))
	assert.Empty(t, BruteForceSearch(key, nil, nil))
}

func TestSearchSortedAscending(t *testing.T) {
	key := theory.MajorKey(theory.C)
	progression, err := ParseProgression("I IV V I", key)
	require.NoError(t, err)

	solutions := Search(key, progression, nil)
	require.NotEmpty(t, solutions)

	for i := 1; i < len(solutions); i++ {
		assert.LessOrEqual(t, solutions[i-1].Score, solutions[i].Score)
	}
}

func TestSearchNoSolutionForWrongStartingBass(t *testing.T) {
	key := theory.MajorKey(theory.EFlat)
	progression := cadenceProgression(t, key)

	// G in the bass implies a first inversion the progression does not
	// ask for; the correct-bass rule rejects the only layer-0 candidate.
	starting := voicingOf(t, "Bb4", "Eb4", "Eb4", "G3")

	assert.Empty(t, Search(key, progression, &starting))
	assert.Empty(t, BruteForceSearch(key, progression, &starting))
}

func TestSearchDeterministic(t *testing.T) {
	key := theory.MajorKey(theory.EFlat)
	progression := cadenceProgression(t, key)
	starting := voicingOf(t, "Bb4", "Eb4", "G3", "Eb3")

	first := Search(key, progression, &starting)
	second := Search(key, progression, &starting)
	assert.Equal(t, first, second)
}

func TestSearchSolutionsSurviveRecheck(t *testing.T) {
	key := theory.MajorKey(theory.EFlat)
	progression := cadenceProgression(t, key)
	starting := voicingOf(t, "Bb4", "Eb4", "G3", "Eb3")

	solutions := Search(key, progression, &starting)
	require.NotEmpty(t, solutions)

	for _, solution := range solutions[:min(len(solutions), 25)] {
		score, err := CheckVoiceLeading(key, progression, solution.Voicings)
		require.NoError(t, err)
		assert.Equal(t, solution.Score, score)
	}
}

func TestCheckVoiceLeadingReportsPosition(t *testing.T) {
	key := theory.MajorKey(theory.C)
	progression, err := ParseProgression("I V", key)
	require.NoError(t, err)

	voicings := []Voicing{
		voicingOf(t, "G4", "E4", "C4", "C3"),
		voicingOf(t, "G4", "D4", "B3", "C3"), // wrong bass for V
	}

	_, cerr := CheckVoiceLeading(key, progression, voicings)
	require.Error(t, cerr)

	var vlErr *VoiceLeadingError
	require.ErrorAs(t, cerr, &vlErr)
	assert.Equal(t, 1, vlErr.Position)

	_, cerr = CheckVoiceLeading(key, progression, voicings[:1])
	assert.Error(t, cerr, "length mismatch")
}
