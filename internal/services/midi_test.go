package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/Conceptual-Machines/harmonia-api/internal/voiceleading"
)

func voicingOf(t *testing.T, soprano, alto, tenor, bass string) voiceleading.Voicing {
	t.Helper()
	var voicing voiceleading.Voicing
	for i, name := range []string{soprano, alto, tenor, bass} {
		note, err := theory.ParseNote(name)
		require.NoError(t, err)
		voicing[i] = note
	}
	return voicing
}

func TestVoicingsToNoteEvents(t *testing.T) {
	voicings := []voiceleading.Voicing{
		voicingOf(t, "G4", "E4", "C4", "C3"),
		voicingOf(t, "G4", "D4", "B3", "G2"),
	}

	events := VoicingsToNoteEvents(voicings, 4)
	require.Len(t, events, 8)

	// First chord starts at beat 0, second a bar later
	assert.Equal(t, 0.0, events[0].StartBeats)
	assert.Equal(t, 4.0, events[4].StartBeats)

	// Middle C in the tenor of the first chord
	assert.Equal(t, 60, events[2].MidiNoteNumber)
	// G2 in the bass of the second chord
	assert.Equal(t, 43, events[7].MidiNoteNumber)

	for _, e := range events {
		assert.Positive(t, e.Velocity)
		assert.InDelta(t, 4*chordArticulation, e.DurationBeats, 1e-9)
	}

	// Outer voices carry more weight than inner ones
	assert.Greater(t, events[0].Velocity, events[1].Velocity)
	assert.Greater(t, events[3].Velocity, events[2].Velocity)
}

func TestVoicingsToNoteEventsDefaultsBeats(t *testing.T) {
	voicings := []voiceleading.Voicing{voicingOf(t, "G4", "E4", "C4", "C3")}

	events := VoicingsToNoteEvents(voicings, 0)
	require.Len(t, events, 4)
	assert.InDelta(t, defaultBeatsPerChord*chordArticulation, events[0].DurationBeats, 1e-9)
}
