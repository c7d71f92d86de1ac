package services

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/voiceleading"
)

const (
	defaultBeatsPerChord = 4.0
	chordArticulation    = 0.95

	sopranoVelocity = 96
	innerVelocity   = 80
	bassVelocity    = 90
)

// voiceVelocities gives the outer voices a little more weight than the
// inner ones, soprano to bass.
var voiceVelocities = [voiceleading.NumVoices]int{
	sopranoVelocity,
	innerVelocity,
	innerVelocity,
	bassVelocity,
}

// VoicingsToNoteEvents renders a voicing sequence as MIDI note events,
// one chord per bar of beatsPerChord beats. Pass beatsPerChord <= 0 for
// the default.
func VoicingsToNoteEvents(voicings []voiceleading.Voicing, beatsPerChord float64) []models.NoteEvent {
	if beatsPerChord <= 0 {
		beatsPerChord = defaultBeatsPerChord
	}

	events := make([]models.NoteEvent, 0, len(voicings)*voiceleading.NumVoices)
	for i, voicing := range voicings {
		start := float64(i) * beatsPerChord
		for _, voice := range voiceleading.Voices {
			events = append(events, models.NoteEvent{
				MidiNoteNumber: voicing.Note(voice).MIDI(),
				Velocity:       voiceVelocities[voice],
				StartBeats:     start,
				DurationBeats:  beatsPerChord * chordArticulation,
			})
		}
	}
	return events
}
