package voiceleading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

func pitchNames(pitches []theory.Pitch) []string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = p.String()
	}
	return names
}

func TestDiatonicChordQualities(t *testing.T) {
	tests := []struct {
		name        string
		key         theory.Key
		degree      int
		withSeventh bool
		triad       Quality
		seventh     Quality
	}{
		{name: "I in major", key: theory.MajorKey(theory.C), degree: 1, triad: Major},
		{name: "ii in major", key: theory.MajorKey(theory.C), degree: 2, triad: Minor},
		{name: "vii in major", key: theory.MajorKey(theory.C), degree: 7, triad: Diminished},
		{name: "V in minor is raised", key: theory.MinorKey(theory.A), degree: 5, triad: Major},
		{name: "vii in minor is raised", key: theory.MinorKey(theory.A), degree: 7, triad: Diminished},
		{name: "III in minor", key: theory.MinorKey(theory.A), degree: 3, triad: Major},
		{
			name: "V7 in major", key: theory.MajorKey(theory.EFlat),
			degree: 5, withSeventh: true, triad: Major, seventh: Minor,
		},
		{
			name: "vii7 in minor is fully diminished", key: theory.MinorKey(theory.A),
			degree: 7, withSeventh: true, triad: Diminished, seventh: Diminished,
		},
		{
			name: "I7 in major", key: theory.MajorKey(theory.C),
			degree: 1, withSeventh: true, triad: Major, seventh: Major,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, err := DiatonicChord(tt.degree, tt.key, tt.withSeventh)
			require.NoError(t, err)

			assert.Equal(t, tt.triad, chord.TriadQuality)
			assert.Equal(t, tt.withSeventh, chord.HasSeventh)
			if tt.withSeventh {
				assert.Equal(t, tt.seventh, chord.SeventhQuality)
			}
		})
	}
}

func TestChordPitchesAndBass(t *testing.T) {
	ebMajor := theory.MajorKey(theory.EFlat)
	aMinor := theory.MinorKey(theory.A)

	tests := []struct {
		name    string
		key     theory.Key
		chord   string
		pitches []string
		bass    string
	}{
		{name: "tonic", key: ebMajor, chord: "I", pitches: []string{"Eb", "G", "Bb"}, bass: "Eb"},
		{name: "dominant first inversion", key: ebMajor, chord: "V6", pitches: []string{"Bb", "D", "F"}, bass: "D"},
		{name: "dominant seventh", key: ebMajor, chord: "V7", pitches: []string{"Bb", "D", "F", "Ab"}, bass: "Bb"},
		{name: "subdominant", key: ebMajor, chord: "IV", pitches: []string{"Ab", "C", "Eb"}, bass: "Ab"},
		{name: "minor dominant is raised", key: aMinor, chord: "V", pitches: []string{"E", "G#", "B"}, bass: "E"},
		{name: "minor leading-tone seventh", key: aMinor, chord: "viio43", pitches: []string{"G#", "B", "D", "F"}, bass: "D"},
		{name: "six-four bass is the fifth", key: ebMajor, chord: "I64", pitches: []string{"Eb", "G", "Bb"}, bass: "Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord, err := ParseNumeral(tt.chord, tt.key)
			require.NoError(t, err)

			assert.Equal(t, tt.pitches, pitchNames(chord.Pitches(tt.key)))
			assert.Equal(t, tt.bass, chord.Bass(tt.key).String())
		})
	}
}

func TestChordConstructionRejectsBadInversions(t *testing.T) {
	_, err := NewTriad(1, Major, 3)
	assert.Error(t, err, "a triad has no third inversion")

	_, err = NewSeventhChord(5, Major, Minor, 4)
	assert.Error(t, err)

	_, err = NewTriad(8, Major, 0)
	assert.Error(t, err, "degree must be 1-7")

	chord, err := NewSeventhChord(5, Major, Minor, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, chord.Len())
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord RomanChord
		want  string
	}{
		{mustTriad(t, 1, Major, 0), "I"},
		{mustTriad(t, 2, Minor, 0), "ii"},
		{mustTriad(t, 5, Major, 1), "V6"},
		{mustTriad(t, 1, Major, 2), "I64"},
		{mustTriad(t, 7, Diminished, 0), "viio"},
		{mustTriad(t, 3, Augmented, 0), "III+"},
		{mustSeventh(t, 5, Major, Minor, 0), "V7"},
		{mustSeventh(t, 5, Major, Minor, 1), "V65"},
		{mustSeventh(t, 7, Diminished, Diminished, 1), "viio65"},
		{mustSeventh(t, 2, Minor, Minor, 3), "ii42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.chord.String())
	}
}

func TestLeadingTone(t *testing.T) {
	assert.Equal(t, "B", LeadingTone(theory.MajorKey(theory.C)).String())
	assert.Equal(t, "G#", LeadingTone(theory.MinorKey(theory.A)).String())
	assert.Equal(t, "D", LeadingTone(theory.MajorKey(theory.EFlat)).String())

	dorian := theory.NewKey(theory.D, theory.Dorian)
	assert.False(t, ModeHasRaisedLeadingTone(dorian.Mode))
	assert.Equal(t, "C", LeadingTone(dorian).String())
}

func mustTriad(t *testing.T, degree int, quality Quality, inversion int) RomanChord {
	t.Helper()
	chord, err := NewTriad(degree, quality, inversion)
	require.NoError(t, err)
	return chord
}

func mustSeventh(t *testing.T, degree int, triad, seventh Quality, inversion int) RomanChord {
	t.Helper()
	chord, err := NewSeventhChord(degree, triad, seventh, inversion)
	require.NoError(t, err)
	return chord
}
