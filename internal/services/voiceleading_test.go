package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

func newTestService() *VoiceLeadingService {
	return NewVoiceLeadingService(nil, 25)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		tonic   string
		mode    string
		want    string
		wantErr bool
	}{
		{name: "default mode is major", tonic: "C", want: "C major"},
		{name: "explicit minor", tonic: "A", mode: "minor", want: "A minor"},
		{name: "flat tonic", tonic: "Eb", mode: "major", want: "Eb major"},
		{name: "church mode", tonic: "D", mode: "dorian", want: "D dorian"},
		{name: "bad tonic", tonic: "H", wantErr: true},
		{name: "bad mode", tonic: "C", mode: "blues", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.tonic, tt.mode)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key.String())
		})
	}
}

func TestSearchService(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Search(context.Background(), models.SearchRequest{
		Tonic:       "Eb",
		Progression: "I V6 I IV V7 I",
		StartingVoicing: []string{
			"Bb4", "Eb4", "G3", "Eb3",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Eb major", resp.Key)
	assert.Equal(t, []string{"I", "V6", "I", "IV", "V7", "I"}, resp.Progression)
	require.NotEmpty(t, resp.Solutions)
	assert.LessOrEqual(t, len(resp.Solutions), 25)

	require.NotNil(t, resp.Stats.BestScore)
	assert.Equal(t, resp.Solutions[0].Score, *resp.Stats.BestScore)
	assert.GreaterOrEqual(t, resp.Stats.MeanScore, float64(*resp.Stats.BestScore))
	assert.GreaterOrEqual(t, resp.Stats.SolutionCount, len(resp.Solutions))
	assert.Positive(t, resp.Stats.CandidateCount)

	for _, sol := range resp.Solutions {
		require.Len(t, sol.Voicings, 6)
		assert.Equal(t, []string{"Bb4", "Eb4", "G3", "Eb3"}, sol.Voicings[0])
		assert.Len(t, sol.Notes, 24)
	}
}

func TestSearchServiceUnlimited(t *testing.T) {
	svc := newTestService()

	limit := 0
	resp, err := svc.Search(context.Background(), models.SearchRequest{
		Tonic:       "C",
		Progression: "I V",
		Limit:       &limit,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Solutions, resp.Stats.SolutionCount)
}

func TestSearchServiceErrors(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  models.SearchRequest
	}{
		{"bad tonic", models.SearchRequest{Tonic: "X", Progression: "I"}},
		{"bad numeral", models.SearchRequest{Tonic: "C", Progression: "I VIII"}},
		{"bad starting note", models.SearchRequest{
			Tonic:           "C",
			Progression:     "I",
			StartingVoicing: []string{"G4", "E4", "C4", "C99"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCheckService(t *testing.T) {
	svc := newTestService()

	t.Run("valid", func(t *testing.T) {
		resp, err := svc.Check(context.Background(), models.CheckRequest{
			Tonic:       "C",
			Progression: "I V",
			Voicings: [][]string{
				{"G4", "E4", "C4", "C3"},
				{"G4", "D4", "B3", "G2"},
			},
		})
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		require.NotNil(t, resp.Score)
		assert.Equal(t, 4, *resp.Score)
	})

	t.Run("violation reported in response", func(t *testing.T) {
		resp, err := svc.Check(context.Background(), models.CheckRequest{
			Tonic:       "C",
			Progression: "I ii",
			Voicings: [][]string{
				{"G4", "E4", "C4", "C3"},
				{"A4", "F4", "D4", "D3"},
			},
		})
		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Nil(t, resp.Score)
		require.NotNil(t, resp.Position)
		assert.NotEmpty(t, resp.Rule)
	})

	t.Run("length mismatch is an error", func(t *testing.T) {
		_, err := svc.Check(context.Background(), models.CheckRequest{
			Tonic:       "C",
			Progression: "I V",
			Voicings:    [][]string{{"G4", "E4", "C4", "C3"}},
		})
		assert.Error(t, err)
	})
}

func TestGenerateVoicingsService(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GenerateVoicings(context.Background(), models.GenerateVoicingsRequest{
		Tonic: "C",
		Mode:  "major",
		Chord: "I",
	})
	require.NoError(t, err)

	assert.Equal(t, "I", resp.Chord)
	assert.Equal(t, len(resp.Voicings), resp.Count)
	require.NotEmpty(t, resp.Voicings)
	for _, names := range resp.Voicings {
		require.Len(t, names, 4)
		bass, err := theory.ParseNote(names[3])
		require.NoError(t, err)
		assert.Equal(t, theory.C.Class(), bass.Pitch.Class())
	}
}
