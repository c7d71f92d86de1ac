package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/services"
)

// setupTestRouter creates a minimal test router with just the
// voice-leading endpoints (no database, no metrics)
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := NewVoiceLeadingHandler(services.NewVoiceLeadingService(nil, 25))
	router.POST("/api/voiceleading/search", handler.Search)
	router.POST("/api/voiceleading/check", handler.Check)
	router.POST("/api/voicings/generate", handler.GenerateVoicings)

	healthHandler := NewHealthHandler(nil)
	router.GET("/health", healthHandler.HealthCheck)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSearchEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/voiceleading/search", models.SearchRequest{
		Tonic:       "C",
		Progression: "I IV V I",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "C major", resp.Key)
	assert.Equal(t, []string{"I", "IV", "V", "I"}, resp.Progression)
	require.NotEmpty(t, resp.Solutions)
	assert.LessOrEqual(t, len(resp.Solutions), 25)
	assert.Positive(t, resp.Stats.SolutionCount)
	assert.Positive(t, resp.Stats.CandidateCount)
	require.NotNil(t, resp.Stats.BestScore)
	assert.Equal(t, resp.Solutions[0].Score, *resp.Stats.BestScore)

	// Solutions arrive best-first
	for i := 1; i < len(resp.Solutions); i++ {
		assert.GreaterOrEqual(t, resp.Solutions[i].Score, resp.Solutions[i-1].Score)
	}

	// Four voices per chord, four chords, with rendered MIDI
	best := resp.Solutions[0]
	require.Len(t, best.Voicings, 4)
	for _, voicing := range best.Voicings {
		assert.Len(t, voicing, 4)
	}
	assert.Len(t, best.Notes, 16)
}

func TestSearchEndpointWithStartingVoicing(t *testing.T) {
	router := setupTestRouter()

	limit := 3
	w := postJSON(t, router, "/api/voiceleading/search", models.SearchRequest{
		Tonic:           "Eb",
		Progression:     "I V6 I IV V7 I",
		StartingVoicing: []string{"Bb4", "Eb4", "G3", "Eb3"},
		Limit:           &limit,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Solutions)
	assert.LessOrEqual(t, len(resp.Solutions), limit)
	for _, sol := range resp.Solutions {
		require.Len(t, sol.Voicings, 6)
		assert.Equal(t, []string{"Bb4", "Eb4", "G3", "Eb3"}, sol.Voicings[0])
	}
}

func TestSearchEndpointRejectsBadRequests(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name string
		req  models.SearchRequest
	}{
		{"missing tonic", models.SearchRequest{Progression: "I V I"}},
		{"bad tonic", models.SearchRequest{Tonic: "H", Progression: "I V I"}},
		{"bad mode", models.SearchRequest{Tonic: "C", Mode: "blues", Progression: "I V I"}},
		{"bad numeral", models.SearchRequest{Tonic: "C", Progression: "I IX I"}},
		{"short starting voicing", models.SearchRequest{
			Tonic:           "C",
			Progression:     "I V",
			StartingVoicing: []string{"G4", "E4", "C4"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/voiceleading/search", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCheckEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("valid transition", func(t *testing.T) {
		w := postJSON(t, router, "/api/voiceleading/check", models.CheckRequest{
			Tonic:       "C",
			Progression: "I V",
			Voicings: [][]string{
				{"G4", "E4", "C4", "C3"},
				{"G4", "D4", "B3", "G2"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.CheckResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		require.NotNil(t, resp.Score)
	})

	t.Run("parallel fifths are flagged", func(t *testing.T) {
		w := postJSON(t, router, "/api/voiceleading/check", models.CheckRequest{
			Tonic:       "C",
			Progression: "I ii",
			Voicings: [][]string{
				{"G4", "E4", "C4", "C3"},
				{"A4", "F4", "D4", "D3"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.CheckResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		require.NotNil(t, resp.Position)
		assert.Equal(t, 0, *resp.Position)
		assert.NotEmpty(t, resp.Rule)
		assert.NotEmpty(t, resp.Voices)
	})

	t.Run("length mismatch is a request error", func(t *testing.T) {
		w := postJSON(t, router, "/api/voiceleading/check", models.CheckRequest{
			Tonic:       "C",
			Progression: "I V I",
			Voicings: [][]string{
				{"G4", "E4", "C4", "C3"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenerateVoicingsEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/voicings/generate", models.GenerateVoicingsRequest{
		Tonic: "C",
		Chord: "V65",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.GenerateVoicingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "C major", resp.Key)
	assert.Equal(t, "V65", resp.Chord)
	assert.Equal(t, len(resp.Voicings), resp.Count)
	require.NotEmpty(t, resp.Voicings)
	for _, voicing := range resp.Voicings {
		require.Len(t, voicing, 4)
		// First inversion of V puts the third in the bass
		assert.Equal(t, "B", voicing[3][:1])
	}
}
