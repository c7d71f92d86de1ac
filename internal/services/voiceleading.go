package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Conceptual-Machines/harmonia-api/internal/logger"
	"github.com/Conceptual-Machines/harmonia-api/internal/metrics"
	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/Conceptual-Machines/harmonia-api/internal/voiceleading"
)

// VoiceLeadingService runs searches and rule checks over the default
// rule set and records their metrics.
type VoiceLeadingService struct {
	rules        voiceleading.RuleSet
	cloudwatch   *metrics.Client
	sentry       *metrics.SentryMetrics
	defaultLimit int
}

func NewVoiceLeadingService(cw *metrics.Client, defaultLimit int) *VoiceLeadingService {
	return &VoiceLeadingService{
		rules:        voiceleading.DefaultRuleSet(),
		cloudwatch:   cw,
		sentry:       metrics.NewSentryMetrics(),
		defaultLimit: defaultLimit,
	}
}

// ParseKey builds a key from a tonic name and an optional mode name.
// An empty mode means major.
func ParseKey(tonic, mode string) (theory.Key, error) {
	pitch, err := theory.ParsePitch(tonic)
	if err != nil {
		return theory.Key{}, fmt.Errorf("invalid tonic %q: %w", tonic, err)
	}
	if strings.TrimSpace(mode) == "" {
		return theory.MajorKey(pitch), nil
	}
	m, err := theory.ParseMode(mode)
	if err != nil {
		return theory.Key{}, fmt.Errorf("invalid mode %q: %w", mode, err)
	}
	return theory.Key{Tonic: pitch, Mode: m}, nil
}

func parseVoicing(names []string) (voiceleading.Voicing, error) {
	var voicing voiceleading.Voicing
	if len(names) != voiceleading.NumVoices {
		return voicing, fmt.Errorf("voicing needs %d notes, got %d", voiceleading.NumVoices, len(names))
	}
	for i, name := range names {
		note, err := theory.ParseNote(name)
		if err != nil {
			return voicing, fmt.Errorf("invalid note %q: %w", name, err)
		}
		voicing[i] = note
	}
	return voicing, nil
}

func voicingStrings(v voiceleading.Voicing) []string {
	names := v.Strings()
	return names[:]
}

// Search finds ranked realizations of the requested progression.
func (s *VoiceLeadingService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	key, err := ParseKey(req.Tonic, req.Mode)
	if err != nil {
		return nil, err
	}
	progression, err := voiceleading.ParseProgression(req.Progression, key)
	if err != nil {
		return nil, err
	}

	var starting *voiceleading.Voicing
	if len(req.StartingVoicing) > 0 {
		voicing, err := parseVoicing(req.StartingVoicing)
		if err != nil {
			return nil, err
		}
		starting = &voicing
	}

	limit := s.defaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	start := time.Now()
	solutions := s.rules.Search(key, progression, starting)
	duration := time.Since(start)

	candidateCount := 0
	for _, chord := range progression {
		candidateCount += len(s.rules.GenerateCandidateVoicings(key, chord))
	}

	resp := &models.SearchResponse{
		Key:       key.String(),
		Solutions: []models.SolutionResponse{},
		Stats: models.SearchStats{
			SolutionCount:  len(solutions),
			CandidateCount: candidateCount,
			DurationMS:     duration.Milliseconds(),
		},
	}
	for _, chord := range progression {
		resp.Progression = append(resp.Progression, chord.String())
	}

	if len(solutions) > 0 {
		best := solutions[0].Score
		resp.Stats.BestScore = &best

		scores := make([]float64, len(solutions))
		for i, sol := range solutions {
			scores[i] = float64(sol.Score)
		}
		resp.Stats.MeanScore = stat.Mean(scores, nil)
		if len(scores) > 1 {
			resp.Stats.ScoreStdDev = stat.StdDev(scores, nil)
		}
	}

	returned := solutions
	if limit > 0 && len(returned) > limit {
		returned = returned[:limit]
	}
	for _, sol := range returned {
		voicings := make([][]string, len(sol.Voicings))
		for i, v := range sol.Voicings {
			voicings[i] = voicingStrings(v)
		}
		resp.Solutions = append(resp.Solutions, models.SolutionResponse{
			Score:    sol.Score,
			Voicings: voicings,
			Notes:    VoicingsToNoteEvents(sol.Voicings, defaultBeatsPerChord),
		})
	}

	logger.LogSearchRequest(ctx, key.String(), duration, candidateCount, len(solutions), logger.Fields{
		"progression": req.Progression,
		"limit":       limit,
	})
	if s.cloudwatch != nil {
		s.cloudwatch.RecordSearch(duration, candidateCount, len(solutions), len(solutions) > 0)
	}
	s.sentry.RecordSearch(ctx, key.String(), duration, candidateCount, len(solutions), len(solutions) > 0)

	return resp, nil
}

// Check validates an explicit voicing sequence against the rules.
// A rule violation is reported in the response, not as an error;
// errors are reserved for malformed requests.
func (s *VoiceLeadingService) Check(ctx context.Context, req models.CheckRequest) (*models.CheckResponse, error) {
	key, err := ParseKey(req.Tonic, req.Mode)
	if err != nil {
		return nil, err
	}
	progression, err := voiceleading.ParseProgression(req.Progression, key)
	if err != nil {
		return nil, err
	}
	if len(req.Voicings) != len(progression) {
		return nil, fmt.Errorf("progression has %d chords but %d voicings were given",
			len(progression), len(req.Voicings))
	}

	voicings := make([]voiceleading.Voicing, len(req.Voicings))
	for i, names := range req.Voicings {
		voicing, err := parseVoicing(names)
		if err != nil {
			return nil, fmt.Errorf("voicing %d: %w", i, err)
		}
		voicings[i] = voicing
	}

	score, err := s.rules.CheckVoiceLeading(key, progression, voicings)
	if err != nil {
		vlErr, ok := err.(*voiceleading.VoiceLeadingError)
		if !ok {
			return nil, err
		}
		resp := &models.CheckResponse{
			Valid:    false,
			Position: &vlErr.Position,
			Rule:     vlErr.Violation.Rule,
		}
		for _, voice := range vlErr.Violation.Voices {
			resp.Voices = append(resp.Voices, voice.String())
		}
		return resp, nil
	}

	return &models.CheckResponse{Valid: true, Score: &score}, nil
}

// GenerateVoicings lists every voicing of one chord that passes the
// single-voicing rules.
func (s *VoiceLeadingService) GenerateVoicings(ctx context.Context, req models.GenerateVoicingsRequest) (*models.GenerateVoicingsResponse, error) {
	key, err := ParseKey(req.Tonic, req.Mode)
	if err != nil {
		return nil, err
	}
	chord, err := voiceleading.ParseNumeral(req.Chord, key)
	if err != nil {
		return nil, err
	}

	candidates := s.rules.GenerateCandidateVoicings(key, chord)
	resp := &models.GenerateVoicingsResponse{
		Key:      key.String(),
		Chord:    chord.String(),
		Count:    len(candidates),
		Voicings: make([][]string, len(candidates)),
	}
	for i, candidate := range candidates {
		resp.Voicings[i] = voicingStrings(candidate.Voicing)
	}
	return resp, nil
}
