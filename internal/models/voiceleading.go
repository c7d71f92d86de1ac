package models

// SearchRequest asks for ranked four-part realizations of a numeral
// progression in a key.
type SearchRequest struct {
	Tonic       string `json:"tonic" binding:"required"` // e.g. "Eb"
	Mode        string `json:"mode"`                     // "major" (default), "minor", or a mode name
	Progression string `json:"progression" binding:"required"`

	// Optional fixed first voicing, soprano to bass, e.g.
	// ["Bb4", "Eb4", "G3", "Eb3"].
	StartingVoicing []string `json:"starting_voicing,omitempty"`

	// Maximum number of solutions to return; the configured default
	// applies when omitted, 0 means unlimited.
	Limit *int `json:"limit,omitempty"`
}

// SolutionResponse is one ranked realization
type SolutionResponse struct {
	Score    int         `json:"score"`
	Voicings [][]string  `json:"voicings"` // per chord, soprano to bass
	Notes    []NoteEvent `json:"notes"`
}

// SearchStats summarizes a search run
type SearchStats struct {
	SolutionCount  int     `json:"solution_count"` // before the limit is applied
	CandidateCount int     `json:"candidate_count"`
	BestScore      *int    `json:"best_score,omitempty"`
	MeanScore      float64 `json:"mean_score"`
	ScoreStdDev    float64 `json:"score_std_dev"`
	DurationMS     int64   `json:"duration_ms"`
}

// SearchResponse carries the ranked solutions plus run statistics
type SearchResponse struct {
	Key         string             `json:"key"`
	Progression []string           `json:"progression"`
	Solutions   []SolutionResponse `json:"solutions"`
	Stats       SearchStats        `json:"stats"`
}

// CheckRequest asks whether a concrete voicing sequence satisfies the
// part-writing rules.
type CheckRequest struct {
	Tonic       string     `json:"tonic" binding:"required"`
	Mode        string     `json:"mode"`
	Progression string     `json:"progression" binding:"required"`
	Voicings    [][]string `json:"voicings" binding:"required"` // per chord, soprano to bass
}

// CheckResponse reports the verdict; on failure Position/Rule/Voices
// identify the first broken rule.
type CheckResponse struct {
	Valid    bool     `json:"valid"`
	Score    *int     `json:"score,omitempty"`
	Position *int     `json:"position,omitempty"`
	Rule     string   `json:"rule,omitempty"`
	Voices   []string `json:"voices,omitempty"`
}

// GenerateVoicingsRequest asks for the legal voicings of one chord
type GenerateVoicingsRequest struct {
	Tonic string `json:"tonic" binding:"required"`
	Mode  string `json:"mode"`
	Chord string `json:"chord" binding:"required"` // numeral, e.g. "V65"
}

// GenerateVoicingsResponse lists every voicing of the chord that
// passes the single-voicing rules.
type GenerateVoicingsResponse struct {
	Key      string     `json:"key"`
	Chord    string     `json:"chord"`
	Count    int        `json:"count"`
	Voicings [][]string `json:"voicings"`
}

// SaveProgressionRequest stores a progression, optionally with its
// best realization.
type SaveProgressionRequest struct {
	Name        string `json:"name" binding:"required"`
	Tonic       string `json:"tonic" binding:"required"`
	Mode        string `json:"mode"`
	Progression string `json:"progression" binding:"required"`
	Solve       bool   `json:"solve"` // when true, attach the best found realization
}
