package voiceleading

import (
	"fmt"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// VoiceLeadingError pinpoints the progression position and rule a
// voicing sequence broke.
type VoiceLeadingError struct {
	Position  int
	Violation *Violation
}

func (e *VoiceLeadingError) Error() string {
	return fmt.Sprintf("chord %d: %s", e.Position, e.Violation)
}

// CheckVoiceLeading validates a complete voicing sequence against the
// rule set and returns its total penalty score. The first broken rule
// is reported with its progression position.
func (rs RuleSet) CheckVoiceLeading(key theory.Key, progression []RomanChord, voicings []Voicing) (int, error) {
	if len(progression) != len(voicings) {
		return 0, fmt.Errorf("progression has %d chords but %d voicings were given", len(progression), len(voicings))
	}

	score := 0

	for i, chord := range progression {
		if v := CheckVoicing(rs.VoicingRules, key, chord, voicings[i]); v != nil {
			return 0, &VoiceLeadingError{Position: i, Violation: v}
		}
		score += ScoreVoicing(rs.VoicingScorers, key, chord, voicings[i])
	}

	for i := 0; i < len(progression)-1; i++ {
		v := CheckTransition(rs.TransitionRules, key, progression[i], progression[i+1], voicings[i], voicings[i+1])
		if v != nil {
			return 0, &VoiceLeadingError{Position: i, Violation: v}
		}
		score += ScoreTransition(rs.TransitionScorers, key, progression[i], progression[i+1], voicings[i], voicings[i+1])
	}

	return score, nil
}

// CheckVoiceLeading validates a voicing sequence under the default
// rule catalog.
func CheckVoiceLeading(key theory.Key, progression []RomanChord, voicings []Voicing) (int, error) {
	return DefaultRuleSet().CheckVoiceLeading(key, progression, voicings)
}
