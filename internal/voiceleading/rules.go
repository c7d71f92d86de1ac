package voiceleading

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// Violation reports a broken voice-leading rule, the voices involved
// and, when relevant, the offending interval.
type Violation struct {
	Rule     string
	Voices   []Voice
	Interval *theory.Interval
}

func (v *Violation) String() string {
	if v == nil {
		return "none"
	}

	var b strings.Builder
	b.WriteString(v.Rule)

	if len(v.Voices) > 0 {
		names := make([]string, len(v.Voices))
		for i, voice := range v.Voices {
			names[i] = voice.String()
		}
		fmt.Fprintf(&b, " (%s", strings.Join(names, ", "))
		if v.Interval != nil {
			fmt.Fprintf(&b, ": %s", v.Interval)
		}
		b.WriteString(")")
	}

	return b.String()
}

// VoicingRule is a hard constraint on a single voicing of a chord.
// Evaluate returns nil when the voicing satisfies the rule.
type VoicingRule interface {
	Name() string
	Evaluate(key theory.Key, chord RomanChord, voicing Voicing) *Violation
}

// TransitionRule is a hard constraint on the move between two
// consecutive voicings. Evaluate returns nil when the transition
// satisfies the rule.
type TransitionRule interface {
	Name() string
	Evaluate(key theory.Key, from, to RomanChord, first, second Voicing) *Violation
}

// VoicingScorer assigns a non-negative penalty to a single voicing;
// lower is better.
type VoicingScorer interface {
	Name() string
	Score(key theory.Key, chord RomanChord, voicing Voicing) int
}

// TransitionScorer assigns a non-negative penalty to the move between
// two consecutive voicings; lower is better.
type TransitionScorer interface {
	Name() string
	Score(key theory.Key, from, to RomanChord, first, second Voicing) int
}

// weightedTransitionScorer multiplies an underlying scorer's penalty.
type weightedTransitionScorer struct {
	TransitionScorer
	weight int
}

func (w weightedTransitionScorer) Score(key theory.Key, from, to RomanChord, first, second Voicing) int {
	return w.weight * w.TransitionScorer.Score(key, from, to, first, second)
}

// Weighted wraps a transition scorer so its penalty is multiplied by
// the given weight.
func Weighted(s TransitionScorer, weight int) TransitionScorer {
	return weightedTransitionScorer{TransitionScorer: s, weight: weight}
}

// DefaultVoicingRules returns the hard constraints every voicing must
// satisfy.
func DefaultVoicingRules() []VoicingRule {
	return []VoicingRule{
		VoiceRangesRule{},
		SpacingRule{},
		CompletelyVoicedRule{},
		CorrectBassRule{},
		RootPositionDoublingRule{},
		SixFourDoublingRule{},
		NoDoubledTendencyTonesRule{},
	}
}

// DefaultTransitionRules returns the hard constraints every move
// between consecutive voicings must satisfy.
func DefaultTransitionRules() []TransitionRule {
	return []TransitionRule{
		ParallelIntervalRule{Interval: theory.PerfectUnison},
		ParallelIntervalRule{Interval: theory.PerfectFifth},
		ParallelIntervalRule{Interval: theory.PerfectOctave},
		UnequalFifthsRule{},
		DirectFifthsOctavesRule{},
		SimilarIntoUnisonRule{},
		LeadingToneResolutionRule{},
		ChordalSeventhResolutionRule{},
		MelodicIntervalsRule{},
	}
}

// DefaultVoicingScorers returns the per-voicing soft scorers. None are
// registered by default.
func DefaultVoicingScorers() []VoicingScorer {
	return nil
}

// DefaultTransitionScorers returns the per-transition soft scorers
// with their standard weights.
func DefaultTransitionScorers() []TransitionScorer {
	return []TransitionScorer{
		Weighted(OuterVoiceMotionScore{}, 2),
		Weighted(MelodicSmoothnessScore{}, 2),
		Weighted(CommonTonesScore{}, 1),
	}
}

// CheckVoicing evaluates the voicing rules in order and returns the
// first violation, or nil.
func CheckVoicing(rules []VoicingRule, key theory.Key, chord RomanChord, voicing Voicing) *Violation {
	for _, rule := range rules {
		if v := rule.Evaluate(key, chord, voicing); v != nil {
			return v
		}
	}
	return nil
}

// CheckTransition evaluates the transition rules in order and returns
// the first violation, or nil.
func CheckTransition(rules []TransitionRule, key theory.Key, from, to RomanChord, first, second Voicing) *Violation {
	for _, rule := range rules {
		if v := rule.Evaluate(key, from, to, first, second); v != nil {
			return v
		}
	}
	return nil
}

// ScoreVoicing sums the voicing scorers' penalties.
func ScoreVoicing(scorers []VoicingScorer, key theory.Key, chord RomanChord, voicing Voicing) int {
	total := 0
	for _, s := range scorers {
		total += s.Score(key, chord, voicing)
	}
	return total
}

// ScoreTransition sums the transition scorers' penalties.
func ScoreTransition(scorers []TransitionScorer, key theory.Key, from, to RomanChord, first, second Voicing) int {
	total := 0
	for _, s := range scorers {
		total += s.Score(key, from, to, first, second)
	}
	return total
}
