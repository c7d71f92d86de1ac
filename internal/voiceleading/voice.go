package voiceleading

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// Voice is one of the four parts of an SATB texture, ordered from
// highest to lowest.
type Voice int

const (
	Soprano Voice = iota
	Alto
	Tenor
	Bass
)

// NumVoices is the number of parts in a voicing.
const NumVoices = 4

// Voices lists the four voices in top-down order, the canonical
// iteration order for every rule.
var Voices = [NumVoices]Voice{Soprano, Alto, Tenor, Bass}

var voiceNames = [NumVoices]string{"soprano", "alto", "tenor", "bass"}

func (v Voice) String() string {
	if v < 0 || int(v) >= NumVoices {
		return "unknown"
	}
	return voiceNames[v]
}

// VoiceRange is a closed range of notes a voice may sing.
type VoiceRange struct {
	Min theory.Note
	Max theory.Note
}

// Contains reports whether the note lies inside the range.
func (r VoiceRange) Contains(n theory.Note) bool {
	return r.Min.Compare(n) <= 0 && n.Compare(r.Max) <= 0
}

// Fixed registers for each voice.
var voiceRanges = [NumVoices]VoiceRange{
	Soprano: {theory.NewNote(theory.C, 4), theory.NewNote(theory.G, 5)},
	Alto:    {theory.NewNote(theory.G, 3), theory.NewNote(theory.D, 5)},
	Tenor:   {theory.NewNote(theory.C, 3), theory.NewNote(theory.G, 4)},
	Bass:    {theory.NewNote(theory.E, 2), theory.NewNote(theory.D, 4)},
}

// Range returns the voice's fixed register.
func (v Voice) Range() VoiceRange {
	return voiceRanges[v]
}

// Voicing assigns one registered note to each voice, indexed by Voice.
// The type enforces nothing about its content; validity is the rule
// set's concern.
type Voicing [NumVoices]theory.Note

// NewVoicing builds a voicing from soprano down to bass.
func NewVoicing(soprano, alto, tenor, bass theory.Note) Voicing {
	return Voicing{soprano, alto, tenor, bass}
}

// Note returns the note sung by the given voice.
func (v Voicing) Note(voice Voice) theory.Note {
	return v[voice]
}

// PitchClassSet returns the set of pitch classes sounding in the
// voicing.
func (v Voicing) PitchClassSet() theory.PitchClassSet {
	var set theory.PitchClassSet
	for _, n := range v {
		set = set.With(n.Pitch.Class())
	}
	return set
}

// Strings renders the voicing as note names from soprano to bass.
func (v Voicing) Strings() [NumVoices]string {
	var names [NumVoices]string
	for i, n := range v {
		names[i] = n.String()
	}
	return names
}
