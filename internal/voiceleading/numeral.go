package voiceleading

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

var numeralDegrees = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7,
}

// ParseNumeral parses an analytical chord symbol such as "I", "ii6",
// "V7", "IV64" or "viio65" relative to a key. The numeral's case and
// quality marker (o or ° for diminished, + for augmented) override the
// diatonic triad quality; inversion figures select the inversion and
// whether the chord carries a seventh.
func ParseNumeral(s string, key theory.Key) (RomanChord, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return RomanChord{}, fmt.Errorf("empty chord symbol")
	}

	i := 0
	for i < len(rest) && (rest[i] == 'i' || rest[i] == 'v' || rest[i] == 'I' || rest[i] == 'V') {
		i++
	}
	numeral, rest := rest[:i], rest[i:]
	if numeral == "" {
		return RomanChord{}, fmt.Errorf("chord symbol %q has no roman numeral", s)
	}

	lower := numeral == strings.ToLower(numeral)
	upper := numeral == strings.ToUpper(numeral)
	if !lower && !upper {
		return RomanChord{}, fmt.Errorf("chord symbol %q mixes numeral case", s)
	}

	degree, ok := numeralDegrees[strings.ToLower(numeral)]
	if !ok {
		return RomanChord{}, fmt.Errorf("chord symbol %q has no scale degree", s)
	}

	marker := byte(0)
	rest = strings.Replace(rest, "°", "o", 1)
	if rest != "" && (rest[0] == 'o' || rest[0] == '+') {
		marker = rest[0]
		rest = rest[1:]
	}

	withSeventh := false
	inversion := 0
	switch rest {
	case "":
	case "6":
		inversion = 1
	case "64":
		inversion = 2
	case "7":
		withSeventh = true
	case "65":
		withSeventh, inversion = true, 1
	case "43":
		withSeventh, inversion = true, 2
	case "42", "2":
		withSeventh, inversion = true, 3
	default:
		return RomanChord{}, fmt.Errorf("chord symbol %q has unknown figures %q", s, rest)
	}

	chord, err := DiatonicChord(degree, key, withSeventh)
	if err != nil {
		return RomanChord{}, fmt.Errorf("chord symbol %q: %w", s, err)
	}

	switch {
	case marker == 'o':
		if !lower {
			return RomanChord{}, fmt.Errorf("chord symbol %q marks an uppercase numeral diminished", s)
		}
		chord.TriadQuality = Diminished
		if withSeventh {
			chord.SeventhQuality = Diminished
		}
	case marker == '+':
		if !upper {
			return RomanChord{}, fmt.Errorf("chord symbol %q marks a lowercase numeral augmented", s)
		}
		chord.TriadQuality = Augmented
	case lower && chord.TriadQuality == Major:
		chord.TriadQuality = Minor
	case upper && chord.TriadQuality == Minor:
		chord.TriadQuality = Major
	case upper && chord.TriadQuality == Diminished:
		return RomanChord{}, fmt.Errorf("chord symbol %q is diatonically diminished; write it lowercase with o", s)
	}

	return chord.WithInversion(inversion)
}

// ParseProgression parses a whitespace- or comma-separated sequence of
// chord symbols, e.g. "I V6 I IV V7 I".
func ParseProgression(s string, key theory.Key) ([]RomanChord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})

	progression := make([]RomanChord, 0, len(fields))
	for _, field := range fields {
		chord, err := ParseNumeral(field, key)
		if err != nil {
			return nil, err
		}
		progression = append(progression, chord)
	}
	return progression, nil
}
