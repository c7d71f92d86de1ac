package theory

import "testing"

func scaleNames(k Key) [7]string {
	var names [7]string
	for i, p := range k.Scale() {
		names[i] = p.String()
	}
	return names
}

func TestScaleSpelling(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected [7]string
	}{
		{"C major", MajorKey(C), [7]string{"C", "D", "E", "F", "G", "A", "B"}},
		{"G major", MajorKey(G), [7]string{"G", "A", "B", "C", "D", "E", "F#"}},
		{"Eb major", MajorKey(EFlat), [7]string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}},
		{"A minor", MinorKey(A), [7]string{"A", "B", "C", "D", "E", "F", "G"}},
		{"C minor", MinorKey(C), [7]string{"C", "D", "Eb", "F", "G", "Ab", "Bb"}},
		{"F# major", MajorKey(FSharp), [7]string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}},
		{"D dorian", NewKey(D, Dorian), [7]string{"D", "E", "F", "G", "A", "B", "C"}},
		{"E phrygian", NewKey(E, Phrygian), [7]string{"E", "F", "G", "A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleNames(tt.key); got != tt.expected {
				t.Errorf("Scale() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSharps(t *testing.T) {
	tests := []struct {
		key    Key
		sharps int
	}{
		{MajorKey(C), 0},
		{MajorKey(G), 1},
		{MajorKey(D), 2},
		{MajorKey(F), -1},
		{MajorKey(BFlat), -2},
		{MajorKey(EFlat), -3},
		{MinorKey(A), 0},
		{MinorKey(E), 1},
		{MinorKey(F), -4},
	}

	for _, tt := range tests {
		if got := tt.key.Sharps(); got != tt.sharps {
			t.Errorf("%s.Sharps() = %d, want %d", tt.key, got, tt.sharps)
		}
	}
}

func TestAccidentalOf(t *testing.T) {
	g := MajorKey(G)
	if got := g.AccidentalOf(LetterF); got != 1 {
		t.Errorf("G major accidental of F = %d, want 1", got)
	}
	if got := g.AccidentalOf(LetterC); got != 0 {
		t.Errorf("G major accidental of C = %d, want 0", got)
	}

	eb := MajorKey(EFlat)
	if got := eb.AccidentalOf(LetterB); got != -1 {
		t.Errorf("Eb major accidental of B = %d, want -1", got)
	}
}

func TestRelativePitch(t *testing.T) {
	g := MajorKey(G)
	if got := g.RelativePitch(1); got != G {
		t.Errorf("degree 1 = %v", got)
	}
	if got := g.RelativePitch(3); got != B {
		t.Errorf("degree 3 = %v", got)
	}
	if got := g.RelativePitch(7); got != FSharp {
		t.Errorf("degree 7 = %v", got)
	}
}

func TestParsePitchAndNote(t *testing.T) {
	p, err := ParsePitch("Bb")
	if err != nil || p != BFlat {
		t.Errorf("ParsePitch(Bb) = %v, %v", p, err)
	}

	if _, err := ParsePitch("H"); err == nil {
		t.Error("expected error for invalid letter")
	}

	n, err := ParseNote("Bb4")
	if err != nil || n != NewNote(BFlat, 4) {
		t.Errorf("ParseNote(Bb4) = %v, %v", n, err)
	}

	if n.MIDI() != 70 {
		t.Errorf("Bb4 MIDI = %d, want 70", n.MIDI())
	}

	middleC, _ := ParseNote("C4")
	if middleC.MIDI() != 60 {
		t.Errorf("C4 MIDI = %d, want 60", middleC.MIDI())
	}
}
