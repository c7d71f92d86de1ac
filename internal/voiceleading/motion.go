package voiceleading

// Motion classifies how two voices move relative to each other across a
// transition.
type Motion int

const (
	Oblique Motion = iota
	Contrary
	Similar
	Parallel
)

var motionNames = [...]string{"oblique", "contrary", "similar", "parallel"}

func (m Motion) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return "unknown"
	}
	return motionNames[m]
}

// MotionBetween returns the relative motion of two voices between two
// voicings. A voice compared with itself is oblique; so is any pair
// where neither voice moves.
func MotionBetween(v1, v2 Voice, first, second Voicing) Motion {
	if v1 == v2 {
		return Oblique
	}

	m1 := first[v1].DistanceTo(second[v1])
	m2 := first[v2].DistanceTo(second[v2])

	s1 := m1.Semitones()
	s2 := m2.Semitones()

	switch {
	case s1 == 0 || s2 == 0:
		return Oblique
	case m1 == m2:
		return Parallel
	case (s1 > 0) != (s2 > 0):
		return Contrary
	default:
		return Similar
	}
}
