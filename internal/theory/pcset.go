package theory

// PitchClassSet is a set of the 12 chromatic pitch classes, stored as a
// bitmask.
type PitchClassSet uint16

const pcsetMask PitchClassSet = 0xfff

// NewPitchClassSet builds a set from pitch classes.
func NewPitchClassSet(classes ...PitchClass) PitchClassSet {
	var set PitchClassSet
	for _, pc := range classes {
		set = set.With(pc)
	}
	return set
}

// PitchClassSetOf builds a set from the classes of the given pitches.
func PitchClassSetOf(pitches ...Pitch) PitchClassSet {
	var set PitchClassSet
	for _, p := range pitches {
		set = set.With(p.Class())
	}
	return set
}

// With returns a copy of the set with the pitch class added.
func (s PitchClassSet) With(pc PitchClass) PitchClassSet {
	return s | (1 << uint(pc))
}

// Without returns a copy of the set with the pitch class removed.
func (s PitchClassSet) Without(pc PitchClass) PitchClassSet {
	return s &^ (1 << uint(pc))
}

// Has reports whether the pitch class is in the set.
func (s PitchClassSet) Has(pc PitchClass) bool {
	return s&(1<<uint(pc)) != 0
}

// Intersect returns the pitch classes present in both sets.
func (s PitchClassSet) Intersect(other PitchClassSet) PitchClassSet {
	return s & other & pcsetMask
}

// Len returns the number of pitch classes in the set.
func (s PitchClassSet) Len() int {
	count := 0
	for v := s & pcsetMask; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// IsEmpty reports whether the set contains no pitch classes.
func (s PitchClassSet) IsEmpty() bool {
	return s&pcsetMask == 0
}

// Classes returns the pitch classes in the set in ascending order.
func (s PitchClassSet) Classes() []PitchClass {
	classes := make([]PitchClass, 0, s.Len())
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Has(pc) {
			classes = append(classes, pc)
		}
	}
	return classes
}
