// Package sparse provides a sparse set: O(1) insert, membership test,
// and clear over a bounded integer universe, with O(1) dense iteration.
//
// regexcompile/subset.go uses it as the ε-closure frontier/visited
// tracker during the BFS that computes εclose(S) (spec §4.1): the
// universe is the ε-NFA's state count, known once per compilation, and
// the set is cleared and reused for every ε-closure computed during
// subset construction. It is a visited-tracking
// scratch structure, distinct from internal/bitset, which gives the
// *discovered* state set its stable hashable identity once the closure
// is finished.
//
// Adapted from the teacher's NFA-simulation sparse set (coregx's
// internal/sparse), which served the same role inside a PikeVM thread
// list; the data structure is unchanged (it is the standard
// Briggs/Torczon sparse set) but its purpose here is closure
// computation during one-shot batch compilation, not online matching.
package sparse

// Set is a sparse set of uint32 values with O(1) Insert/Contains/Clear
// and O(1) dense iteration via Values.
type Set struct {
	sparse []uint32 // maps value -> index in dense
	dense  []uint32 // the actual members
	size   uint32
}

// New creates a Set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if already present.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1), ready for the next closure computation.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Values returns the set's members in discovery order (not sorted). The
// returned slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// Size returns the number of members.
func (s *Set) Size() int { return int(s.size) }
