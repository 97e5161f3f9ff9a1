// Package evidence holds the two containers a detective session accumulates
// evidence in: an ordered set of collected clues and a hash index from clue
// to the suspect it implicates.
package evidence

import "iter"

type clueNode struct {
	id    string
	left  *clueNode
	right *clueNode
}

// ClueSet is an ordered set of distinct clue identifiers, stored as an
// unbalanced binary search tree keyed by byte-wise lexicographic comparison.
// Comparison is case-sensitive and performs no normalization: the catalog is
// expected to use each identifier consistently. The zero value is an empty set.
//
// The tree is never rebalanced. Depth is bounded by the number of distinct
// clues inserted, which is fine for the small fixed catalogs this serves.
type ClueSet struct {
	root *clueNode
	size int
}

// NewClueSet returns an empty clue set.
func NewClueSet() *ClueSet {
	return &ClueSet{}
}

// Contains reports whether id has been collected.
func (s *ClueSet) Contains(id string) bool {
	n := s.root
	for n != nil {
		switch {
		case id < n.id:
			n = n.left
		case id > n.id:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds id to the set. It returns true if a new entry was created and
// false if id was already present; a duplicate insert is a no-op, not an error.
func (s *ClueSet) Insert(id string) bool {
	link := &s.root
	for *link != nil {
		n := *link
		switch {
		case id < n.id:
			link = &n.left
		case id > n.id:
			link = &n.right
		default:
			return false
		}
	}
	*link = &clueNode{id: id}
	s.size++
	return true
}

// Len returns the number of distinct clues collected.
func (s *ClueSet) Len() int {
	return s.size
}

// InOrder returns a restartable sequence of the collected clue identifiers in
// ascending lexicographic order. This is the canonical listing order for
// collected evidence.
func (s *ClueSet) InOrder() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(s.root, yield)
	}
}

func inOrder(n *clueNode, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.id) && inOrder(n.right, yield)
}
