package evidence

// DefaultBuckets is the bucket count used by NewSuspectIndex. Prime, for
// better spread of the multiplicative hash.
const DefaultBuckets = 31

type suspectEntry struct {
	clue    string
	suspect string
	next    *suspectEntry
}

// SuspectIndex maps a clue identifier to the suspect it implicates. It is a
// fixed-size hash table with chaining: each bucket holds a singly linked list
// with the newest insertion at the head. The bucket count is fixed at
// construction and the table never resizes; the catalogs it indexes are small
// and known up front.
type SuspectIndex struct {
	buckets []*suspectEntry
	size    int
}

// NewSuspectIndex returns an empty index with DefaultBuckets buckets.
func NewSuspectIndex() *SuspectIndex {
	return NewSuspectIndexSize(DefaultBuckets)
}

// NewSuspectIndexSize returns an empty index with the given bucket count.
// Counts below 1 are treated as 1.
func NewSuspectIndexSize(buckets int) *SuspectIndex {
	if buckets < 1 {
		buckets = 1
	}
	return &SuspectIndex{buckets: make([]*suspectEntry, buckets)}
}

// hash is a multiplicative byte hash (djb2) reduced modulo the bucket count.
func (ix *SuspectIndex) hash(clue string) int {
	h := uint32(5381)
	for i := 0; i < len(clue); i++ {
		h = h*33 + uint32(clue[i])
	}
	return int(h % uint32(len(ix.buckets)))
}

// Upsert associates clue with suspect. If the clue is already indexed its
// suspect is overwritten in place; otherwise a new entry is prepended to the
// bucket chain. At most one suspect is ever associated with a clue, and a
// re-association silently replaces the previous one.
func (ix *SuspectIndex) Upsert(clue, suspect string) {
	b := ix.hash(clue)
	for e := ix.buckets[b]; e != nil; e = e.next {
		if e.clue == clue {
			e.suspect = suspect
			return
		}
	}
	ix.buckets[b] = &suspectEntry{clue: clue, suspect: suspect, next: ix.buckets[b]}
	ix.size++
}

// Lookup returns the suspect implicated by clue, and whether the clue is
// indexed at all. Matching is exact and case-sensitive.
func (ix *SuspectIndex) Lookup(clue string) (string, bool) {
	for e := ix.buckets[ix.hash(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len returns the number of indexed clues.
func (ix *SuspectIndex) Len() int {
	return ix.size
}
