// Package tagset tracks node and element tags during parsing and detects
// duplicates. Tags are hashed through cespare/xxhash/v2 before the map
// probe, with an exact map consulted to resolve hash collisions, so a mesh
// carrying tens of millions of tags stays cheap to deduplicate.
package tagset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Set tracks a collection of uint64 tags and reports duplicates.
//
// Set is not safe for concurrent use; a parse is single-threaded.
type Set struct {
	seen    map[uint64]struct{} // xxhash(tag) -> present
	tags    map[uint64]struct{} // exact tag -> present, guards against hash collisions
	minSeen uint64
	maxSeen uint64
	count   int
}

// New creates an empty Set.
func New() *Set {
	return &Set{
		seen: make(map[uint64]struct{}),
		tags: make(map[uint64]struct{}),
	}
}

// Add records tag, returning false if it was already present.
func (s *Set) Add(tag uint64) bool {
	h := hashTag(tag)
	if _, exists := s.seen[h]; exists {
		if _, exact := s.tags[tag]; exact {
			return false
		}
		// Hash collision between distinct tags: the exact map above shows
		// tag is new, so this is not itself an error.
	}

	s.seen[h] = struct{}{}
	s.tags[tag] = struct{}{}

	if s.count == 0 || tag < s.minSeen {
		s.minSeen = tag
	}
	if s.count == 0 || tag > s.maxSeen {
		s.maxSeen = tag
	}
	s.count++

	return true
}

// Has reports whether tag has been recorded.
func (s *Set) Has(tag uint64) bool {
	_, ok := s.tags[tag]
	return ok
}

// Count returns the number of distinct tags recorded.
func (s *Set) Count() int { return s.count }

// MinMax returns the observed minimum and maximum tag. ok is false if the
// set is empty.
func (s *Set) MinMax() (min, max uint64, ok bool) {
	if s.count == 0 {
		return 0, 0, false
	}

	return s.minSeen, s.maxSeen, true
}

func hashTag(tag uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], tag)

	return xxhash.Sum64(buf[:])
}
