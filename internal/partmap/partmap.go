// Package partmap provides a partitioned set of packed boards.
package partmap

import (
	"hash/maphash"

	"github.com/kabufuda/solver/internal/packed"
)

type part struct {
	m map[packed.Key]struct{}
}

// Set is a set of packed boards spread over a fixed number of maps,
// which keeps single map growth steps small for large searches.
type Set struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part
}

// New returns an empty set with numPart partitions (at least one).
func New(numPart uint64) *Set {
	if numPart == 0 {
		numPart = 1
	}
	s := &Set{
		numPart: numPart,
		seed:    maphash.MakeSeed(),
		parts:   make([]*part, numPart),
	}
	for i := range s.parts {
		s.parts[i] = &part{m: make(map[packed.Key]struct{})}
	}
	return s
}

func (s *Set) part(k packed.Key) *part { return s.parts[k.Hash(s.seed)%s.numPart] }

// Add stores k and reports whether it was not yet in the set.
func (s *Set) Add(k packed.Key) bool {
	part := s.part(k)
	if _, ok := part.m[k]; ok {
		return false
	}
	part.m[k] = struct{}{}
	return true
}

// Size returns the number of stored keys.
func (s *Set) Size() int {
	size := 0
	for _, part := range s.parts {
		size += len(part.m)
	}
	return size
}
