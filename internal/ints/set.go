// Package ints provides a small set of non-negative integers, used by the
// gramdef validation passes to track rule indices.
package ints

const chunkShift = 5 + (^uint(0) >> 32 & 1)
const chunkBits = 1 << chunkShift

// Set is a growable bitset over non-negative items.
type Set struct {
	chunks []uint
}

func NewSet(items ...int) *Set {
	result := &Set{}
	for _, item := range items {
		result.Add(item)
	}
	return result
}

func (s *Set) grow(item int) {
	need := (item >> chunkShift) + 1
	for len(s.chunks) < need {
		s.chunks = append(s.chunks, 0)
	}
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (chunkBits - 1))
}

func (s *Set) Add(item int) *Set {
	s.grow(item)
	s.chunks[item>>chunkShift] |= bitMask(item)
	return s
}

func (s *Set) Remove(item int) *Set {
	if item>>chunkShift < len(s.chunks) {
		s.chunks[item>>chunkShift] &= ^bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	i := item >> chunkShift
	return i < len(s.chunks) && s.chunks[i]&bitMask(item) != 0
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}
	return true
}

// ToSlice returns the items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0)
	item := 0
	for _, chunk := range s.chunks {
		for i := chunkBits; i > 0; i-- {
			if chunk&1 != 0 {
				result = append(result, item)
			}
			item++
			chunk >>= 1
		}
	}
	return result
}
