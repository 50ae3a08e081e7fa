package problem

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Selection is a fixed-length bit vector: bit i set means item i is packed.
// Indices outside [0, Len()) are ignored by mutators and read as false.
//
// Selections returned by solvers are owned by the caller; use Clone before
// handing one to another owner that may mutate it.
type Selection struct {
	bits *bitset.BitSet
	n    int
}

// NewSelection returns an empty selection of length n (n < 0 is treated as 0).
func NewSelection(n int) Selection {
	if n < 0 {
		n = 0
	}
	return Selection{bits: bitset.New(uint(n)), n: n}
}

// SelectionFromMask expands the low n bits of mask into a Selection.
// Bits at positions ≥ 64 are never set.
func SelectionFromMask(mask uint64, n int) Selection {
	s := NewSelection(n)
	for i := 0; i < n && i < 64; i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			s.bits.Set(uint(i))
		}
	}
	return s
}

// Len returns the logical length of the selection.
func (s Selection) Len() int { return s.n }

// Set marks item i as selected.
func (s Selection) Set(i int) {
	if s.inRange(i) {
		s.bits.Set(uint(i))
	}
}

// Clear marks item i as not selected.
func (s Selection) Clear(i int) {
	if s.inRange(i) {
		s.bits.Clear(uint(i))
	}
}

// SetTo sets bit i to v.
func (s Selection) SetTo(i int, v bool) {
	if s.inRange(i) {
		s.bits.SetTo(uint(i), v)
	}
}

// Flip inverts bit i.
func (s Selection) Flip(i int) {
	if s.inRange(i) {
		s.bits.Flip(uint(i))
	}
}

// Test reports whether item i is selected.
func (s Selection) Test(i int) bool {
	return s.inRange(i) && s.bits.Test(uint(i))
}

// Count returns the number of selected items.
func (s Selection) Count() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Indices returns the selected item indices in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, 0, s.Count())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok && int(i) < s.n; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	if s.bits == nil {
		return NewSelection(s.n)
	}
	return Selection{bits: s.bits.Clone(), n: s.n}
}

// Equal reports whether both selections have the same length and bits.
func (s Selection) Equal(o Selection) bool {
	if s.n != o.n {
		return false
	}
	for i := 0; i < s.n; i++ {
		if s.Test(i) != o.Test(i) {
			return false
		}
	}
	return true
}

// String renders the vector as space separated 0/1 digits, item 0 first.
func (s Selection) String() string {
	if s.n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(2 * s.n)
	for i := 0; i < s.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (s Selection) inRange(i int) bool {
	return s.bits != nil && i >= 0 && i < s.n
}
