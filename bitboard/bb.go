// Package bitboard implements a fixed 9x9 point set (81 bits) with the
// set-algebraic and geometric primitives the board and search packages
// need: membership tests, unions/intersections, directional shifts with
// edge masking, population count, and random-bit selection. Every
// primitive here runs without allocation.
package bitboard

import "math/bits"

// Width is the board's edge length. Index i maps to (x, y) via
// i = y*Width + x, for 0 <= x, y < Width.
const Width = 9

// Size is the number of playable points.
const Size = Width * Width

// None is the sentinel index for "no point" (pass/resign).
const None = Size

// BB is a set of points on the 9x9 board, stored as two machine words:
// lo covers indices 0-63, hi covers indices 64-80.
type BB struct {
	lo, hi uint64
}

const hiBits = Size - 64  // 17
const hiMask = (1 << hiBits) - 1

// Empty is the zero value; declared for readability at call sites.
var Empty = BB{}

// Full is the set containing every point on the board.
var Full = BB{lo: ^uint64(0), hi: hiMask}

var (
	col0Mask  BB // x == 0
	col8Mask  BB // x == Width-1
	notCol0   BB
	notCol8   BB
)

func init() {
	for y := 0; y < Width; y++ {
		col0Mask.Set(y*Width + 0)
		col8Mask.Set(y*Width + (Width - 1))
	}
	notCol0 = col0Mask.Complement()
	notCol8 = col8Mask.Complement()
}

// Test reports whether point i is a member of b.
func (b BB) Test(i int) bool {
	if i < 64 {
		return b.lo&(uint64(1)<<uint(i)) != 0
	}
	return b.hi&(uint64(1)<<uint(i-64)) != 0
}

// Set adds point i to b.
func (b *BB) Set(i int) {
	if i < 64 {
		b.lo |= uint64(1) << uint(i)
	} else {
		b.hi |= uint64(1) << uint(i-64)
	}
}

// Clear removes point i from b.
func (b *BB) Clear(i int) {
	if i < 64 {
		b.lo &^= uint64(1) << uint(i)
	} else {
		b.hi &^= uint64(1) << uint(i-64)
	}
}

// Union returns a | b.
func (a BB) Union(b BB) BB {
	return BB{a.lo | b.lo, a.hi | b.hi}
}

// Intersect returns a & b.
func (a BB) Intersect(b BB) BB {
	return BB{a.lo & b.lo, a.hi & b.hi}
}

// AndNot returns a &^ b, i.e. points in a that are not in b.
func (a BB) AndNot(b BB) BB {
	return BB{a.lo &^ b.lo, a.hi &^ b.hi}
}

// Complement returns the set of points on the board not in b.
func (b BB) Complement() BB {
	return BB{^b.lo, hiMask &^ b.hi}
}

// Equals reports whether a and b contain the same points.
func (a BB) Equals(b BB) bool {
	return a.lo == b.lo && a.hi == b.hi
}

// IsEmpty reports whether b has no members.
func (b BB) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// PopCount returns the number of points in b.
func (b BB) PopCount() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// shiftLeft shifts the whole 81-bit value up by n bits (0 < n < 64),
// carrying across the lo/hi word boundary, masked to the board.
func shiftLeft(b BB, n uint) BB {
	if n == 0 {
		return b
	}
	newHi := ((b.hi << n) | (b.lo >> (64 - n))) & hiMask
	newLo := b.lo << n
	return BB{newLo, newHi}
}

// shiftRight shifts the whole 81-bit value down by n bits (0 < n < 64),
// carrying across the lo/hi word boundary.
func shiftRight(b BB, n uint) BB {
	if n == 0 {
		return b
	}
	newLo := (b.lo >> n) | (b.hi << (64 - n))
	newHi := b.hi >> n
	return BB{newLo, newHi}
}

// ShiftN moves every point one row toward y=0 (index - Width).
func (b BB) ShiftN() BB {
	return shiftRight(b, Width)
}

// ShiftS moves every point one row toward y=Width-1 (index + Width),
// masked so nothing wraps past the last row.
func (b BB) ShiftS() BB {
	return shiftLeft(b, Width)
}

// ShiftE moves every point one column toward x=Width-1 (index + 1).
// Points on the last column are dropped rather than wrapping into the
// next row.
func (b BB) ShiftE() BB {
	return shiftLeft(b.Intersect(notCol8), 1)
}

// ShiftW moves every point one column toward x=0 (index - 1). Points on
// the first column are dropped rather than wrapping into the previous
// row.
func (b BB) ShiftW() BB {
	return shiftRight(b.Intersect(notCol0), 1)
}

// Neighbors returns the set of points orthogonally adjacent to any point
// in b.
func (b BB) Neighbors() BB {
	return b.ShiftN().Union(b.ShiftS()).Union(b.ShiftE()).Union(b.ShiftW())
}

// LowestSet returns the index of the lowest-indexed point in b, or
// (None, false) if b is empty.
func (b BB) LowestSet() (int, bool) {
	if b.lo != 0 {
		return bits.TrailingZeros64(b.lo), true
	}
	if b.hi != 0 {
		return bits.TrailingZeros64(b.hi) + 64, true
	}
	return None, false
}

// ForEach calls fn with each set point in b, in increasing index order,
// stopping early if fn returns false. No allocation.
func (b BB) ForEach(fn func(i int) bool) {
	lo, hi := b.lo, b.hi
	for lo != 0 {
		i := bits.TrailingZeros64(lo)
		if !fn(i) {
			return
		}
		lo &= lo - 1
	}
	for hi != 0 {
		i := bits.TrailingZeros64(hi)
		if !fn(i + 64) {
			return
		}
		hi &= hi - 1
	}
}

// Randomizer is the minimal PRNG surface RandomBit needs; satisfied by
// *golang.org/x/exp/rand.Rand.
type Randomizer interface {
	Intn(n int) int
}

// RandomBit returns a uniformly random member of b using rng. Calling
// RandomBit on an empty set is a programmer error and panics; callers
// must guarantee b is non-empty.
func RandomBit(b BB, rng Randomizer) int {
	k := b.PopCount()
	if k == 0 {
		panic("bitboard: RandomBit called on empty set")
	}
	r := rng.Intn(k)
	lo, hi := b.lo, b.hi
	for lo != 0 {
		i := bits.TrailingZeros64(lo)
		if r == 0 {
			return i
		}
		r--
		lo &= lo - 1
	}
	for hi != 0 {
		i := bits.TrailingZeros64(hi)
		if r == 0 {
			return i + 64
		}
		r--
		hi &= hi - 1
	}
	panic("bitboard: RandomBit: unreachable")
}
