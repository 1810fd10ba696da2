package types

import (
	"fmt"
	"math/big"
	"strconv"
)

// Dir is the direction of a range.
type Dir int

const (
	// To is the direction of an ascending range.
	To Dir = iota
	// Downto is the direction of a descending range.
	Downto
)

func (d Dir) String() string {
	switch d {
	case To:
		return "to"
	case Downto:
		return "downto"
	default:
		panic("??")
	}
}

// A Bound is a value usable as a range endpoint. The domain behind a
// bound is totally ordered and supports unit stepping, which shows up
// in the measuring convention for range lengths: inclusive counting for
// integer domains, continuous magnitude for real ones.
type Bound[B any] interface {
	// Cmp orders the bound against another bound of the same domain,
	// returning -1, 0 or +1.
	Cmp(other B) int
	// Span measures the length of the range closed below by lower and
	// above by this bound. The result may be zero or negative.
	Span(lower B) B
	fmt.Stringer
}

// A Range is a directed range of values, with the same semantics as
// ranges in VHDL: a direction plus a left and a right bound. A range
// whose lower bound is greater than or equal to its upper bound is a
// null range, denoting an empty set of values; construction never
// rejects that.
type Range[B Bound[B]] struct {
	dir   Dir
	left  B
	right B
}

// IntRange is a range of arbitrary-precision integer values.
type IntRange = Range[IntBound]

// RealRange is a range of real values.
type RealRange = Range[RealBound]

// WithLeftRight creates a range from its left and right bounds.
func WithLeftRight[B Bound[B]](dir Dir, left, right B) Range[B] {
	return Range[B]{dir: dir, left: left, right: right}
}

// WithLowerUpper creates a range from its lower and upper bounds,
// placing them into left/right position according to the direction.
func WithLowerUpper[B Bound[B]](dir Dir, lower, upper B) Range[B] {
	if dir == Downto {
		lower, upper = upper, lower
	}
	return Range[B]{dir: dir, left: lower, right: upper}
}

// Ascending creates an ascending range.
func Ascending[B Bound[B]](left, right B) Range[B] {
	return Range[B]{dir: To, left: left, right: right}
}

// Descending creates a descending range.
func Descending[B Bound[B]](left, right B) Range[B] {
	return Range[B]{dir: Downto, left: left, right: right}
}

// AscendingInt creates an ascending integer range from int64 bounds.
func AscendingInt(left, right int64) IntRange {
	return Ascending(IntOf(left), IntOf(right))
}

// DescendingInt creates a descending integer range from int64 bounds.
func DescendingInt(left, right int64) IntRange {
	return Descending(IntOf(left), IntOf(right))
}

// AscendingReal creates an ascending real range.
func AscendingReal(left, right float64) RealRange {
	return Ascending(RealBound(left), RealBound(right))
}

// DescendingReal creates a descending real range.
func DescendingReal(left, right float64) RealRange {
	return Descending(RealBound(left), RealBound(right))
}

// Dir returns the direction of the range.
func (r Range[B]) Dir() Dir { return r.dir }

// Left returns the left bound of the range.
func (r Range[B]) Left() B { return r.left }

// Right returns the right bound of the range.
func (r Range[B]) Right() B { return r.right }

// Lower returns the lower bound of the range.
func (r Range[B]) Lower() B {
	if r.dir == Downto {
		return r.right
	}
	return r.left
}

// Upper returns the upper bound of the range.
func (r Range[B]) Upper() B {
	if r.dir == Downto {
		return r.left
	}
	return r.right
}

// IsNull returns true if the range is a null range. A null range has
// its lower bound greater than or equal to its upper bound.
func (r Range[B]) IsNull() bool {
	return r.Lower().Cmp(r.Upper()) >= 0
}

// Length returns the length of the range in the bound domain's
// convention: upper-lower+1 for integer ranges, upper-lower for real
// ranges. The result may be zero or negative for null ranges.
func (r Range[B]) Length() B {
	return r.Upper().Span(r.Lower())
}

// HasSubrange checks whether other lies within this range. Containment
// compares lower and upper bounds only; the directions of the two
// ranges play no role.
func (r Range[B]) HasSubrange(other Range[B]) bool {
	return r.Lower().Cmp(other.Lower()) <= 0 && r.Upper().Cmp(other.Upper()) >= 0
}

// Equal returns true if both ranges have the same direction and bounds.
func (r Range[B]) Equal(other Range[B]) bool {
	return r.dir == other.dir && r.left.Cmp(other.left) == 0 && r.right.Cmp(other.right) == 0
}

func (r Range[B]) String() string {
	return fmt.Sprintf("%s %s %s", r.left, r.dir, r.right)
}

// IntBound is an arbitrary-precision integer range bound.
type IntBound struct {
	v *big.Int
}

var bigOne = big.NewInt(1)

// NewIntBound creates a bound from a big integer. The value is copied.
func NewIntBound(v *big.Int) IntBound {
	return IntBound{v: new(big.Int).Set(v)}
}

// IntOf creates a bound from an int64.
func IntOf(v int64) IntBound {
	return IntBound{v: big.NewInt(v)}
}

// Value returns the bound's value. The caller must not mutate it.
func (b IntBound) Value() *big.Int { return b.v }

func (b IntBound) Cmp(other IntBound) int { return b.v.Cmp(other.v) }

// Span returns upper-lower+1: an integer range counts its values
// inclusively.
func (b IntBound) Span(lower IntBound) IntBound {
	n := new(big.Int).Sub(b.v, lower.v)
	n.Add(n, bigOne)
	return IntBound{v: n}
}

func (b IntBound) String() string { return b.v.String() }

// RealBound is a double-precision range bound.
type RealBound float64

func (b RealBound) Cmp(other RealBound) int {
	switch {
	case b < other:
		return -1
	case b > other:
		return 1
	}
	return 0
}

// Span returns upper-lower: the length of a real range is a continuous
// magnitude, not a count.
func (b RealBound) Span(lower RealBound) RealBound { return b - lower }

func (b RealBound) String() string {
	return strconv.FormatFloat(float64(b), 'g', -1, 64)
}
