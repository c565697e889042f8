package vas

import (
	"fmt"

	"github.com/jonathanmweiss/go-vas/field"
)

// Interval is a pair of endpoints A <= B, each open or closed.
// An interval with equal closed endpoints is an exact root.
type Interval[T any] struct {
	o       field.Ordered[T]
	a, b    T
	aClosed bool
	bClosed bool
}

// NewInterval orders the endpoints, swapping them together with their closed flags if needed.
func NewInterval[T any](o field.Ordered[T], a, b T, aClosed, bClosed bool) Interval[T] {
	if field.Greater(o, a, b) {
		a, b = b, a
		aClosed, bClosed = bClosed, aClosed
	}

	return Interval[T]{o: o, a: a, b: b, aClosed: aClosed, bClosed: bClosed}
}

// Exact returns the degenerate closed interval [x, x].
func Exact[T any](o field.Ordered[T], x T) Interval[T] {
	return NewInterval(o, x, x, true, true)
}

// Open returns (a, b).
func Open[T any](o field.Ordered[T], a, b T) Interval[T] {
	return NewInterval(o, a, b, false, false)
}

func (iv Interval[T]) A() T          { return iv.a }
func (iv Interval[T]) B() T          { return iv.b }
func (iv Interval[T]) AClosed() bool { return iv.aClosed }
func (iv Interval[T]) BClosed() bool { return iv.bClosed }

// Contains reports whether x equals a closed endpoint or lies strictly inside.
func (iv Interval[T]) Contains(x T) bool {
	o := iv.o

	if (iv.aClosed && o.Equals(x, iv.a)) || (iv.bClosed && o.Equals(x, iv.b)) {
		return true
	}

	return field.Less(o, iv.a, x) && field.Less(o, x, iv.b)
}

func (iv Interval[T]) IsExactValue() bool {
	return iv.aClosed && iv.bClosed && iv.o.Equals(iv.a, iv.b)
}

func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.aClosed == other.aClosed &&
		iv.bClosed == other.bClosed &&
		iv.o.Equals(iv.a, other.a) &&
		iv.o.Equals(iv.b, other.b)
}

// Compare orders intervals by lower endpoint, then upper endpoint, closed before open.
func (iv Interval[T]) Compare(other Interval[T]) int {
	if c := iv.o.Cmp(iv.a, other.a); c != 0 {
		return c
	}

	if c := iv.o.Cmp(iv.b, other.b); c != 0 {
		return c
	}

	switch {
	case iv.aClosed != other.aClosed:
		return closedFirst(iv.aClosed)
	case iv.bClosed != other.bClosed:
		return closedFirst(iv.bClosed)
	}

	return 0
}

func closedFirst(closed bool) int {
	if closed {
		return -1
	}

	return 1
}

func (iv Interval[T]) String() string {
	if iv.IsExactValue() {
		return fmt.Sprintf("{%v}", iv.a)
	}

	left, right := "(", ")"
	if iv.aClosed {
		left = "["
	}

	if iv.bClosed {
		right = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", left, iv.a, iv.b, right)
}
