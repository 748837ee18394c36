// Package pair provides a two-element tuple used by the zip operations
// of the container types.
package pair

import (
	"fmt"

	"github.com/goodmind/funfix/internal/objects"
)

// Pair holds two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New creates a new Pair.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Equals reports structural equality of both elements.
func (p Pair[A, B]) Equals(other Pair[A, B]) bool {
	return objects.Equal(p.First, other.First) && objects.Equal(p.Second, other.Second)
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MapFirst applies a function to the first element.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies a function to the second element.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}
