// Package either provides Either, an immutable container holding exactly
// one of two typed alternatives. By convention Left carries the failure
// and Right the success value; the combinators are right-biased and pass
// Left through untouched.
package either

import (
	"fmt"

	"github.com/goodmind/funfix"
	"github.com/goodmind/funfix/internal/objects"
	"github.com/goodmind/funfix/option"
)

// Hash seeds keeping the two sides distinct so Left(x) and Right(x)
// never collide.
const (
	hashLeft  uint64 = 0x65692d6c // "ei-l"
	hashRight uint64 = 0x65692d72 // "ei-r"
	hashNil   uint64 = 0x65692d30
)

// Either represents a value of one of two possible types. Exactly one
// side is populated, fixed at construction. Instances are immutable.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value. No validation is performed;
// nil-like values are accepted.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if the Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value or panics with a no-such-element failure
// when the Either is a Right.
func (e Either[L, R]) Left() L {
	if e.isRight {
		panic(funfix.NoSuchElement("Either.Left"))
	}
	return e.left
}

// Right returns the right value or panics with a no-such-element
// failure when the Either is a Left.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		panic(funfix.NoSuchElement("Either.Right"))
	}
	return e.right
}

// Get returns the right value or panics with a no-such-element failure
// when the Either is a Left. Guard with IsRight or use Fold instead.
func (e Either[L, R]) Get() R {
	if !e.isRight {
		panic(funfix.NoSuchElement("Either.Get"))
	}
	return e.right
}

// GetOrElse returns the right value or a default.
func (e Either[L, R]) GetOrElse(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// GetOrElseL returns the right value or computes a default. The thunk
// is invoked only for a Left.
func (e Either[L, R]) GetOrElseL(fn func() R) R {
	if e.isRight {
		return e.right
	}
	return fn()
}

// FilterOrElse keeps the right value if the predicate holds, otherwise
// turns it into Left(zero()). A Left passes through unchanged and
// neither callback is invoked.
func (e Either[L, R]) FilterOrElse(predicate func(R) bool, zero func() L) Either[L, R] {
	if !e.isRight || predicate(e.right) {
		return e
	}
	return Left[L, R](zero())
}

// Contains reports whether the Either is a Right holding a value
// structurally equal to elem. Always false for a Left.
func (e Either[L, R]) Contains(elem R) bool {
	return e.isRight && objects.Equal(e.right, elem)
}

// Exists reports whether the Either is a Right satisfying the
// predicate. Always false for a Left.
func (e Either[L, R]) Exists(predicate func(R) bool) bool {
	return e.isRight && predicate(e.right)
}

// ForAll reports whether the predicate holds for the right value.
// Vacuously true for a Left.
func (e Either[L, R]) ForAll(predicate func(R) bool) bool {
	return !e.isRight || predicate(e.right)
}

// ForEach invokes fn with the right value, only for a Right.
func (e Either[L, R]) ForEach(fn func(R)) {
	if e.isRight {
		fn(e.right)
	}
}

// Match executes one of two callbacks based on the populated side.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// Swap exchanges the sides: a Left becomes a Right and vice versa.
// Applying Swap twice restores the original value.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// ToOption keeps the right value and discards a Left.
func (e Either[L, R]) ToOption() option.Option[R] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[R]()
}

// Equals reports structural equality of same-side values; values on
// different sides are never equal.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return objects.Equal(e.right, other.right)
	}
	return objects.Equal(e.left, other.left)
}

// HashCode returns a hash consistent with Equals, using distinct
// formulas for the two sides to reduce cross-side collisions.
func (e Either[L, R]) HashCode() uint64 {
	if e.isRight {
		if objects.IsNil(e.right) {
			return hashRight + hashNil
		}
		return hashRight + 31*objects.Hash(e.right)
	}
	if objects.IsNil(e.left) {
		return hashLeft + hashNil
	}
	return hashLeft + 47*objects.Hash(e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map applies fn to the right value; a Left passes through with fn not
// invoked. Type-changing combinators live at package level because
// methods cannot introduce type parameters.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L, U](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft applies fn to the left value; a Right passes through.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U, R](e.right)
}

// FlatMap chains the right value into another Either sharing the same
// left type; a Left passes through with fn not invoked.
func FlatMap[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// Fold invokes exactly one of the two branches, unifying both sides to
// a common result type.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
