// Package option provides Option, an immutable container holding zero or
// one value. It is a type-safe alternative to nil pointers: the absence
// of a value is a first-class state rather than a sentinel.
package option

import (
	"fmt"
	"iter"

	"github.com/goodmind/funfix"
	"github.com/goodmind/funfix/internal/objects"
	"github.com/goodmind/funfix/pair"
)

// Hash seeds keeping the three observable states distinct: empty,
// present-with-nil-payload and present-with-value.
const (
	hashEmpty   uint64 = 0x6f70742d // "opt-"
	hashSomeNil uint64 = 0x6f70742b
	hashSome    uint64 = 0x6f707421
)

// Option represents an optional value that may or may not be present.
// The zero value is the empty Option. Instances are immutable; every
// combinator returns a new value and never modifies the receiver.
type Option[A any] struct {
	value   A
	present bool
}

// Some creates an Option containing a value. The nil check of Of is
// deliberately bypassed: Some of a nil pointer is a present Option
// whose payload happens to be nil, distinct from the empty Option.
func Some[A any](value A) Option[A] {
	return Option[A]{value: value, present: true}
}

// Of creates an Option from a possibly-nil value: nil-like values
// (untyped nil, nil pointers, maps, slices, functions, channels)
// produce the empty Option, anything else a present one.
func Of[A any](value A) Option[A] {
	if objects.IsNil(value) {
		return None[A]()
	}
	return Some(value)
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Empty is an alias for None.
func Empty[A any]() Option[A] {
	return None[A]()
}

// Pure is an alias for Some.
func Pure[A any](value A) Option[A] {
	return Some(value)
}

// FromPtr creates an Option from a pointer, empty when the pointer is nil.
func FromPtr[A any](ptr *A) Option[A] {
	if ptr == nil {
		return None[A]()
	}
	return Some(*ptr)
}

// IsEmpty returns true if the Option holds no value.
func (o Option[A]) IsEmpty() bool {
	return !o.present
}

// NonEmpty returns true if the Option holds a value.
func (o Option[A]) NonEmpty() bool {
	return o.present
}

// Get returns the contained value or panics with a no-such-element
// failure when empty. Guard with NonEmpty or use Fold instead.
func (o Option[A]) Get() A {
	if !o.present {
		panic(funfix.NoSuchElement("Option.Get"))
	}
	return o.value
}

// GetOrElse returns the contained value or a default.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// GetOrElseL returns the contained value or computes a default.
// The thunk is invoked only when the Option is empty.
func (o Option[A]) GetOrElseL(fn func() A) A {
	if o.present {
		return o.value
	}
	return fn()
}

// OrZero returns the contained value or the zero value of A.
func (o Option[A]) OrZero() A {
	if o.present {
		return o.value
	}
	var zero A
	return zero
}

// OrPtr returns a pointer to the contained value, or nil when empty.
func (o Option[A]) OrPtr() *A {
	if o.present {
		return &o.value
	}
	return nil
}

// OrElse returns this Option if nonempty, otherwise the alternative.
func (o Option[A]) OrElse(alt Option[A]) Option[A] {
	if o.present {
		return o
	}
	return alt
}

// OrElseL returns this Option if nonempty, otherwise computes the
// alternative. The thunk is invoked only when the Option is empty.
func (o Option[A]) OrElseL(fn func() Option[A]) Option[A] {
	if o.present {
		return o
	}
	return fn()
}

// Filter returns this Option if nonempty and the predicate holds,
// otherwise the empty Option. The predicate is not invoked when empty.
func (o Option[A]) Filter(predicate func(A) bool) Option[A] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[A]()
}

// Contains reports whether the Option holds a value structurally equal
// to elem.
func (o Option[A]) Contains(elem A) bool {
	return o.present && objects.Equal(o.value, elem)
}

// Exists reports whether the Option holds a value satisfying the
// predicate. Always false when empty.
func (o Option[A]) Exists(predicate func(A) bool) bool {
	return o.present && predicate(o.value)
}

// ForAll reports whether the predicate holds for the contained value.
// Vacuously true when empty.
func (o Option[A]) ForAll(predicate func(A) bool) bool {
	return !o.present || predicate(o.value)
}

// ForEach invokes fn with the contained value, only when nonempty.
func (o Option[A]) ForEach(fn func(A)) {
	if o.present {
		fn(o.value)
	}
}

// Match executes one of two callbacks based on the Option's state.
func (o Option[A]) Match(onSome func(A), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Equals reports structural equality: both empty, or both nonempty
// with structurally equal payloads.
func (o Option[A]) Equals(other Option[A]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return objects.Equal(o.value, other.value)
}

// HashCode returns a hash consistent with Equals. Empty, Some of a
// nil-like payload and Some of a value yield distinct codes.
func (o Option[A]) HashCode() uint64 {
	switch {
	case !o.present:
		return hashEmpty
	case objects.IsNil(o.value):
		return hashSomeNil
	default:
		return hashSome + 31*objects.Hash(o.value)
	}
}

func (o Option[A]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// ToSlice converts the Option to a slice of zero or one element.
func (o Option[A]) ToSlice() []A {
	if o.present {
		return []A{o.value}
	}
	return []A{}
}

// All returns an iterator over the Option (zero or one element).
func (o Option[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// Map applies fn to the contained value if present. Methods cannot
// introduce type parameters, so the type-changing combinators live at
// package level.
func Map[A, B any](o Option[A], fn func(A) B) Option[B] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[B]()
}

// FlatMap applies a function that itself returns an Option.
func FlatMap[A, B any](o Option[A], fn func(A) Option[B]) Option[B] {
	if o.present {
		return fn(o.value)
	}
	return None[B]()
}

// Fold invokes exactly one of the two branches and returns its result.
func Fold[A, B any](o Option[A], onEmpty func() B, onValue func(A) B) B {
	if o.present {
		return onValue(o.value)
	}
	return onEmpty()
}

// Map2 applies fn to both values if both Options are nonempty,
// otherwise returns the empty Option.
func Map2[A, B, C any](oa Option[A], ob Option[B], fn func(A, B) C) Option[C] {
	if oa.present && ob.present {
		return Some(fn(oa.value, ob.value))
	}
	return None[C]()
}

// Zip pairs up two Options, empty if either is empty.
func Zip[A, B any](oa Option[A], ob Option[B]) Option[pair.Pair[A, B]] {
	return Map2(oa, ob, pair.New[A, B])
}
