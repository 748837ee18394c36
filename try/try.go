// Package try provides Try, an immutable container for the outcome of a
// computation that may fail: either a success value or an error. It is
// the error-specialized sibling of either.Either with the failure side
// fixed to the Go error type.
package try

import (
	"errors"
	"fmt"

	"github.com/goodmind/funfix"
	"github.com/goodmind/funfix/either"
	"github.com/goodmind/funfix/internal/objects"
	"github.com/goodmind/funfix/option"
)

const (
	hashSuccess uint64 = 0x7472792b // "try+"
	hashFailure uint64 = 0x7472792d // "try-"
	hashNil     uint64 = 0x74727930
)

// ErrNilFailure substitutes for a nil error passed to Failure, so a
// failed Try always carries a non-nil cause.
var ErrNilFailure = errors.New("funfix: failure constructed with nil error")

// Try represents a computation that either produced a value or failed
// with an error. Instances are immutable.
type Try[A any] struct {
	value A
	err   error
	ok    bool
}

// Success creates a successful Try.
func Success[A any](value A) Try[A] {
	return Try[A]{value: value, ok: true}
}

// Failure creates a failed Try. A nil error is replaced with
// ErrNilFailure.
func Failure[A any](err error) Try[A] {
	if err == nil {
		err = ErrNilFailure
	}
	return Try[A]{err: err}
}

// Of evaluates a fallible function into a Try.
func Of[A any](fn func() (A, error)) Try[A] {
	value, err := fn()
	if err != nil {
		return Failure[A](err)
	}
	return Success(value)
}

// Wrap lifts a conventional (value, error) pair into a Try.
func Wrap[A any](value A, err error) Try[A] {
	if err != nil {
		return Failure[A](err)
	}
	return Success(value)
}

// Apply evaluates fn, converting a panic into a Failure. Panic values
// that are not errors are wrapped in one.
func Apply[A any](fn func() A) (t Try[A]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				t = Failure[A](err)
				return
			}
			t = Failure[A](fmt.Errorf("funfix: recovered panic: %v", r))
		}
	}()
	return Success(fn())
}

// IsSuccess returns true if the Try holds a value.
func (t Try[A]) IsSuccess() bool {
	return t.ok
}

// IsFailure returns true if the Try holds an error.
func (t Try[A]) IsFailure() bool {
	return !t.ok
}

// Get returns the success value. On a Failure it panics with the
// contained error, preserving the original cause.
func (t Try[A]) Get() A {
	if !t.ok {
		panic(t.err)
	}
	return t.value
}

// GetOrElse returns the success value or a default.
func (t Try[A]) GetOrElse(fallback A) A {
	if t.ok {
		return t.value
	}
	return fallback
}

// GetOrElseL returns the success value or computes a default. The
// thunk is invoked only on failure.
func (t Try[A]) GetOrElseL(fn func() A) A {
	if t.ok {
		return t.value
	}
	return fn()
}

// Failed returns the contained error, panicking with a no-such-element
// failure when the Try is a Success.
func (t Try[A]) Failed() error {
	if t.ok {
		panic(funfix.NoSuchElement("Try.Failed"))
	}
	return t.err
}

// OrElse returns this Try if successful, otherwise the alternative.
func (t Try[A]) OrElse(alt Try[A]) Try[A] {
	if t.ok {
		return t
	}
	return alt
}

// OrElseL returns this Try if successful, otherwise computes the
// alternative.
func (t Try[A]) OrElseL(fn func() Try[A]) Try[A] {
	if t.ok {
		return t
	}
	return fn()
}

// Recover maps a failure into a success value; a Success passes
// through with fn not invoked.
func (t Try[A]) Recover(fn func(error) A) Try[A] {
	if t.ok {
		return t
	}
	return Success(fn(t.err))
}

// RecoverWith maps a failure into another Try; a Success passes
// through.
func (t Try[A]) RecoverWith(fn func(error) Try[A]) Try[A] {
	if t.ok {
		return t
	}
	return fn(t.err)
}

// Filter keeps the success value if the predicate holds, otherwise
// turns it into a Failure with onReject's error. A Failure passes
// through unchanged.
func (t Try[A]) Filter(predicate func(A) bool, onReject func() error) Try[A] {
	if !t.ok || predicate(t.value) {
		return t
	}
	return Failure[A](onReject())
}

// Contains reports whether the Try succeeded with a value structurally
// equal to elem.
func (t Try[A]) Contains(elem A) bool {
	return t.ok && objects.Equal(t.value, elem)
}

// Exists reports whether the Try succeeded with a value satisfying the
// predicate.
func (t Try[A]) Exists(predicate func(A) bool) bool {
	return t.ok && predicate(t.value)
}

// ForAll reports whether the predicate holds for the success value.
// Vacuously true on failure.
func (t Try[A]) ForAll(predicate func(A) bool) bool {
	return !t.ok || predicate(t.value)
}

// ForEach invokes fn with the success value, only on success.
func (t Try[A]) ForEach(fn func(A)) {
	if t.ok {
		fn(t.value)
	}
}

// Match executes one of two callbacks based on the Try's state.
func (t Try[A]) Match(onSuccess func(A), onFailure func(error)) {
	if t.ok {
		onSuccess(t.value)
	} else {
		onFailure(t.err)
	}
}

// Equals reports structural equality: two successes with structurally
// equal values, or two failures with structurally equal errors.
func (t Try[A]) Equals(other Try[A]) bool {
	if t.ok != other.ok {
		return false
	}
	if t.ok {
		return objects.Equal(t.value, other.value)
	}
	return objects.Equal(t.err, other.err)
}

// HashCode returns a hash consistent with Equals, with distinct
// formulas for the success and failure sides.
func (t Try[A]) HashCode() uint64 {
	if t.ok {
		if objects.IsNil(t.value) {
			return hashSuccess + hashNil
		}
		return hashSuccess + 31*objects.Hash(t.value)
	}
	return hashFailure + 47*objects.Hash(t.err)
}

func (t Try[A]) String() string {
	if t.ok {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.err)
}

// ToOption keeps the success value and discards a failure.
func (t Try[A]) ToOption() option.Option[A] {
	if t.ok {
		return option.Some(t.value)
	}
	return option.None[A]()
}

// ToEither converts the Try into an Either with the error on the left.
func (t Try[A]) ToEither() either.Either[error, A] {
	if t.ok {
		return either.Right[error](t.value)
	}
	return either.Left[error, A](t.err)
}

// FromEither converts an error-typed Either into a Try.
func FromEither[A any](e either.Either[error, A]) Try[A] {
	if e.IsRight() {
		return Success(e.Right())
	}
	return Failure[A](e.Left())
}

// FromOption converts an Option into a Try, failing with err when empty.
func FromOption[A any](o option.Option[A], err error) Try[A] {
	if o.NonEmpty() {
		return Success(o.Get())
	}
	return Failure[A](err)
}

// Map applies fn to the success value; a Failure passes through with
// fn not invoked.
func Map[A, B any](t Try[A], fn func(A) B) Try[B] {
	if t.ok {
		return Success(fn(t.value))
	}
	return Failure[B](t.err)
}

// FlatMap chains the success value into another Try; a Failure passes
// through.
func FlatMap[A, B any](t Try[A], fn func(A) Try[B]) Try[B] {
	if t.ok {
		return fn(t.value)
	}
	return Failure[B](t.err)
}

// Fold invokes exactly one of the two branches and returns its result.
func Fold[A, B any](t Try[A], onFailure func(error) B, onSuccess func(A) B) B {
	if t.ok {
		return onSuccess(t.value)
	}
	return onFailure(t.err)
}

// Map2 combines two Trys, first failure wins.
func Map2[A, B, C any](ta Try[A], tb Try[B], fn func(A, B) C) Try[C] {
	if !ta.ok {
		return Failure[C](ta.err)
	}
	if !tb.ok {
		return Failure[C](tb.err)
	}
	return Success(fn(ta.value, tb.value))
}
