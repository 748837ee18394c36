// Package objects implements the structural equality and hashing used by
// the container types for Equals, HashCode and Contains.
package objects

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

const (
	// Hash result for nil-like values.
	nilHash uint64 = 0x1b873593
	// Hash result for values hashstructure cannot handle (funcs, channels).
	unhashable uint64 = 0xcc9e2d51
)

// Equal reports deep structural equality between two arbitrary values.
// Values of different dynamic types are never equal.
func Equal(a, b any) (eq bool) {
	// cmp panics on types with unexported fields unless configured per
	// type; boxed payloads are caller-owned, so fall back to DeepEqual.
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// Hash computes a structural hash such that Equal values hash alike.
// Values hashstructure cannot process (functions, channels, unexported
// fields) collapse to a shared sentinel, which keeps the hash
// consistent with Equal at the cost of collisions.
func Hash(v any) (code uint64) {
	if IsNil(v) {
		return nilHash
	}
	defer func() {
		if recover() != nil {
			code = unhashable
		}
	}()
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return unhashable
	}
	return h
}

// IsNil reports whether v is the untyped nil interface or a typed nil
// pointer, map, slice, function or channel.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
