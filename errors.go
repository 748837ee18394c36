// Package funfix provides the shared error signal for the immutable
// container types in this module (option, either, try).
package funfix

import "fmt"

// NoSuchElementError is the panic value raised by partial accessors
// invoked on the wrong variant, such as Get on an empty Option or
// Right on a Left. Op identifies the accessor that was misused.
type NoSuchElementError struct {
	Op string
}

func (e *NoSuchElementError) Error() string {
	return fmt.Sprintf("funfix: no such element: %s", e.Op)
}

// NoSuchElement creates the panic value for a misused partial accessor.
func NoSuchElement(op string) *NoSuchElementError {
	return &NoSuchElementError{Op: op}
}

// IsNoSuchElement reports whether a recovered panic value is a
// no-such-element failure.
func IsNoSuchElement(v any) bool {
	_, ok := v.(*NoSuchElementError)
	return ok
}
