package vars

import (
	"fmt"
	"reflect"
)

// cell is the immutable erased storage behind a Value. typ is the dynamic
// type of val, captured at construction; it doubles as the type tag that
// equality and recovery check before ever touching the payload. A cell is
// never written after newCell returns, which is what makes sharing one
// across Value copies safe.
type cell struct {
	typ reflect.Type
	val any
}

func newCell(val any) (*cell, error) {
	t := reflect.TypeOf(val)
	if err := checkHoldable(t); err != nil {
		return nil, err
	}
	return &cell{typ: t, val: val}, nil
}

// eq reports whether rhs holds the same dynamic type with an equal value.
// A type mismatch is unequal, never an error. Comparable values use the
// language == on the boxed payloads; everything else (slices, maps, structs
// containing them) falls back to deep equality. The check must run on the
// values, not the type: == on a comparable struct type still panics when an
// interface field holds a non-comparable value, and equality may never
// panic.
func (c *cell) eq(rhs *cell) bool {
	if c.typ != rhs.typ {
		return false
	}
	if reflect.ValueOf(c.val).Comparable() && reflect.ValueOf(rhs.val).Comparable() {
		return c.val == rhs.val
	}
	return reflect.DeepEqual(c.val, rhs.val)
}

// checkHoldable rejects payload kinds that would smuggle reference or
// identity semantics into a shared cell. The check runs against the dynamic
// type at construction time; Go offers no compile-time guard once the
// payload has passed through an any.
func checkHoldable(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return &Error{
			Kind: ErrKindHoldable,
			Msg:  fmt.Sprintf("vars: cannot hold %s value of type %s", t.Kind(), t),
			Err:  ErrNotHoldable,
		}
	}
	return nil
}
