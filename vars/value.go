package vars

import (
	"fmt"
	"reflect"
)

// Value is a shared, type-erased container for a single value. A Value
// remembers the dynamic type of what it holds, recovers it safely with
// Is/Get/As, and compares against other Values and plain values without the
// call site knowing the concrete type in advance.
//
// The zero Value is empty and ready to use. Copying a Value copies only an
// internal reference; the stored payload is shared, never duplicated. The
// shared cell is immutable, so reassigning one copy (via Set) never changes
// what the other copies hold.
type Value struct {
	c *cell
}

// Null is the marker type for the empty state. Is[Null] reports emptiness,
// and New(Null{}) constructs an empty Value. It is distinct from the zero
// value of any holdable type: a Value holding int 0 is not empty.
type Null struct{}

// New constructs a Value holding val. The payload is captured under its
// dynamic type. Special cases mirror overload resolution on the payload:
//
//   - nil or Null{} yields an empty Value,
//   - another Value is shared as-is (a copy, not a nested Value).
//
// New panics with a *Error if val's type cannot be held; use TryNew to get
// the error instead.
func New(val any) Value {
	v, err := TryNew(val)
	if err != nil {
		panic(err)
	}
	return v
}

// TryNew is New with an error return instead of a panic. The returned error
// wraps ErrNotHoldable when val is a pointer, unsafe pointer, channel, or
// function.
func TryNew(val any) (Value, error) {
	switch x := val.(type) {
	case nil:
		return Value{}, nil
	case Null:
		return Value{}, nil
	case Value:
		return x, nil
	}
	c, err := newCell(val)
	if err != nil {
		return Value{}, err
	}
	return Value{c: c}, nil
}

// Set replaces what v holds, with the same payload handling as New. The old
// cell is abandoned, not mutated, so other Values sharing it are unaffected.
// Like New, Set panics on a non-holdable payload.
func (v *Value) Set(val any) {
	*v = New(val)
}

// Clear empties v. Equivalent to Set(nil).
func (v *Value) Clear() {
	v.c = nil
}

// Empty reports whether v holds nothing.
func (v Value) Empty() bool {
	return v.c == nil
}

// Type returns the dynamic type of the held value, or nil if v is empty.
func (v Value) Type() reflect.Type {
	if v.c == nil {
		return nil
	}
	return v.c.typ
}

// String formats the held value for debugging. It is not a serialization
// format; round-tripping is not supported.
func (v Value) String() string {
	if v.c == nil {
		return "<null>"
	}
	return fmt.Sprintf("%v", v.c.val)
}
