package vars

import "reflect"

// Equal reports whether v and rhs hold equal values of the same dynamic
// type. Two empty Values are equal; an empty and a non-empty Value are
// unequal regardless of contents. Equality is total: a type mismatch is
// false, never a panic.
func (v Value) Equal(rhs Value) bool {
	if v.c == nil || rhs.c == nil {
		return v.c == nil && rhs.c == nil
	}
	return v.c.eq(rhs.c)
}

// Eq compares v against a plain value. It dispatches on the payload the way
// New does:
//
//   - nil or Null{} compares equal iff v is empty,
//   - another Value delegates to Equal,
//   - anything else is equal iff v holds exactly rhs's dynamic type with an
//     equal value.
//
// Eq is symmetric: Eq(x) on a Value holding y equals Eq(y) on a Value
// holding x. Values of different dynamic types never compare equal, so a
// Value holding int 3 is unequal to float64 3.
func (v Value) Eq(rhs any) bool {
	switch x := rhs.(type) {
	case nil:
		return v.c == nil
	case Null:
		return v.c == nil
	case Value:
		return v.Equal(x)
	}
	if v.c == nil {
		return false
	}
	return v.c.eq(&cell{typ: reflect.TypeOf(rhs), val: rhs})
}
