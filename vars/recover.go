package vars

import "reflect"

// Is reports whether v currently holds exactly type T. Exactly means the
// dynamic type of the payload is T itself; interface types never match, and
// a Value holding int32 does not satisfy Is[int64]. As a special case,
// Is[Null] reports whether v is empty.
func Is[T any](v Value) bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t == nullType {
		return v.c == nil
	}
	return v.c != nil && v.c.typ == t
}

// Get returns the held value and true when v holds exactly type T, or the
// zero T and false otherwise. This is the explicit form of recovery; As and
// AsOr provide the silent-default form.
func Get[T any](v Value) (T, bool) {
	if v.c != nil && v.c.typ == reflect.TypeOf((*T)(nil)).Elem() {
		return v.c.val.(T), true
	}
	var zero T
	return zero, false
}

// As returns the held value when v holds exactly type T, and the zero T
// otherwise. A mismatch is indistinguishable from a legitimately held zero;
// use Get when that matters.
func As[T any](v Value) T {
	x, _ := Get[T](v)
	return x
}

// AsOr returns the held value when v holds exactly type T, and def
// otherwise.
func AsOr[T any](v Value, def T) T {
	if x, ok := Get[T](v); ok {
		return x
	}
	return def
}

var nullType = reflect.TypeOf((*Null)(nil)).Elem()
