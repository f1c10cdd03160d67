// Package vars provides Value, a shared, type-erased container for a single
// value of any holdable type.
//
// # Overview
//
// A Value holds exactly one value, remembers its dynamic type, and supports
// safe recovery and equality comparison without the call site knowing the
// concrete type in advance. It is intentionally restricted to plain-data
// semantics: pointers, unsafe pointers, channels, and functions cannot be
// held, and there are no ordering operators and no hash support.
//
// The zero Value is empty:
//
//	var v vars.Value
//	v.Empty()          // true
//	v.Eq(nil)          // true
//
// Construction and assignment capture the payload's dynamic type:
//
//	v := vars.New(3)
//	vars.Is[int](v)    // true
//	v.Eq(3)            // true
//	v.Eq(3.0)          // false - float64 is a different type
//
//	v.Set("hello")
//	vars.Is[int](v)    // false
//	vars.Is[string](v) // true
//
// # Sharing
//
// Copying a Value copies only an internal reference to an immutable cell;
// the payload is never duplicated. Reassignment installs a brand-new cell,
// so copies are isolated from each other:
//
//	a := vars.New(20)
//	b := a             // shares a's cell, O(1)
//	a.Set(21)          // b still holds 20
//
// Because cells are immutable, independent copies that happen to share a
// cell are safe for concurrent reads. A single Value variable is an ordinary
// mutable slot: concurrent Set calls on the same variable need external
// synchronization.
//
// Holdable values with reference-backed internals (slices, maps) are stored
// shallowly. Mutating a slice's backing array after storing it breaks the
// immutability assumption; treat stored payloads as frozen.
//
// # Recovery
//
// Get is the explicit, comma-ok form. As and AsOr degrade silently to a
// default on type mismatch, matching the container's original contract:
//
//	n, ok := vars.Get[int](v)   // ok == false when v holds something else
//	n = vars.As[int](v)         // zero int on mismatch
//	n = vars.AsOr(v, -1)        // -1 on mismatch
//
// # Text
//
// string is held directly. WideString holds UTF-16 code units for call sites
// where text width is part of the contract; ParseWide and WideString.Bytes
// convert to and from UTF-16LE byte payloads.
//
// # Errors
//
// Construction is the only operation with a failure mode: New and Set panic
// with a *Error wrapping ErrNotHoldable for disallowed payload types, and
// TryNew returns it instead. Recovery never fails loudly; a mismatch reports
// false (Is, Get) or yields a default (As, AsOr).
package vars
