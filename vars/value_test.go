package vars

import (
	"errors"
	"reflect"
	"testing"
)

// Test_ZeroValue tests that the zero Value is empty and usable.
func Test_ZeroValue(t *testing.T) {
	var v Value
	if !v.Empty() {
		t.Error("zero Value should be empty")
	}
	if v.Type() != nil {
		t.Errorf("Type() = %v, want nil", v.Type())
	}
	if !v.Eq(nil) {
		t.Error("empty Value should equal nil")
	}
}

// Test_New tests construction from holdable payloads.
func Test_New(t *testing.T) {
	tests := []struct {
		name    string
		val     any
		empty   bool
		typeStr string
	}{
		{"int", 3, false, "int"},
		{"float64", 3.2, false, "float64"},
		{"string", "hello", false, "string"},
		{"bool slice", []bool{false, true}, false, "[]bool"},
		{"struct", struct{ X int }{4}, false, "struct { X int }"},
		{"array", [2]int{1, 2}, false, "[2]int"},
		{"nil", nil, true, ""},
		{"null marker", Null{}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.val)
			if v.Empty() != tt.empty {
				t.Fatalf("Empty() = %v, want %v", v.Empty(), tt.empty)
			}
			if tt.empty {
				return
			}
			if got := v.Type().String(); got != tt.typeStr {
				t.Errorf("Type() = %s, want %s", got, tt.typeStr)
			}
			if !v.Eq(tt.val) {
				t.Errorf("New(%v) should equal its payload", tt.val)
			}
		})
	}
}

// Test_New_SharesValue tests the copy path: New of a Value shares its cell
// rather than nesting a Value inside a Value.
func Test_New_SharesValue(t *testing.T) {
	a := New(42)
	b := New(a)
	if !Is[int](b) {
		t.Error("New(Value) should share the payload, not nest the Value")
	}
	if !a.Equal(b) {
		t.Error("shared Values should compare equal")
	}
}

// Test_TryNew_Rejects tests the holdable check on disallowed payload kinds.
func Test_TryNew_Rejects(t *testing.T) {
	n := 3
	tests := []struct {
		name string
		val  any
	}{
		{"pointer", &n},
		{"channel", make(chan int)},
		{"function", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TryNew(tt.val)
			if err == nil {
				t.Fatal("TryNew should reject the payload")
			}
			if !errors.Is(err, ErrNotHoldable) {
				t.Errorf("error should wrap ErrNotHoldable, got %v", err)
			}
			var verr *Error
			if !errors.As(err, &verr) || verr.Kind != ErrKindHoldable {
				t.Errorf("error should be a *Error of kind ErrKindHoldable, got %v", err)
			}
		})
	}
}

// Test_New_Panics tests that New fails fast where TryNew errors.
func Test_New_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("New should panic on a non-holdable payload")
		}
		if _, ok := r.(*Error); !ok {
			t.Errorf("panic value should be *Error, got %T", r)
		}
	}()
	n := 3
	New(&n)
}

// Test_Set tests reassignment and clearing.
func Test_Set(t *testing.T) {
	v := New(3)
	v.Set(1)
	if got := As[int](v); got != 1 {
		t.Errorf("As[int]() = %d, want 1", got)
	}

	v.Set("hi")
	if Is[int](v) {
		t.Error("Is[int]() should be false after reassignment to string")
	}
	if !v.Eq("hi") {
		t.Error(`Value should equal "hi" after Set`)
	}

	v.Set(nil)
	if !v.Empty() {
		t.Error("Set(nil) should empty the Value")
	}

	v.Set(2)
	v.Clear()
	if !v.Empty() {
		t.Error("Clear() should empty the Value")
	}
}

// Test_CopyIsolation tests that reassigning one copy never changes another:
// cells are replaced, not mutated in place.
func Test_CopyIsolation(t *testing.T) {
	a := New(20)
	b := a

	if !b.Equal(a) || !b.Eq(20) {
		t.Fatal("copy should equal the original and its payload")
	}

	a.Set(99)
	if !b.Eq(20) {
		t.Errorf("copy changed by reassignment of the original: got %s", b)
	}
	if a.Equal(b) {
		t.Error("reassigned original should no longer equal the copy")
	}
}

// Test_Type tests dynamic type reporting.
func Test_Type(t *testing.T) {
	v := New([]bool{true})
	if want := reflect.TypeOf([]bool{}); v.Type() != want {
		t.Errorf("Type() = %v, want %v", v.Type(), want)
	}
}

// Test_String tests the debug formatting.
func Test_String(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"empty", Value{}, "<null>"},
		{"int", New(3), "3"},
		{"string", New("hi"), "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
