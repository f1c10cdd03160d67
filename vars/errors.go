package vars

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindHoldable ErrKind = iota // payload type cannot be stored in a Value
	ErrKindEncoding                // malformed wide-string byte payload
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

var (
	// ErrNotHoldable indicates a payload whose type cannot be stored:
	// pointers, unsafe pointers, channels, and functions are rejected.
	ErrNotHoldable = &Error{Kind: ErrKindHoldable, Msg: "vars: type cannot be held"}

	// ErrOddLength indicates a UTF-16 byte payload with an odd byte count.
	ErrOddLength = &Error{Kind: ErrKindEncoding, Msg: "vars: utf-16 data has odd length"}
)
