package sect

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindDuplicate ErrKind = iota // section name already registered
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

// ErrDuplicateName is the sentinel carried by every duplicate-insert error,
// so callers can match with errors.Is. Name uniqueness is identity; this
// cannot be deferred the way placement violations are.
var ErrDuplicateName = &Error{Kind: ErrKindDuplicate, Msg: "section name is already in use"}
