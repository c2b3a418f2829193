package fragments

import "fmt"

// Reason is a closed enumeration of the ways a demarshal or marshal
// operation can fail.
type Reason int

const (
	// NotEnoughData means the byte buffer ended before a value's
	// declared or fixed length was satisfied.
	NotEnoughData Reason = iota + 1
	// InvalidString means a string-like value's payload was not valid
	// UTF-8, or did not satisfy its subtype's syntax.
	InvalidString
	// InvalidBoolean means a boolean's encoded uint32 was something
	// other than 0 or 1.
	InvalidBoolean
	// NumberTooBig means an array body would exceed 64 MiB, or a
	// signature would exceed 255 bytes.
	NumberTooBig
	// WrongType means a builder was asked to append a value whose
	// signature does not match the container it is being appended to,
	// or a [Parsed] was asked for a representation it doesn't have.
	WrongType
)

func (r Reason) String() string {
	switch r {
	case NotEnoughData:
		return "not enough data"
	case InvalidString:
		return "invalid string"
	case InvalidBoolean:
		return "invalid boolean"
	case NumberTooBig:
		return "number too big"
	case WrongType:
		return "wrong type"
	default:
		return fmt.Sprintf("unknown reason %d", int(r))
	}
}

// Error is the error type returned by every fallible operation in
// this package.
type Error struct {
	// Reason is the machine-checkable cause of the failure. Compare it
	// directly against the [Reason] constants, or match the error with
	// [errors.Is] against the Err* sentinels.
	Reason Reason
	// Detail is a short human-readable elaboration, such as the
	// signature character or offset involved.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Reason.String()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	return ok && o.Reason == e.Reason
}

// Sentinel errors for use with [errors.Is]. Every error this package
// returns has one of these as its [Reason].
var (
	ErrNotEnoughData  = &Error{Reason: NotEnoughData}
	ErrInvalidString  = &Error{Reason: InvalidString}
	ErrInvalidBoolean = &Error{Reason: InvalidBoolean}
	ErrNumberTooBig   = &Error{Reason: NumberTooBig}
	ErrWrongType      = &Error{Reason: WrongType}
)

func errf(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// errReason returns a detail-less *Error for reason, equivalent to
// taking the address of that reason's sentinel but spelled as a call
// so callers don't need to remember each sentinel's exact name.
func errReason(reason Reason) *Error {
	return &Error{Reason: reason}
}
