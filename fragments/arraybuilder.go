package fragments

// ArrayBuffer is an owned, appendable accumulator for the elements of
// a D-Bus array, all of the same single-signature.
type ArrayBuffer struct {
	inner string
	data  []byte
}

// NewArrayBuffer returns an empty ArrayBuffer whose elements must have
// the given single-signature.
func NewArrayBuffer(inner string) *ArrayBuffer {
	return &ArrayBuffer{inner: inner}
}

// Signature returns the outer "a"+inner signature.
func (a *ArrayBuffer) Signature() string { return "a" + a.inner }

// Append appends one element. It fails with [ErrWrongType] if value's
// signature does not match the buffer's element signature, or with
// [ErrNumberTooBig] if doing so would push the payload past
// [MaxArrayBytes]; either failure leaves the buffer unchanged.
func (a *ArrayBuffer) Append(value Marshal) error {
	if value.Signature() != a.inner {
		return errReason(WrongType)
	}
	old := len(a.data)
	a.data = value.AppendDataTo(a.data)
	if len(a.data) > MaxArrayBytes {
		a.data = a.data[:old]
		return errReason(NumberTooBig)
	}
	return nil
}

// AppendDataTo implements [Marshal], so an ArrayBuffer can itself be
// appended into an enclosing buffer (e.g. an array of arrays, or a
// struct field).
func (a *ArrayBuffer) AppendDataTo(buf []byte) []byte {
	buf = NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(len(a.data)))
	buf = AlignBuf(buf, AlignOf(a.inner[0]))
	return append(buf, a.data...)
}

// NewArrayBufferFromValues builds an ArrayBuffer from a fixed set of
// values sharing inner's signature, stopping at the first error.
func NewArrayBufferFromValues(inner string, values ...Marshal) (*ArrayBuffer, error) {
	a := NewArrayBuffer(inner)
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}
