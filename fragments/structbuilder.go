package fragments

// StructBuffer is an owned, appendable accumulator for the fields of
// a D-Bus struct. It wraps a [MultiBuffer] and adds the struct's
// own leading 8-byte alignment and parenthesized outer signature.
type StructBuffer struct {
	inner *MultiBuffer
}

// NewStructBuffer returns an empty StructBuffer.
func NewStructBuffer() *StructBuffer {
	return &StructBuffer{inner: NewMultiBuffer()}
}

// Append appends one field.
func (s *StructBuffer) Append(v Marshal) error {
	return s.inner.Append(v)
}

// Signature returns the outer "("+fields+")" signature.
func (s *StructBuffer) Signature() string {
	return "(" + s.inner.sig + ")"
}

// AppendDataTo implements [Marshal].
func (s *StructBuffer) AppendDataTo(buf []byte) []byte {
	buf = AlignBuf(buf, 8)
	return append(buf, s.inner.data...)
}
