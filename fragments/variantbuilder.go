package fragments

// VariantBuffer is an owned accumulator holding one self-describing
// D-Bus variant value: an inner single-signature together with that
// value's already-encoded bytes.
type VariantBuffer struct {
	sig  string
	data []byte
}

// NewVariantBuffer encodes value and wraps it as a variant.
func NewVariantBuffer(value Marshal) *VariantBuffer {
	return &VariantBuffer{
		sig:  value.Signature(),
		data: value.AppendDataTo(nil),
	}
}

// Signature always returns "v".
func (*VariantBuffer) Signature() string { return "v" }

// AppendDataTo implements [Marshal]: it writes the inner signature as
// a "g" value, pads to the inner value's own alignment, then copies
// its bytes.
func (v *VariantBuffer) AppendDataTo(buf []byte) []byte {
	buf = Signature(v.sig).AppendDataTo(buf)
	buf = AlignBuf(buf, AlignOf(v.sig[0]))
	return append(buf, v.data...)
}
