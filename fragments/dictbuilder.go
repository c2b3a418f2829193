package fragments

// DictBuffer is an owned, appendable accumulator for the entries of a
// D-Bus dict-entry array ("a{KV}").
type DictBuffer struct {
	keySig, valSig string
	data           []byte
}

// NewDictBuffer returns an empty DictBuffer whose entries must have
// the given key and value single-signatures.
func NewDictBuffer(keySig, valSig string) *DictBuffer {
	return &DictBuffer{keySig: keySig, valSig: valSig}
}

// Signature returns the outer "a{KV}" signature.
func (d *DictBuffer) Signature() string { return "a{" + d.keySig + d.valSig + "}" }

// Append appends one key/value entry, padding the running data to the
// dict-entry alignment of 8 first. It fails with [ErrWrongType] if
// either signature doesn't match, or [ErrNumberTooBig] if doing so
// would push the payload past [MaxArrayBytes]; either failure leaves
// the buffer unchanged.
func (d *DictBuffer) Append(key, value Marshal) error {
	if key.Signature() != d.keySig {
		return errReason(WrongType)
	}
	if value.Signature() != d.valSig {
		return errReason(WrongType)
	}
	old := len(d.data)
	data := AlignBuf(d.data, 8)
	data = key.AppendDataTo(data)
	data = value.AppendDataTo(data)
	if len(data) > MaxArrayBytes {
		d.data = d.data[:old]
		return errReason(NumberTooBig)
	}
	d.data = data
	return nil
}

// AppendDataTo implements [Marshal].
func (d *DictBuffer) AppendDataTo(buf []byte) []byte {
	buf = NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(len(d.data)))
	buf = AlignBuf(buf, 8)
	return append(buf, d.data...)
}
