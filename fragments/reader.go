package fragments

import "math"

// MaxArrayBytes is the largest permitted length of an array's byte
// body, per the D-Bus specification.
const MaxArrayBytes = 67108864

// MaxSignatureBytes is the largest permitted length of a signature
// string.
const MaxSignatureBytes = 255

// MultiReader is a borrowed, immutable cursor over a sequence of
// top-level D-Bus values: a multi-signature together with the bytes
// it describes. It must not outlive the byte slice it was built
// from.
type MultiReader struct {
	sig   string
	data  []byte
	order ByteOrder
}

// NewMultiReader returns a MultiReader over data, interpreted
// according to sig and order. data is assumed to begin at the
// alignment required by sig's first type, relative to the enclosing
// message body's origin.
func NewMultiReader(sig string, data []byte, order ByteOrder) MultiReader {
	return MultiReader{sig: sig, data: data, order: order}
}

// Signature returns the remaining multi-signature this reader will
// yield values for.
func (m MultiReader) Signature() string { return m.sig }

// MultiIter walks the top-level values of a MultiReader one at a
// time. It is single-use and not safe for concurrent use; call
// [MultiReader.Iter] again (or copy the MultiReader first) to restart
// iteration.
type MultiIter struct {
	sig      string
	data     []byte
	order    ByteOrder
	startPos int
	origLen  int
}

// Iter returns a fresh iterator over m's top-level values.
func (m MultiReader) Iter() *MultiIter {
	return &MultiIter{sig: m.sig, data: m.data, order: m.order, origLen: len(m.data)}
}

// Next decodes the next top-level value. ok is false once the
// signature is exhausted; err is set if decoding the next value
// failed, in which case the iterator must not be used further.
func (it *MultiIter) Next() (SingleReader, bool, error) {
	if it.sig == "" {
		return SingleReader{}, false, nil
	}
	first, rest := splitSingle(it.sig)
	s := SingleReader{sig: first, data: it.data, startPos: it.startPos, order: it.order}
	ln, err := s.RealByteLength()
	if err != nil {
		return SingleReader{}, false, err
	}
	if rest != "" {
		ln = AlignUp(it.startPos+ln, AlignOf(rest[0])) - it.startPos
	}
	if ln > len(it.data) {
		return SingleReader{}, false, errReason(NotEnoughData)
	}
	s.data = it.data[:ln]
	it.data = it.data[ln:]
	it.sig = rest
	it.startPos += ln
	return s, true, nil
}

// RealByteLength drives iteration to exhaustion and returns the
// number of bytes consumed from the start of m's data.
func (m MultiReader) RealByteLength() (int, error) {
	it := m.Iter()
	for {
		_, ok, err := it.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
	}
	return it.origLen - len(it.data), nil
}

// SingleReader is a borrowed, immutable cursor over exactly one
// D-Bus value.
type SingleReader struct {
	sig      string
	data     []byte
	startPos int
	order    ByteOrder
}

// NewSingleReader returns a SingleReader over data, describing one
// value of the given single-signature. startPos is the absolute
// offset of data[0] from the enclosing message body's origin; it is
// required to compute alignment padding correctly for nested arrays,
// structs and variants.
func NewSingleReader(sig string, data []byte, startPos int, order ByteOrder) SingleReader {
	return SingleReader{sig: sig, data: data, startPos: startPos, order: order}
}

// Signature returns the single-signature this reader decodes.
func (s SingleReader) Signature() string { return s.sig }

func (s SingleReader) read1() (byte, error) {
	if len(s.data) < 1 {
		return 0, errReason(NotEnoughData)
	}
	return s.data[0], nil
}

func (s SingleReader) read2() (uint16, error) {
	if len(s.data) < 2 {
		return 0, errReason(NotEnoughData)
	}
	return s.order.Uint16(s.data[0:2]), nil
}

func (s SingleReader) read4() (uint32, error) {
	if len(s.data) < 4 {
		return 0, errReason(NotEnoughData)
	}
	return s.order.Uint32(s.data[0:4]), nil
}

func (s SingleReader) read8() (uint64, error) {
	if len(s.data) < 8 {
		return 0, errReason(NotEnoughData)
	}
	return s.order.Uint64(s.data[0:8]), nil
}

func (s SingleReader) readF64() (float64, error) {
	bits, err := s.read8()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// readStr reads a D-Bus "s"-shaped value: a uint32 length, that many
// bytes of payload, and a single NUL terminator. valid additionally
// constrains the payload, to distinguish plain strings from object
// paths.
func (s SingleReader) readStr(valid func(string) bool) (string, error) {
	ln, err := s.read4()
	if err != nil {
		return "", err
	}
	total := int(ln) + 4 + 1
	if total > len(s.data) {
		return "", errReason(NotEnoughData)
	}
	str := string(s.data[4 : 4+ln])
	if !valid(str) {
		return "", errReason(InvalidString)
	}
	return str, nil
}

func (s SingleReader) readSig() (string, error) {
	ln, err := s.read1()
	if err != nil {
		return "", err
	}
	total := int(ln) + 1 + 1
	if total > len(s.data) {
		return "", errReason(NotEnoughData)
	}
	str := string(s.data[1 : 1+ln])
	if !isValidDBusString(str) {
		return "", errReason(InvalidString)
	}
	return str, nil
}

// RealByteLength returns the unaligned byte span of the value this
// reader describes, not including any padding that belongs before the
// next sibling value.
func (s SingleReader) RealByteLength() (int, error) {
	switch s.sig[0] {
	case 'y':
		return 1, nil
	case 'n', 'q':
		return 2, nil
	case 'i', 'u', 'b', 'h':
		return 4, nil
	case 'x', 't', 'd':
		return 8, nil
	case 's', 'o':
		ln, err := s.read4()
		if err != nil {
			return 0, err
		}
		return int(ln) + 4 + 1, nil
	case 'g':
		ln, err := s.read1()
		if err != nil {
			return 0, err
		}
		return int(ln) + 1 + 1, nil
	case 'a':
		ln, err := s.read4()
		if err != nil {
			return 0, err
		}
		if ln > MaxArrayBytes {
			return 0, errReason(NumberTooBig)
		}
		// The span includes the padding between the length prefix and
		// the first element, which sits at the element type's alignment
		// (8 for dict entries).
		pad := AlignUp(s.startPos+4, AlignOf(s.sig[1])) - s.startPos - 4
		return int(ln) + 4 + pad, nil
	case 'v':
		inner, headerLen, err := s.variantInner()
		if err != nil {
			return 0, err
		}
		innerLen, err := inner.RealByteLength()
		if err != nil {
			return 0, err
		}
		return headerLen + innerLen, nil
	case '(':
		return s.innerStruct().RealByteLength()
	default:
		panic("fragments: unexpected signature byte " + string(s.sig[0]))
	}
}

// variantInner decodes the inline signature byte-prefix of a variant
// value and returns a SingleReader positioned at the start of the
// variant's payload, along with the number of header bytes (sig
// length byte + sig + NUL + alignment padding) consumed before the
// payload begins.
func (s SingleReader) variantInner() (SingleReader, int, error) {
	siglen, err := s.read1()
	if err != nil {
		return SingleReader{}, 0, err
	}
	headerEnd := int(siglen) + 2
	if headerEnd > len(s.data) {
		return SingleReader{}, 0, errReason(NotEnoughData)
	}
	innerSig := string(s.data[1 : 1+siglen])
	if !isValidDBusString(innerSig) || innerSig == "" {
		return SingleReader{}, 0, errReason(InvalidString)
	}
	dataStart := AlignUp(s.startPos+headerEnd, AlignOf(innerSig[0])) - s.startPos
	if dataStart > len(s.data) {
		return SingleReader{}, 0, errReason(NotEnoughData)
	}
	return SingleReader{
		sig:      innerSig,
		data:     s.data[dataStart:],
		startPos: s.startPos + dataStart,
		order:    s.order,
	}, dataStart, nil
}

// innerStruct returns a MultiReader over a struct value's fields,
// sharing this reader's data and byte order.
func (s SingleReader) innerStruct() MultiReader {
	inner := s.sig[1 : len(s.sig)-1]
	return MultiReader{sig: inner, data: s.data, order: s.order}
}

func (s SingleReader) parseArray() (Parsed, error) {
	ln, err := s.read4()
	if err != nil {
		return Parsed{}, err
	}
	if ln > MaxArrayBytes {
		return Parsed{}, errReason(NumberTooBig)
	}
	n := int(ln)
	if s.sig[1] == '{' {
		inner := s.sig[2 : len(s.sig)-1]
		keySig, valSig := splitSingle(inner)
		dataStart := AlignUp(s.startPos+4, 8) - s.startPos
		if dataStart+n > len(s.data) {
			return Parsed{}, errReason(NotEnoughData)
		}
		return Parsed{
			kind: KindDict,
			dict: DictView{
				outerSig: s.sig,
				keySig:   keySig,
				valSig:   valSig,
				data:     s.data[dataStart : dataStart+n],
				order:    s.order,
			},
		}, nil
	}

	innerSig := s.sig[1:]
	dataStart := AlignUp(s.startPos+4, AlignOf(innerSig[0])) - s.startPos
	if dataStart+n > len(s.data) {
		return Parsed{}, errReason(NotEnoughData)
	}
	return Parsed{
		kind: KindArray,
		array: ArrayView{
			inner:    innerSig,
			data:     s.data[dataStart : dataStart+n],
			startPos: s.startPos + dataStart,
			order:    s.order,
		},
	}, nil
}

// Parse decodes the value this reader describes into a [Parsed].
func (s SingleReader) Parse() (Parsed, error) {
	switch s.sig[0] {
	case 'y':
		v, err := s.read1()
		return Parsed{kind: KindByte, byteVal: v}, err
	case 'n':
		v, err := s.read2()
		return Parsed{kind: KindInt16, i16: int16(v)}, err
	case 'q':
		v, err := s.read2()
		return Parsed{kind: KindUInt16, u16: v}, err
	case 'i':
		v, err := s.read4()
		return Parsed{kind: KindInt32, i32: int32(v)}, err
	case 'u':
		v, err := s.read4()
		return Parsed{kind: KindUInt32, u32: v}, err
	case 'h':
		v, err := s.read4()
		return Parsed{kind: KindUnixFd, unixFd: v}, err
	case 'b':
		v, err := s.read4()
		if err != nil {
			return Parsed{}, err
		}
		switch v {
		case 0:
			return Parsed{kind: KindBool, boolVal: false}, nil
		case 1:
			return Parsed{kind: KindBool, boolVal: true}, nil
		default:
			return Parsed{}, errReason(InvalidBoolean)
		}
	case 'x':
		v, err := s.read8()
		return Parsed{kind: KindInt64, i64: int64(v)}, err
	case 't':
		v, err := s.read8()
		return Parsed{kind: KindUInt64, u64: v}, err
	case 'd':
		v, err := s.readF64()
		return Parsed{kind: KindDouble, f64: v}, err
	case 'g':
		v, err := s.readSig()
		return Parsed{kind: KindSignature, str: v}, err
	case 's':
		v, err := s.readStr(isValidDBusString)
		return Parsed{kind: KindString, str: v}, err
	case 'o':
		v, err := s.readStr(isValidObjectPath)
		return Parsed{kind: KindObjectPath, str: v}, err
	case 'v':
		inner, _, err := s.variantInner()
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{kind: KindVariant, variant: inner}, nil
	case '(':
		return Parsed{kind: KindStruct, strct: s.innerStruct()}, nil
	case 'a':
		return s.parseArray()
	default:
		panic("fragments: unexpected signature byte " + string(s.sig[0]))
	}
}
