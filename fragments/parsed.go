package fragments

// Kind discriminates the variants of a [Parsed] value. Kind is
// non-exhaustive: new D-Bus basic types may gain new Kind values in
// future without it being a breaking change, so callers should not
// assume the set is closed when switching on it.
type Kind int

const (
	KindInvalid Kind = iota
	KindArray
	KindDict
	KindStruct
	KindVariant
	KindObjectPath
	KindSignature
	KindString
	KindBool
	KindByte
	KindInt16
	KindInt32
	KindInt64
	KindUInt16
	KindUInt32
	KindUInt64
	KindDouble
	KindUnixFd
)

// Parsed is the decoded value produced by [SingleReader.Parse]. It is
// a tagged union: exactly one accessor matching [Parsed.Kind] returns
// a meaningful value, and it is a programmer error to call any other
// accessor.
type Parsed struct {
	kind Kind

	array   ArrayView
	dict    DictView
	strct   MultiReader
	variant SingleReader

	str     string
	boolVal bool
	byteVal byte
	i16     int16
	i32     int32
	i64     int64
	u16     uint16
	u32     uint32
	u64     uint64
	f64     float64
	unixFd  uint32
}

// Kind reports which variant this Parsed holds.
func (p Parsed) Kind() Kind { return p.kind }

func (p Parsed) Array() ArrayView      { return p.array }
func (p Parsed) Dict() DictView        { return p.dict }
func (p Parsed) Struct() MultiReader   { return p.strct }
func (p Parsed) Variant() SingleReader { return p.variant }
func (p Parsed) ObjectPath() string    { return p.str }
func (p Parsed) Signature() string     { return p.str }

// Str returns the payload of a String-kind value. It is named Str,
// not String, so that Parsed does not accidentally satisfy
// [fmt.Stringer] with a value that is meaningless for every other
// Kind.
func (p Parsed) Str() string     { return p.str }
func (p Parsed) Bool() bool      { return p.boolVal }
func (p Parsed) Byte() byte      { return p.byteVal }
func (p Parsed) Int16() int16    { return p.i16 }
func (p Parsed) Int32() int32    { return p.i32 }
func (p Parsed) Int64() int64    { return p.i64 }
func (p Parsed) UInt16() uint16  { return p.u16 }
func (p Parsed) UInt32() uint32  { return p.u32 }
func (p Parsed) UInt64() uint64  { return p.u64 }
func (p Parsed) Double() float64 { return p.f64 }
func (p Parsed) UnixFd() uint32  { return p.unixFd }

// AsDBusStr returns the string payload of a String, ObjectPath or
// Signature value, or [ErrWrongType] for any other Kind.
func (p Parsed) AsDBusStr() (string, error) {
	switch p.kind {
	case KindString, KindObjectPath, KindSignature:
		return p.str, nil
	default:
		return "", errReason(WrongType)
	}
}
