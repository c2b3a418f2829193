package fragments

import "math"

// Marshal is implemented by any value that can append its own D-Bus
// wire encoding to a byte buffer and report the single-signature of
// that encoding. Builders accept any value satisfying this interface;
// there is no closed type hierarchy.
type Marshal interface {
	// Signature returns the single-signature of the value this
	// Marshal produces.
	Signature() string
	// AppendDataTo appends the value's correctly-aligned wire bytes to
	// buf, inserting whatever leading padding the value's own
	// alignment requires relative to len(buf), and returns the
	// extended slice.
	AppendDataTo(buf []byte) []byte
}

// Byte is the Marshal implementation for the D-Bus "y" type.
type Byte byte

func (Byte) Signature() string               { return "y" }
func (v Byte) AppendDataTo(buf []byte) []byte { return append(buf, byte(v)) }

// Int16 is the Marshal implementation for the D-Bus "n" type.
type Int16 int16

func (Int16) Signature() string { return "n" }
func (v Int16) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint16(AlignBuf(buf, 2), uint16(v))
}

// UInt16 is the Marshal implementation for the D-Bus "q" type.
type UInt16 uint16

func (UInt16) Signature() string { return "q" }
func (v UInt16) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint16(AlignBuf(buf, 2), uint16(v))
}

// Int32 is the Marshal implementation for the D-Bus "i" type.
type Int32 int32

func (Int32) Signature() string { return "i" }
func (v Int32) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(v))
}

// UInt32 is the Marshal implementation for the D-Bus "u" type.
type UInt32 uint32

func (UInt32) Signature() string { return "u" }
func (v UInt32) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(v))
}

// Bool is the Marshal implementation for the D-Bus "b" type, which is
// encoded on the wire as a uint32 restricted to 0 or 1.
type Bool bool

func (Bool) Signature() string { return "b" }
func (v Bool) AppendDataTo(buf []byte) []byte {
	var u uint32
	if v {
		u = 1
	}
	return NativeEndian.AppendUint32(AlignBuf(buf, 4), u)
}

// UnixFd is the Marshal implementation for the D-Bus "h" type: an
// index into the transport's out-of-band file descriptor table.
type UnixFd uint32

func (UnixFd) Signature() string { return "h" }
func (v UnixFd) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(v))
}

// Int64 is the Marshal implementation for the D-Bus "x" type.
type Int64 int64

func (Int64) Signature() string { return "x" }
func (v Int64) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint64(AlignBuf(buf, 8), uint64(v))
}

// UInt64 is the Marshal implementation for the D-Bus "t" type.
type UInt64 uint64

func (UInt64) Signature() string { return "t" }
func (v UInt64) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint64(AlignBuf(buf, 8), uint64(v))
}

// Double is the Marshal implementation for the D-Bus "d" type.
type Double float64

func (Double) Signature() string { return "d" }
func (v Double) AppendDataTo(buf []byte) []byte {
	return NativeEndian.AppendUint64(AlignBuf(buf, 8), math.Float64bits(float64(v)))
}

// DBusString is the Marshal implementation for the D-Bus "s" type.
type DBusString string

func (DBusString) Signature() string { return "s" }
func (v DBusString) AppendDataTo(buf []byte) []byte {
	buf = NativeEndian.AppendUint32(AlignBuf(buf, 4), uint32(len(v)))
	buf = append(buf, v...)
	return append(buf, 0)
}

// ObjectPath is the Marshal implementation for the D-Bus "o" type. It
// shares "s"'s on-wire shape; callers that need path-syntax validation
// on the write side should check with a validator before constructing
// one, since the codec itself only enforces object path syntax when
// reading.
type ObjectPath string

func (ObjectPath) Signature() string { return "o" }
func (v ObjectPath) AppendDataTo(buf []byte) []byte {
	return DBusString(v).AppendDataTo(buf)
}

// Signature is the Marshal implementation for the D-Bus "g" type.
type Signature string

func (Signature) Signature() string { return "g" }
func (v Signature) AppendDataTo(buf []byte) []byte {
	buf = append(buf, byte(len(v)))
	buf = append(buf, v...)
	return append(buf, 0)
}
