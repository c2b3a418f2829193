package fragments

import "encoding/binary"

// ByteOrder is the byte order under which a [MultiReader]/[SingleReader]
// interprets multi-byte values. The write side always emits
// [NativeEndian] bytes; the read side takes whichever order the caller
// says the bytes were written in.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	BigEndian    = binary.BigEndian
	LittleEndian = binary.LittleEndian
	NativeEndian = binary.NativeEndian
)
