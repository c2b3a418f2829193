package fragments_test

import (
	"testing"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

func TestStructBufferRoundTrip(t *testing.T) {
	s := fragments.NewStructBuffer()
	if err := s.Append(fragments.Byte(1)); err != nil {
		t.Fatalf("Append Byte: %v", err)
	}
	if err := s.Append(fragments.UInt16(0x1234)); err != nil {
		t.Fatalf("Append UInt16: %v", err)
	}
	if got, want := s.Signature(), "(yq)"; got != want {
		t.Fatalf("Signature = %q, want %q", got, want)
	}

	buf := fragments.NewMultiBuffer()
	if err := buf.Append(s); err != nil {
		t.Fatalf("MultiBuffer.Append: %v", err)
	}
	sig, data := buf.Into()

	p := firstParsed(t, sig, data, fragments.NativeEndian)
	if p.Kind() != fragments.KindStruct {
		t.Fatalf("Kind = %v, want Struct", p.Kind())
	}
	it := p.Struct().Iter()

	f1, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("field 1: ok=%v err=%v", ok, err)
	}
	b, err := f1.Parse()
	if err != nil || b.Byte() != 1 {
		t.Fatalf("field 1 = %v (err %v), want Byte(1)", b, err)
	}

	f2, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("field 2: ok=%v err=%v", ok, err)
	}
	q, err := f2.Parse()
	if err != nil || q.UInt16() != 0x1234 {
		t.Fatalf("field 2 = %v (err %v), want UInt16(0x1234)", q, err)
	}
}
