package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

func parseOne(t *testing.T, sig string, data []byte) fragments.Parsed {
	t.Helper()
	it := fragments.NewMultiReader(sig, data, fragments.NativeEndian).Iter()
	s, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	p, err := s.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func TestRenderScalars(t *testing.T) {
	buf := fragments.NewMultiBuffer()
	if err := buf.Append(fragments.UInt32(7)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	sig, data := buf.Into()
	p := parseOne(t, sig, data)
	if got := render(p); got != uint32(7) {
		t.Fatalf("render() = %#v, want uint32(7)", got)
	}
}

func TestRenderArray(t *testing.T) {
	a := fragments.NewArrayBuffer("i")
	for _, v := range []int32{1, 2, 3} {
		if err := a.Append(fragments.Int32(v)); err != nil {
			t.Fatalf("Append(%d): %v", v, err)
		}
	}
	buf := fragments.NewMultiBuffer()
	if err := buf.Append(a); err != nil {
		t.Fatalf("MultiBuffer.Append: %v", err)
	}
	sig, data := buf.Into()
	p := parseOne(t, sig, data)

	got := render(p)
	want := []any{int32(1), int32(2), int32(3)}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("render() mismatch (-got +want):\n%s", diff)
	}
}

func TestRenderStructAndVariant(t *testing.T) {
	s := fragments.NewStructBuffer()
	if err := s.Append(fragments.Byte(9)); err != nil {
		t.Fatalf("Append Byte: %v", err)
	}
	if err := s.Append(fragments.NewVariantBuffer(fragments.DBusString("hi"))); err != nil {
		t.Fatalf("Append Variant: %v", err)
	}
	buf := fragments.NewMultiBuffer()
	if err := buf.Append(s); err != nil {
		t.Fatalf("MultiBuffer.Append: %v", err)
	}
	sig, data := buf.Into()
	p := parseOne(t, sig, data)

	got := render(p)
	want := []any{byte(9), "hi"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("render() mismatch (-got +want):\n%s", diff)
	}
}

func TestRenderDict(t *testing.T) {
	d := fragments.NewDictBuffer("s", "u")
	if err := d.Append(fragments.DBusString("a"), fragments.UInt32(1)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := d.Append(fragments.DBusString("b"), fragments.UInt32(2)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	buf := fragments.NewMultiBuffer()
	if err := buf.Append(d); err != nil {
		t.Fatalf("MultiBuffer.Append: %v", err)
	}
	sig, data := buf.Into()
	p := parseOne(t, sig, data)

	got, ok := render(p).(map[any]any)
	if !ok {
		t.Fatalf("render() = %#v (%T), want map[any]any", render(p), render(p))
	}
	want := map[any]any{"a": uint32(1), "b": uint32(2)}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("render() mismatch (-got +want):\n%s", diff)
	}
}

func TestHexRows(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	got := hexRows(data, 2)
	want := []string{"01 02", "03 04", "05"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Fatalf("hexRows() mismatch (-got +want):\n%s", diff)
	}
}

func TestHexRowsEmpty(t *testing.T) {
	if got := hexRows(nil, 16); len(got) != 0 {
		t.Fatalf("hexRows(nil) = %#v, want empty", got)
	}
}
