package fragments_test

import (
	"errors"
	"testing"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

func TestArrayViewEmpty(t *testing.T) {
	p := firstParsed(t, "ai", []byte{0, 0, 0, 0}, fragments.BigEndian)
	it := p.Array().Iter()
	_, ok, err := it.Next()
	if err != nil || ok {
		t.Fatalf("empty array: ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestArrayViewOfStrings(t *testing.T) {
	// ["a", "bb"], each string 4-byte length + bytes + NUL, aligned to
	// 4 between elements.
	data := []byte{
		0, 0, 0, 15, // body length: 8 (elem "a", padded) + 7 (elem "bb")
		0, 0, 0, 1, 'a', 0, 0, 0, // "a" + pad to 4
		0, 0, 0, 2, 'b', 'b', 0, // "bb" (no trailing pad needed, last elem)
	}
	p := firstParsed(t, "as", data, fragments.BigEndian)
	var got []string
	it := p.Array().Iter()
	for {
		elem, ok, err := it.Next()
		if err != nil {
			t.Fatalf("iteration error: %v", err)
		}
		if !ok {
			break
		}
		v, err := elem.Parse()
		if err != nil {
			t.Fatalf("element parse: %v", err)
		}
		got = append(got, v.Str())
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "bb" {
		t.Fatalf("got %v, want [a bb]", got)
	}
}

func TestArrayViewTruncated(t *testing.T) {
	// The array body claims only 4 bytes, but the first (and only)
	// string element's own length prefix says it needs 7.
	data := []byte{
		0, 0, 0, 4, // outer array body length
		0, 0, 0, 2, // string length field = 2, needs 4+2+1 = 7 bytes
	}
	p := firstParsed(t, "as", data, fragments.BigEndian)
	ait := p.Array().Iter()
	_, _, err := ait.Next()
	if !errors.Is(err, fragments.ErrNotEnoughData) {
		t.Fatalf("element err = %v, want ErrNotEnoughData", err)
	}
}
