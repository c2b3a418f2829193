package fragments_test

import (
	"errors"
	"testing"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

func TestParsedAsDBusStr(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		data []byte
		want string
	}{
		{"String", "s", []byte{0, 0, 0, 1, 'x', 0}, "x"},
		{"ObjectPath", "o", []byte{0, 0, 0, 1, '/', 0}, "/"},
		{"Signature", "g", []byte{1, 'y', 0}, "y"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := firstParsed(t, tc.sig, tc.data, fragments.BigEndian)
			got, err := p.AsDBusStr()
			if err != nil {
				t.Fatalf("AsDBusStr: %v", err)
			}
			if got != tc.want {
				t.Fatalf("AsDBusStr() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsedAsDBusStrWrongKind(t *testing.T) {
	p := firstParsed(t, "y", []byte{1}, fragments.BigEndian)
	_, err := p.AsDBusStr()
	if !errors.Is(err, fragments.ErrWrongType) {
		t.Fatalf("err = %v, want ErrWrongType", err)
	}
}

func TestStrOnNonStringKindIsEmpty(t *testing.T) {
	p := firstParsed(t, "y", []byte{9}, fragments.BigEndian)
	if p.Kind() != fragments.KindByte {
		t.Fatalf("Kind() = %v, want KindByte", p.Kind())
	}
	// Str() is only meaningful for KindString; for any other Kind it
	// simply returns the zero value, not a panic or a misleading
	// formatted string.
	if p.Str() != "" {
		t.Fatalf("Str() on a Byte = %q, want empty", p.Str())
	}
}
