package fragments_test

import (
	"errors"
	"testing"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

func TestDictBufferWrongType(t *testing.T) {
	d := fragments.NewDictBuffer("s", "u")
	err := d.Append(fragments.UInt16(1), fragments.UInt32(1))
	if !errors.Is(err, fragments.ErrWrongType) {
		t.Fatalf("key type err = %v, want ErrWrongType", err)
	}
	err = d.Append(fragments.DBusString("k"), fragments.DBusString("wrong"))
	if !errors.Is(err, fragments.ErrWrongType) {
		t.Fatalf("value type err = %v, want ErrWrongType", err)
	}
}

func TestDictBufferSizeCapLeavesBufferUnchanged(t *testing.T) {
	d := fragments.NewDictBuffer("y", "y")
	if err := d.Append(fragments.Byte(1), blob(fragments.MaxArrayBytes-1)); err != nil {
		t.Fatalf("Append near cap: %v", err)
	}
	before := d.AppendDataTo(nil)

	if err := d.Append(fragments.Byte(1), fragments.Byte(2)); !errors.Is(err, fragments.ErrNumberTooBig) {
		t.Fatalf("err = %v, want ErrNumberTooBig", err)
	}

	after := d.AppendDataTo(nil)
	if !bytesEqual(before, after) {
		t.Fatal("DictBuffer contents changed after a failed Append")
	}
}
