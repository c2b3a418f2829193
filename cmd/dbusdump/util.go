package main

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/slice"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

// render converts a decoded Parsed value into a plain Go value tree
// (scalars, []any, map[any]any) suitable for kr/pretty, since Parsed's
// own fields are unexported and would print as zero values otherwise.
func render(p fragments.Parsed) any {
	switch p.Kind() {
	case fragments.KindByte:
		return p.Byte()
	case fragments.KindBool:
		return p.Bool()
	case fragments.KindInt16:
		return p.Int16()
	case fragments.KindInt32:
		return p.Int32()
	case fragments.KindInt64:
		return p.Int64()
	case fragments.KindUInt16:
		return p.UInt16()
	case fragments.KindUInt32:
		return p.UInt32()
	case fragments.KindUInt64:
		return p.UInt64()
	case fragments.KindUnixFd:
		return p.UnixFd()
	case fragments.KindDouble:
		return p.Double()
	case fragments.KindString:
		return p.Str()
	case fragments.KindObjectPath:
		return p.ObjectPath()
	case fragments.KindSignature:
		return p.Signature()
	case fragments.KindVariant:
		inner, err := p.Variant().Parse()
		if err != nil {
			return fmt.Sprintf("<variant error: %v>", err)
		}
		return render(inner)
	case fragments.KindStruct:
		return renderMulti(p.Struct())
	case fragments.KindArray:
		return renderArray(p.Array())
	case fragments.KindDict:
		return renderDict(p.Dict())
	default:
		return fmt.Sprintf("<unknown kind %v>", p.Kind())
	}
}

func renderMulti(m fragments.MultiReader) []any {
	var out []any
	it := m.Iter()
	for {
		s, ok, err := it.Next()
		if err != nil {
			out = append(out, fmt.Sprintf("<error: %v>", err))
			return out
		}
		if !ok {
			return out
		}
		v, err := s.Parse()
		if err != nil {
			out = append(out, fmt.Sprintf("<error: %v>", err))
			return out
		}
		out = append(out, render(v))
	}
}

func renderArray(a fragments.ArrayView) []any {
	var out []any
	it := a.Iter()
	for {
		s, ok, err := it.Next()
		if err != nil {
			out = append(out, fmt.Sprintf("<error: %v>", err))
			return out
		}
		if !ok {
			return out
		}
		v, err := s.Parse()
		if err != nil {
			out = append(out, fmt.Sprintf("<error: %v>", err))
			return out
		}
		out = append(out, render(v))
	}
}

func renderDict(d fragments.DictView) map[any]any {
	out := map[any]any{}
	it := d.Iter()
	for {
		e, ok, err := it.Next()
		if err != nil {
			out["<error>"] = err.Error()
			return out
		}
		if !ok {
			return out
		}
		k, err := e.Key.Parse()
		if err != nil {
			out["<key error>"] = err.Error()
			continue
		}
		v, err := e.Value.Parse()
		if err != nil {
			out[render(k)] = fmt.Sprintf("<value error: %v>", err)
			continue
		}
		out[render(k)] = render(v)
	}
}

// hexRows splits data into n-byte rows and formats each as a
// space-separated hex string, the way a protocol dump would.
func hexRows(data []byte, n int) []string {
	chunks := slice.Chunks(data, n)
	rows := make([]string, len(chunks))
	for i, c := range chunks {
		var sb strings.Builder
		for j, b := range c {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02x", b)
		}
		rows[i] = sb.String()
	}
	return rows
}
