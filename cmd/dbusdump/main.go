// Command dbusdump decodes and encodes raw D-Bus message bodies from the
// command line, without a bus connection. It exists to exercise
// fragments.MultiReader/fragments.MultiBuffer directly against
// hand-supplied bytes, the way a protocol debugger would.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/kr/pretty"

	"github.com/go-dbuscodec/dbuscodec/fragments"
)

var decodeArgs struct {
	BigEndian bool `flag:"big-endian,Interpret the payload as big-endian (default little-endian)"`
}

func main() {
	root := &command.C{
		Name:  "dbusdump",
		Usage: "command args...",
		Commands: []*command.C{
			{
				Name:     "decode",
				Usage:    "decode sig hex",
				Help:     "Decode a hex-encoded message body against a signature and pretty-print each top-level value.",
				SetFlags: command.Flags(flax.MustBind, &decodeArgs),
				Run:      command.Adapt(runDecode),
			},
			{
				Name:  "encode",
				Usage: "encode sig value...",
				Help: `Encode a sequence of scalar/string values and print the resulting bytes as hex.

sig must name one basic type per value argument: y n q i u b x t d s o g.
Container types (arrays, structs, dicts, variants) are not accepted here;
use the fragments package directly for those.`,
				Run: runEncode,
			},
			{
				Name:  "hexdump",
				Usage: "hexdump hex",
				Help:  "Print a hex string as 16-byte rows.",
				Run:   command.Adapt(runHexdump),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func runDecode(env *command.Env, sig, hexStr string) error {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return fmt.Errorf("decoding hex payload: %w", err)
	}

	order := fragments.ByteOrder(fragments.LittleEndian)
	if decodeArgs.BigEndian {
		order = fragments.BigEndian
	}

	it := fragments.NewMultiReader(sig, data, order).Iter()
	for {
		s, ok, err := it.Next()
		if err != nil {
			return fmt.Errorf("splitting value of signature %q: %w", sig, err)
		}
		if !ok {
			break
		}
		p, err := s.Parse()
		if err != nil {
			return fmt.Errorf("parsing value of signature %q: %w", s.Signature(), err)
		}
		pretty.Println(render(p))
	}
	return nil
}

func runEncode(env *command.Env) error {
	if len(env.Args) < 1 {
		return env.Usagef("encode requires a signature and a value per signature byte")
	}
	sig, values := env.Args[0], env.Args[1:]
	if len(sig) != len(values) {
		return fmt.Errorf("signature %q names %d values, got %d arguments", sig, len(sig), len(values))
	}

	buf := fragments.NewMultiBuffer()
	for i, c := range []byte(sig) {
		m, err := scalarFromString(c, values[i])
		if err != nil {
			return fmt.Errorf("argument %d (%q): %w", i, values[i], err)
		}
		if err := buf.Append(m); err != nil {
			return fmt.Errorf("appending argument %d: %w", i, err)
		}
	}
	_, data := buf.Into()
	fmt.Println(hex.EncodeToString(data))
	return nil
}

func scalarFromString(c byte, s string) (fragments.Marshal, error) {
	switch c {
	case 'y':
		v, err := strconv.ParseUint(s, 10, 8)
		return fragments.Byte(v), err
	case 'n':
		v, err := strconv.ParseInt(s, 10, 16)
		return fragments.Int16(v), err
	case 'q':
		v, err := strconv.ParseUint(s, 10, 16)
		return fragments.UInt16(v), err
	case 'i':
		v, err := strconv.ParseInt(s, 10, 32)
		return fragments.Int32(v), err
	case 'u':
		v, err := strconv.ParseUint(s, 10, 32)
		return fragments.UInt32(v), err
	case 'b':
		v, err := strconv.ParseBool(s)
		return fragments.Bool(v), err
	case 'x':
		v, err := strconv.ParseInt(s, 10, 64)
		return fragments.Int64(v), err
	case 't':
		v, err := strconv.ParseUint(s, 10, 64)
		return fragments.UInt64(v), err
	case 'd':
		v, err := strconv.ParseFloat(s, 64)
		return fragments.Double(v), err
	case 's':
		return fragments.DBusString(s), nil
	case 'o':
		return fragments.ObjectPath(s), nil
	case 'g':
		return fragments.Signature(s), nil
	default:
		return nil, fmt.Errorf("signature byte %q is not a supported scalar type", string(c))
	}
}

func runHexdump(env *command.Env, hexStr string) error {
	data, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return fmt.Errorf("decoding hex payload: %w", err)
	}
	for _, row := range hexRows(data, 16) {
		fmt.Println(row)
	}
	return nil
}
