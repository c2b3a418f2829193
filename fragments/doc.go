// Package fragments is a low-level codec for the D-Bus message body
// wire format.
//
// It parses (demarshals) and builds (marshals) typed value trees from
// and to a byte buffer, guided entirely by a D-Bus type signature
// string. It does not validate signatures, perform I/O, or know
// anything about the D-Bus message envelope, authentication, or bus
// addressing; callers are expected to hand it a signature already
// known to be well-formed, together with the bytes it describes.
//
// Reading is zero-copy: [MultiReader], [SingleReader], [ArrayView] and
// [DictView] are immutable cursors that borrow into a caller-owned
// byte slice, and must not outlive it. Writing is owning:
// [MultiBuffer] and its per-type specializations accumulate bytes
// that the caller extracts once finished.
package fragments
