package fragments

// splitSingle consumes the first complete type from the front of sig
// and returns it along with whatever follows. sig is assumed to be a
// valid D-Bus signature (or suffix of one) already vetted by an
// external signature library; an unrecognized or unterminated
// construct is a programmer error and panics rather than returning an
// error, per the codec's contract with its caller.
func splitSingle(sig string) (first, rest string) {
	switch sig[0] {
	case 'y', 'n', 'q', 'i', 'u', 'b', 'h', 'x', 't', 'd', 's', 'o', 'g', 'v':
		return sig[0:1], sig[1:]
	case 'a':
		innerFirst, innerRest := splitSingle(sig[1:])
		return "a" + innerFirst, innerRest
	case '(':
		return splitBracketed(sig, '(', ')')
	case '{':
		return splitBracketed(sig, '{', '}')
	default:
		panic("fragments: unexpected signature byte " + string(sig[0]))
	}
}

func splitBracketed(sig string, open, close byte) (first, rest string) {
	depth := 0
	for i := 0; i < len(sig); i++ {
		switch sig[i] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth == 0 {
			return sig[:i+1], sig[i+1:]
		}
	}
	panic("fragments: unterminated " + string(open) + "..." + string(close) + " in signature " + sig)
}
