package fragments

// ArrayView is a borrowed, immutable cursor over the elements of a
// decoded D-Bus array. It is produced by parsing an "a..." value that
// is not a dict-entry array.
type ArrayView struct {
	inner    string
	data     []byte
	startPos int
	order    ByteOrder
}

// Signature returns the single-signature of each element.
func (a ArrayView) Signature() string { return a.inner }

// Len reports the size in bytes of the array's payload.
func (a ArrayView) Len() int { return len(a.data) }

// ArrayIter walks the elements of an ArrayView one at a time. It is
// single-use; call [ArrayView.Iter] again to restart.
type ArrayIter struct {
	inner    string
	data     []byte
	startPos int
	order    ByteOrder
}

// Iter returns a fresh iterator over a's elements.
func (a ArrayView) Iter() *ArrayIter {
	return &ArrayIter{inner: a.inner, data: a.data, startPos: a.startPos, order: a.order}
}

// Next decodes the next element. ok is false once the array is
// exhausted.
func (it *ArrayIter) Next() (SingleReader, bool, error) {
	if len(it.data) == 0 {
		return SingleReader{}, false, nil
	}
	remaining := len(it.data)
	s := SingleReader{sig: it.inner, data: it.data, startPos: it.startPos, order: it.order}
	ln, err := s.RealByteLength()
	if err != nil {
		return SingleReader{}, false, err
	}
	if ln > remaining {
		return SingleReader{}, false, errReason(NotEnoughData)
	}
	s.data = it.data[:ln]

	// The next element (if any) starts at the next alignment boundary
	// for the element type, measured against the array's own
	// remaining bytes rather than this element's now-truncated view.
	if ln < remaining {
		adv := AlignUp(it.startPos+ln, AlignOf(it.inner[0])) - it.startPos
		if adv > remaining {
			return SingleReader{}, false, errReason(NotEnoughData)
		}
		it.startPos += adv
		it.data = it.data[adv:]
	} else {
		it.data = nil
	}
	return s, true, nil
}
