package fragments

// DictView is a borrowed, immutable cursor over the entries of a
// decoded D-Bus dict-entry array ("a{KV}").
type DictView struct {
	outerSig string
	keySig   string
	valSig   string
	data     []byte
	order    ByteOrder
}

// Signature returns the outer "a{KV}" signature.
func (d DictView) Signature() string { return d.outerSig }

// KeySignature and ValueSignature return the single-signatures of
// the key and value types.
func (d DictView) KeySignature() string   { return d.keySig }
func (d DictView) ValueSignature() string { return d.valSig }

// DictEntry is one decoded key/value pair.
type DictEntry struct {
	Key   SingleReader
	Value SingleReader
}

// DictIter walks the entries of a DictView one at a time. It is
// single-use; call [DictView.Iter] again to restart.
type DictIter struct {
	keySig, valSig string
	data           []byte
	order          ByteOrder
}

// Iter returns a fresh iterator over d's entries.
func (d DictView) Iter() *DictIter {
	return &DictIter{keySig: d.keySig, valSig: d.valSig, data: d.data, order: d.order}
}

// Next decodes the next entry. ok is false once the dict is
// exhausted.
func (it *DictIter) Next() (DictEntry, bool, error) {
	if len(it.data) == 0 {
		return DictEntry{}, false, nil
	}
	remaining := len(it.data)
	mi := (MultiReader{sig: it.keySig + it.valSig, data: it.data, order: it.order}).Iter()

	k, ok, err := mi.Next()
	if err != nil {
		return DictEntry{}, false, err
	}
	if !ok {
		return DictEntry{}, false, errReason(NotEnoughData)
	}
	v, ok, err := mi.Next()
	if err != nil {
		return DictEntry{}, false, err
	}
	if !ok {
		return DictEntry{}, false, errReason(NotEnoughData)
	}

	consumed := remaining - len(mi.data)
	if consumed < remaining {
		adv := AlignUp(consumed, 8)
		if adv > remaining {
			return DictEntry{}, false, errReason(NotEnoughData)
		}
		it.data = it.data[adv:]
	} else {
		it.data = nil
	}
	return DictEntry{Key: k, Value: v}, true, nil
}
