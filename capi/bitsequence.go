package capi

import (
	nist "github.com/stsgo/nist80022"
	"github.com/stsgo/nist80022/errs"
)

// NewBitSequenceFromBytes constructs a BitSequence from packed bytes and
// returns its handle.
func NewBitSequenceFromBytes(buf []byte) Handle {
	return register(nist.FromBytes(buf))
}

// NewBitSequenceFromBits constructs a BitSequence from a bool slice and
// returns its handle.
func NewBitSequenceFromBits(bits []bool) Handle {
	return register(nist.FromBits(bits))
}

// NewBitSequenceFromString constructs a BitSequence from an ASCII
// "0"/"1" string. strict selects FromStringStrict (rejecting any other
// byte) over FromStringLossy (skipping it).
func NewBitSequenceFromString(s string, strict bool) (Handle, error) {
	if !strict {
		return register(nist.FromStringLossy(s)), nil
	}
	seq, err := nist.FromStringStrict(s)
	if err != nil {
		return 0, err
	}
	return register(seq), nil
}

// DestroyBitSequence releases h. Using h again after this call reports
// InvalidParameter.
func DestroyBitSequence(h Handle) error {
	return release(h)
}

// bitSequence resolves h to its *nist.BitSequence, reporting
// InvalidParameter if h does not name one.
func bitSequence(h Handle) (*nist.BitSequence, error) {
	obj, err := lookup(h)
	if err != nil {
		return nil, err
	}
	seq, ok := obj.(*nist.BitSequence)
	if !ok {
		return nil, errs.New(errs.CodeInvalidParameter, "capi: handle %d is not a BitSequence", uint64(h))
	}
	return seq, nil
}

// BitSequenceLen returns the bit length of the sequence behind h.
func BitSequenceLen(h Handle) (int, error) {
	seq, err := bitSequence(h)
	if err != nil {
		return 0, err
	}
	return seq.Len(), nil
}
