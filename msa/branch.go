package msa

import "fmt"

// MaskCond selects the mask-branch predicate.
type MaskCond uint8

const (
	// None branches when no element of the pair satisfied the preceding
	// comparison (the reduced vector is all zero).
	None MaskCond = iota
	// Full branches when every element satisfied it (every element of the
	// reduced vector is nonzero).
	Full
)

func (c MaskCond) String() string {
	if c == None {
		return "none"
	}
	return "full"
}

// Mkj reduces the halves of x into the scratch register and branches to
// label on the predicate. None folds the pair with or.v and tests the
// whole vector for zero; Full folds with and.v and tests that every
// element, at the given width, is nonzero.
//
// The reduction is a machine word, but the branch itself goes out as a
// text mnemonic: its label is resolved by the external assembler pass,
// which the binary emitter has no access to. Both land in the buffer in
// program order.
func (a *Asm) Mkj(e Elem, x XReg, c MaskCond, label string) {
	sc := a.rsv.Scratch
	if c == None {
		a.word(mxm(opORV, sc, x.Low(), x.High()))
		a.buf.PutLine(fmt.Sprintf("bz.v $w%d, %s", sc, label))
		return
	}
	a.word(mxm(opANDV, sc, x.Low(), x.High()))
	a.buf.PutLine(fmt.Sprintf("bnz.%s $w%d, %s", e, sc, label))
}
