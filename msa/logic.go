package msa

// Bitwise family. These act on the full 128 bits of each half, so one set
// serves both element widths. The ISA has no or-not and no vector move, so
// Mov rides on or.v of a source with itself, Not on nor.v against the zero
// register, and Orn is a Not followed by the positive form.

// Mov copies s into d.
func (a *Asm) Mov(d, s XReg) {
	a.rr3(opORV, d, s, s)
}

// MovLD loads d from memory, both halves directly, no staging.
func (a *Asm) MovLD(d XReg, m Mem) {
	a.word(mdm(opLDB, d.Low(), m, 0))
	a.word(mdm(opLDB, d.High(), m.High(), 0))
}

// MovST stores s to memory.
func (a *Asm) MovST(s XReg, m Mem) {
	a.word(mdm(opSTB, s.Low(), m, 0))
	a.word(mdm(opSTB, s.High(), m.High(), 0))
}

// And computes g &= s.
func (a *Asm) And(g, s XReg) { a.rr3(opANDV, g, g, s) }

// And3 computes d = s & t.
func (a *Asm) And3(d, s, t XReg) { a.rr3(opANDV, d, s, t) }

// AndLD computes g &= mem.
func (a *Asm) AndLD(g XReg, m Mem) { a.ld3(opANDV, opLDB, 0, g, g, m, false) }

// And3LD computes d = s & mem.
func (a *Asm) And3LD(d, s XReg, m Mem) { a.ld3(opANDV, opLDB, 0, d, s, m, false) }

// Ann computes g = s & ~g, the and-complement form. bsel.v with the zero
// register in the wt slot does this in one word per half: the destination
// supplies the complemented term.
func (a *Asm) Ann(g, s XReg) {
	a.word(mxm(opBSELV, g.Low(), s.Low(), a.rsv.Zero))
	a.word(mxm(opBSELV, g.High(), s.High(), a.rsv.Zero))
}

// Ann3 computes d = t & ~s.
func (a *Asm) Ann3(d, s, t XReg) {
	a.Mov(d, s)
	a.Ann(d, t)
}

// AnnLD computes g = mem & ~g.
func (a *Asm) AnnLD(g XReg, m Mem) {
	sc := a.rsv.Scratch
	a.word(mdm(opLDB, sc, m, 0))
	a.word(mxm(opBSELV, g.Low(), sc, a.rsv.Zero))
	a.word(mdm(opLDB, sc, m.High(), 0))
	a.word(mxm(opBSELV, g.High(), sc, a.rsv.Zero))
}

// Ann3LD computes d = mem & ~s.
func (a *Asm) Ann3LD(d, s XReg, m Mem) {
	a.Mov(d, s)
	a.AnnLD(d, m)
}

// Orr computes g |= s.
func (a *Asm) Orr(g, s XReg) { a.rr3(opORV, g, g, s) }

// Orr3 computes d = s | t.
func (a *Asm) Orr3(d, s, t XReg) { a.rr3(opORV, d, s, t) }

// OrrLD computes g |= mem.
func (a *Asm) OrrLD(g XReg, m Mem) { a.ld3(opORV, opLDB, 0, g, g, m, false) }

// Orr3LD computes d = s | mem.
func (a *Asm) Orr3LD(d, s XReg, m Mem) { a.ld3(opORV, opLDB, 0, d, s, m, false) }

// Orn computes g = ~g | s.
func (a *Asm) Orn(g, s XReg) {
	a.Not(g)
	a.Orr(g, s)
}

// Orn3 computes d = ~s | t.
func (a *Asm) Orn3(d, s, t XReg) {
	a.Mov(d, s)
	a.Not(d)
	a.Orr(d, t)
}

// OrnLD computes g = ~g | mem.
func (a *Asm) OrnLD(g XReg, m Mem) {
	a.Not(g)
	a.OrrLD(g, m)
}

// Orn3LD computes d = ~s | mem.
func (a *Asm) Orn3LD(d, s XReg, m Mem) {
	a.Mov(d, s)
	a.Not(d)
	a.OrrLD(d, m)
}

// Xor computes g ^= s.
func (a *Asm) Xor(g, s XReg) { a.rr3(opXORV, g, g, s) }

// Xor3 computes d = s ^ t.
func (a *Asm) Xor3(d, s, t XReg) { a.rr3(opXORV, d, s, t) }

// XorLD computes g ^= mem.
func (a *Asm) XorLD(g XReg, m Mem) { a.ld3(opXORV, opLDB, 0, g, g, m, false) }

// Xor3LD computes d = s ^ mem.
func (a *Asm) Xor3LD(d, s XReg, m Mem) { a.ld3(opXORV, opLDB, 0, d, s, m, false) }

// Not complements g in place: nor.v of the zero register with g.
func (a *Asm) Not(g XReg) {
	a.word(mxm(opNORV, g.Low(), a.rsv.Zero, g.Low()))
	a.word(mxm(opNORV, g.High(), a.rsv.Zero, g.High()))
}

// Mmv merges s into g under the implicit mask pair: elements whose mask
// bits are all ones take s, all zeros keep g. Intermediate mask values are
// architecturally permitted by bmnz.v but carry no meaning in this API.
func (a *Asm) Mmv(g, s XReg) {
	a.word(mxm(opBMNZV, g.Low(), s.Low(), a.rsv.Mask))
	a.word(mxm(opBMNZV, g.High(), s.High(), a.rsv.Mask+16))
}

// MmvLD merges a memory source into g under the implicit mask pair.
func (a *Asm) MmvLD(g XReg, m Mem) {
	sc := a.rsv.Scratch
	a.word(mdm(opLDB, sc, m, 0))
	a.word(mxm(opBMNZV, g.Low(), sc, a.rsv.Mask))
	a.word(mdm(opLDB, sc, m.High(), 0))
	a.word(mxm(opBMNZV, g.High(), sc, a.rsv.Mask+16))
}

// MmvST merges s into memory under the implicit mask pair: each half loads
// the existing destination into Scratch, merges, and stores back.
func (a *Asm) MmvST(s XReg, m Mem) {
	sc := a.rsv.Scratch
	a.word(mdm(opLDB, sc, m, 0))
	a.word(mxm(opBMNZV, sc, s.Low(), a.rsv.Mask))
	a.word(mdm(opSTB, sc, m, 0))
	a.word(mdm(opLDB, sc, m.High(), 0))
	a.word(mxm(opBMNZV, sc, s.High(), a.rsv.Mask+16))
	a.word(mdm(opSTB, sc, m.High(), 0))
}
