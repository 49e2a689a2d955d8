package msa

// Compare family: per element, all ones on true, all zero on false. The
// ISA provides eq, lt and le; the rest are synthesized. gt and ge swap the
// source operands of lt and le, ne complements an eq. These are bit-exact
// identities, relied on by the downstream mask operations.

// Ceq computes g = (g == s).
func (a *Asm) Ceq(e Elem, g, s XReg) { a.Ceq3(e, g, g, s) }

// Ceq3 computes d = (s == t).
func (a *Asm) Ceq3(e Elem, d, s, t XReg) { a.rr3(pick(e, opCEQH, opCEQB), d, s, t) }

// CeqLD computes g = (g == mem).
func (a *Asm) CeqLD(e Elem, g XReg, m Mem) { a.Ceq3LD(e, g, g, m) }

// Ceq3LD computes d = (s == mem).
func (a *Asm) Ceq3LD(e Elem, d, s XReg, m Mem) {
	a.ld3(pick(e, opCEQH, opCEQB), ldOp(e), ldScale(e), d, s, m, false)
}

// Cne computes g = (g != s).
func (a *Asm) Cne(e Elem, g, s XReg) { a.Cne3(e, g, g, s) }

// Cne3 computes d = (s != t).
func (a *Asm) Cne3(e Elem, d, s, t XReg) {
	a.Ceq3(e, d, s, t)
	a.Not(d)
}

// CneLD computes g = (g != mem).
func (a *Asm) CneLD(e Elem, g XReg, m Mem) { a.Cne3LD(e, g, g, m) }

// Cne3LD computes d = (s != mem).
func (a *Asm) Cne3LD(e Elem, d, s XReg, m Mem) {
	a.Ceq3LD(e, d, s, m)
	a.Not(d)
}

// Clt computes g = (g < s).
func (a *Asm) Clt(e Elem, sg Sign, g, s XReg) { a.Clt3(e, sg, g, g, s) }

// Clt3 computes d = (s < t).
func (a *Asm) Clt3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opCLTUH, opCLTSH, opCLTUB, opCLTSB), d, s, t)
}

// CltLD computes g = (g < mem).
func (a *Asm) CltLD(e Elem, sg Sign, g XReg, m Mem) { a.Clt3LD(e, sg, g, g, m) }

// Clt3LD computes d = (s < mem).
func (a *Asm) Clt3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opCLTUH, opCLTSH, opCLTUB, opCLTSB), ldOp(e), ldScale(e), d, s, m, false)
}

// Cle computes g = (g <= s).
func (a *Asm) Cle(e Elem, sg Sign, g, s XReg) { a.Cle3(e, sg, g, g, s) }

// Cle3 computes d = (s <= t).
func (a *Asm) Cle3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opCLEUH, opCLESH, opCLEUB, opCLESB), d, s, t)
}

// CleLD computes g = (g <= mem).
func (a *Asm) CleLD(e Elem, sg Sign, g XReg, m Mem) { a.Cle3LD(e, sg, g, g, m) }

// Cle3LD computes d = (s <= mem).
func (a *Asm) Cle3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opCLEUH, opCLESH, opCLEUB, opCLESB), ldOp(e), ldScale(e), d, s, m, false)
}

// Cgt computes g = (g > s), as (s < g).
func (a *Asm) Cgt(e Elem, sg Sign, g, s XReg) { a.Cgt3(e, sg, g, g, s) }

// Cgt3 computes d = (s > t), as (t < s).
func (a *Asm) Cgt3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opCLTUH, opCLTSH, opCLTUB, opCLTSB), d, t, s)
}

// CgtLD computes g = (g > mem), as (mem < g).
func (a *Asm) CgtLD(e Elem, sg Sign, g XReg, m Mem) { a.Cgt3LD(e, sg, g, g, m) }

// Cgt3LD computes d = (s > mem): the staged operand takes the lesser slot.
func (a *Asm) Cgt3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opCLTUH, opCLTSH, opCLTUB, opCLTSB), ldOp(e), ldScale(e), d, s, m, true)
}

// Cge computes g = (g >= s), as (s <= g).
func (a *Asm) Cge(e Elem, sg Sign, g, s XReg) { a.Cge3(e, sg, g, g, s) }

// Cge3 computes d = (s >= t), as (t <= s).
func (a *Asm) Cge3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opCLEUH, opCLESH, opCLEUB, opCLESB), d, t, s)
}

// CgeLD computes g = (g >= mem), as (mem <= g).
func (a *Asm) CgeLD(e Elem, sg Sign, g XReg, m Mem) { a.Cge3LD(e, sg, g, g, m) }

// Cge3LD computes d = (s >= mem).
func (a *Asm) Cge3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opCLEUH, opCLESH, opCLEUB, opCLESB), ldOp(e), ldScale(e), d, s, m, true)
}
