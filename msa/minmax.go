package msa

// Min/max family: direct opcodes for every (width, signedness) pair, no
// synthesis anywhere.

// Min computes g = min(g, s).
func (a *Asm) Min(e Elem, sg Sign, g, s XReg) { a.Min3(e, sg, g, g, s) }

// Min3 computes d = min(s, t).
func (a *Asm) Min3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opMINUH, opMINSH, opMINUB, opMINSB), d, s, t)
}

// MinLD computes g = min(g, mem).
func (a *Asm) MinLD(e Elem, sg Sign, g XReg, m Mem) { a.Min3LD(e, sg, g, g, m) }

// Min3LD computes d = min(s, mem).
func (a *Asm) Min3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opMINUH, opMINSH, opMINUB, opMINSB), ldOp(e), ldScale(e), d, s, m, false)
}

// Max computes g = max(g, s).
func (a *Asm) Max(e Elem, sg Sign, g, s XReg) { a.Max3(e, sg, g, g, s) }

// Max3 computes d = max(s, t).
func (a *Asm) Max3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opMAXUH, opMAXSH, opMAXUB, opMAXSB), d, s, t)
}

// MaxLD computes g = max(g, mem).
func (a *Asm) MaxLD(e Elem, sg Sign, g XReg, m Mem) { a.Max3LD(e, sg, g, g, m) }

// Max3LD computes d = max(s, mem).
func (a *Asm) Max3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opMAXUH, opMAXSH, opMAXUB, opMAXSB), ldOp(e), ldScale(e), d, s, m, false)
}
