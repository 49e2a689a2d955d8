package msa

// Shift family. Left shifts are signedness-agnostic; for right shifts the
// Sign argument selects logical (U) versus sign-extending arithmetic (S).
// Immediate counts mask to the element width: 4 bits for halves, 3 for
// bytes. Memory-source forms shift every element by one scalar count
// loaded from memory; variable forms shift each element by its own count.
// All counts are taken modulo the element width by the hardware fields,
// not checked by the encoder.

// ShlRI computes g <<= n.
func (a *Asm) ShlRI(e Elem, g XReg, n uint32) { a.Shl3RI(e, g, g, n) }

// Shl3RI computes d = s << n.
func (a *Asm) Shl3RI(e Elem, d, s XReg, n uint32) {
	a.ri3(pick(e, opSLLIH, opSLLIB), d, s, n, immMask(e))
}

// ShrRI computes g >>= n.
func (a *Asm) ShrRI(e Elem, sg Sign, g XReg, n uint32) { a.Shr3RI(e, sg, g, g, n) }

// Shr3RI computes d = s >> n.
func (a *Asm) Shr3RI(e Elem, sg Sign, d, s XReg, n uint32) {
	a.ri3(pick4(e, sg, opSRLIH, opSRAIH, opSRLIB, opSRAIB), d, s, n, immMask(e))
}

// ShlLD computes g <<= mem, a single scalar count splat across all lanes.
func (a *Asm) ShlLD(e Elem, g XReg, m Mem) { a.Shl3LD(e, g, g, m) }

// Shl3LD computes d = s << mem.
func (a *Asm) Shl3LD(e Elem, d, s XReg, m Mem) {
	a.splatLD(pick(e, opSLLH, opSLLB), scalarLdOp(e), fillOp(e), d, s, m)
}

// ShrLD computes g >>= mem, a single scalar count splat across all lanes.
func (a *Asm) ShrLD(e Elem, sg Sign, g XReg, m Mem) { a.Shr3LD(e, sg, g, g, m) }

// Shr3LD computes d = s >> mem.
func (a *Asm) Shr3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.splatLD(pick4(e, sg, opSRLH, opSRAH, opSRLB, opSRAB), scalarLdOp(e), fillOp(e), d, s, m)
}

// Svl computes g <<= s with a per-element count.
func (a *Asm) Svl(e Elem, g, s XReg) { a.Svl3(e, g, g, s) }

// Svl3 computes d = s << t with a per-element count.
func (a *Asm) Svl3(e Elem, d, s, t XReg) { a.rr3(pick(e, opSLLH, opSLLB), d, s, t) }

// SvlLD computes g <<= mem with per-element counts loaded as a vector.
func (a *Asm) SvlLD(e Elem, g XReg, m Mem) { a.Svl3LD(e, g, g, m) }

// Svl3LD computes d = s << mem with per-element counts loaded as a vector.
func (a *Asm) Svl3LD(e Elem, d, s XReg, m Mem) {
	a.ld3(pick(e, opSLLH, opSLLB), ldOp(e), ldScale(e), d, s, m, false)
}

// Svr computes g >>= s with a per-element count.
func (a *Asm) Svr(e Elem, sg Sign, g, s XReg) { a.Svr3(e, sg, g, g, s) }

// Svr3 computes d = s >> t with a per-element count.
func (a *Asm) Svr3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opSRLH, opSRAH, opSRLB, opSRAB), d, s, t)
}

// SvrLD computes g >>= mem with per-element counts loaded as a vector.
func (a *Asm) SvrLD(e Elem, sg Sign, g XReg, m Mem) { a.Svr3LD(e, sg, g, g, m) }

// Svr3LD computes d = s >> mem with per-element counts loaded as a vector.
func (a *Asm) Svr3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opSRLH, opSRAH, opSRLB, opSRAB), ldOp(e), ldScale(e), d, s, m, false)
}

func immMask(e Elem) uint32 {
	if e == H {
		return 0x0F
	}
	return 0x07
}

// scalarLdOp returns the zero-extending integer load for one element.
func scalarLdOp(e Elem) uint32 { return pick(e, opLHU, opLBU) }

// fillOp replicates the loaded scalar across all lanes of the scratch
// register. The fill reads the GPR whole and uses only the low element;
// the remaining bits do not reach the shift field.
func fillOp(e Elem) uint32 { return pick(e, opFILLH, opFILLB) }
