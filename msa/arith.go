package msa

// Integer arithmetic family. Add, Sub and Mul are modular and
// signedness-agnostic; Mul keeps the low half of the product. Ads and Sbs
// saturate, clamping at {0, 2^w-1} for U and {-2^(w-1), 2^(w-1)-1} for S.

// Add computes g += s element-wise.
func (a *Asm) Add(e Elem, g, s XReg) { a.Add3(e, g, g, s) }

// Add3 computes d = s + t element-wise.
func (a *Asm) Add3(e Elem, d, s, t XReg) { a.rr3(pick(e, opADDVH, opADDVB), d, s, t) }

// AddLD computes g += mem element-wise.
func (a *Asm) AddLD(e Elem, g XReg, m Mem) { a.Add3LD(e, g, g, m) }

// Add3LD computes d = s + mem element-wise.
func (a *Asm) Add3LD(e Elem, d, s XReg, m Mem) {
	a.ld3(pick(e, opADDVH, opADDVB), ldOp(e), ldScale(e), d, s, m, false)
}

// Sub computes g -= s element-wise.
func (a *Asm) Sub(e Elem, g, s XReg) { a.Sub3(e, g, g, s) }

// Sub3 computes d = s - t element-wise.
func (a *Asm) Sub3(e Elem, d, s, t XReg) { a.rr3(pick(e, opSUBVH, opSUBVB), d, s, t) }

// SubLD computes g -= mem element-wise.
func (a *Asm) SubLD(e Elem, g XReg, m Mem) { a.Sub3LD(e, g, g, m) }

// Sub3LD computes d = s - mem element-wise.
func (a *Asm) Sub3LD(e Elem, d, s XReg, m Mem) {
	a.ld3(pick(e, opSUBVH, opSUBVB), ldOp(e), ldScale(e), d, s, m, false)
}

// Mul computes g *= s element-wise, low half of the product.
func (a *Asm) Mul(e Elem, g, s XReg) { a.Mul3(e, g, g, s) }

// Mul3 computes d = s * t element-wise.
func (a *Asm) Mul3(e Elem, d, s, t XReg) { a.rr3(pick(e, opMULVH, opMULVB), d, s, t) }

// MulLD computes g *= mem element-wise.
func (a *Asm) MulLD(e Elem, g XReg, m Mem) { a.Mul3LD(e, g, g, m) }

// Mul3LD computes d = s * mem element-wise.
func (a *Asm) Mul3LD(e Elem, d, s XReg, m Mem) {
	a.ld3(pick(e, opMULVH, opMULVB), ldOp(e), ldScale(e), d, s, m, false)
}

// Ads computes g = sat(g + s).
func (a *Asm) Ads(e Elem, sg Sign, g, s XReg) { a.Ads3(e, sg, g, g, s) }

// Ads3 computes d = sat(s + t).
func (a *Asm) Ads3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opADDSUH, opADDSSH, opADDSUB, opADDSSB), d, s, t)
}

// AdsLD computes g = sat(g + mem).
func (a *Asm) AdsLD(e Elem, sg Sign, g XReg, m Mem) { a.Ads3LD(e, sg, g, g, m) }

// Ads3LD computes d = sat(s + mem).
func (a *Asm) Ads3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opADDSUH, opADDSSH, opADDSUB, opADDSSB), ldOp(e), ldScale(e), d, s, m, false)
}

// Sbs computes g = sat(g - s).
func (a *Asm) Sbs(e Elem, sg Sign, g, s XReg) { a.Sbs3(e, sg, g, g, s) }

// Sbs3 computes d = sat(s - t).
func (a *Asm) Sbs3(e Elem, sg Sign, d, s, t XReg) {
	a.rr3(pick4(e, sg, opSUBSUH, opSUBSSH, opSUBSUB, opSUBSSB), d, s, t)
}

// SbsLD computes g = sat(g - mem).
func (a *Asm) SbsLD(e Elem, sg Sign, g XReg, m Mem) { a.Sbs3LD(e, sg, g, g, m) }

// Sbs3LD computes d = sat(s - mem).
func (a *Asm) Sbs3LD(e Elem, sg Sign, d, s XReg, m Mem) {
	a.ld3(pick4(e, sg, opSUBSUH, opSUBSSH, opSUBSUB, opSUBSSB), ldOp(e), ldScale(e), d, s, m, false)
}

// ldOp returns the natural-width vector load for the element size.
func ldOp(e Elem) uint32 { return pick(e, opLDH, opLDB) }

// ldScale returns the displacement scale for the element size.
func ldScale(e Elem) uint {
	if e == H {
		return 1
	}
	return 0
}
