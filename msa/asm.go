package msa

// Asm encodes paired-128 MSA operations into a Buffer. It holds no other
// state: distinct Asm values over distinct buffers may run concurrently.
type Asm struct {
	buf *Buffer
	rsv Reservations
}

// New returns an encoder over buf with the default register reservations.
func New(buf *Buffer) *Asm {
	return NewWith(buf, DefaultReservations())
}

// NewWith returns an encoder over buf using an explicit reservation
// record. Harnesses use this to move the mask, scratch and zero registers
// out of the way of the data under test.
func NewWith(buf *Buffer, rsv Reservations) *Asm {
	return &Asm{buf: buf, rsv: rsv}
}

// Reservations returns the reserved-register record in effect.
func (a *Asm) Reservations() Reservations { return a.rsv }

// Buffer returns the code buffer the encoder appends to.
func (a *Asm) Buffer() *Buffer { return a.buf }

func (a *Asm) word(w uint32) { a.buf.PutWord(w) }

// rr3 is the pair expander for register forms: the same base opcode twice,
// first over the low trio, then over the high trio.
func (a *Asm) rr3(op uint32, d, s, t XReg) {
	a.word(mxm(op, d.Low(), s.Low(), t.Low()))
	a.word(mxm(op, d.High(), s.High(), t.High()))
}

// ld3 is the pair expander for memory-source forms. Each half first stages
// the memory operand into Scratch, then issues the arithmetic word, in the
// strict order load-low, use-low, load-high, use-high: the high-half load
// must follow the low-half use so that a destination overlapping the
// source resolves the same way in both halves. swap puts the staged
// operand in the ws slot instead of wt (operand-swapped compares).
func (a *Asm) ld3(op, ld uint32, scale uint, d, s XReg, m Mem, swap bool) {
	sc := a.rsv.Scratch
	a.word(mdm(ld, sc, m, scale))
	a.word(a.mix(op, d.Low(), s.Low(), sc, swap))
	a.word(mdm(ld, sc, m.High(), scale))
	a.word(a.mix(op, d.High(), s.High(), sc, swap))
}

func (a *Asm) mix(op uint32, wd, ws, sc VReg, swap bool) uint32 {
	if swap {
		return mxm(op, wd, sc, ws)
	}
	return mxm(op, wd, ws, sc)
}

// ri3 is the pair expander for immediate shifts: the masked count embeds
// at bit 16, inside the BIT format's df/m field.
func (a *Asm) ri3(op uint32, d, s XReg, n uint32, mask uint32) {
	op |= (n & mask) << 16
	a.word(mxm(op, d.Low(), s.Low(), 0))
	a.word(mxm(op, d.High(), s.High(), 0))
}

// splatLD stages a scalar shift count: a zero-extending integer load into
// Base, one fill to replicate it across Scratch's lanes, then the variable
// shift over both halves. The count shares one splat because both halves
// shift by the same amount; the caller must have reduced it modulo the
// element width.
func (a *Asm) splatLD(varOp, ldOp, fillOp uint32, d, s XReg, m Mem) {
	a.word(mpm(ldOp, a.rsv.Base, m))
	a.word(fillw(fillOp, a.rsv.Scratch, a.rsv.Base))
	a.word(mxm(varOp, d.Low(), s.Low(), a.rsv.Scratch))
	a.word(mxm(varOp, d.High(), s.High(), a.rsv.Scratch))
}
