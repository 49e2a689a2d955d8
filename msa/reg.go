// Package msa encodes the paired-128 subset of the MIPS SIMD Architecture:
// a logical 256-bit vector model where every operation issues two adjacent
// 128-bit MSA machine words, one for the low half of a register pair and
// one for the high half.
//
// The encoder is a pure code generator. It validates nothing at runtime:
// out-of-range registers or displacements produce silently wrong words and
// are caller bugs, the same contract the surrounding code generator
// operates under.
package msa

import "fmt"

// VReg is a raw 5-bit MSA vector register index ($w0..$w31).
type VReg uint8

// GReg is a raw 5-bit MIPS general register index.
type GReg uint8

// MIPS o32 general register names.
const (
	ZR GReg = 0 // hardwired zero
	AT GReg = 1
	V0 GReg = 2
	V1 GReg = 3
	A0 GReg = 4
	A1 GReg = 5
	A2 GReg = 6
	A3 GReg = 7
	T0 GReg = 8
	T1 GReg = 9
	T2 GReg = 10
	T3 GReg = 11
	T4 GReg = 12
	T5 GReg = 13
	T6 GReg = 14
	T7 GReg = 15
	S0 GReg = 16
	S1 GReg = 17
	S2 GReg = 18
	S3 GReg = 19
	S4 GReg = 20
	S5 GReg = 21
	S6 GReg = 22
	S7 GReg = 23
	T8 GReg = 24
	T9 GReg = 25
	GP GReg = 28
	SP GReg = 29
	FP GReg = 30
	RA GReg = 31
)

// XReg names a logical 256-bit vector register backed by two adjacent MSA
// 128-bit registers: the low half at index n and the high half at n+16.
// The pair never crosses the 32-register file boundary, so only X0..X15
// exist. X0 doubles as the implicit merge mask under the default
// reservations, and the registers holding Reservations.Scratch and
// Reservations.Zero overlap the high halves of X14/X15; callers that use
// those pairs for data get clobbered by the synthesized forms.
type XReg uint8

const (
	X0 XReg = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
)

// Low returns the MSA register holding the low 128 bits of the pair.
func (x XReg) Low() VReg { return VReg(x) }

// High returns the MSA register holding the high 128 bits of the pair.
func (x XReg) High() VReg { return VReg(x) + 16 }

// String returns the logical register name, e.g. "x3".
func (x XReg) String() string { return fmt.Sprintf("x%d", uint8(x)) }

// Elem selects the element width of a sized operation.
type Elem uint8

const (
	H Elem = iota // 16-bit halfword elements, 16 per logical register
	B             // 8-bit byte elements, 32 per logical register
)

func (e Elem) String() string {
	if e == H {
		return "h"
	}
	return "b"
}

// Sign selects between the unsigned and signed variant of an operation.
// It is meaningful only for the saturating, comparing, right-shifting and
// min/max families; everything else is signedness-agnostic.
type Sign uint8

const (
	U Sign = iota // unsigned
	S             // signed
)

func (s Sign) String() string {
	if s == U {
		return "u"
	}
	return "s"
}

// Mem is a memory operand: base register plus byte displacement. Scaled or
// indexed addressing is expanded by the host before the encoder sees it, so
// a Mem is always the final base+disp form. Displacements for sized vector
// accesses must be multiples of the element size; the packer scales them
// into the instruction's 10-bit field without checking.
type Mem struct {
	Base GReg
	Disp int32
}

// High returns the addressing of the high 128-bit half: the same base with
// the displacement advanced by one MSA register width.
func (m Mem) High() Mem { return Mem{Base: m.Base, Disp: m.Disp + 16} }

// Reservations names the registers the encoder owns in the generated
// code's register file. They are global to the emitted program: callers
// must not alias live data to them across encoder invocations, because the
// synthesized forms (not/orn/cne, memory-source shifts, mask merges, mask
// branches) clobber Scratch and Base and read Mask and Zero.
type Reservations struct {
	// Mask is the low half of the implicit merge-mask pair; the high half
	// is Mask+16. Mask-merge operations read it and never write it.
	Mask VReg
	// Scratch stages memory operands and holds mask reductions. Named $w31
	// in emitted branch mnemonics under the defaults.
	Scratch VReg
	// Zero must hold all-zero bits; NOT and AND-NOT are synthesized
	// against it. The encoder never writes it — establishing the zero is
	// the surrounding prologue's job.
	Zero VReg
	// Base is the integer scratch register used to stage scalar shift
	// counts loaded from memory.
	Base GReg
}

// DefaultReservations returns the register assignment used by the stock
// code generator: mask in the X0 pair, scratch in $w31, zero in $w30,
// integer staging in $t8.
func DefaultReservations() Reservations {
	return Reservations{Mask: 0, Scratch: 31, Zero: 30, Base: T8}
}
