package msa

// MSA base opcodes with zeroed operand fields, from the MIPS SIMD
// Architecture manual. The major opcode 0b011110 occupies bits 31:26; the
// data format (.b/.h) sits inside the pattern, so each constant is already
// committed to one element width. Field packing is the packers' job.

// Three-register forms (3R): operation at bits 25:23, df at 22:21,
// wt/ws/wd at 20:16, 15:11, 10:6.
const (
	opADDVH = 0x7820000E // addv.h: modular add
	opADDVB = 0x7800000E // addv.b
	opSUBVH = 0x78A0000E // subv.h: modular subtract
	opSUBVB = 0x7880000E // subv.b

	opMULVH = 0x78200012 // mulv.h: low half of product
	opMULVB = 0x78000012 // mulv.b

	opADDSSH = 0x79200010 // adds_s.h: saturating signed add
	opADDSSB = 0x79000010 // adds_s.b
	opADDSUH = 0x79A00010 // adds_u.h: saturating unsigned add
	opADDSUB = 0x79800010 // adds_u.b

	opSUBSSH = 0x78200011 // subs_s.h: saturating signed subtract
	opSUBSSB = 0x78000011 // subs_s.b
	opSUBSUH = 0x78A00011 // subs_u.h: saturating unsigned subtract
	opSUBSUB = 0x78800011 // subs_u.b

	opMAXSH = 0x7920000E // max_s.h
	opMAXSB = 0x7900000E // max_s.b
	opMAXUH = 0x79A0000E // max_u.h
	opMAXUB = 0x7980000E // max_u.b
	opMINSH = 0x7A20000E // min_s.h
	opMINSB = 0x7A00000E // min_s.b
	opMINUH = 0x7AA0000E // min_u.h
	opMINUB = 0x7A80000E // min_u.b

	opCEQH  = 0x7820000F // ceq.h: all-ones on equal
	opCEQB  = 0x7800000F // ceq.b
	opCLTSH = 0x7920000F // clt_s.h
	opCLTSB = 0x7900000F // clt_s.b
	opCLTUH = 0x79A0000F // clt_u.h
	opCLTUB = 0x7980000F // clt_u.b
	opCLESH = 0x7A20000F // cle_s.h
	opCLESB = 0x7A00000F // cle_s.b
	opCLEUH = 0x7AA0000F // cle_u.h
	opCLEUB = 0x7A80000F // cle_u.b

	opSLLH = 0x7820000D // sll.h: per-element variable left shift
	opSLLB = 0x7800000D // sll.b
	opSRAH = 0x78A0000D // sra.h: per-element arithmetic right shift
	opSRAB = 0x7880000D // sra.b
	opSRLH = 0x7920000D // srl.h: per-element logical right shift
	opSRLB = 0x7900000D // srl.b
)

// Bitwise vector forms (VEC): operation at bits 25:21, no df — these act
// on the full 128 bits and are shared by both element widths.
const (
	opANDV  = 0x7800001E // and.v
	opORV   = 0x7820001E // or.v
	opNORV  = 0x7840001E // nor.v
	opXORV  = 0x7860001E // xor.v
	opBMNZV = 0x7880001E // bmnz.v: wd = (ws & wt) | (wd & ~wt)
	opBSELV = 0x78C0001E // bsel.v: wd = (ws & ~wd) | (wt & wd)
)

// Immediate shift forms (BIT): operation at bits 25:23, the df/m field at
// 22:16 embeds both the width tag and the shift amount. The constants
// carry the width tag with a zero amount; the count lands at bit 16.
const (
	opSLLIH = 0x78600009 // slli.h, 4-bit count
	opSLLIB = 0x78700009 // slli.b, 3-bit count
	opSRAIH = 0x78E00009 // srai.h
	opSRAIB = 0x78F00009 // srai.b
	opSRLIH = 0x79600009 // srli.h
	opSRLIB = 0x79700009 // srli.b
)

// Vector load/store (MI10): scaled signed 10-bit displacement at bits
// 25:16, base GPR at 15:11, wd at 10:6, df in the low two bits.
const (
	opLDH = 0x78000021 // ld.h
	opLDB = 0x78000020 // ld.b
	opSTH = 0x78000025 // st.h
	opSTB = 0x78000024 // st.b
)

// Scalar staging opcodes: MSA fill-from-integer replicates a GPR across
// all lanes, and the MIPS I-type loads fetch the scalar to replicate.
const (
	opFILLH = 0x7B01001E // fill.h
	opFILLB = 0x7B00001E // fill.b
	opLHU   = 0x94000000 // lhu: zero-extending 16-bit load
	opLBU   = 0x90000000 // lbu: zero-extending 8-bit load
)

// pick returns h for 16-bit elements and b for 8-bit ones.
func pick(e Elem, h, b uint32) uint32 {
	if e == H {
		return h
	}
	return b
}

// pick4 selects by element width and signedness.
func pick4(e Elem, sg Sign, hu, hs, bu, bs uint32) uint32 {
	if e == H {
		if sg == U {
			return hu
		}
		return hs
	}
	if sg == U {
		return bu
	}
	return bs
}
