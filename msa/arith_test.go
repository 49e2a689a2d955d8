package msa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonkingfr/UniSIMD-sub001/msa"
)

// addv.h over the X1/X2/X3 trio: low word uses registers 1,2,3 and the
// high word the 17,18,19 partners, same base opcode.
func TestAddHalfPair(t *testing.T) {
	ws := emit(t, func(a *msa.Asm) { a.Add3(msa.H, msa.X1, msa.X2, msa.X3) })
	require.Len(t, ws, 2)
	assert.Equal(t, uint32(0x7820000E)|3<<16|2<<11|1<<6, ws[0])
	assert.Equal(t, uint32(0x7820000E)|19<<16|18<<11|17<<6, ws[1])
	assert.Equal(t, []uint32{0x7823104E, 0x7833944E}, ws)
}

func TestAddBytePair(t *testing.T) {
	ws := emit(t, func(a *msa.Asm) { a.Add3(msa.B, msa.X1, msa.X2, msa.X3) })
	assert.Equal(t, []uint32{
		0x7800000E | 3<<16 | 2<<11 | 1<<6,
		0x7800000E | 19<<16 | 18<<11 | 17<<6,
	}, ws)
}

// Saturation and signedness live entirely in the base opcode constant.
func TestArithBaseOpcodes(t *testing.T) {
	d, s, x := msa.X1, msa.X2, msa.X3

	tests := []struct {
		name string
		base uint32
		emit func(a *msa.Asm)
	}{
		{"addv.h", 0x7820000E, func(a *msa.Asm) { a.Add3(msa.H, d, s, x) }},
		{"addv.b", 0x7800000E, func(a *msa.Asm) { a.Add3(msa.B, d, s, x) }},
		{"subv.h", 0x78A0000E, func(a *msa.Asm) { a.Sub3(msa.H, d, s, x) }},
		{"subv.b", 0x7880000E, func(a *msa.Asm) { a.Sub3(msa.B, d, s, x) }},
		{"mulv.h", 0x78200012, func(a *msa.Asm) { a.Mul3(msa.H, d, s, x) }},
		{"mulv.b", 0x78000012, func(a *msa.Asm) { a.Mul3(msa.B, d, s, x) }},
		{"adds_u.h", 0x79A00010, func(a *msa.Asm) { a.Ads3(msa.H, msa.U, d, s, x) }},
		{"adds_s.h", 0x79200010, func(a *msa.Asm) { a.Ads3(msa.H, msa.S, d, s, x) }},
		{"adds_u.b", 0x79800010, func(a *msa.Asm) { a.Ads3(msa.B, msa.U, d, s, x) }},
		{"adds_s.b", 0x79000010, func(a *msa.Asm) { a.Ads3(msa.B, msa.S, d, s, x) }},
		{"subs_u.h", 0x78A00011, func(a *msa.Asm) { a.Sbs3(msa.H, msa.U, d, s, x) }},
		{"subs_s.h", 0x78200011, func(a *msa.Asm) { a.Sbs3(msa.H, msa.S, d, s, x) }},
		{"subs_u.b", 0x78800011, func(a *msa.Asm) { a.Sbs3(msa.B, msa.U, d, s, x) }},
		{"subs_s.b", 0x78000011, func(a *msa.Asm) { a.Sbs3(msa.B, msa.S, d, s, x) }},
		{"min_u.h", 0x7AA0000E, func(a *msa.Asm) { a.Min3(msa.H, msa.U, d, s, x) }},
		{"min_s.h", 0x7A20000E, func(a *msa.Asm) { a.Min3(msa.H, msa.S, d, s, x) }},
		{"min_u.b", 0x7A80000E, func(a *msa.Asm) { a.Min3(msa.B, msa.U, d, s, x) }},
		{"min_s.b", 0x7A00000E, func(a *msa.Asm) { a.Min3(msa.B, msa.S, d, s, x) }},
		{"max_u.h", 0x79A0000E, func(a *msa.Asm) { a.Max3(msa.H, msa.U, d, s, x) }},
		{"max_s.h", 0x7920000E, func(a *msa.Asm) { a.Max3(msa.H, msa.S, d, s, x) }},
		{"max_u.b", 0x7980000E, func(a *msa.Asm) { a.Max3(msa.B, msa.U, d, s, x) }},
		{"max_s.b", 0x7900000E, func(a *msa.Asm) { a.Max3(msa.B, msa.S, d, s, x) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := emit(t, tt.emit)
			require.Len(t, ws, 2)
			assert.Equal(t, tt.base, ws[0]&^fieldMask)
			assert.Equal(t, tt.base, ws[1]&^fieldMask)
		})
	}
}

// Memory-source add: the staged quad with exact displacements. ld.h
// scales byte displacements to halfword units, so +32 bytes is 16 units
// low and 24 units high.
func TestAddHalfFromMemory(t *testing.T) {
	m := msa.Mem{Base: msa.A0, Disp: 32}
	ws := emit(t, func(a *msa.Asm) { a.Add3LD(msa.H, msa.X1, msa.X2, m) })
	require.Len(t, ws, 4)

	assert.Equal(t, uint32(0x78000021)|16<<16|4<<11|31<<6, ws[0], "low-half ld.h")
	assert.Equal(t, uint32(0x7820000E)|31<<16|2<<11|1<<6, ws[1], "low-half addv.h")
	assert.Equal(t, uint32(0x78000021)|24<<16|4<<11|31<<6, ws[2], "high-half ld.h")
	assert.Equal(t, uint32(0x7820000E)|31<<16|18<<11|17<<6, ws[3], "high-half addv.h")
}

// Negative displacements stay sign-correct inside the 10-bit field.
func TestNegativeDisplacement(t *testing.T) {
	m := msa.Mem{Base: msa.SP, Disp: -32}
	ws := emit(t, func(a *msa.Asm) { a.Add3LD(msa.B, msa.X1, msa.X2, m) })
	require.Len(t, ws, 4)
	assert.Equal(t, uint32(0x3E0), ws[0]>>16&0x3FF, "-32 in ten bits")
	assert.Equal(t, uint32(0x3F0), ws[2]>>16&0x3FF, "-16 in ten bits")
}
