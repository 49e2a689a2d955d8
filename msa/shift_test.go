package msa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonkingfr/UniSIMD-sub001/msa"
)

// slli.h with count 5: the count embeds at bit 16 under the 4-bit mask.
func TestShiftLeftImmediateHalf(t *testing.T) {
	ws := emit(t, func(a *msa.Asm) { a.Shl3RI(msa.H, msa.X1, msa.X2, 5) })
	require.Len(t, ws, 2)
	assert.Equal(t, uint32(0x78600009)|(5&0x0F)<<16|2<<11|1<<6, ws[0])
	assert.Equal(t, uint32(0x78600009)|(5&0x0F)<<16|18<<11|17<<6, ws[1])
	assert.Equal(t, uint32(0x78651049), ws[0])
}

// Counts mask to the element width: 4 bits for halves, 3 for bytes.
func TestShiftImmediateMasking(t *testing.T) {
	halves := emit(t, func(a *msa.Asm) { a.Shl3RI(msa.H, msa.X1, msa.X2, 21) })
	masked := emit(t, func(a *msa.Asm) { a.Shl3RI(msa.H, msa.X1, msa.X2, 21&0x0F) })
	assert.Equal(t, masked, halves)

	bytes := emit(t, func(a *msa.Asm) { a.Shr3RI(msa.B, msa.U, msa.X1, msa.X2, 13) })
	maskedB := emit(t, func(a *msa.Asm) { a.Shr3RI(msa.B, msa.U, msa.X1, msa.X2, 13&0x07) })
	assert.Equal(t, maskedB, bytes)
}

func TestShiftImmediateBaseOpcodes(t *testing.T) {
	d, s := msa.X1, msa.X2

	tests := []struct {
		name string
		base uint32
		emit func(a *msa.Asm)
	}{
		{"slli.h", 0x78600009, func(a *msa.Asm) { a.Shl3RI(msa.H, d, s, 1) }},
		{"slli.b", 0x78700009, func(a *msa.Asm) { a.Shl3RI(msa.B, d, s, 1) }},
		{"srli.h", 0x79600009, func(a *msa.Asm) { a.Shr3RI(msa.H, msa.U, d, s, 1) }},
		{"srli.b", 0x79700009, func(a *msa.Asm) { a.Shr3RI(msa.B, msa.U, d, s, 1) }},
		{"srai.h", 0x78E00009, func(a *msa.Asm) { a.Shr3RI(msa.H, msa.S, d, s, 1) }},
		{"srai.b", 0x78F00009, func(a *msa.Asm) { a.Shr3RI(msa.B, msa.S, d, s, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := emit(t, tt.emit)
			require.Len(t, ws, 2)
			assert.Equal(t, tt.base|1<<16|2<<11|1<<6, ws[0])
			assert.Equal(t, tt.base|1<<16|18<<11|17<<6, ws[1])
		})
	}
}

// Variable shifts use the 3R forms with per-element counts.
func TestVariableShiftBaseOpcodes(t *testing.T) {
	d, s, x := msa.X1, msa.X2, msa.X3

	tests := []struct {
		name string
		base uint32
		emit func(a *msa.Asm)
	}{
		{"sll.h", 0x7820000D, func(a *msa.Asm) { a.Svl3(msa.H, d, s, x) }},
		{"sll.b", 0x7800000D, func(a *msa.Asm) { a.Svl3(msa.B, d, s, x) }},
		{"srl.h", 0x7920000D, func(a *msa.Asm) { a.Svr3(msa.H, msa.U, d, s, x) }},
		{"srl.b", 0x7900000D, func(a *msa.Asm) { a.Svr3(msa.B, msa.U, d, s, x) }},
		{"sra.h", 0x78A0000D, func(a *msa.Asm) { a.Svr3(msa.H, msa.S, d, s, x) }},
		{"sra.b", 0x7880000D, func(a *msa.Asm) { a.Svr3(msa.B, msa.S, d, s, x) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := emit(t, tt.emit)
			require.Len(t, ws, 2)
			assert.Equal(t, tt.base, ws[0]&^fieldMask)
		})
	}
}

// Shift-by-scalar from memory: scalar load into the integer scratch, one
// fill splat into the vector scratch, then the variable shift over both
// halves.
func TestShiftByScalarFromMemory(t *testing.T) {
	m := msa.Mem{Base: msa.T0, Disp: 6}
	ws := emit(t, func(a *msa.Asm) { a.Shr3LD(msa.H, msa.S, msa.X1, msa.X2, m) })
	require.Len(t, ws, 4)

	assert.Equal(t, uint32(0x94000000)|8<<21|24<<16|6, ws[0], "lhu $t8, 6($t0)")
	assert.Equal(t, uint32(0x7B01001E)|24<<11|31<<6, ws[1], "fill.h $w31, $t8")
	assert.Equal(t, uint32(0x78A0000D)|31<<16|2<<11|1<<6, ws[2], "sra.h low")
	assert.Equal(t, uint32(0x78A0000D)|31<<16|18<<11|17<<6, ws[3], "sra.h high")
}

// The byte variant loads with lbu and fills byte lanes.
func TestByteShiftByScalarFromMemory(t *testing.T) {
	m := msa.Mem{Base: msa.T1, Disp: 3}
	ws := emit(t, func(a *msa.Asm) { a.Shl3LD(msa.B, msa.X4, msa.X5, m) })
	require.Len(t, ws, 4)

	assert.Equal(t, uint32(0x90000000)|9<<21|24<<16|3, ws[0], "lbu $t8, 3($t1)")
	assert.Equal(t, uint32(0x7B00001E)|24<<11|31<<6, ws[1], "fill.b $w31, $t8")
	assert.Equal(t, uint32(0x7800000D)|31<<16|5<<11|4<<6, ws[2], "sll.b low")
	assert.Equal(t, uint32(0x7800000D)|31<<16|21<<11|20<<6, ws[3], "sll.b high")
}
