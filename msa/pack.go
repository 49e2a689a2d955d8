package msa

// mxm packs a three-register MSA form: wd at bits 10:6, ws at 15:11, wt at
// 20:16. The same layout serves the 3R, VEC and (with wt zero) BIT forms.
func mxm(base uint32, wd, ws, wt VReg) uint32 {
	return base | uint32(wt)<<16 | uint32(ws)<<11 | uint32(wd)<<6
}

// mdm packs an MSA vector load/store: the byte displacement is scaled down
// to element units and truncated to the signed 10-bit field at bits 25:16,
// base GPR at 15:11, vector register at 10:6. Misaligned or out-of-range
// displacements wrap silently; validity is the caller's contract.
func mdm(base uint32, wd VReg, m Mem, scale uint) uint32 {
	return base | (uint32(m.Disp>>scale)&0x3FF)<<16 | uint32(m.Base)<<11 | uint32(wd)<<6
}

// mpm packs a MIPS I-type scalar load targeting rt: base GPR at 25:21,
// rt at 20:16, 16-bit displacement in the low half.
func mpm(base uint32, rt GReg, m Mem) uint32 {
	return base | uint32(m.Base)<<21 | uint32(rt)<<16 | uint32(uint16(m.Disp))
}

// fillw packs an MSA fill-from-integer: source GPR at 15:11, wd at 10:6.
func fillw(base uint32, wd VReg, rs GReg) uint32 {
	return base | uint32(rs)<<11 | uint32(wd)<<6
}
