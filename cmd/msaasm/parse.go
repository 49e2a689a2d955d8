package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/neonkingfr/UniSIMD-sub001/msa"
)

// Listing grammar, one operation per line:
//
//	# comment                 ; also "//" and ";"
//	loop:                     ; labels pass through to the asm output
//	mov   x1, x2              ; register move
//	ld    x1, 32(a0)          ; whole-pair load/store
//	st    x1, 32(a0)
//	and   x1, x2              ; bitwise: and, ann, orr, orn, xor
//	orr   x1, x2, x3          ; three-operand forms
//	xor   x1, x2, 16(sp)      ; memory sources
//	not   x1
//	mmv   x1, x2              ; mask merge; mmvst for the store form
//	add.h x1, x2, x3          ; sized: add, sub, mul with .h or .b
//	ads.h.s x1, x2            ; saturating, min, max: width then sign
//	shl.h x1, x2, 5           ; immediate shifts; shr needs a sign
//	shr.b.u x1, x2, 8(t0)     ; shift by a scalar loaded from memory
//	svl.h x1, x2, x3          ; variable per-element shifts; svr signed
//	ceq.h x1, x2              ; compares; clt/cle/cgt/cge take a sign
//	mkj.none.h x1, done       ; mask branch: none or full
type lineErr struct {
	n   int
	err error
}

func (e *lineErr) Error() string { return fmt.Sprintf("line %d: %v", e.n, e.err) }
func (e *lineErr) Unwrap() error { return e.err }

// parseListing feeds src to the encoder, line by line.
func parseListing(src []byte, a *msa.Asm) error {
	sc := bufio.NewScanner(bytes.NewReader(src))
	n := 0
	for sc.Scan() {
		n++
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ":") && !strings.ContainsAny(line, " \t") {
			a.Buffer().PutLine(line)
			continue
		}
		if err := parseOp(line, a); err != nil {
			return &lineErr{n: n, err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan listing: %w", err)
	}
	return nil
}

func stripComment(line string) string {
	for _, mark := range []string{"#", ";", "//"} {
		if i := strings.Index(line, mark); i >= 0 {
			line = line[:i]
		}
	}
	return strings.TrimSpace(line)
}

type opKind uint8

const (
	opAny opKind = iota // wildcard in operand-shape checks
	opX
	opMem
	opImm
	opSym
)

type operand struct {
	kind opKind
	x    msa.XReg
	mem  msa.Mem
	imm  uint32
	sym  string
}

var gprNames = map[string]msa.GReg{
	"zero": msa.ZR, "at": msa.AT,
	"v0": msa.V0, "v1": msa.V1,
	"a0": msa.A0, "a1": msa.A1, "a2": msa.A2, "a3": msa.A3,
	"t0": msa.T0, "t1": msa.T1, "t2": msa.T2, "t3": msa.T3,
	"t4": msa.T4, "t5": msa.T5, "t6": msa.T6, "t7": msa.T7,
	"s0": msa.S0, "s1": msa.S1, "s2": msa.S2, "s3": msa.S3,
	"s4": msa.S4, "s5": msa.S5, "s6": msa.S6, "s7": msa.S7,
	"t8": msa.T8, "t9": msa.T9,
	"gp": msa.GP, "sp": msa.SP, "fp": msa.FP, "ra": msa.RA,
}

func parseOperand(tok string) (operand, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return operand{}, fmt.Errorf("empty operand")
	}

	// x7: logical vector register.
	if strings.HasPrefix(tok, "x") {
		if n, err := strconv.ParseUint(tok[1:], 10, 8); err == nil {
			if n > 15 {
				return operand{}, fmt.Errorf("register %q out of the pairable range x0..x15", tok)
			}
			return operand{kind: opX, x: msa.XReg(n)}, nil
		}
	}

	// disp(base): memory operand.
	if open := strings.IndexByte(tok, '('); open >= 0 && strings.HasSuffix(tok, ")") {
		base, ok := gprNames[tok[open+1:len(tok)-1]]
		if !ok {
			return operand{}, fmt.Errorf("unknown base register in %q", tok)
		}
		disp := int64(0)
		if ds := tok[:open]; ds != "" {
			var err error
			disp, err = strconv.ParseInt(ds, 0, 32)
			if err != nil {
				return operand{}, fmt.Errorf("bad displacement in %q: %w", tok, err)
			}
		}
		return operand{kind: opMem, mem: msa.Mem{Base: base, Disp: int32(disp)}}, nil
	}

	// Bare integer: immediate shift count.
	if n, err := strconv.ParseUint(tok, 0, 32); err == nil {
		return operand{kind: opImm, imm: uint32(n)}, nil
	}

	// Anything else is a label reference.
	return operand{kind: opSym, sym: tok}, nil
}

func parseOperands(rest string) ([]operand, error) {
	if strings.TrimSpace(rest) == "" {
		return nil, nil
	}
	parts := strings.Split(rest, ",")
	ops := make([]operand, 0, len(parts))
	for _, p := range parts {
		op, err := parseOperand(p)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// mnemonic carries the dotted suffixes: name[.elem][.sign], or for the
// mask branch name.cond.elem.
type mnemonic struct {
	name  string
	parts []string
}

func (m mnemonic) elem(at int) (msa.Elem, error) {
	if at >= len(m.parts) {
		return 0, fmt.Errorf("%s needs a .h or .b width", m.name)
	}
	switch m.parts[at] {
	case "h":
		return msa.H, nil
	case "b":
		return msa.B, nil
	}
	return 0, fmt.Errorf("bad width %q on %s", m.parts[at], m.name)
}

func (m mnemonic) sign(at int) (msa.Sign, error) {
	if at >= len(m.parts) {
		return 0, fmt.Errorf("%s needs a .u or .s signedness", m.name)
	}
	switch m.parts[at] {
	case "u":
		return msa.U, nil
	case "s":
		return msa.S, nil
	}
	return 0, fmt.Errorf("bad signedness %q on %s", m.parts[at], m.name)
}

func parseOp(line string, a *msa.Asm) error {
	head, rest, _ := strings.Cut(strings.ReplaceAll(line, "\t", " "), " ")
	parts := strings.Split(head, ".")
	m := mnemonic{name: parts[0], parts: parts[1:]}

	args, err := parseOperands(rest)
	if err != nil {
		return err
	}

	switch m.name {
	case "mov":
		if err := wantKinds(args, opX, opX); err != nil {
			return err
		}
		a.Mov(args[0].x, args[1].x)
		return nil
	case "ld":
		if err := wantKinds(args, opX, opMem); err != nil {
			return err
		}
		a.MovLD(args[0].x, args[1].mem)
		return nil
	case "st":
		if err := wantKinds(args, opX, opMem); err != nil {
			return err
		}
		a.MovST(args[0].x, args[1].mem)
		return nil
	case "not":
		if err := wantKinds(args, opX); err != nil {
			return err
		}
		a.Not(args[0].x)
		return nil
	case "mmv":
		if err := wantKinds(args, opX, opAny); err != nil {
			return err
		}
		if args[1].kind == opMem {
			a.MmvLD(args[0].x, args[1].mem)
		} else {
			a.Mmv(args[0].x, args[1].x)
		}
		return nil
	case "mmvst":
		if err := wantKinds(args, opX, opMem); err != nil {
			return err
		}
		a.MmvST(args[0].x, args[1].mem)
		return nil

	case "and":
		return bitwise(args, a.And, a.And3, a.AndLD, a.And3LD)
	case "ann":
		return bitwise(args, a.Ann, a.Ann3, a.AnnLD, a.Ann3LD)
	case "orr":
		return bitwise(args, a.Orr, a.Orr3, a.OrrLD, a.Orr3LD)
	case "orn":
		return bitwise(args, a.Orn, a.Orn3, a.OrnLD, a.Orn3LD)
	case "xor":
		return bitwise(args, a.Xor, a.Xor3, a.XorLD, a.Xor3LD)

	case "add", "sub", "mul", "ceq", "cne", "svl":
		e, err := m.elem(0)
		if err != nil {
			return err
		}
		switch m.name {
		case "add":
			return sized(args, e, a.Add, a.Add3, a.AddLD, a.Add3LD)
		case "sub":
			return sized(args, e, a.Sub, a.Sub3, a.SubLD, a.Sub3LD)
		case "mul":
			return sized(args, e, a.Mul, a.Mul3, a.MulLD, a.Mul3LD)
		case "ceq":
			return sized(args, e, a.Ceq, a.Ceq3, a.CeqLD, a.Ceq3LD)
		case "cne":
			return sized(args, e, a.Cne, a.Cne3, a.CneLD, a.Cne3LD)
		default:
			return sized(args, e, a.Svl, a.Svl3, a.SvlLD, a.Svl3LD)
		}

	case "ads", "sbs", "min", "max", "clt", "cle", "cgt", "cge", "svr":
		e, err := m.elem(0)
		if err != nil {
			return err
		}
		sg, err := m.sign(1)
		if err != nil {
			return err
		}
		switch m.name {
		case "ads":
			return signed(args, e, sg, a.Ads, a.Ads3, a.AdsLD, a.Ads3LD)
		case "sbs":
			return signed(args, e, sg, a.Sbs, a.Sbs3, a.SbsLD, a.Sbs3LD)
		case "min":
			return signed(args, e, sg, a.Min, a.Min3, a.MinLD, a.Min3LD)
		case "max":
			return signed(args, e, sg, a.Max, a.Max3, a.MaxLD, a.Max3LD)
		case "clt":
			return signed(args, e, sg, a.Clt, a.Clt3, a.CltLD, a.Clt3LD)
		case "cle":
			return signed(args, e, sg, a.Cle, a.Cle3, a.CleLD, a.Cle3LD)
		case "cgt":
			return signed(args, e, sg, a.Cgt, a.Cgt3, a.CgtLD, a.Cgt3LD)
		case "cge":
			return signed(args, e, sg, a.Cge, a.Cge3, a.CgeLD, a.Cge3LD)
		default:
			return signed(args, e, sg, a.Svr, a.Svr3, a.SvrLD, a.Svr3LD)
		}

	case "shl":
		e, err := m.elem(0)
		if err != nil {
			return err
		}
		return shift(args,
			func(g msa.XReg, n uint32) { a.ShlRI(e, g, n) },
			func(d, s msa.XReg, n uint32) { a.Shl3RI(e, d, s, n) },
			func(g msa.XReg, mm msa.Mem) { a.ShlLD(e, g, mm) },
			func(d, s msa.XReg, mm msa.Mem) { a.Shl3LD(e, d, s, mm) })
	case "shr":
		e, err := m.elem(0)
		if err != nil {
			return err
		}
		sg, err := m.sign(1)
		if err != nil {
			return err
		}
		return shift(args,
			func(g msa.XReg, n uint32) { a.ShrRI(e, sg, g, n) },
			func(d, s msa.XReg, n uint32) { a.Shr3RI(e, sg, d, s, n) },
			func(g msa.XReg, mm msa.Mem) { a.ShrLD(e, sg, g, mm) },
			func(d, s msa.XReg, mm msa.Mem) { a.Shr3LD(e, sg, d, s, mm) })

	case "mkj":
		if len(m.parts) != 2 {
			return fmt.Errorf("mkj needs a predicate and a width, e.g. mkj.none.h")
		}
		var c msa.MaskCond
		switch m.parts[0] {
		case "none":
			c = msa.None
		case "full":
			c = msa.Full
		default:
			return fmt.Errorf("bad mask predicate %q", m.parts[0])
		}
		e, err := m.elem(1)
		if err != nil {
			return err
		}
		if len(args) != 2 || args[0].kind != opX || args[1].kind != opSym {
			return fmt.Errorf("mkj takes a vector register and a label")
		}
		a.Mkj(e, args[0].x, c, args[1].sym)
		return nil
	}

	return fmt.Errorf("unknown mnemonic %q", m.name)
}

// wantKinds checks operand count and kinds; opAny entries match anything.
func wantKinds(args []operand, kinds ...opKind) error {
	if len(args) != len(kinds) {
		return fmt.Errorf("want %d operands, have %d", len(kinds), len(args))
	}
	for i, k := range kinds {
		if k == opAny {
			continue
		}
		if args[i].kind != k {
			return fmt.Errorf("operand %d has the wrong kind", i+1)
		}
	}
	return nil
}

func bitwise(args []operand,
	rr func(g, s msa.XReg),
	rr3 func(d, s, t msa.XReg),
	ld func(g msa.XReg, m msa.Mem),
	ld3 func(d, s msa.XReg, m msa.Mem),
) error {
	switch {
	case len(args) == 2 && args[0].kind == opX && args[1].kind == opX:
		rr(args[0].x, args[1].x)
	case len(args) == 2 && args[0].kind == opX && args[1].kind == opMem:
		ld(args[0].x, args[1].mem)
	case len(args) == 3 && args[0].kind == opX && args[1].kind == opX && args[2].kind == opX:
		rr3(args[0].x, args[1].x, args[2].x)
	case len(args) == 3 && args[0].kind == opX && args[1].kind == opX && args[2].kind == opMem:
		ld3(args[0].x, args[1].x, args[2].mem)
	default:
		return fmt.Errorf("bad operand shape")
	}
	return nil
}

func sized(args []operand, e msa.Elem,
	rr func(e msa.Elem, g, s msa.XReg),
	rr3 func(e msa.Elem, d, s, t msa.XReg),
	ld func(e msa.Elem, g msa.XReg, m msa.Mem),
	ld3 func(e msa.Elem, d, s msa.XReg, m msa.Mem),
) error {
	return bitwise(args,
		func(g, s msa.XReg) { rr(e, g, s) },
		func(d, s, t msa.XReg) { rr3(e, d, s, t) },
		func(g msa.XReg, m msa.Mem) { ld(e, g, m) },
		func(d, s msa.XReg, m msa.Mem) { ld3(e, d, s, m) })
}

func signed(args []operand, e msa.Elem, sg msa.Sign,
	rr func(e msa.Elem, sg msa.Sign, g, s msa.XReg),
	rr3 func(e msa.Elem, sg msa.Sign, d, s, t msa.XReg),
	ld func(e msa.Elem, sg msa.Sign, g msa.XReg, m msa.Mem),
	ld3 func(e msa.Elem, sg msa.Sign, d, s msa.XReg, m msa.Mem),
) error {
	return bitwise(args,
		func(g, s msa.XReg) { rr(e, sg, g, s) },
		func(d, s, t msa.XReg) { rr3(e, sg, d, s, t) },
		func(g msa.XReg, m msa.Mem) { ld(e, sg, g, m) },
		func(d, s msa.XReg, m msa.Mem) { ld3(e, sg, d, s, m) })
}

func shift(args []operand,
	ri func(g msa.XReg, n uint32),
	ri3 func(d, s msa.XReg, n uint32),
	ld func(g msa.XReg, m msa.Mem),
	ld3 func(d, s msa.XReg, m msa.Mem),
) error {
	switch {
	case len(args) == 2 && args[0].kind == opX && args[1].kind == opImm:
		ri(args[0].x, args[1].imm)
	case len(args) == 2 && args[0].kind == opX && args[1].kind == opMem:
		ld(args[0].x, args[1].mem)
	case len(args) == 3 && args[0].kind == opX && args[1].kind == opX && args[2].kind == opImm:
		ri3(args[0].x, args[1].x, args[2].imm)
	case len(args) == 3 && args[0].kind == opX && args[1].kind == opX && args[2].kind == opMem:
		ld3(args[0].x, args[1].x, args[2].mem)
	default:
		return fmt.Errorf("bad shift operand shape")
	}
	return nil
}
