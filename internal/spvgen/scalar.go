package spvgen

import (
	"strings"

	"gcnrecomp/internal/gcn"
)

// emitFunc lowers one instruction. Failures go through gen.fail.
type emitFunc func(g *gen, in *gcn.Instruction)

var emitters = map[gcn.InstructionType]emitFunc{}

func register(f emitFunc, types ...gcn.InstructionType) {
	for _, t := range types {
		emitters[t] = f
	}
}

func nop(*gen, *gcn.Instruction) {}

// binary builds "op %uint a b".
func binary(op string) func(g *gen, a, b string) string {
	return func(g *gen, a, b string) string { return g.val("%uint", op, a, b) }
}

func not(g *gen, a string) string { return g.val("%uint", "OpNot", a) }

var bitwise = map[string]func(g *gen, a, b string) string{
	"and":   binary("OpBitwiseAnd"),
	"or":    binary("OpBitwiseOr"),
	"xor":   binary("OpBitwiseXor"),
	"andn2": func(g *gen, a, b string) string { return g.val("%uint", "OpBitwiseAnd", a, not(g, b)) },
	"orn2":  func(g *gen, a, b string) string { return g.val("%uint", "OpBitwiseOr", a, not(g, b)) },
	"nand":  func(g *gen, a, b string) string { return not(g, g.val("%uint", "OpBitwiseAnd", a, b)) },
	"nor":   func(g *gen, a, b string) string { return not(g, g.val("%uint", "OpBitwiseOr", a, b)) },
	"xnor":  func(g *gen, a, b string) string { return not(g, g.val("%uint", "OpBitwiseXor", a, b)) },
}

// scalarOp lowers a 32-bit SOP2 whose SCC is "result != 0" when setSCC.
func scalarOp(f func(g *gen, a, b string) string, setSCC bool) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		r := f(g, g.read(in.Src[0], 0), g.read(in.Src[1], 0))
		g.write(in.Dst, 0, r)
		if setSCC {
			g.setSCC(g.nonzero(r))
		}
	}
}

// scalarOp64 applies a bitwise op to both halves.
func scalarOp64(f func(g *gen, a, b string) string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		lo := f(g, g.read(in.Src[0], 0), g.read(in.Src[1], 0))
		hi := f(g, g.read(in.Src[0], 1), g.read(in.Src[1], 1))
		g.write(in.Dst, 0, lo)
		g.write(in.Dst, 1, hi)
		g.setSCC(g.nonzero(g.val("%uint", "OpBitwiseOr", lo, hi)))
	}
}

// saveexec stores EXEC to the destination, then EXEC = f(src, EXEC).
func saveexec(f func(g *gen, a, b string) string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		lo, hi := g.loadReg("exec_lo"), g.loadReg("exec_hi")
		nlo := f(g, g.read(in.Src[0], 0), lo)
		nhi := f(g, g.read(in.Src[0], 1), hi)
		g.write(in.Dst, 0, lo)
		g.write(in.Dst, 1, hi)
		g.storeReg("exec_lo", nlo)
		g.storeReg("exec_hi", nhi)
		g.setSCC(g.nonzero(g.val("%uint", "OpBitwiseOr", nlo, nhi)))
	}
}

func mask31(g *gen, v string) string { return g.val("%uint", "OpBitwiseAnd", v, g.u(31)) }

// simm16 returns the SOPK immediate, sign- or zero-extended.
func simm16(g *gen, in *gcn.Instruction, signed bool) string {
	if signed {
		return g.u(uint32(int32(in.SImm)))
	}
	return g.u(uint32(uint16(in.SImm)))
}

// addOverflow is the signed overflow bit of r = a + b.
func addOverflow(g *gen, a, b, r string) string {
	x := g.val("%uint", "OpBitwiseAnd",
		g.val("%uint", "OpBitwiseXor", a, r),
		g.val("%uint", "OpBitwiseXor", b, r))
	return g.nonzero(g.val("%uint", "OpShiftRightLogical", x, g.u(31)))
}

// subOverflow is the signed overflow bit of r = a - b.
func subOverflow(g *gen, a, b, r string) string {
	x := g.val("%uint", "OpBitwiseAnd",
		g.val("%uint", "OpBitwiseXor", a, b),
		g.val("%uint", "OpBitwiseXor", a, r))
	return g.nonzero(g.val("%uint", "OpShiftRightLogical", x, g.u(31)))
}

// leadingZeros is the s_flbit/v_ffbh result: the bit index from the MSB
// of the first set bit, or -1 when v is zero.
func leadingZeros(g *gen, v string) string {
	msb := g.bitcast("%uint", g.ext("%int", "FindUMsb", v))
	n := g.val("%uint", "OpISub", g.u(31), msb)
	return g.val("%uint", "OpSelect", g.isZero(v), g.u(0xffffffff), n)
}

var intCompare = map[string][2]string{ // op -> signed, unsigned
	"eq": {"OpIEqual", "OpIEqual"},
	"lg": {"OpINotEqual", "OpINotEqual"},
	"ne": {"OpINotEqual", "OpINotEqual"},
	"gt": {"OpSGreaterThan", "OpUGreaterThan"},
	"ge": {"OpSGreaterThanEqual", "OpUGreaterThanEqual"},
	"lt": {"OpSLessThan", "OpULessThan"},
	"le": {"OpSLessThanEqual", "OpULessThanEqual"},
}

func intCmp(g *gen, op, ty, a, b string) (string, bool) {
	switch op {
	case "f":
		return "%false", true
	case "t":
		return "%true", true
	}
	ops, ok := intCompare[op]
	if !ok {
		return "", false
	}
	name := ops[1]
	if ty == "i32" {
		name = ops[0]
	}
	return g.val("%bool", name, a, b), true
}

// compareName splits "s_cmp_lt_i32" into ("lt", "i32").
func compareName(t gcn.InstructionType, prefix string) (op, ty string, ok bool) {
	rest, found := strings.CutPrefix(t.String(), prefix)
	if !found {
		return "", "", false
	}
	i := strings.LastIndexByte(rest, '_')
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

func init() {
	register(nop, gcn.SNop, gcn.SWaitcnt, gcn.SSetprio, gcn.SSleep, gcn.SIcacheInv,
		gcn.SDcacheInv, gcn.SDcacheInvVol, gcn.STtracedata, gcn.SInstPrefetch, gcn.SCodeEnd,
		gcn.SSendmsg, gcn.SIncperflevel, gcn.SDecperflevel, gcn.VNop,
		gcn.BufferWbinvl1, gcn.BufferWbinvl1Vol, gcn.BufferGl0Inv, gcn.BufferGl1Inv)

	// Branches are lowered by the block walker.
	register(nop, gcn.SBranch, gcn.SCbranchScc0, gcn.SCbranchScc1, gcn.SCbranchVccz,
		gcn.SCbranchVccnz, gcn.SCbranchExecz, gcn.SCbranchExecnz, gcn.SEndpgm)

	for name, f := range bitwise {
		register(scalarOp(f, true), typeByName("s_"+name+"_b32"))
		register(scalarOp64(f), typeByName("s_"+name+"_b64"))
		if t := typeByName("s_" + name + "_saveexec_b64"); t != gcn.TypeUnknown {
			register(saveexec(f), t)
		}
	}

	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		r := g.val("%uint", "OpIAdd", a, b)
		g.write(in.Dst, 0, r)
		g.setSCC(g.val("%bool", "OpULessThan", r, a))
	}, gcn.SAddU32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		g.write(in.Dst, 0, g.val("%uint", "OpISub", a, b))
		g.setSCC(g.val("%bool", "OpULessThan", a, b))
	}, gcn.SSubU32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		r := g.val("%uint", "OpIAdd", a, b)
		g.write(in.Dst, 0, r)
		g.setSCC(addOverflow(g, a, b, r))
	}, gcn.SAddI32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		r := g.val("%uint", "OpISub", a, b)
		g.write(in.Dst, 0, r)
		g.setSCC(subOverflow(g, a, b, r))
	}, gcn.SSubI32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		t := g.val("%uint", "OpIAdd", a, b)
		r := g.val("%uint", "OpIAdd", t, g.loadReg("scc"))
		g.write(in.Dst, 0, r)
		g.setSCC(g.val("%bool", "OpLogicalOr",
			g.val("%bool", "OpULessThan", t, a),
			g.val("%bool", "OpULessThan", r, t)))
	}, gcn.SAddcU32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		borrow := g.loadReg("scc")
		t := g.val("%uint", "OpISub", a, b)
		g.write(in.Dst, 0, g.val("%uint", "OpISub", t, borrow))
		g.setSCC(g.val("%bool", "OpLogicalOr",
			g.val("%bool", "OpULessThan", a, b),
			g.val("%bool", "OpULessThan", t, borrow)))
	}, gcn.SSubbU32)

	minmax := func(fn, cmp string) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
			g.write(in.Dst, 0, g.ext("%uint", fn, a, b))
			g.setSCC(g.val("%bool", cmp, a, b))
		}
	}
	register(minmax("SMin", "OpSLessThan"), gcn.SMinI32)
	register(minmax("UMin", "OpULessThan"), gcn.SMinU32)
	register(minmax("SMax", "OpSGreaterThan"), gcn.SMaxI32)
	register(minmax("UMax", "OpUGreaterThan"), gcn.SMaxU32)

	register(scalarOp(func(g *gen, a, b string) string {
		return g.val("%uint", "OpShiftLeftLogical", a, mask31(g, b))
	}, true), gcn.SLshlB32)
	register(scalarOp(func(g *gen, a, b string) string {
		return g.val("%uint", "OpShiftRightLogical", a, mask31(g, b))
	}, true), gcn.SLshrB32)
	register(scalarOp(func(g *gen, a, b string) string {
		return g.val("%uint", "OpShiftRightArithmetic", a, mask31(g, b))
	}, true), gcn.SAshrI32)
	register(scalarOp(binary("OpIMul"), false), gcn.SMulI32)
	register(scalarOp(func(g *gen, a, b string) string {
		ones := g.val("%uint", "OpISub", g.val("%uint", "OpShiftLeftLogical", g.u(1), mask31(g, a)), g.u(1))
		return g.val("%uint", "OpShiftLeftLogical", ones, mask31(g, b))
	}, false), gcn.SBfmB32)
	bfe := func(op string) func(g *gen, a, b string) string {
		return func(g *gen, a, b string) string {
			width := g.val("%uint", "OpBitwiseAnd", g.val("%uint", "OpShiftRightLogical", b, g.u(16)), g.u(0x7f))
			return g.val("%uint", op, a, mask31(g, b), width)
		}
	}
	register(scalarOp(bfe("OpBitFieldUExtract"), true), gcn.SBfeU32)
	register(scalarOp(bfe("OpBitFieldSExtract"), true), gcn.SBfeI32)
	register(scalarOp(func(g *gen, a, b string) string {
		return g.ext("%uint", "SAbs", g.val("%uint", "OpISub", a, b))
	}, true), gcn.SAbsdiffI32)
	register(scalarOp(func(g *gen, a, b string) string {
		return g.val("%uint", "OpBitFieldInsert", a, b, g.u(16), g.u(16))
	}, false), gcn.SPackLlB32B16)
	for i, t := range []gcn.InstructionType{gcn.SLshl1AddU32, gcn.SLshl2AddU32, gcn.SLshl3AddU32, gcn.SLshl4AddU32} {
		shift := uint32(i + 1)
		register(func(g *gen, in *gcn.Instruction) {
			a := g.val("%uint", "OpShiftLeftLogical", g.read(in.Src[0], 0), g.u(shift))
			r := g.val("%uint", "OpIAdd", a, g.read(in.Src[1], 0))
			g.write(in.Dst, 0, r)
			g.setSCC(g.val("%bool", "OpULessThan", r, a))
		}, t)
	}

	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.val("%uint", "OpSelect", g.scc(), g.read(in.Src[0], 0), g.read(in.Src[1], 0)))
	}, gcn.SCselectB32)
	register(func(g *gen, in *gcn.Instruction) {
		c := g.scc()
		for k := 0; k < 2; k++ {
			g.write(in.Dst, k, g.val("%uint", "OpSelect", c, g.read(in.Src[0], k), g.read(in.Src[1], k)))
		}
	}, gcn.SCselectB64)

	register(func(g *gen, in *gcn.Instruction) { g.write(in.Dst, 0, g.read(in.Src[0], 0)) }, gcn.SMovB32)
	register(func(g *gen, in *gcn.Instruction) {
		lo, hi := g.read(in.Src[0], 0), g.read(in.Src[0], 1)
		g.write(in.Dst, 0, lo)
		g.write(in.Dst, 1, hi)
	}, gcn.SMovB64)
	register(func(g *gen, in *gcn.Instruction) {
		old, _ := regName(in.Dst, 0)
		g.write(in.Dst, 0, g.val("%uint", "OpSelect", g.scc(), g.read(in.Src[0], 0), g.loadReg(old)))
	}, gcn.SCmovB32)
	register(func(g *gen, in *gcn.Instruction) {
		c := g.scc()
		for k := 0; k < 2; k++ {
			old, _ := regName(in.Dst, k)
			g.write(in.Dst, k, g.val("%uint", "OpSelect", c, g.read(in.Src[0], k), g.loadReg(old)))
		}
	}, gcn.SCmovB64)
	register(func(g *gen, in *gcn.Instruction) {
		r := not(g, g.read(in.Src[0], 0))
		g.write(in.Dst, 0, r)
		g.setSCC(g.nonzero(r))
	}, gcn.SNotB32)
	register(func(g *gen, in *gcn.Instruction) {
		lo, hi := not(g, g.read(in.Src[0], 0)), not(g, g.read(in.Src[0], 1))
		g.write(in.Dst, 0, lo)
		g.write(in.Dst, 1, hi)
		g.setSCC(g.nonzero(g.val("%uint", "OpBitwiseOr", lo, hi)))
	}, gcn.SNotB64)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.val("%uint", "OpBitReverse", g.read(in.Src[0], 0)))
	}, gcn.SBrevB32)
	register(func(g *gen, in *gcn.Instruction) {
		r := g.bitcast("%uint", g.val("%int", "OpBitCount", g.read(in.Src[0], 0)))
		g.write(in.Dst, 0, r)
		g.setSCC(g.nonzero(r))
	}, gcn.SBcnt1I32B32)
	register(func(g *gen, in *gcn.Instruction) {
		lo := g.bitcast("%uint", g.val("%int", "OpBitCount", g.read(in.Src[0], 0)))
		hi := g.bitcast("%uint", g.val("%int", "OpBitCount", g.read(in.Src[0], 1)))
		r := g.val("%uint", "OpIAdd", lo, hi)
		g.write(in.Dst, 0, r)
		g.setSCC(g.nonzero(r))
	}, gcn.SBcnt1I32B64)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.bitcast("%uint", g.ext("%int", "FindILsb", g.read(in.Src[0], 0))))
	}, gcn.SFf1I32B32)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, leadingZeros(g, g.read(in.Src[0], 0)))
	}, gcn.SFlbitI32B32)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.val("%uint", "OpBitFieldSExtract", g.read(in.Src[0], 0), g.u(0), g.u(8)))
	}, gcn.SSextI32I8)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.val("%uint", "OpBitFieldSExtract", g.read(in.Src[0], 0), g.u(0), g.u(16)))
	}, gcn.SSextI32I16)
	bitset := func(set bool) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			name, _ := regName(in.Dst, 0)
			bit := g.val("%uint", "OpShiftLeftLogical", g.u(1), mask31(g, g.read(in.Src[0], 0)))
			old := g.loadReg(name)
			if set {
				g.write(in.Dst, 0, g.val("%uint", "OpBitwiseOr", old, bit))
			} else {
				g.write(in.Dst, 0, g.val("%uint", "OpBitwiseAnd", old, not(g, bit)))
			}
		}
	}
	register(bitset(false), gcn.SBitset0B32)
	register(bitset(true), gcn.SBitset1B32)
	register(func(g *gen, in *gcn.Instruction) {
		r := g.ext("%uint", "SAbs", g.read(in.Src[0], 0))
		g.write(in.Dst, 0, r)
		g.setSCC(g.nonzero(r))
	}, gcn.SAbsI32)
	register(func(g *gen, in *gcn.Instruction) {
		g.write(in.Dst, 0, g.u(in.Next()))
		g.write(in.Dst, 1, g.u(0))
	}, gcn.SGetpcB64)
	register(func(g *gen, in *gcn.Instruction) {
		if !g.fetch {
			g.fail(ErrUnsupported)
			return
		}
		// The fetch program already ran in the prologue.
		g.write(in.Dst, 0, g.u(in.Next()))
		g.write(in.Dst, 1, g.u(0))
	}, gcn.SSwappcB64)
	register(func(g *gen, in *gcn.Instruction) {
		if g.model == "GLCompute" {
			g.emit("OpControlBarrier %s %s %s", g.u(2), g.u(2), g.u(0x108))
		}
	}, gcn.SBarrier)

	// SOPK
	register(func(g *gen, in *gcn.Instruction) { g.write(in.Dst, 0, simm16(g, in, true)) }, gcn.SMovkI32)
	register(func(g *gen, in *gcn.Instruction) {
		old, _ := regName(in.Dst, 0)
		g.write(in.Dst, 0, g.val("%uint", "OpSelect", g.scc(), simm16(g, in, true), g.loadReg(old)))
	}, gcn.SCmovkI32)
	register(func(g *gen, in *gcn.Instruction) {
		name, _ := regName(in.Dst, 0)
		a, b := g.loadReg(name), simm16(g, in, true)
		r := g.val("%uint", "OpIAdd", a, b)
		g.write(in.Dst, 0, r)
		g.setSCC(addOverflow(g, a, b, r))
	}, gcn.SAddkI32)
	register(func(g *gen, in *gcn.Instruction) {
		name, _ := regName(in.Dst, 0)
		g.write(in.Dst, 0, g.val("%uint", "OpIMul", g.loadReg(name), simm16(g, in, true)))
	}, gcn.SMulkI32)

	for _, t := range gcn.Types() {
		if op, ty, ok := compareName(t, "s_cmpk_"); ok {
			op, signed := op, ty == "i32"
			register(func(g *gen, in *gcn.Instruction) {
				name, _ := regName(in.Dst, 0)
				c, _ := intCmp(g, op, ty, g.loadReg(name), simm16(g, in, signed))
				g.setSCC(c)
			}, t)
			continue
		}
		if op, ty, ok := compareName(t, "s_cmp_"); ok {
			op := op
			if ty == "u64" {
				register(func(g *gen, in *gcn.Instruction) {
					lo, _ := intCmp(g, "eq", "u32", g.read(in.Src[0], 0), g.read(in.Src[1], 0))
					hi, _ := intCmp(g, "eq", "u32", g.read(in.Src[0], 1), g.read(in.Src[1], 1))
					eq := g.val("%bool", "OpLogicalAnd", lo, hi)
					if op == "lg" {
						eq = g.val("%bool", "OpLogicalNot", eq)
					}
					g.setSCC(eq)
				}, t)
				continue
			}
			if _, known := intCompare[op]; !known {
				continue
			}
			register(func(g *gen, in *gcn.Instruction) {
				c, _ := intCmp(g, op, ty, g.read(in.Src[0], 0), g.read(in.Src[1], 0))
				g.setSCC(c)
			}, t)
		}
	}
	bitcmp := func(want uint32, wide bool) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			a, bit := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
			if wide {
				hi := g.val("%bool", "OpUGreaterThanEqual", g.val("%uint", "OpBitwiseAnd", bit, g.u(63)), g.u(32))
				a = g.val("%uint", "OpSelect", hi, g.read(in.Src[0], 1), a)
			}
			v := g.val("%uint", "OpBitwiseAnd", g.val("%uint", "OpShiftRightLogical", a, mask31(g, bit)), g.u(1))
			g.setSCC(g.val("%bool", "OpIEqual", v, g.u(want)))
		}
	}
	register(bitcmp(0, false), gcn.SBitcmp0B32)
	register(bitcmp(1, false), gcn.SBitcmp1B32)
	register(bitcmp(0, true), gcn.SBitcmp0B64)
	register(bitcmp(1, true), gcn.SBitcmp1B64)
}

// typeByName looks an instruction up by its mnemonic; TypeUnknown when
// there is none.
func typeByName(name string) gcn.InstructionType {
	t, _ := gcn.LookupType(name)
	return t
}
