package spvgen

import (
	"math"

	"gcnrecomp/internal/gcn"
)

// floatOp lowers a VALU op over float sources.
func floatOp(f func(g *gen, s []string) string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		s := make([]string, in.SrcNum)
		for i := range s {
			s[i] = g.readF(in.Src[i], 0)
		}
		g.writeF(in.Dst, f(g, s))
	}
}

// uintOp lowers a VALU op over uint sources.
func uintOp(f func(g *gen, s []string) string) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		s := make([]string, in.SrcNum)
		for i := range s {
			s[i] = g.read(in.Src[i], 0)
		}
		g.write(in.Dst, 0, f(g, s))
	}
}

func fbin(op string) func(g *gen, s []string) string {
	return func(g *gen, s []string) string { return g.val("%float", op, s[0], s[1]) }
}

func fext(fn string, n int) func(g *gen, s []string) string {
	return func(g *gen, s []string) string { return g.ext("%float", fn, s[:n]...) }
}

func ubin(op string) func(g *gen, s []string) string {
	return func(g *gen, s []string) string { return g.val("%uint", op, s[0], s[1]) }
}

func uext(fn string, n int) func(g *gen, s []string) string {
	return func(g *gen, s []string) string { return g.ext("%uint", fn, s[:n]...) }
}

// rev swaps the first two sources.
func rev(f func(g *gen, s []string) string) func(g *gen, s []string) string {
	return func(g *gen, s []string) string {
		return f(g, append([]string{s[1], s[0]}, s[2:]...))
	}
}

func shift(op string) func(g *gen, s []string) string {
	return func(g *gen, s []string) string { return g.val("%uint", op, s[0], mask31(g, s[1])) }
}

func mad(g *gen, s []string) string {
	return g.val("%float", "OpFAdd", g.val("%float", "OpFMul", s[0], s[1]), s[2])
}

func min3(g *gen, s []string, fn string, typ string) string {
	return g.ext(typ, fn, g.ext(typ, fn, s[0], s[1]), s[2])
}

func med3(g *gen, s []string, minFn, maxFn, typ string) string {
	lo := g.ext(typ, minFn, s[0], s[1])
	hi := g.ext(typ, maxFn, s[0], s[1])
	return g.ext(typ, maxFn, lo, g.ext(typ, minFn, hi, s[2]))
}

// sext24 sign-extends the low 24 bits.
func sext24(g *gen, v string) string {
	return g.val("%uint", "OpBitFieldSExtract", v, g.u(0), g.u(24))
}

func low24(g *gen, v string) string { return g.val("%uint", "OpBitwiseAnd", v, g.u(0xffffff)) }

// mulHi returns the high half of a 32x32 multiply.
func mulHi(g *gen, a, b string, signed bool) string {
	if signed {
		st := g.declare("%smul", "OpTypeStruct %int %int")
		r := g.val(st, "OpSMulExtended", g.bitcast("%int", a), g.bitcast("%int", b))
		return g.bitcast("%uint", g.val("%int", "OpCompositeExtract", r, "1"))
	}
	st := g.declare("%umul", "OpTypeStruct %uint %uint")
	r := g.val(st, "OpUMulExtended", a, b)
	return g.val("%uint", "OpCompositeExtract", r, "1")
}

var floatCompare = map[string]string{
	"lt": "OpFOrdLessThan", "eq": "OpFOrdEqual", "le": "OpFOrdLessThanEqual",
	"gt": "OpFOrdGreaterThan", "lg": "OpFOrdNotEqual", "ge": "OpFOrdGreaterThanEqual",
	"nge": "OpFUnordLessThan", "nlg": "OpFUnordEqual", "ngt": "OpFUnordLessThanEqual",
	"nle": "OpFUnordGreaterThan", "neq": "OpFUnordNotEqual", "nlt": "OpFUnordGreaterThanEqual",
}

func floatCmp(g *gen, op string, a, b string) (string, bool) {
	switch op {
	case "f":
		return "%false", true
	case "tru":
		return "%true", true
	case "o", "u":
		nan := g.val("%bool", "OpLogicalOr", g.val("%bool", "OpIsNan", a), g.val("%bool", "OpIsNan", b))
		if op == "o" {
			return g.val("%bool", "OpLogicalNot", nan), true
		}
		return nan, true
	}
	name, ok := floatCompare[op]
	if !ok {
		return "", false
	}
	return g.val("%bool", name, a, b), true
}

// vcompare lowers v_cmp and v_cmpx; the x form also writes EXEC.
func vcompare(cmp func(g *gen, in *gcn.Instruction) string, exec bool) emitFunc {
	return func(g *gen, in *gcn.Instruction) {
		c := cmp(g, in)
		g.writeMask(in.Dst, c)
		if exec {
			if g.predicate {
				c = g.val("%bool", "OpLogicalAnd", c, g.active())
			}
			g.storeReg("exec_lo", g.sel(c))
			g.storeReg("exec_hi", g.u(0))
		}
	}
}

func typedCompare(op, ty string) func(g *gen, in *gcn.Instruction) string {
	return func(g *gen, in *gcn.Instruction) string {
		if ty == "f32" {
			c, _ := floatCmp(g, op, g.readF(in.Src[0], 0), g.readF(in.Src[1], 0))
			return c
		}
		c, _ := intCmp(g, op, ty, g.read(in.Src[0], 0), g.read(in.Src[1], 0))
		return c
	}
}

// floatClass tests src0 against the class mask in src1. Mask bits, low
// to high: signaling NaN, quiet NaN, -inf, -normal, -denormal, -0, +0,
// +denormal, +normal, +inf.
func floatClass(g *gen, in *gcn.Instruction) string {
	bits := g.read(in.Src[0], 0)
	if in.Src[0].Absolute {
		bits = g.val("%uint", "OpBitwiseAnd", bits, g.u(0x7fffffff))
	}
	if in.Src[0].Negate {
		bits = g.val("%uint", "OpBitwiseXor", bits, g.u(0x80000000))
	}
	mask := g.read(in.Src[1], 0)
	neg := g.nonzero(g.val("%uint", "OpShiftRightLogical", bits, g.u(31)))
	mag := g.val("%uint", "OpBitwiseAnd", bits, g.u(0x7fffffff))
	exp := g.val("%uint", "OpShiftRightLogical", mag, g.u(23))
	zero := g.isZero(mag)
	denorm := g.val("%bool", "OpLogicalAnd", g.isZero(exp), g.val("%bool", "OpLogicalNot", zero))
	inf := g.val("%bool", "OpIEqual", mag, g.u(0x7f800000))
	nan := g.val("%bool", "OpUGreaterThan", mag, g.u(0x7f800000))

	pick := func(cond string, negBit, posBit uint32, otherwise string) string {
		v := g.val("%uint", "OpSelect", neg, g.u(negBit), g.u(posBit))
		return g.val("%uint", "OpSelect", cond, v, otherwise)
	}
	idx := g.val("%uint", "OpSelect", neg, g.u(3), g.u(8))
	idx = pick(denorm, 4, 7, idx)
	idx = pick(zero, 5, 6, idx)
	idx = pick(inf, 2, 9, idx)
	quiet := g.nonzero(g.val("%uint", "OpBitwiseAnd", mag, g.u(0x400000)))
	idx = g.val("%uint", "OpSelect", nan, g.val("%uint", "OpSelect", quiet, g.u(1), g.u(0)), idx)
	return g.nonzero(g.val("%uint", "OpBitwiseAnd", g.val("%uint", "OpShiftRightLogical", mask, idx), g.u(1)))
}

func carryOut(g *gen, in *gcn.Instruction, cond string) {
	if in.Dst2.Kind != gcn.OperandUnknown {
		g.writeMask(in.Dst2, cond)
	}
}

func init() {
	register(floatOp(fbin("OpFAdd")), gcn.VAddF32)
	register(floatOp(fbin("OpFSub")), gcn.VSubF32)
	register(floatOp(rev(fbin("OpFSub"))), gcn.VSubrevF32)
	register(floatOp(fbin("OpFMul")), gcn.VMulF32, gcn.VMulLegacyF32)
	register(floatOp(fext("FMin", 2)), gcn.VMinF32, gcn.VMinLegacyF32)
	register(floatOp(fext("FMax", 2)), gcn.VMaxF32, gcn.VMaxLegacyF32)
	register(floatOp(mad), gcn.VMadF32, gcn.VMadLegacyF32, gcn.VMadmkF32, gcn.VMadakF32)
	register(floatOp(fext("Fma", 3)), gcn.VFmaF32)
	register(floatOp(func(g *gen, s []string) string { return min3(g, s, "FMin", "%float") }), gcn.VMin3F32)
	register(floatOp(func(g *gen, s []string) string { return min3(g, s, "FMax", "%float") }), gcn.VMax3F32)
	register(floatOp(func(g *gen, s []string) string { return med3(g, s, "FMin", "FMax", "%float") }), gcn.VMed3F32)
	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.readF(in.Src[0], 0), g.readF(in.Src[1], 0)
		d := g.bitcast("%float", g.read(in.Dst, 0))
		if in.Type == gcn.VFmacF32 {
			g.writeF(in.Dst, g.ext("%float", "Fma", a, b, d))
			return
		}
		g.writeF(in.Dst, mad(g, []string{a, b, d}))
	}, gcn.VMacF32, gcn.VMacLegacyF32, gcn.VFmacF32)
	register(func(g *gen, in *gcn.Instruction) {
		a := g.readF(in.Src[0], 0)
		e := g.bitcast("%int", g.read(in.Src[1], 0))
		g.writeF(in.Dst, g.ext("%float", "Ldexp", a, e))
	}, gcn.VLdexpF32)

	unary := map[gcn.InstructionType]func(g *gen, s []string) string{
		gcn.VFractF32: fext("Fract", 1),
		gcn.VTruncF32: fext("Trunc", 1),
		gcn.VCeilF32:  fext("Ceil", 1),
		gcn.VRndneF32: fext("RoundEven", 1),
		gcn.VFloorF32: fext("Floor", 1),
		gcn.VExpF32:   fext("Exp2", 1),
		gcn.VLogF32:   fext("Log2", 1),
		gcn.VSqrtF32:  fext("Sqrt", 1),
		gcn.VRsqF32:   fext("InverseSqrt", 1),
		gcn.VRcpF32: func(g *gen, s []string) string {
			return g.val("%float", "OpFDiv", g.f(1), s[0])
		},
		gcn.VSinF32: func(g *gen, s []string) string {
			return g.ext("%float", "Sin", g.val("%float", "OpFMul", s[0], g.f(2*math.Pi)))
		},
		gcn.VCosF32: func(g *gen, s []string) string {
			return g.ext("%float", "Cos", g.val("%float", "OpFMul", s[0], g.f(2*math.Pi)))
		},
	}
	for t, f := range unary {
		register(floatOp(f), t)
	}
	register(floatOp(unary[gcn.VLogF32]), gcn.VLogClampF32)
	register(floatOp(unary[gcn.VRcpF32]), gcn.VRcpIflagF32, gcn.VRcpClampF32, gcn.VRcpLegacyF32)
	register(floatOp(unary[gcn.VRsqF32]), gcn.VRsqClampF32, gcn.VRsqLegacyF32)

	register(uintOp(func(g *gen, s []string) string { return s[0] }),
		gcn.VMovB32, gcn.VReadfirstlaneB32, gcn.VReadlaneB32, gcn.VWritelaneB32)
	register(uintOp(ubin("OpBitwiseAnd")), gcn.VAndB32)
	register(uintOp(ubin("OpBitwiseOr")), gcn.VOrB32)
	register(uintOp(ubin("OpBitwiseXor")), gcn.VXorB32)
	register(uintOp(func(g *gen, s []string) string { return not(g, g.val("%uint", "OpBitwiseXor", s[0], s[1])) }), gcn.VXnorB32)
	register(uintOp(shift("OpShiftLeftLogical")), gcn.VLshlB32)
	register(uintOp(shift("OpShiftRightLogical")), gcn.VLshrB32)
	register(uintOp(shift("OpShiftRightArithmetic")), gcn.VAshrI32)
	register(uintOp(rev(shift("OpShiftLeftLogical"))), gcn.VLshlrevB32)
	register(uintOp(rev(shift("OpShiftRightLogical"))), gcn.VLshrrevB32)
	register(uintOp(rev(shift("OpShiftRightArithmetic"))), gcn.VAshrrevI32)
	register(uintOp(func(g *gen, s []string) string { return not(g, s[0]) }), gcn.VNotB32)
	register(uintOp(func(g *gen, s []string) string { return g.val("%uint", "OpBitReverse", s[0]) }), gcn.VBfrevB32)
	register(uintOp(func(g *gen, s []string) string {
		n := g.bitcast("%uint", g.val("%int", "OpBitCount", s[0]))
		return g.val("%uint", "OpIAdd", n, s[1])
	}), gcn.VBcntU32B32)
	register(uintOp(func(g *gen, s []string) string { return leadingZeros(g, s[0]) }), gcn.VFfbhU32)
	register(uintOp(func(g *gen, s []string) string {
		return g.bitcast("%uint", g.ext("%int", "FindILsb", s[0]))
	}), gcn.VFfblB32)
	register(uintOp(func(g *gen, s []string) string {
		msb := g.bitcast("%uint", g.ext("%int", "FindSMsb", g.bitcast("%int", s[0])))
		n := g.val("%uint", "OpISub", g.u(31), msb)
		none := g.val("%bool", "OpIEqual", msb, g.u(0xffffffff))
		return g.val("%uint", "OpSelect", none, g.u(0xffffffff), n)
	}), gcn.VFfbhI32)
	register(uintOp(func(g *gen, s []string) string {
		ones := g.val("%uint", "OpISub", g.val("%uint", "OpShiftLeftLogical", g.u(1), mask31(g, s[0])), g.u(1))
		return g.val("%uint", "OpShiftLeftLogical", ones, mask31(g, s[1]))
	}), gcn.VBfmB32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitFieldUExtract", s[0], mask31(g, s[1]), mask31(g, s[2]))
	}), gcn.VBfeU32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitFieldSExtract", s[0], mask31(g, s[1]), mask31(g, s[2]))
	}), gcn.VBfeI32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitwiseOr",
			g.val("%uint", "OpBitwiseAnd", s[0], s[1]),
			g.val("%uint", "OpBitwiseAnd", not(g, s[0]), s[2]))
	}), gcn.VBfiB32)
	register(uintOp(func(g *gen, s []string) string {
		n := mask31(g, s[2])
		lo := g.val("%uint", "OpShiftRightLogical", s[1], n)
		hi := g.val("%uint", "OpShiftLeftLogical", s[0], g.val("%uint", "OpISub", g.u(32), n))
		return g.val("%uint", "OpSelect", g.isZero(n), s[1], g.val("%uint", "OpBitwiseOr", lo, hi))
	}), gcn.VAlignbitB32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIAdd", g.val("%uint", "OpShiftLeftLogical", s[0], mask31(g, s[1])), s[2])
	}), gcn.VLshlAddU32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIAdd", g.val("%uint", "OpIAdd", s[0], s[1]), s[2])
	}), gcn.VAdd3U32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitwiseOr", g.val("%uint", "OpShiftLeftLogical", s[0], mask31(g, s[1])), s[2])
	}), gcn.VLshlOrB32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitwiseOr", g.val("%uint", "OpBitwiseAnd", s[0], s[1]), s[2])
	}), gcn.VAndOrB32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitwiseOr", g.val("%uint", "OpBitwiseOr", s[0], s[1]), s[2])
	}), gcn.VOr3B32)
	register(uintOp(func(g *gen, s []string) string { return min3(g, s, "SMin", "%uint") }), gcn.VMin3I32)
	register(uintOp(func(g *gen, s []string) string { return min3(g, s, "UMin", "%uint") }), gcn.VMin3U32)
	register(uintOp(func(g *gen, s []string) string { return min3(g, s, "SMax", "%uint") }), gcn.VMax3I32)
	register(uintOp(func(g *gen, s []string) string { return min3(g, s, "UMax", "%uint") }), gcn.VMax3U32)
	register(uintOp(func(g *gen, s []string) string { return med3(g, s, "SMin", "SMax", "%uint") }), gcn.VMed3I32)
	register(uintOp(func(g *gen, s []string) string { return med3(g, s, "UMin", "UMax", "%uint") }), gcn.VMed3U32)
	register(uintOp(uext("SMin", 2)), gcn.VMinI32)
	register(uintOp(uext("UMin", 2)), gcn.VMinU32)
	register(uintOp(uext("SMax", 2)), gcn.VMaxI32)
	register(uintOp(uext("UMax", 2)), gcn.VMaxU32)
	register(uintOp(ubin("OpIMul")), gcn.VMulLoU32, gcn.VMulLoI32)
	register(uintOp(func(g *gen, s []string) string { return mulHi(g, s[0], s[1], false) }), gcn.VMulHiU32)
	register(uintOp(func(g *gen, s []string) string { return mulHi(g, s[0], s[1], true) }), gcn.VMulHiI32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIMul", low24(g, s[0]), low24(g, s[1]))
	}), gcn.VMulU32U24)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIMul", sext24(g, s[0]), sext24(g, s[1]))
	}), gcn.VMulI32I24)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIAdd", g.val("%uint", "OpIMul", low24(g, s[0]), low24(g, s[1])), s[2])
	}), gcn.VMadU32U24)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpIAdd", g.val("%uint", "OpIMul", sext24(g, s[0]), sext24(g, s[1])), s[2])
	}), gcn.VMadI32I24)
	register(uintOp(ubin("OpIAdd")), gcn.VAddNcU32)
	register(uintOp(ubin("OpISub")), gcn.VSubNcU32)
	register(uintOp(rev(ubin("OpISub"))), gcn.VSubrevNcU32)

	addsub := func(sub, reverse, carryIn bool) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
			if reverse {
				a, b = b, a
			}
			var cin string
			if carryIn {
				cin = g.sel(g.readMask(in.Src[2]))
			}
			if !sub {
				t := g.val("%uint", "OpIAdd", a, b)
				r := t
				carry := g.val("%bool", "OpULessThan", t, a)
				if carryIn {
					r = g.val("%uint", "OpIAdd", t, cin)
					carry = g.val("%bool", "OpLogicalOr", carry, g.val("%bool", "OpULessThan", r, t))
				}
				g.write(in.Dst, 0, r)
				carryOut(g, in, carry)
				return
			}
			t := g.val("%uint", "OpISub", a, b)
			r := t
			borrow := g.val("%bool", "OpULessThan", a, b)
			if carryIn {
				r = g.val("%uint", "OpISub", t, cin)
				borrow = g.val("%bool", "OpLogicalOr", borrow, g.val("%bool", "OpULessThan", t, cin))
			}
			g.write(in.Dst, 0, r)
			carryOut(g, in, borrow)
		}
	}
	register(addsub(false, false, false), gcn.VAddI32)
	register(addsub(true, false, false), gcn.VSubI32)
	register(addsub(true, true, false), gcn.VSubrevI32)
	register(addsub(false, false, true), gcn.VAddcU32)
	register(addsub(true, false, true), gcn.VSubbU32)
	register(addsub(true, true, true), gcn.VSubbrevU32)

	register(func(g *gen, in *gcn.Instruction) {
		a, b := g.read(in.Src[0], 0), g.read(in.Src[1], 0)
		g.write(in.Dst, 0, g.val("%uint", "OpSelect", g.readMask(in.Src[2]), b, a))
	}, gcn.VCndmaskB32)

	// conversions
	conv := func(op, from, to string) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			var src string
			switch from {
			case "%float":
				src = g.readF(in.Src[0], 0)
			case "%int":
				src = g.bitcast("%int", g.read(in.Src[0], 0))
			default:
				src = g.read(in.Src[0], 0)
			}
			r := g.val(to, op, src)
			switch to {
			case "%float":
				g.writeF(in.Dst, r)
			case "%int":
				g.write(in.Dst, 0, g.bitcast("%uint", r))
			default:
				g.write(in.Dst, 0, r)
			}
		}
	}
	register(conv("OpConvertSToF", "%int", "%float"), gcn.VCvtF32I32)
	register(conv("OpConvertUToF", "%uint", "%float"), gcn.VCvtF32U32)
	register(conv("OpConvertFToU", "%float", "%uint"), gcn.VCvtU32F32)
	register(conv("OpConvertFToS", "%float", "%int"), gcn.VCvtI32F32)
	register(func(g *gen, in *gcn.Instruction) {
		v := g.ext("%float", "Floor", g.val("%float", "OpFAdd", g.readF(in.Src[0], 0), g.f(0.5)))
		g.write(in.Dst, 0, g.bitcast("%uint", g.val("%int", "OpConvertFToS", v)))
	}, gcn.VCvtRpiI32F32)
	register(func(g *gen, in *gcn.Instruction) {
		v := g.ext("%float", "Floor", g.readF(in.Src[0], 0))
		g.write(in.Dst, 0, g.bitcast("%uint", g.val("%int", "OpConvertFToS", v)))
	}, gcn.VCvtFlrI32F32)
	for i, t := range []gcn.InstructionType{gcn.VCvtF32Ubyte0, gcn.VCvtF32Ubyte1, gcn.VCvtF32Ubyte2, gcn.VCvtF32Ubyte3} {
		off := uint32(8 * i)
		register(func(g *gen, in *gcn.Instruction) {
			b := g.val("%uint", "OpBitFieldUExtract", g.read(in.Src[0], 0), g.u(off), g.u(8))
			g.writeF(in.Dst, g.val("%float", "OpConvertUToF", b))
		}, t)
	}
	register(func(g *gen, in *gcn.Instruction) {
		v := g.val("%v2float", "OpCompositeConstruct", g.readF(in.Src[0], 0), g.f(0))
		g.write(in.Dst, 0, g.ext("%uint", "PackHalf2x16", v))
	}, gcn.VCvtF16F32)
	register(func(g *gen, in *gcn.Instruction) {
		v := g.ext("%v2float", "UnpackHalf2x16", g.read(in.Src[0], 0))
		g.writeF(in.Dst, g.val("%float", "OpCompositeExtract", v, "0"))
	}, gcn.VCvtF32F16)
	pack := func(fn string) emitFunc {
		return func(g *gen, in *gcn.Instruction) {
			v := g.val("%v2float", "OpCompositeConstruct", g.readF(in.Src[0], 0), g.readF(in.Src[1], 0))
			g.write(in.Dst, 0, g.ext("%uint", fn, v))
		}
	}
	register(pack("PackHalf2x16"), gcn.VCvtPkrtzF16F32)
	register(pack("PackSnorm2x16"), gcn.VCvtPknormI16F32)
	register(pack("PackUnorm2x16"), gcn.VCvtPknormU16F32)
	register(uintOp(func(g *gen, s []string) string {
		return g.val("%uint", "OpBitFieldInsert", s[0], s[1], g.u(16), g.u(16))
	}), gcn.VCvtPkU16U32, gcn.VCvtPkI16I32)

	for _, t := range gcn.Types() {
		if op, ty, ok := compareName(t, "v_cmpx_"); ok {
			if supportedCompare(op, ty) {
				register(vcompare(typedCompare(op, ty), true), t)
			}
			continue
		}
		if op, ty, ok := compareName(t, "v_cmp_"); ok && supportedCompare(op, ty) {
			register(vcompare(typedCompare(op, ty), false), t)
		}
	}
	register(vcompare(floatClass, false), gcn.VCmpClassF32)
	register(vcompare(floatClass, true), gcn.VCmpxClassF32)
}

func supportedCompare(op, ty string) bool {
	switch ty {
	case "f32":
		_, ok := floatCompare[op]
		return ok || op == "f" || op == "tru" || op == "o" || op == "u"
	case "i32", "u32":
		_, ok := intCompare[op]
		return ok || op == "f" || op == "t"
	}
	return false
}
