package spvgen

import (
	"fmt"

	"gcnrecomp/internal/gcn"
)

// regName names the k-th register an operand spans.
func regName(op gcn.Operand, k int) (string, bool) {
	switch op.Kind {
	case gcn.OperandSgpr:
		return fmt.Sprintf("s%d", op.RegisterID+k), true
	case gcn.OperandVgpr:
		return fmt.Sprintf("v%d", op.RegisterID+k), true
	case gcn.OperandVccLo:
		if k == 0 {
			return "vcc_lo", true
		}
		return "vcc_hi", true
	case gcn.OperandVccHi:
		return "vcc_hi", true
	case gcn.OperandExecLo:
		if k == 0 {
			return "exec_lo", true
		}
		return "exec_hi", true
	case gcn.OperandExecHi:
		return "exec_hi", true
	case gcn.OperandM0:
		return "m0", true
	}
	return "", false
}

// reg returns the Private variable backing a register. EXEC starts with
// this lane active.
func (g *gen) reg(name string) string {
	v := "%" + name
	if g.declared[v] {
		return v
	}
	init := g.u(0)
	if name == "exec_lo" {
		init = g.u(1)
	}
	g.declare(v, fmt.Sprintf("OpVariable %s Private %s", g.ptr("Private", "%uint"), init))
	g.name(v, name)
	return v
}

func (g *gen) loadReg(name string) string { return g.load("%uint", g.reg(name)) }

func (g *gen) storeReg(name, v string) { g.emit("OpStore %s %s", g.reg(name), v) }

// read returns the k-th dword of an operand as a uint. The high dword of a
// negative integer inline constant is its sign extension.
func (g *gen) read(op gcn.Operand, k int) string {
	switch {
	case op.Kind.IsConstant():
		if k == 0 {
			return g.u(op.Constant.Bits)
		}
		if op.Kind == gcn.OperandIntegerInlineConstant && op.Constant.I() < 0 {
			return g.u(0xffffffff)
		}
		return g.u(0)
	case op.Kind == gcn.OperandNull:
		return g.u(0)
	case op.Kind == gcn.OperandExecZ:
		return g.sel(g.isZero(g.loadReg("exec_lo")))
	}
	name, ok := regName(op, k)
	if !ok {
		g.fail(fmt.Errorf("%w: operand %s", ErrUnsupported, op))
		return g.u(0)
	}
	return g.loadReg(name)
}

// readF reads a float source and applies the abs and neg modifiers.
func (g *gen) readF(op gcn.Operand, k int) string {
	v := g.bitcast("%float", g.read(op, k))
	if op.Absolute {
		v = g.ext("%float", "FAbs", v)
	}
	if op.Negate {
		v = g.val("%float", "OpFNegate", v)
	}
	return v
}

// active is true while this lane is enabled in EXEC.
func (g *gen) active() string { return g.nonzero(g.loadReg("exec_lo")) }

// write stores v to the k-th dword of op. Vector registers keep their old
// value when the lane is inactive.
func (g *gen) write(op gcn.Operand, k int, v string) {
	if op.Kind == gcn.OperandNull {
		return
	}
	name, ok := regName(op, k)
	if !ok {
		g.fail(fmt.Errorf("%w: destination %s", ErrUnsupported, op))
		return
	}
	if op.Kind == gcn.OperandVgpr && g.predicate {
		old := g.loadReg(name)
		v = g.val("%uint", "OpSelect", g.active(), v, old)
	}
	g.storeReg(name, v)
}

// writeF applies the output modifier and clamp, then stores a float.
func (g *gen) writeF(op gcn.Operand, v string) {
	if m := op.Multiplier; m != 0 && m != 1 {
		v = g.val("%float", "OpFMul", v, g.f(m))
	}
	if op.Clamp {
		v = g.ext("%float", "FClamp", v, g.f(0), g.f(1))
	}
	g.write(op, 0, g.bitcast("%uint", v))
}

// writeMask stores a per-lane condition into a 64-bit lane mask. Inactive
// lanes contribute zero.
func (g *gen) writeMask(op gcn.Operand, cond string) {
	if g.predicate {
		cond = g.val("%bool", "OpLogicalAnd", cond, g.active())
	}
	g.write(op, 0, g.sel(cond))
	if op.Size > 1 || op.Kind == gcn.OperandVccLo || op.Kind == gcn.OperandExecLo {
		g.write(op, 1, g.u(0))
	}
}

// readMask reports whether this lane's bit is set in a lane mask operand.
func (g *gen) readMask(op gcn.Operand) string {
	return g.nonzero(g.val("%uint", "OpBitwiseAnd", g.read(op, 0), g.u(1)))
}

func (g *gen) scc() string { return g.nonzero(g.loadReg("scc")) }

func (g *gen) setSCC(cond string) { g.storeReg("scc", g.sel(cond)) }
