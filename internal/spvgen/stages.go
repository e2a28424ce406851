package spvgen

import (
	"fmt"
	"strings"

	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/spvasm"
	"gcnrecomp/internal/stage"
)

// VS translates a vertex program. The fetch program's attributes arrive as
// vertex inputs and are copied to their VGPRs before the first
// instruction.
func VS(code *gcn.Code, info *stage.VsInputInfo, opts Options) (string, error) {
	if info.Embedded {
		return EmbeddedVS(info.EmbeddedID, opts)
	}
	g := newGen(code, &info.Resources, opts)
	g.model = "Vertex"
	g.fetch = info.Fetch
	return g.run(func() {
		vi := g.global("%vertex_index", "Input", "%uint", "BuiltIn VertexIndex")
		g.storeReg("v0", g.load("%uint", vi))
		for i, a := range info.Attributes {
			v := g.global(fmt.Sprintf("%%attr%d", i), "Input", "%v4float", fmt.Sprintf("Location %d", i))
			vec := g.load("%v4float", v)
			for k := 0; k < a.RegCount && k < 4; k++ {
				c := g.val("%float", "OpCompositeExtract", vec, fmt.Sprint(k))
				g.storeReg(fmt.Sprintf("v%d", a.RegStart+k), g.bitcast("%uint", c))
			}
		}
	})
}

// psInputSizes is the VGPR count of each SPI_PS_INPUT_ADDR bit.
var psInputSizes = [...]int{2, 2, 2, 3, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1}

// PS translates a pixel program. Position and front-face VGPRs follow the
// barycentric inputs enabled in SPI_PS_INPUT_ADDR.
func PS(code *gcn.Code, info *stage.PsInputInfo, opts Options) (string, error) {
	if info.Embedded {
		return EmbeddedPS(info.EmbeddedID, opts)
	}
	g := newGen(code, &info.Resources, opts)
	g.model = "Fragment"
	g.kill = info.PixelKill
	g.addMode("OriginUpperLeft")
	g.flat = make([]bool, len(info.Interpolators))
	for i := range info.Interpolators {
		g.flat[i] = info.Interpolator(i).Flat()
	}
	return g.run(func() {
		vgpr := 0
		for bit := 0; bit < 8; bit++ {
			if info.InputAddr&(1<<bit) != 0 {
				vgpr += psInputSizes[bit]
			}
		}
		var coord string
		for c := 0; c < 4; c++ {
			if info.InputAddr&(stage.InputPosX<<c) == 0 {
				continue
			}
			if coord == "" {
				coord = g.load("%v4float", g.global("%frag_coord", "Input", "%v4float", "BuiltIn FragCoord"))
			}
			v := g.val("%float", "OpCompositeExtract", coord, fmt.Sprint(c))
			g.storeReg(fmt.Sprintf("v%d", vgpr), g.bitcast("%uint", v))
			vgpr++
		}
		if info.InputAddr&stage.InputFrontFace != 0 {
			ff := g.load("%bool", g.global("%front_facing", "Input", "%bool", "BuiltIn FrontFacing"))
			g.storeReg(fmt.Sprintf("v%d", vgpr), g.sel(ff))
		}
	})
}

// CS translates a compute program. Thread ids fill v0..v2 and the enabled
// workgroup ids follow the user SGPRs.
func CS(code *gcn.Code, info *stage.CsInputInfo, opts Options) (string, error) {
	g := newGen(code, &info.Resources, opts)
	g.model = "GLCompute"
	g.ldsSize = info.LdsSize
	n := info.ThreadsNum
	g.addMode(fmt.Sprintf("LocalSize %d %d %d", n[0], n[1], n[2]))
	return g.run(func() {
		if info.ThreadIDs > 0 {
			lid := g.load("%v3uint", g.global("%local_id", "Input", "%v3uint", "BuiltIn LocalInvocationId"))
			for k := 0; k < info.ThreadIDs && k < 3; k++ {
				g.storeReg(fmt.Sprintf("v%d", k), g.val("%uint", "OpCompositeExtract", lid, fmt.Sprint(k)))
			}
		}
		var wg string
		sgpr := info.UserSgprs
		for k, on := range info.GroupID {
			if !on {
				continue
			}
			if wg == "" {
				wg = g.load("%v3uint", g.global("%workgroup_id", "Input", "%v3uint", "BuiltIn WorkgroupId"))
			}
			g.storeReg(fmt.Sprintf("s%d", sgpr), g.val("%uint", "OpCompositeExtract", wg, fmt.Sprint(k)))
			sgpr++
		}
	})
}

// run emits the stage prologue, the descriptor copies and the program,
// then assembles the module text.
func (g *gen) run(prologue func()) (string, error) {
	g.u(0)
	g.ptr("Function", "%uint")
	g.name("%main", "main")
	prologue()
	g.inlineDescriptors()
	if g.code != nil && g.err == nil {
		g.program()
	}
	if g.err != nil {
		return "", g.err
	}
	return g.text(), nil
}

// program walks the basic blocks in order. Each block runs only while the
// skip target is at or before its first instruction, so a taken branch
// raises the target and the blocks in between fall through untouched.
func (g *gen) program() {
	code := g.code
	for i := range code.Instructions {
		in := &code.Instructions[i]
		if !in.IsBranch() {
			continue
		}
		target := in.BranchTarget()
		if _, ok := code.InstructionAt(target); !ok {
			g.err = &Error{PC: in.PC, Instruction: in.String(), Err: fmt.Errorf("%w: 0x%04x", ErrBadBranch, target)}
			return
		}
		if target <= in.PC {
			g.err = &Error{PC: in.PC, Instruction: in.String(), Err: fmt.Errorf("%w: 0x%04x", ErrBackwardBranch, target)}
			return
		}
	}

	cfg := gcn.BuildCFG(code)
	for _, b := range cfg.Blocks {
		start := code.Instructions[b.Start].PC
		run := g.val("%bool", "OpULessThanEqual", g.load("%uint", "%skip"), g.u(start))
		g.guard(run, func() {
			for i := b.Start; i < b.End && g.err == nil; i++ {
				g.instruction(&code.Instructions[i])
			}
		})
		if g.err != nil {
			return
		}
	}
}

func (g *gen) instruction(in *gcn.Instruction) {
	for _, p := range g.code.PrintfsAt(in.PC) {
		g.debugPrintf(p)
	}
	f, ok := emitters[in.Type]
	if !ok {
		g.fail(ErrUnsupported)
	} else {
		f(g, in)
	}
	switch {
	case in.IsBranch():
		g.branch(in)
	case in.Type == gcn.SEndpgm:
		g.endProgram()
	}
	if g.err != nil {
		if _, wrapped := g.err.(*Error); !wrapped {
			g.err = &Error{PC: in.PC, Instruction: in.String(), Err: g.err}
		}
	}
}

func (g *gen) branchCond(in *gcn.Instruction) string {
	switch in.Type {
	case gcn.SCbranchScc0:
		return g.isZero(g.loadReg("scc"))
	case gcn.SCbranchScc1:
		return g.nonzero(g.loadReg("scc"))
	case gcn.SCbranchVccz:
		return g.isZero(g.loadReg("vcc_lo"))
	case gcn.SCbranchVccnz:
		return g.nonzero(g.loadReg("vcc_lo"))
	case gcn.SCbranchExecz:
		return g.isZero(g.loadReg("exec_lo"))
	case gcn.SCbranchExecnz:
		return g.nonzero(g.loadReg("exec_lo"))
	}
	return ""
}

func (g *gen) branch(in *gcn.Instruction) {
	target := g.u(in.BranchTarget())
	cond := g.branchCond(in)
	if cond == "" {
		g.emit("OpStore %%skip %s", target)
		return
	}
	old := g.load("%uint", "%skip")
	g.emit("OpStore %%skip %s", g.val("%uint", "OpSelect", cond, target, old))
}

// endProgram skips every later block. A pixel whose lanes were all
// cleared from EXEC is discarded.
func (g *gen) endProgram() {
	g.emit("OpStore %%skip %s", g.u(skipDone))
	if !g.kill || !g.predicate {
		return
	}
	dead := g.isZero(g.loadReg("exec_lo"))
	then, merge := g.label(), g.label()
	g.emit("OpSelectionMerge %s None", merge)
	g.emit("OpBranchConditional %s %s %s", dead, then, merge)
	g.emit("%s = OpLabel", then)
	g.emit("OpKill")
	g.emit("%s = OpLabel", merge)
}

func (g *gen) debugPrintf(p gcn.DebugPrintf) {
	g.printf = true
	str := fmt.Sprintf("%%str%d", g.strCount)
	g.strCount++
	line(&g.strs, "%s = OpString %s", str, quote(p.Format))
	args := []string{"%printf", "DebugPrintf", str}
	for i, a := range p.Args {
		t := gcn.PrintfUint
		if i < len(p.Types) {
			t = p.Types[i]
		}
		switch t {
		case gcn.PrintfInt:
			args = append(args, g.bitcast("%int", g.read(a, 0)))
		case gcn.PrintfFloat:
			args = append(args, g.readF(a, 0))
		default:
			args = append(args, g.read(a, 0))
		}
	}
	g.val("%void", "OpExtInst", args...)
}

// text lays the sections out in module order.
func (g *gen) text() string {
	var sb strings.Builder
	for _, c := range g.caps {
		line(&sb, "OpCapability %s", c)
	}
	if g.printf {
		line(&sb, "OpExtension %s", quote("SPV_KHR_non_semantic_info"))
	}
	line(&sb, "%%glsl = OpExtInstImport %s", quote(spvasm.GLSLStd450))
	if g.printf {
		line(&sb, "%%printf = OpExtInstImport %s", quote(spvasm.DebugPrintf))
	}
	line(&sb, "OpMemoryModel Logical GLSL450")
	ep := fmt.Sprintf("OpEntryPoint %s %%main %s", g.model, quote("main"))
	if len(g.iface) > 0 {
		ep += " " + strings.Join(g.iface, " ")
	}
	line(&sb, "%s", ep)
	for _, m := range g.modes {
		line(&sb, "OpExecutionMode %%main %s", m)
	}
	sb.WriteString(g.strs.String())
	sb.WriteString(g.names.String())
	sb.WriteString(g.annots.String())
	sb.WriteString(g.decls.String())
	line(&sb, "%%main = OpFunction %%void None %%fn")
	line(&sb, "%%entry = OpLabel")
	line(&sb, "%%skip = OpVariable %%ptr_Function_uint Function %%u_0")
	sb.WriteString(g.body.String())
	line(&sb, "OpReturn")
	line(&sb, "OpFunctionEnd")
	return sb.String()
}
