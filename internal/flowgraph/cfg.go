// Package flowgraph maps decoded programs onto lattice graphs for
// rendering: one FuncCFG per program and a call graph linking a vertex
// program to its fetch subroutine.
package flowgraph

import (
	"fmt"
	"sort"

	"github.com/zboralski/lattice"

	"gcnrecomp/internal/gcn"
)

// Program is a named decoded program.
type Program struct {
	Name string
	Code *gcn.Code
}

// FetchCallee is the call-site name used for s_swappc_b64 into the fetch
// subroutine.
const FetchCallee = "fetch"

// BuildCFG builds one lattice.FuncCFG per program.
func BuildCFG(progs []Program) *lattice.CFGGraph {
	cg := &lattice.CFGGraph{}
	for _, p := range progs {
		lcfg, _ := BuildFuncCFG(p.Name, p.Code)
		cg.Funcs = append(cg.Funcs, lcfg)
	}
	return cg
}

// BuildFuncCFG converts the basic-block graph of code. Returns the FuncCFG
// and the number of basic blocks (for filtering straight-line programs).
func BuildFuncCFG(name string, code *gcn.Code) (*lattice.FuncCFG, int) {
	gcfg := gcn.BuildCFG(code)
	lcfg := convertFuncCFG(name, gcfg)
	injectPrintfs(lcfg, gcfg)
	return lcfg, len(gcfg.Blocks)
}

// callee names the call-like effect of in, or "".
func callee(in *gcn.Instruction) string {
	switch in.Type {
	case gcn.SSwappcB64:
		return FetchCallee
	case gcn.SSetpcB64:
		return "return"
	case gcn.Exp:
		return "exp " + gcn.TargetName(in.Target)
	}
	return ""
}

func convertFuncCFG(name string, gcfg *gcn.CFG) *lattice.FuncCFG {
	insts := gcfg.Code.Instructions
	lcfg := &lattice.FuncCFG{Name: name}
	for _, gb := range gcfg.Blocks {
		lb := &lattice.BasicBlock{
			ID:    gb.ID,
			Start: gb.Start,
			End:   gb.End,
			Term:  gb.IsTerm,
		}
		for _, s := range gb.Succs {
			lb.Succs = append(lb.Succs, lattice.Successor{
				BlockID: s.BlockID,
				Cond:    s.Cond,
			})
		}
		for idx := gb.Start; idx < gb.End && idx < len(insts); idx++ {
			if c := callee(&insts[idx]); c != "" {
				lb.Calls = append(lb.Calls, lattice.CallSite{Offset: idx, Callee: c})
			}
		}
		lcfg.Blocks = append(lcfg.Blocks, lb)
	}
	return lcfg
}

// injectPrintfs adds the attached debug printfs as call sites, quoted the
// way string references are.
func injectPrintfs(lcfg *lattice.FuncCFG, gcfg *gcn.CFG) {
	code := gcfg.Code
	if len(code.DebugPrintfs) == 0 {
		return
	}
	for _, p := range code.DebugPrintfs {
		idx, ok := code.InstructionAt(p.PC)
		if !ok {
			continue
		}
		bi := gcfg.BlockOf(idx)
		if bi < 0 {
			continue
		}
		f := p.Format
		if len(f) > 50 {
			f = f[:47] + "..."
		}
		lcfg.Blocks[bi].Calls = append(lcfg.Blocks[bi].Calls, lattice.CallSite{
			Offset: idx,
			Callee: fmt.Sprintf("printf %q", f),
		})
	}
	for _, b := range lcfg.Blocks {
		sort.SliceStable(b.Calls, func(i, j int) bool {
			return b.Calls[i].Offset < b.Calls[j].Offset
		})
	}
}
