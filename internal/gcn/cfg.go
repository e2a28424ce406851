package gcn

import "sort"

// BasicBlock is a run of instructions with a single entry point.
type BasicBlock struct {
	ID      int
	Start   int // index into Code.Instructions (inclusive)
	End     int // index into Code.Instructions (exclusive)
	Succs   []Succ
	IsEntry bool
	IsTerm  bool // ends the program (s_endpgm, or s_setpc_b64 returning from a fetch program)
}

// Succ is a control-flow edge. Cond is "" for unconditional edges, "T" for
// a taken branch and "F" for the fallthrough.
type Succ struct {
	BlockID int
	Cond    string
}

// CFG is the control-flow graph of a decoded program.
type CFG struct {
	Code   *Code
	Blocks []BasicBlock
}

func endsBlock(in *Instruction) bool {
	return in.IsBranch() || in.Type == SEndpgm || in.Type == SSetpcB64
}

// BuildCFG partitions a program into basic blocks:
//  1. Leaders are index 0, branch targets and instructions after a
//     branch or terminator.
//  2. Instructions are partitioned into blocks by leaders.
//  3. Successor edges come from each block's last instruction.
func BuildCFG(code *Code) *CFG {
	insts := code.Instructions
	g := &CFG{Code: code}
	if len(insts) == 0 {
		return g
	}

	leaders := map[int]bool{0: true}
	for i := range insts {
		in := &insts[i]
		if !endsBlock(in) {
			continue
		}
		if i+1 < len(insts) {
			leaders[i+1] = true
		}
		if in.IsBranch() {
			if idx, ok := code.InstructionAt(in.BranchTarget()); ok {
				leaders[idx] = true
			}
		}
	}

	sorted := make([]int, 0, len(leaders))
	for idx := range leaders {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)

	g.Blocks = make([]BasicBlock, len(sorted))
	leaderToBlock := make(map[int]int, len(sorted))
	for i, start := range sorted {
		end := len(insts)
		if i+1 < len(sorted) {
			end = sorted[i+1]
		}
		g.Blocks[i] = BasicBlock{ID: i, Start: start, End: end, IsEntry: start == 0}
		leaderToBlock[start] = i
	}

	for i := range g.Blocks {
		blk := &g.Blocks[i]
		last := &insts[blk.End-1]
		next, hasNext := leaderToBlock[blk.End]
		switch {
		case last.Type == SEndpgm || last.Type == SSetpcB64:
			blk.IsTerm = true
		case last.IsBranch():
			target := -1
			if idx, ok := code.InstructionAt(last.BranchTarget()); ok {
				target = leaderToBlock[idx]
			}
			if last.IsConditionalBranch() {
				if target >= 0 {
					blk.Succs = append(blk.Succs, Succ{BlockID: target, Cond: "T"})
				}
				if hasNext {
					blk.Succs = append(blk.Succs, Succ{BlockID: next, Cond: "F"})
				}
			} else if target >= 0 {
				blk.Succs = append(blk.Succs, Succ{BlockID: target})
			} else {
				blk.IsTerm = true
			}
		case hasNext:
			blk.Succs = append(blk.Succs, Succ{BlockID: next})
		}
	}
	return g
}

// BlockOf returns the block containing instruction index idx.
func (g *CFG) BlockOf(idx int) int {
	i := sort.Search(len(g.Blocks), func(i int) bool { return g.Blocks[i].End > idx })
	if i < len(g.Blocks) && g.Blocks[i].Start <= idx {
		return i
	}
	return -1
}

// HasBackEdge reports whether any branch targets an earlier or the same
// block.
func (g *CFG) HasBackEdge() bool {
	for _, b := range g.Blocks {
		for _, s := range b.Succs {
			if s.BlockID <= b.ID {
				return true
			}
		}
	}
	return false
}
