package spvasm

import (
	"fmt"

	"github.com/gogpu/naga/spirv"
)

// Mode selects the optimization passes.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeSize
	ModePerformance
)

var modeNames = [...]string{"none", "size", "performance"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode accepts the names String returns.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("spvasm: unknown optimization mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// OptimizeError is returned when a pass cannot run on a module.
type OptimizeError struct {
	Pass        string
	Msg         string
	Disassembly string
}

func (e *OptimizeError) Error() string {
	return fmt.Sprintf("spvasm: optimizer pass %s: %s", e.Pass, e.Msg)
}

// Optimize returns a new module with the passes for mode applied. ModeSize
// strips names and source info then removes dead code and compacts ids;
// ModePerformance keeps names.
func Optimize(m *Module, mode Mode) (*Module, error) {
	out := &Module{Version: m.Version, Generator: m.Generator, Bound: m.Bound}
	out.Instructions = append([]spirv.Instruction(nil), m.Instructions...)
	if mode == ModeNone {
		return out, nil
	}
	if mode > ModePerformance {
		return nil, &OptimizeError{Pass: "setup", Msg: "unknown mode " + mode.String()}
	}
	for _, in := range out.Instructions {
		if _, ok := opByCode[in.Opcode]; !ok {
			return nil, &OptimizeError{
				Pass:        "setup",
				Msg:         fmt.Sprintf("unknown opcode %d", in.Opcode),
				Disassembly: Disassemble(m),
			}
		}
	}
	if mode == ModeSize {
		out.Instructions = stripDebug(out.Instructions)
	}
	out.Instructions = eliminateDead(out.Instructions)
	compact(out)
	return out, nil
}

func stripDebug(ins []spirv.Instruction) []spirv.Instruction {
	out := ins[:0:0]
	for _, in := range ins {
		switch in.Opcode {
		case spirv.OpSource, spirv.OpName, spirv.OpMemberName:
			continue
		}
		out = append(out, in)
	}
	return out
}

// removable reports instructions that can go when nothing reads their
// result.
func removable(in spirv.Instruction) bool {
	op := in.Opcode
	return typeOps[op] || constantOps[op] || op == spirv.OpVariable || op == 7 || sideEffectFree(op)
}

// eliminateDead drops unread types, constants, variables and pure
// instructions until nothing changes, then the names and decorations
// that pointed at them.
func eliminateDead(ins []spirv.Instruction) []spirv.Instruction {
	dead := make([]bool, len(ins))
	for {
		uses := map[uint32]int{}
		for i, in := range ins {
			if dead[i] || debugOps[in.Opcode] || annotationOps[in.Opcode] {
				continue
			}
			for _, id := range operandIDs(in) {
				uses[id]++
			}
		}
		changed := false
		for i, in := range ins {
			if dead[i] || !removable(in) {
				continue
			}
			if id, ok := resultID(in); ok && uses[id] == 0 {
				dead[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	gone := map[uint32]bool{}
	for i, in := range ins {
		if dead[i] {
			if id, ok := resultID(in); ok {
				gone[id] = true
			}
		}
	}
	out := make([]spirv.Instruction, 0, len(ins))
	for i, in := range ins {
		if dead[i] {
			continue
		}
		if (debugOps[in.Opcode] || annotationOps[in.Opcode]) && len(in.Words) > 0 && in.Opcode != spirv.OpSource && in.Opcode != 7 {
			if gone[in.Words[0]] {
				continue
			}
		}
		out = append(out, in)
	}
	return out
}

// compact renumbers ids densely in order of first appearance.
func compact(m *Module) {
	ids := map[uint32]uint32{}
	next := uint32(1)
	f := func(v uint32) uint32 {
		if n, ok := ids[v]; ok {
			return n
		}
		ids[v] = next
		next++
		return ids[v]
	}
	for i, in := range m.Instructions {
		m.Instructions[i] = mapIDs(in, f)
	}
	m.Bound = next
}
