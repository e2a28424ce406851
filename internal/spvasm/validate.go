package spvasm

import (
	"fmt"
	"strings"

	"github.com/gogpu/naga/spirv"
)

// ValidationError lists everything wrong with a module.
type ValidationError struct {
	Problems    []string
	Disassembly string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "spvasm: invalid module: " + e.Problems[0]
	}
	return fmt.Sprintf("spvasm: invalid module: %s (and %d more)", e.Problems[0], len(e.Problems)-1)
}

// Report renders every problem followed by the disassembly.
func (e *ValidationError) Report() string {
	var sb strings.Builder
	for _, p := range e.Problems {
		sb.WriteString("error: ")
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	sb.WriteString("----\n")
	sb.WriteString(e.Disassembly)
	return sb.String()
}

// module-level instructions allowed outside functions
var globalOps = map[spirv.OpCode]bool{
	spirv.OpCapability: true, 10: true, spirv.OpExtInstImport: true,
	spirv.OpMemoryModel: true, spirv.OpEntryPoint: true, spirv.OpExecutionMode: true,
	spirv.OpVariable: true, 1: true, spirv.OpNop: true,
}

// Validate checks the structural rules a Vulkan driver relies on: the
// required preamble, id definitions and uses, result types and function
// and block layout. It does not type-check instruction operands.
func Validate(m *Module) error {
	v := &validator{defs: map[uint32]spirv.Instruction{}}
	v.check(m)
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems, Disassembly: Disassemble(m)}
}

type validator struct {
	problems []string
	defs     map[uint32]spirv.Instruction
}

func (v *validator) errorf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) check(m *Module) {
	if m.Bound == 0 {
		v.errorf("id bound is zero")
	}
	var caps, models, entries int
	for i, in := range m.Instructions {
		switch in.Opcode {
		case spirv.OpCapability:
			caps++
		case spirv.OpMemoryModel:
			models++
		case spirv.OpEntryPoint:
			entries++
		}
		if _, ok := opByCode[in.Opcode]; !ok {
			v.errorf("instruction %d: unknown opcode %d", i, in.Opcode)
			continue
		}
		id, ok := resultID(in)
		if !ok {
			continue
		}
		if id == 0 || id >= m.Bound {
			v.errorf("instruction %d: %s result %%%d outside bound %d", i, OpName(in.Opcode), id, m.Bound)
		}
		if _, dup := v.defs[id]; dup {
			v.errorf("instruction %d: %%%d defined twice", i, id)
			continue
		}
		v.defs[id] = in
	}
	if caps == 0 {
		v.errorf("missing OpCapability")
	}
	if models != 1 {
		v.errorf("expected one OpMemoryModel, found %d", models)
	}
	if entries == 0 {
		v.errorf("missing OpEntryPoint")
	}

	for i, in := range m.Instructions {
		for _, ref := range operandIDs(in) {
			if _, ok := v.defs[ref]; !ok {
				v.errorf("instruction %d: %s uses undefined id %%%d", i, OpName(in.Opcode), ref)
			}
		}
		if rt, ok := resultType(in); ok {
			if def, ok := v.defs[rt]; ok && !typeOps[def.Opcode] {
				v.errorf("instruction %d: result type %%%d is %s, not a type", i, rt, OpName(def.Opcode))
			}
		}
		if in.Opcode == spirv.OpEntryPoint && len(in.Words) >= 2 {
			if def, ok := v.defs[in.Words[1]]; ok && def.Opcode != spirv.OpFunction {
				v.errorf("instruction %d: entry point %%%d is %s, not a function", i, in.Words[1], OpName(def.Opcode))
			}
		}
	}
	v.functions(m.Instructions)
}

// functions checks OpFunction/OpLabel nesting and that every block ends
// in exactly one terminator.
func (v *validator) functions(ins []spirv.Instruction) {
	const (
		outside = iota
		header  // after OpFunction, before the first label
		inBlock
		between // after a terminator
	)
	state := outside
	for i, in := range ins {
		op := in.Opcode
		switch state {
		case outside:
			switch {
			case op == spirv.OpFunction:
				state = header
			case op == spirv.OpFunctionEnd:
				v.errorf("instruction %d: OpFunctionEnd outside a function", i)
			case op == spirv.OpLabel || terminatorOps[op]:
				v.errorf("instruction %d: %s outside a function", i, OpName(op))
			case !globalOps[op] && !typeOps[op] && !constantOps[op] && !debugOps[op] && !annotationOps[op] && op != spirv.OpExtInstImport:
				if _, known := opByCode[op]; known {
					v.errorf("instruction %d: %s outside a function", i, OpName(op))
				}
			}
		case header:
			switch op {
			case spirv.OpFunctionParameter:
			case spirv.OpLabel:
				state = inBlock
			case spirv.OpFunctionEnd:
				state = outside
			default:
				v.errorf("instruction %d: %s before the first block", i, OpName(op))
			}
		case inBlock:
			switch {
			case terminatorOps[op]:
				state = between
			case op == spirv.OpLabel:
				v.errorf("instruction %d: block not terminated before OpLabel", i)
			case op == spirv.OpFunctionEnd:
				v.errorf("instruction %d: block not terminated before OpFunctionEnd", i)
				state = outside
			case op == spirv.OpFunction:
				v.errorf("instruction %d: nested OpFunction", i)
			}
		case between:
			switch op {
			case spirv.OpLabel:
				state = inBlock
			case spirv.OpFunctionEnd:
				state = outside
			default:
				v.errorf("instruction %d: %s after a block terminator", i, OpName(op))
			}
		}
	}
	if state != outside {
		v.errorf("function not closed by OpFunctionEnd")
	}
}
