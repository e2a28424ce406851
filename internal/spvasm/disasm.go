package spvasm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/naga/spirv"
)

// Disassemble renders m as assembly text that Assemble accepts.
func Disassemble(m *Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; SPIR-V\n; Version: %d.%d\n; Generator: 0x%08x\n; Bound: %d\n; Schema: 0\n",
		m.Version.Major, m.Version.Minor, m.Generator, m.Bound)
	d := &disassembler{types: map[uint32]scalarType{}, sets: map[uint32]string{}}
	for _, in := range m.Instructions {
		sb.WriteString(d.instruction(in))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type disassembler struct {
	types map[uint32]scalarType
	sets  map[uint32]string
}

func idName(v uint32) string { return "%" + strconv.FormatUint(uint64(v), 10) }

func (d *disassembler) instruction(in spirv.Instruction) string {
	op, ok := opByCode[in.Opcode]
	if !ok {
		parts := []string{OpName(in.Opcode)}
		for _, w := range in.Words {
			parts = append(parts, strconv.FormatUint(uint64(w), 10))
		}
		return "; " + strings.Join(parts, " ")
	}

	w := in.Words
	var result string
	var parts []string
	take := func() (uint32, bool) {
		if len(w) == 0 {
			return 0, false
		}
		v := w[0]
		w = w[1:]
		return v, true
	}
	for _, o := range op.operands {
		switch o.kind {
		case kResult:
			if v, ok := take(); ok {
				result = idName(v)
			}
		case kResultType, kID:
			if v, ok := take(); ok {
				parts = append(parts, idName(v))
			}
		case kIDs:
			for len(w) > 0 {
				v, _ := take()
				parts = append(parts, idName(v))
			}
		case kLiteral:
			if v, ok := take(); ok {
				parts = append(parts, strconv.FormatUint(uint64(v), 10))
			}
		case kLiterals:
			for len(w) > 0 {
				v, _ := take()
				parts = append(parts, strconv.FormatUint(uint64(v), 10))
			}
		case kSwitch:
			for len(w) >= 2 {
				v, _ := take()
				l, _ := take()
				parts = append(parts, strconv.FormatUint(uint64(v), 10), idName(l))
			}
		case kString:
			n := stringWords(w)
			parts = append(parts, quote(decodeString(w[:n])))
			w = w[n:]
		case kValue:
			typ := d.types[in.Words[0]]
			n := 1
			if typ.width == 64 {
				n = 2
			}
			if len(w) < n {
				break
			}
			parts = append(parts, formatValue(w[:n], typ))
			w = w[n:]
		case kEnum, kOptEnum:
			if v, ok := take(); ok {
				parts = append(parts, o.enum.format(v))
			}
		case kDecoration, kExecMode:
			v, ok := take()
			if !ok {
				break
			}
			parts = append(parts, o.enum.format(v))
			if o.kind == kDecoration && v == uint32(spirv.DecorationBuiltIn) {
				if b, ok := take(); ok {
					parts = append(parts, builtinEnum.format(b))
				}
			}
			for len(w) > 0 {
				v, _ := take()
				parts = append(parts, strconv.FormatUint(uint64(v), 10))
			}
		case kExtInst:
			v, ok := take()
			if !ok {
				break
			}
			setID := in.Words[2]
			if set := extSets[d.sets[setID]]; set != nil {
				parts = append(parts, set.format(v))
			} else {
				parts = append(parts, strconv.FormatUint(uint64(v), 10))
			}
		case kImageOps:
			if v, ok := take(); ok {
				parts = append(parts, imageOpsEnum.format(v))
				for len(w) > 0 {
					v, _ := take()
					parts = append(parts, idName(v))
				}
			}
		case kMemAccess:
			if v, ok := take(); ok {
				parts = append(parts, memAccEnum.format(v))
				if v&2 != 0 {
					if al, ok := take(); ok {
						parts = append(parts, strconv.FormatUint(uint64(al), 10))
					}
				}
			}
		}
	}
	d.record(op, in.Words)

	text := op.name
	if len(parts) > 0 {
		text += " " + strings.Join(parts, " ")
	}
	if result != "" {
		return fmt.Sprintf("%14s = %s", result, text)
	}
	return strings.Repeat(" ", 17) + text
}

func (d *disassembler) record(op *opInfo, words []uint32) {
	switch op.code {
	case spirv.OpTypeInt:
		if len(words) >= 3 {
			d.types[words[0]] = scalarType{width: words[1], signed: words[2] != 0}
		}
	case spirv.OpTypeFloat:
		if len(words) >= 2 {
			d.types[words[0]] = scalarType{float: true, width: words[1]}
		}
	case spirv.OpExtInstImport:
		if len(words) >= 2 {
			d.sets[words[0]] = decodeString(words[1:])
		}
	}
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func formatValue(w []uint32, typ scalarType) string {
	switch {
	case typ.float && typ.width == 32:
		f := math.Float32frombits(w[0])
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return fmt.Sprintf("0x%08x", w[0])
		}
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case typ.float && typ.width == 64:
		bits := uint64(w[0]) | uint64(w[1])<<32
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprintf("0x%016x", bits)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case typ.width == 64:
		v := uint64(w[0]) | uint64(w[1])<<32
		if typ.signed {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatUint(v, 10)
	case typ.signed:
		return strconv.FormatInt(int64(int32(w[0])), 10)
	}
	return strconv.FormatUint(uint64(w[0]), 10)
}
