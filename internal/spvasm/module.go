// Package spvasm assembles, validates, optimizes and disassembles SPIR-V
// modules in the textual form spirv-as accepts. Instructions are built with
// the naga spirv package and kept as spirv.Instruction values.
package spvasm

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga/spirv"
)

var (
	ErrBadMagic  = errors.New("spvasm: not a SPIR-V module")
	ErrTruncated = errors.New("spvasm: truncated module")
)

// HeaderWords is the size of the module header.
const HeaderWords = 5

// Module is a decoded SPIR-V module.
type Module struct {
	Version      spirv.Version
	Generator    uint32
	Bound        uint32
	Instructions []spirv.Instruction
}

func versionWord(v spirv.Version) uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// Words encodes the module.
func (m *Module) Words() []uint32 {
	out := []uint32{spirv.MagicNumber, versionWord(m.Version), m.Generator, m.Bound, 0}
	for _, in := range m.Instructions {
		out = append(out, in.Encode()...)
	}
	return out
}

// Bytes encodes the module little-endian.
func (m *Module) Bytes() []byte {
	words := m.Words()
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// ParseBytes decodes a little-endian module.
func ParseBytes(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return Parse(words)
}

// Parse decodes a module from words.
func Parse(words []uint32) (*Module, error) {
	if len(words) < HeaderWords {
		return nil, fmt.Errorf("%w: %d words", ErrTruncated, len(words))
	}
	if words[0] != spirv.MagicNumber {
		return nil, fmt.Errorf("%w: magic 0x%08x", ErrBadMagic, words[0])
	}
	m := &Module{
		Version:   spirv.Version{Major: uint8(words[1] >> 16), Minor: uint8(words[1] >> 8)},
		Generator: words[2],
		Bound:     words[3],
	}
	for i := HeaderWords; i < len(words); {
		count := int(words[i] >> 16)
		if count == 0 || i+count > len(words) {
			return nil, fmt.Errorf("%w: word count %d at word %d", ErrTruncated, count, i)
		}
		ops := make([]uint32, count-1)
		copy(ops, words[i+1:i+count])
		m.Instructions = append(m.Instructions, spirv.Instruction{
			Opcode: spirv.OpCode(words[i] & 0xffff),
			Words:  ops,
		})
		i += count
	}
	return m, nil
}

// resultID returns the id an instruction defines, if any.
func resultID(in spirv.Instruction) (uint32, bool) {
	op, ok := opByCode[in.Opcode]
	if !ok {
		return 0, false
	}
	idx := 0
	for _, o := range op.operands {
		switch o.kind {
		case kResultType:
			idx++
		case kResult:
			if idx < len(in.Words) {
				return in.Words[idx], true
			}
			return 0, false
		default:
			return 0, false
		}
	}
	return 0, false
}

// resultType returns the result type id, if the instruction has one.
func resultType(in spirv.Instruction) (uint32, bool) {
	op, ok := opByCode[in.Opcode]
	if !ok || len(op.operands) == 0 || op.operands[0].kind != kResultType || len(in.Words) == 0 {
		return 0, false
	}
	return in.Words[0], true
}

// operandIDs returns the ids an instruction reads, in operand order. The
// result type counts; the result id does not.
func operandIDs(in spirv.Instruction) []uint32 {
	op, ok := opByCode[in.Opcode]
	if !ok {
		return nil
	}
	var ids []uint32
	w := in.Words
	for _, o := range op.operands {
		if len(w) == 0 {
			break
		}
		switch o.kind {
		case kResultType, kID:
			ids = append(ids, w[0])
			w = w[1:]
		case kIDs:
			ids = append(ids, w...)
			w = nil
		case kResult, kLiteral, kEnum, kOptEnum, kExtInst:
			w = w[1:]
		case kString:
			w = w[stringWords(w):]
		case kImageOps:
			ids = append(ids, w[1:]...)
			w = nil
		case kSwitch:
			for i := 1; i < len(w); i += 2 {
				ids = append(ids, w[i])
			}
			w = nil
		default:
			w = nil
		}
	}
	return ids
}

// mapIDs rewrites every id an instruction defines or reads through f.
func mapIDs(in spirv.Instruction, f func(uint32) uint32) spirv.Instruction {
	op, ok := opByCode[in.Opcode]
	if !ok {
		return in
	}
	out := spirv.Instruction{Opcode: in.Opcode, Words: append([]uint32(nil), in.Words...)}
	w := out.Words
	for _, o := range op.operands {
		if len(w) == 0 {
			break
		}
		switch o.kind {
		case kResultType, kResult, kID:
			w[0] = f(w[0])
			w = w[1:]
		case kIDs:
			for i := range w {
				w[i] = f(w[i])
			}
			w = nil
		case kLiteral, kEnum, kOptEnum, kExtInst:
			w = w[1:]
		case kString:
			w = w[stringWords(w):]
		case kImageOps:
			for i := 1; i < len(w); i++ {
				w[i] = f(w[i])
			}
			w = nil
		case kSwitch:
			for i := 1; i < len(w); i += 2 {
				w[i] = f(w[i])
			}
			w = nil
		default:
			w = nil
		}
	}
	return out
}
