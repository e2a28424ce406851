package gcn

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// OperandKind identifies the register file or constant class of an operand.
type OperandKind uint8

const (
	OperandUnknown OperandKind = iota
	OperandSgpr
	OperandVgpr
	OperandVccLo
	OperandVccHi
	OperandExecLo
	OperandExecHi
	OperandExecZ
	OperandM0
	OperandNull
	OperandIntegerInlineConstant
	OperandFloatInlineConstant
	OperandLiteralConstant
)

var operandKindNames = [...]string{
	OperandUnknown:               "unknown",
	OperandSgpr:                  "sgpr",
	OperandVgpr:                  "vgpr",
	OperandVccLo:                 "vcc_lo",
	OperandVccHi:                 "vcc_hi",
	OperandExecLo:                "exec_lo",
	OperandExecHi:                "exec_hi",
	OperandExecZ:                 "execz",
	OperandM0:                    "m0",
	OperandNull:                  "null",
	OperandIntegerInlineConstant: "iconst",
	OperandFloatInlineConstant:   "fconst",
	OperandLiteralConstant:       "literal",
}

func (k OperandKind) String() string {
	if int(k) < len(operandKindNames) {
		return operandKindNames[k]
	}
	return fmt.Sprintf("OperandKind(%d)", k)
}

// IsConstant reports whether the kind carries an immediate value.
func (k OperandKind) IsConstant() bool {
	return k == OperandIntegerInlineConstant || k == OperandFloatInlineConstant || k == OperandLiteralConstant
}

// Constant is the 32-bit payload of an inline or literal constant.
// The same bits are viewed as signed, unsigned or float depending on the
// consuming instruction.
type Constant struct {
	Bits uint32
}

func (c Constant) U() uint32  { return c.Bits }
func (c Constant) I() int32   { return int32(c.Bits) }
func (c Constant) F() float32 { return math.Float32frombits(c.Bits) }

// Operand is one decoded source or destination of an instruction.
//
// Size is the number of consecutive registers the operand spans; constants
// always have Size 0.
type Operand struct {
	Kind       OperandKind
	RegisterID int
	Size       int
	Constant   Constant
	Negate     bool
	Absolute   bool
	Clamp      bool
	Multiplier float32
}

// Operand codes with fixed meaning.
const (
	codeSgprLast       = 103
	codeVccLo          = 106
	codeVccHi          = 107
	codeM0             = 124
	codeNull           = 125
	codeExecLo         = 126
	codeExecHi         = 127
	codeIntFirst       = 128
	codeIntPosLast     = 192
	codeIntNegLast     = 208
	codeFloatFirst     = 240
	codeFloatLast      = 247
	codeExecZ          = 252
	codeLiteral        = 255
	codeVgprFirst      = 256
	codeVgprLast       = 511
	maxInlineFloatCode = codeFloatLast - codeFloatFirst
)

var ErrUnknownOperand = errors.New("gcn: unknown operand")

var inlineFloats = [maxInlineFloatCode + 1]float32{0.5, -0.5, 1.0, -1.0, 2.0, -2.0, 4.0, -4.0}

// DecodeOperand resolves a 7/8/9-bit operand field.
//
// Code 255 yields a literal placeholder with Size 1; the instruction decoder
// replaces it with the next stream word and clears Size.
func DecodeOperand(code uint16) (Operand, error) {
	op := Operand{Multiplier: 1}
	switch {
	case code <= codeSgprLast:
		op.Kind, op.RegisterID, op.Size = OperandSgpr, int(code), 1
	case code >= codeIntFirst && code <= codeIntPosLast:
		op.Kind = OperandIntegerInlineConstant
		op.Constant.Bits = uint32(int32(code) - codeIntFirst)
	case code > codeIntPosLast && code <= codeIntNegLast:
		op.Kind = OperandIntegerInlineConstant
		op.Constant.Bits = uint32(int32(codeIntPosLast) - int32(code))
	case code >= codeFloatFirst && code <= codeFloatLast:
		op.Kind = OperandFloatInlineConstant
		op.Constant.Bits = math.Float32bits(inlineFloats[code-codeFloatFirst])
	case code >= codeVgprFirst && code <= codeVgprLast:
		op.Kind, op.RegisterID, op.Size = OperandVgpr, int(code-codeVgprFirst), 1
	case code == codeVccLo:
		op.Kind, op.Size = OperandVccLo, 1
	case code == codeVccHi:
		op.Kind, op.Size = OperandVccHi, 1
	case code == codeM0:
		op.Kind, op.Size = OperandM0, 1
	case code == codeNull:
		op.Kind, op.Size = OperandNull, 1
	case code == codeExecLo:
		op.Kind, op.Size = OperandExecLo, 1
	case code == codeExecHi:
		op.Kind, op.Size = OperandExecHi, 1
	case code == codeExecZ:
		op.Kind, op.Size = OperandExecZ, 1
	case code == codeLiteral:
		op.Kind, op.Size = OperandLiteralConstant, 1
	default:
		return Operand{}, fmt.Errorf("%w: code %d", ErrUnknownOperand, code)
	}
	return op, nil
}

// Sgpr builds a scalar register operand spanning size registers.
func Sgpr(id, size int) Operand {
	return Operand{Kind: OperandSgpr, RegisterID: id, Size: size, Multiplier: 1}
}

// Vgpr builds a vector register operand spanning size registers.
func Vgpr(id, size int) Operand {
	return Operand{Kind: OperandVgpr, RegisterID: id, Size: size, Multiplier: 1}
}

// IsRegister reports whether the operand names a register (not a constant).
func (o Operand) IsRegister() bool {
	return o.Kind != OperandUnknown && !o.Kind.IsConstant()
}

// Covers reports whether the operand spans register id of the given kind.
func (o Operand) Covers(kind OperandKind, id int) bool {
	return o.Kind == kind && id >= o.RegisterID && id < o.RegisterID+o.Size
}

func (o Operand) String() string {
	s := o.base()
	if o.Absolute {
		s = "|" + s + "|"
	}
	if o.Negate {
		s = "-" + s
	}
	return s
}

func (o Operand) base() string {
	switch o.Kind {
	case OperandSgpr:
		return regRange("s", o.RegisterID, o.Size)
	case OperandVgpr:
		return regRange("v", o.RegisterID, o.Size)
	case OperandVccLo:
		if o.Size == 2 {
			return "vcc"
		}
		return "vcc_lo"
	case OperandVccHi:
		return "vcc_hi"
	case OperandExecLo:
		if o.Size == 2 {
			return "exec"
		}
		return "exec_lo"
	case OperandExecHi:
		return "exec_hi"
	case OperandExecZ:
		return "execz"
	case OperandM0:
		return "m0"
	case OperandNull:
		return "null"
	case OperandIntegerInlineConstant:
		return fmt.Sprintf("%d", o.Constant.I())
	case OperandFloatInlineConstant:
		return strings.TrimSuffix(fmt.Sprintf("%g", o.Constant.F()), ".0")
	case OperandLiteralConstant:
		return fmt.Sprintf("0x%08x", o.Constant.U())
	}
	return "?"
}

func regRange(prefix string, id, size int) string {
	if size <= 1 {
		return fmt.Sprintf("%s%d", prefix, id)
	}
	return fmt.Sprintf("%s[%d:%d]", prefix, id, id+size-1)
}
