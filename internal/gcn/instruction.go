package gcn

import (
	"fmt"
	"sort"
	"strings"
)

// Family is an encoding family selected by the high bits of the first word.
type Family uint8

const (
	FamilySOP2 Family = iota
	FamilySOPK
	FamilySOP1
	FamilySOPC
	FamilySOPP
	FamilySMRD
	FamilySMEM
	FamilyVOP2
	FamilyVOP1
	FamilyVOPC
	FamilyVOP3
	FamilyVINTRP
	FamilyEXP
	FamilyMUBUF
	FamilyMTBUF
	FamilyMIMG
	FamilyDS
	familyCount
)

var familyNames = [familyCount]string{
	"SOP2", "SOPK", "SOP1", "SOPC", "SOPP", "SMRD", "SMEM", "VOP2", "VOP1",
	"VOPC", "VOP3", "VINTRP", "EXP", "MUBUF", "MTBUF", "MIMG", "DS",
}

func (f Family) String() string {
	if f < familyCount {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", f)
}

// Format describes the operand layout of an instruction for printing and
// for consumers that walk operands generically.
type Format uint8

const (
	FmtNone Format = iota
	FmtSimm16
	FmtSimm16Literal
	FmtLabel
	FmtSdstSimm16
	FmtSdst
	FmtSsrc0
	FmtSdstSsrc0
	FmtSsrc0Ssrc1
	FmtSdstSsrc0Ssrc1
	FmtSmem
	FmtSmemSdst
	FmtVdstSrc0
	FmtVdstSrc0Src1
	FmtVdstSrc0Src1Src2
	FmtVdstSdstSrc0Src1
	FmtVdstSdstSrc0Src1Src2
	FmtSdstSrc0Src1
	FmtVintrp
	FmtExp
	FmtMubuf
	FmtMtbuf
	FmtMimg
	FmtDsAddrData
	FmtDsAddrData2
	FmtDsVdstAddr
	FmtDsVdstAddrData
	FmtDsVdst
)

// Flags holds the single-bit modifiers of memory, export and image
// instructions.
type Flags uint32

const (
	FlagOffen Flags = 1 << iota
	FlagIdxen
	FlagGlc
	FlagSlc
	FlagDlc
	FlagTfe
	FlagLds
	FlagAddr64
	FlagUnorm
	FlagDa
	FlagR128
	FlagLwe
	FlagGds
	FlagImm
	FlagDone
	FlagCompr
	FlagVM
	FlagVop3
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{FlagOffen, "offen"}, {FlagIdxen, "idxen"}, {FlagGlc, "glc"}, {FlagSlc, "slc"},
	{FlagDlc, "dlc"}, {FlagTfe, "tfe"}, {FlagLds, "lds"}, {FlagAddr64, "addr64"},
	{FlagUnorm, "unorm"}, {FlagDa, "da"}, {FlagR128, "r128"}, {FlagLwe, "lwe"},
	{FlagGds, "gds"}, {FlagCompr, "compr"}, {FlagDone, "done"}, {FlagVM, "vm"},
}

func (f Flags) Has(x Flags) bool { return f&x != 0 }

// Export targets.
const (
	TargetMrt0   = 0
	TargetMrtZ   = 8
	TargetNull   = 9
	TargetPos0   = 12
	TargetParam0 = 32
	maxTarget    = 63
)

// Instruction is one decoded GCN instruction. PC is the byte offset from the
// start of the program.
type Instruction struct {
	PC     uint32
	Type   InstructionType
	Format Format
	Family Family

	Dst    Operand
	Dst2   Operand
	Src    [4]Operand
	SrcNum int

	// Words is the number of 32-bit words consumed, literals included.
	Words int

	SImm    int16  // SOPP/SOPK immediate
	Offset  uint32 // memory offset, DS offset0
	Offset1 uint32 // DS offset1
	Flags   Flags
	Mask    uint8 // MIMG dmask, EXP enable
	Target  uint8 // EXP target
	Attr    uint8 // VINTRP attribute
	Chan    uint8 // VINTRP channel
	Dfmt    uint8
	Nfmt    uint8
}

// Sources returns the populated source operands.
func (in *Instruction) Sources() []Operand { return in.Src[:in.SrcNum] }

// BranchTarget returns the absolute target of a SOPP branch.
func (in *Instruction) BranchTarget() uint32 {
	return uint32(int64(in.PC) + 4 + int64(in.SImm)*4)
}

// IsBranch reports whether the instruction is s_branch or s_cbranch_*.
func (in *Instruction) IsBranch() bool {
	return in.Format == FmtLabel
}

// IsConditionalBranch reports whether the branch has a fallthrough edge.
func (in *Instruction) IsConditionalBranch() bool {
	return in.Format == FmtLabel && in.Type != SBranch
}

// Next returns the byte offset of the following instruction.
func (in *Instruction) Next() uint32 { return in.PC + uint32(in.Words)*4 }

// Label records a branch: Target is the destination offset, Source the
// offset of the branch instruction.
type Label struct {
	Target uint32
	Source uint32
}

// ShaderType is the pipeline stage a program belongs to.
type ShaderType uint8

const (
	TypeVertex ShaderType = iota
	TypePixel
	TypeCompute
	TypeFetch
)

func (t ShaderType) String() string {
	switch t {
	case TypeVertex:
		return "vs"
	case TypePixel:
		return "ps"
	case TypeCompute:
		return "cs"
	case TypeFetch:
		return "fs"
	}
	return fmt.Sprintf("ShaderType(%d)", t)
}

// PrintfArg selects how a debug-printf argument is interpreted.
type PrintfArg uint8

const (
	PrintfUint PrintfArg = iota
	PrintfInt
	PrintfFloat
)

// DebugPrintf asks the code generator to print Args right before the
// instruction at PC executes.
type DebugPrintf struct {
	PC     uint32
	Format string
	Types  []PrintfArg
	Args   []Operand
}

// Code is a decoded program. It is immutable after Parse except for
// InjectDebugPrintf.
type Code struct {
	Type           ShaderType
	Instructions   []Instruction
	Labels         []Label
	IndirectLabels []Label
	Embedded       bool
	EmbeddedID     uint32
	DebugPrintfs   []DebugPrintf
}

// Size returns the byte length of the decoded program.
func (c *Code) Size() uint32 {
	if len(c.Instructions) == 0 {
		return 0
	}
	return c.Instructions[len(c.Instructions)-1].Next()
}

// HasLabel reports whether any direct branch targets pc.
func (c *Code) HasLabel(pc uint32) bool {
	for _, l := range c.Labels {
		if l.Target == pc {
			return true
		}
	}
	return false
}

// InstructionAt returns the index of the instruction starting at pc.
func (c *Code) InstructionAt(pc uint32) (int, bool) {
	i := sort.Search(len(c.Instructions), func(i int) bool {
		return c.Instructions[i].PC >= pc
	})
	if i < len(c.Instructions) && c.Instructions[i].PC == pc {
		return i, true
	}
	return 0, false
}

// Count returns how many instructions have the given type.
func (c *Code) Count(t InstructionType) int {
	n := 0
	for i := range c.Instructions {
		if c.Instructions[i].Type == t {
			n++
		}
	}
	return n
}

// WritesExec reports whether any instruction may modify EXEC.
func (c *Code) WritesExec() bool {
	for i := range c.Instructions {
		in := &c.Instructions[i]
		if in.Dst.Kind == OperandExecLo || in.Dst.Kind == OperandExecHi {
			return true
		}
		switch in.Type {
		case SAndSaveexecB64, SOrSaveexecB64, SXorSaveexecB64, SAndn2SaveexecB64,
			SOrn2SaveexecB64, SNandSaveexecB64, SNorSaveexecB64, SXnorSaveexecB64:
			return true
		}
		if IsCmpx(in.Type) {
			return true
		}
	}
	return false
}

// InjectDebugPrintf attaches a printf request. Requests at the same PC are
// kept in insertion order.
func (c *Code) InjectDebugPrintf(p DebugPrintf) {
	c.DebugPrintfs = append(c.DebugPrintfs, p)
}

// PrintfsAt returns the printf requests attached to pc.
func (c *Code) PrintfsAt(pc uint32) []DebugPrintf {
	var out []DebugPrintf
	for _, p := range c.DebugPrintfs {
		if p.PC == pc {
			out = append(out, p)
		}
	}
	return out
}

// IsCmpx reports whether t is a v_cmpx_* compare, which also writes EXEC.
func IsCmpx(t InstructionType) bool {
	return strings.HasPrefix(t.String(), "v_cmpx_")
}
