package shaderbin

import "fmt"

// UsageType is the kind of resource a usage slot declares.
type UsageType uint8

const (
	ImmResource              UsageType = 0x00
	ImmSampler               UsageType = 0x01
	ImmConstBuffer           UsageType = 0x02
	ImmVertexBuffer          UsageType = 0x03
	ImmRwResource            UsageType = 0x04
	ImmAluFloatConst         UsageType = 0x05
	ImmAluBool32Const        UsageType = 0x06
	ImmGdsCounterRange       UsageType = 0x07
	ImmGdsMemoryRange        UsageType = 0x08
	ImmGwsBase               UsageType = 0x09
	ImmShaderResourceTable   UsageType = 0x0A
	ImmLdsEsGsSize           UsageType = 0x0D
	SubPtrFetchShader        UsageType = 0x12
	PtrResourceTable         UsageType = 0x13
	PtrInternalResourceTable UsageType = 0x14
	PtrSamplerTable          UsageType = 0x15
	PtrConstBufferTable      UsageType = 0x16
	PtrVertexBufferTable     UsageType = 0x17
	PtrSoBufferTable         UsageType = 0x18
	PtrRwResourceTable       UsageType = 0x19
	PtrInternalGlobalTable   UsageType = 0x1A
	PtrExtendedUserData      UsageType = 0x1B
	PtrIndirectResourceTable UsageType = 0x1C
	PtrIndirectInternalTable UsageType = 0x1D
	PtrIndirectRwTable       UsageType = 0x1E
)

var usageNames = map[UsageType]string{
	ImmResource:              "ImmResource",
	ImmSampler:               "ImmSampler",
	ImmConstBuffer:           "ImmConstBuffer",
	ImmVertexBuffer:          "ImmVertexBuffer",
	ImmRwResource:            "ImmRwResource",
	ImmAluFloatConst:         "ImmAluFloatConst",
	ImmAluBool32Const:        "ImmAluBool32Const",
	ImmGdsCounterRange:       "ImmGdsCounterRange",
	ImmGdsMemoryRange:        "ImmGdsMemoryRange",
	ImmGwsBase:               "ImmGwsBase",
	ImmShaderResourceTable:   "ImmShaderResourceTable",
	ImmLdsEsGsSize:           "ImmLdsEsGsSize",
	SubPtrFetchShader:        "SubPtrFetchShader",
	PtrResourceTable:         "PtrResourceTable",
	PtrInternalResourceTable: "PtrInternalResourceTable",
	PtrSamplerTable:          "PtrSamplerTable",
	PtrConstBufferTable:      "PtrConstBufferTable",
	PtrVertexBufferTable:     "PtrVertexBufferTable",
	PtrSoBufferTable:         "PtrSoBufferTable",
	PtrRwResourceTable:       "PtrRwResourceTable",
	PtrInternalGlobalTable:   "PtrInternalGlobalTable",
	PtrExtendedUserData:      "PtrExtendedUserData",
	PtrIndirectResourceTable: "PtrIndirectResourceTable",
	PtrIndirectInternalTable: "PtrIndirectInternalTable",
	PtrIndirectRwTable:       "PtrIndirectRwTable",
}

// Known reports whether t is a defined usage type.
func (t UsageType) Known() bool {
	_, ok := usageNames[t]
	return ok
}

func (t UsageType) String() string {
	if n, ok := usageNames[t]; ok {
		return n
	}
	return fmt.Sprintf("UsageType(0x%02x)", uint8(t))
}

// UsageSlot declares that registers starting at StartRegister hold a
// resource of the given type.
type UsageSlot struct {
	Type          UsageType `json:"type"`
	Slot          uint8     `json:"slot"`
	StartRegister uint8     `json:"start_register"`
	Flags         uint8     `json:"flags"`
}

// RegisterCount is the descriptor width in dwords (4 or 8).
func (s UsageSlot) RegisterCount() int {
	if s.Flags&1 != 0 {
		return 8
	}
	return 4
}

// ResourceType is flags bit 1.
func (s UsageSlot) ResourceType() uint8 { return (s.Flags >> 1) & 1 }

// Extended reports whether the descriptor lives in the extended user data
// buffer instead of the 16 inline user SGPRs.
func (s UsageSlot) Extended() bool { return s.StartRegister >= 16 }

func (s UsageSlot) String() string {
	return fmt.Sprintf("%s slot=%d reg=%d flags=0x%02x", s.Type, s.Slot, s.StartRegister, s.Flags)
}

func decodeSlot(w uint32) UsageSlot {
	return UsageSlot{
		Type:          UsageType(w),
		Slot:          uint8(w >> 8),
		StartRegister: uint8(w >> 16),
		Flags:         uint8(w >> 24),
	}
}

// Usage is the usage-mask table and the usage-slot array preceding the
// header.
type Usage struct {
	Masks []uint32    `json:"masks"`
	Slots []UsageSlot `json:"slots"`
}

// Find returns the first slot of type t.
func (u *Usage) Find(t UsageType) (UsageSlot, bool) {
	for _, s := range u.Slots {
		if s.Type == t {
			return s, true
		}
	}
	return UsageSlot{}, false
}

// Count returns the number of slots of type t.
func (u *Usage) Count(t UsageType) int {
	n := 0
	for _, s := range u.Slots {
		if s.Type == t {
			n++
		}
	}
	return n
}
