package spvasm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/naga/spirv"
)

// kind is how an operand is written in text and laid out in words.
type kind uint8

const (
	kResultType kind = iota
	kResult
	kID
	kIDs      // zero or more ids, last operand
	kLiteral  // one 32-bit integer
	kLiterals // zero or more integers, last operand
	kString
	kValue      // typed constant, width from the result type
	kEnum       // one enumerant (or mask) from enum
	kOptEnum    // optional trailing enumerant
	kDecoration // decoration followed by its arguments
	kExecMode   // execution mode followed by literals
	kExtInst    // instruction number within the set named by the previous id
	kImageOps   // optional image-operands mask followed by ids
	kMemAccess  // optional memory-access mask, Aligned takes a literal
	kSwitch     // literal/label pairs
)

type operand struct {
	kind kind
	enum *enumTable
}

type opInfo struct {
	name     string
	code     spirv.OpCode
	operands []operand
}

// hasResult reports whether the instruction defines an id.
func (o *opInfo) hasResult() bool {
	for _, op := range o.operands {
		if op.kind == kResult {
			return true
		}
	}
	return false
}

type enumTable struct {
	name   string
	mask   bool
	values map[string]uint32
	names  map[uint32]string
}

func newEnum(name string, mask bool, pairs ...any) *enumTable {
	e := &enumTable{name: name, mask: mask, values: map[string]uint32{}, names: map[uint32]string{}}
	for i := 0; i < len(pairs); i += 2 {
		n, v := pairs[i].(string), uint32(pairs[i+1].(int))
		e.values[n] = v
		if _, dup := e.names[v]; !dup {
			e.names[v] = n
		}
	}
	return e
}

// parse accepts an enumerant name, a number, or for masks names joined
// with '|'.
func (e *enumTable) parse(s string) (uint32, error) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}
	if !e.mask {
		v, ok := e.values[s]
		if !ok {
			return 0, fmt.Errorf("unknown %s %q", e.name, s)
		}
		return v, nil
	}
	var out uint32
	for _, part := range strings.Split(s, "|") {
		v, ok := e.values[part]
		if !ok {
			return 0, fmt.Errorf("unknown %s %q", e.name, part)
		}
		out |= v
	}
	return out, nil
}

func (e *enumTable) format(v uint32) string {
	if !e.mask {
		if n, ok := e.names[v]; ok {
			return n
		}
		return strconv.FormatUint(uint64(v), 10)
	}
	if v == 0 {
		return e.names[0]
	}
	var parts []string
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		n, ok := e.names[bit]
		if !ok {
			return fmt.Sprintf("0x%x", v)
		}
		parts = append(parts, n)
	}
	return strings.Join(parts, "|")
}

var (
	capabilityEnum = newEnum("capability", false,
		"Matrix", 0, "Shader", 1, "Geometry", 2, "Tessellation", 3, "Addresses", 4, "Linkage", 5,
		"Kernel", 6, "Float16", 9, "Float64", 10, "Int64", 11, "Int64Atomics", 12, "Int16", 22,
		"ImageGatherExtended", 25, "StorageImageMultisample", 27,
		"UniformBufferArrayDynamicIndexing", 28, "SampledImageArrayDynamicIndexing", 29,
		"StorageBufferArrayDynamicIndexing", 30, "StorageImageArrayDynamicIndexing", 31,
		"ClipDistance", 32, "CullDistance", 33, "ImageCubeArray", 34, "SampleRateShading", 35,
		"Int8", 39, "MinLod", 42, "Sampled1D", 43, "Image1D", 44, "SampledCubeArray", 45,
		"SampledBuffer", 46, "ImageBuffer", 47, "ImageMSArray", 48, "StorageImageExtendedFormats", 49,
		"ImageQuery", 50, "DerivativeControl", 51, "InterpolationFunction", 52,
		"StorageImageReadWithoutFormat", 55, "StorageImageWriteWithoutFormat", 56,
		"GroupNonUniform", 61, "GroupNonUniformBallot", 64, "DrawParameters", 4427,
		"StorageBuffer16BitAccess", 4433, "RuntimeDescriptorArray", 5302)
	addressingEnum = newEnum("addressing model", false, "Logical", 0, "Physical32", 1, "Physical64", 2)
	memoryEnum     = newEnum("memory model", false, "Simple", 0, "GLSL450", 1, "OpenCL", 2, "Vulkan", 3)
	execModelEnum  = newEnum("execution model", false,
		"Vertex", 0, "TessellationControl", 1, "TessellationEvaluation", 2, "Geometry", 3,
		"Fragment", 4, "GLCompute", 5, "Kernel", 6)
	execModeEnum = newEnum("execution mode", false,
		"Invocations", 0, "PixelCenterInteger", 6, "OriginUpperLeft", 7, "OriginLowerLeft", 8,
		"EarlyFragmentTests", 9, "DepthReplacing", 12, "DepthGreater", 14, "DepthLess", 15,
		"DepthUnchanged", 16, "LocalSize", 17, "LocalSizeHint", 18)
	storageEnum = newEnum("storage class", false,
		"UniformConstant", 0, "Input", 1, "Uniform", 2, "Output", 3, "Workgroup", 4,
		"CrossWorkgroup", 5, "Private", 6, "Function", 7, "Generic", 8, "PushConstant", 9,
		"AtomicCounter", 10, "Image", 11, "StorageBuffer", 12)
	decorationEnum = newEnum("decoration", false,
		"RelaxedPrecision", 0, "SpecId", 1, "Block", int(spirv.DecorationBlock), "BufferBlock", 3,
		"RowMajor", int(spirv.DecorationRowMajor), "ColMajor", int(spirv.DecorationColMajor),
		"ArrayStride", int(spirv.DecorationArrayStride), "MatrixStride", int(spirv.DecorationMatrixStride),
		"GLSLShared", 8, "GLSLPacked", 9, "BuiltIn", int(spirv.DecorationBuiltIn),
		"NoPerspective", 13, "Flat", 14, "Patch", 15, "Centroid", 16, "Sample", 17, "Invariant", 18,
		"Restrict", 19, "Aliased", 20, "Volatile", 21, "Constant", 22, "Coherent", 23,
		"NonWritable", 24, "NonReadable", 25, "Uniform", 26,
		"Location", int(spirv.DecorationLocation), "Component", 31, "Index", 32,
		"Binding", int(spirv.DecorationBinding), "DescriptorSet", int(spirv.DecorationDescriptorSet),
		"Offset", int(spirv.DecorationOffset))
	builtinEnum = newEnum("builtin", false,
		"Position", 0, "PointSize", 1, "ClipDistance", 3, "CullDistance", 4, "VertexId", 5,
		"InstanceId", 6, "PrimitiveId", 7, "InvocationId", 8, "Layer", 9, "ViewportIndex", 10,
		"FragCoord", 15, "PointCoord", 16, "FrontFacing", 17, "SampleId", 18, "SamplePosition", 19,
		"SampleMask", 20, "FragDepth", 22, "HelperInvocation", 23, "NumWorkgroups", 24,
		"WorkgroupSize", 25, "WorkgroupId", 26, "LocalInvocationId", 27, "GlobalInvocationId", 28,
		"LocalInvocationIndex", 29, "VertexIndex", 42, "InstanceIndex", 43)
	dimEnum = newEnum("dim", false,
		"1D", 0, "2D", 1, "3D", 2, "Cube", 3, "Rect", 4, "Buffer", 5, "SubpassData", 6)
	imageFormatEnum = newEnum("image format", false,
		"Unknown", 0, "Rgba32f", 1, "Rgba16f", 2, "R32f", 3, "Rgba8", 4, "Rgba8Snorm", 5,
		"Rg32f", 6, "Rg16f", 7, "R16f", 9, "Rgba16", 10, "Rg16", 12, "Rg8", 13, "R16", 14, "R8", 15,
		"Rgba32i", 21, "Rgba16i", 22, "Rgba8i", 23, "R32i", 24,
		"Rgba32ui", 30, "Rgba16ui", 31, "Rgba8ui", 32, "R32ui", 33)
	accessEnum   = newEnum("access qualifier", false, "ReadOnly", 0, "WriteOnly", 1, "ReadWrite", 2)
	functionEnum = newEnum("function control", true, "None", 0, "Inline", 1, "DontInline", 2, "Pure", 4, "Const", 8)
	selectEnum   = newEnum("selection control", true, "None", 0, "Flatten", 1, "DontFlatten", 2)
	loopEnum     = newEnum("loop control", true, "None", 0, "Unroll", 1, "DontUnroll", 2)
	memAccEnum   = newEnum("memory access", true, "None", 0, "Volatile", 1, "Aligned", 2, "Nontemporal", 4)
	imageOpsEnum = newEnum("image operands", true,
		"None", 0, "Bias", 1, "Lod", 2, "Grad", 4, "ConstOffset", 8, "Offset", 0x10,
		"ConstOffsets", 0x20, "Sample", 0x40, "MinLod", 0x80)
	sourceEnum = newEnum("source language", false,
		"Unknown", 0, "ESSL", 1, "GLSL", 2, "OpenCL_C", 3, "OpenCL_CPP", 4, "HLSL", 5)
)

// Extended instruction sets the assembler knows by name.
const (
	GLSLStd450  = "GLSL.std.450"
	DebugPrintf = "NonSemantic.DebugPrintf"
)

var extSets = map[string]*enumTable{
	GLSLStd450: newEnum(GLSLStd450, false,
		"Round", 1, "RoundEven", 2, "Trunc", 3, "FAbs", 4, "SAbs", 5, "FSign", 6, "SSign", 7,
		"Floor", 8, "Ceil", 9, "Fract", 10, "Radians", 11, "Degrees", 12, "Sin", 13, "Cos", 14,
		"Tan", 15, "Asin", 16, "Acos", 17, "Atan", 18, "Sinh", 19, "Cosh", 20, "Tanh", 21,
		"Atan2", 25, "Pow", 26, "Exp", 27, "Log", 28, "Exp2", 29, "Log2", 30, "Sqrt", 31,
		"InverseSqrt", 32, "FMin", 37, "UMin", 38, "SMin", 39, "FMax", 40, "UMax", 41, "SMax", 42,
		"FClamp", 43, "UClamp", 44, "SClamp", 45, "FMix", 46, "Step", 48, "SmoothStep", 49,
		"Fma", 50, "Frexp", 51, "Ldexp", 53, "PackSnorm4x8", 54, "PackUnorm4x8", 55,
		"PackSnorm2x16", 56, "PackUnorm2x16", 57, "PackHalf2x16", 58,
		"UnpackSnorm2x16", 60, "UnpackUnorm2x16", 61, "UnpackHalf2x16", 62,
		"UnpackSnorm4x8", 63, "UnpackUnorm4x8", 64, "Length", 66, "Distance", 67, "Cross", 68,
		"Normalize", 69, "FaceForward", 70, "Reflect", 71, "Refract", 72,
		"FindILsb", 73, "FindSMsb", 74, "FindUMsb", 75, "NMin", 79, "NMax", 80, "NClamp", 81),
	DebugPrintf: newEnum(DebugPrintf, false, "DebugPrintf", 1),
}

var (
	oRT    = operand{kind: kResultType}
	oRes   = operand{kind: kResult}
	oID    = operand{kind: kID}
	oIDs   = operand{kind: kIDs}
	oLit   = operand{kind: kLiteral}
	oLits  = operand{kind: kLiterals}
	oStr   = operand{kind: kString}
	oImage = operand{kind: kImageOps}
	oMem   = operand{kind: kMemAccess}
)

func enum(e *enumTable) operand    { return operand{kind: kEnum, enum: e} }
func optEnum(e *enumTable) operand { return operand{kind: kOptEnum, enum: e} }

func unOp(name string, code spirv.OpCode) opInfo {
	return opInfo{name, code, []operand{oRT, oRes, oID}}
}

func binOp(name string, code spirv.OpCode) opInfo {
	return opInfo{name, code, []operand{oRT, oRes, oID, oID}}
}

var grammar = []opInfo{
	{"OpNop", spirv.OpNop, nil},
	{"OpUndef", 1, []operand{oRT, oRes}},
	{"OpSource", spirv.OpSource, []operand{enum(sourceEnum), oLit}},
	{"OpName", spirv.OpName, []operand{oID, oStr}},
	{"OpMemberName", spirv.OpMemberName, []operand{oID, oLit, oStr}},
	{"OpString", 7, []operand{oRes, oStr}},
	{"OpExtension", 10, []operand{oStr}},
	{"OpExtInstImport", spirv.OpExtInstImport, []operand{oRes, oStr}},
	{"OpExtInst", 12, []operand{oRT, oRes, oID, {kind: kExtInst}, oIDs}},
	{"OpMemoryModel", spirv.OpMemoryModel, []operand{enum(addressingEnum), enum(memoryEnum)}},
	{"OpEntryPoint", spirv.OpEntryPoint, []operand{enum(execModelEnum), oID, oStr, oIDs}},
	{"OpExecutionMode", spirv.OpExecutionMode, []operand{oID, {kind: kExecMode, enum: execModeEnum}}},
	{"OpCapability", spirv.OpCapability, []operand{enum(capabilityEnum)}},

	{"OpTypeVoid", spirv.OpTypeVoid, []operand{oRes}},
	{"OpTypeBool", spirv.OpTypeBool, []operand{oRes}},
	{"OpTypeInt", spirv.OpTypeInt, []operand{oRes, oLit, oLit}},
	{"OpTypeFloat", spirv.OpTypeFloat, []operand{oRes, oLit}},
	{"OpTypeVector", spirv.OpTypeVector, []operand{oRes, oID, oLit}},
	{"OpTypeMatrix", spirv.OpTypeMatrix, []operand{oRes, oID, oLit}},
	{"OpTypeImage", 25, []operand{oRes, oID, enum(dimEnum), oLit, oLit, oLit, oLit, enum(imageFormatEnum), optEnum(accessEnum)}},
	{"OpTypeSampler", 26, []operand{oRes}},
	{"OpTypeSampledImage", 27, []operand{oRes, oID}},
	{"OpTypeArray", spirv.OpTypeArray, []operand{oRes, oID, oID}},
	{"OpTypeRuntimeArray", 29, []operand{oRes, oID}},
	{"OpTypeStruct", spirv.OpTypeStruct, []operand{oRes, oIDs}},
	{"OpTypePointer", spirv.OpTypePointer, []operand{oRes, enum(storageEnum), oID}},
	{"OpTypeFunction", spirv.OpTypeFunction, []operand{oRes, oID, oIDs}},

	{"OpConstantTrue", 41, []operand{oRT, oRes}},
	{"OpConstantFalse", 42, []operand{oRT, oRes}},
	{"OpConstant", spirv.OpConstant, []operand{oRT, oRes, {kind: kValue}}},
	{"OpConstantComposite", spirv.OpConstantComposite, []operand{oRT, oRes, oIDs}},
	{"OpConstantNull", 46, []operand{oRT, oRes}},

	{"OpFunction", spirv.OpFunction, []operand{oRT, oRes, enum(functionEnum), oID}},
	{"OpFunctionParameter", spirv.OpFunctionParameter, []operand{oRT, oRes}},
	{"OpFunctionEnd", spirv.OpFunctionEnd, nil},
	{"OpFunctionCall", 57, []operand{oRT, oRes, oID, oIDs}},
	{"OpVariable", spirv.OpVariable, []operand{oRT, oRes, enum(storageEnum), oIDs}},
	{"OpLoad", spirv.OpLoad, []operand{oRT, oRes, oID, oMem}},
	{"OpStore", spirv.OpStore, []operand{oID, oID, oMem}},
	{"OpAccessChain", spirv.OpAccessChain, []operand{oRT, oRes, oID, oIDs}},
	{"OpArrayLength", 68, []operand{oRT, oRes, oID, oLit}},
	{"OpDecorate", spirv.OpDecorate, []operand{oID, {kind: kDecoration, enum: decorationEnum}}},
	{"OpMemberDecorate", spirv.OpMemberDecorate, []operand{oID, oLit, {kind: kDecoration, enum: decorationEnum}}},

	{"OpVectorExtractDynamic", 77, []operand{oRT, oRes, oID, oID}},
	{"OpVectorInsertDynamic", 78, []operand{oRT, oRes, oID, oID, oID}},
	{"OpVectorShuffle", 79, []operand{oRT, oRes, oID, oID, oLits}},
	{"OpCompositeConstruct", 80, []operand{oRT, oRes, oIDs}},
	{"OpCompositeExtract", 81, []operand{oRT, oRes, oID, oLits}},
	{"OpCompositeInsert", 82, []operand{oRT, oRes, oID, oID, oLits}},
	unOp("OpCopyObject", 83),

	binOp("OpSampledImage", 86),
	{"OpImageSampleImplicitLod", 87, []operand{oRT, oRes, oID, oID, oImage}},
	{"OpImageSampleExplicitLod", 88, []operand{oRT, oRes, oID, oID, oImage}},
	{"OpImageSampleDrefImplicitLod", 89, []operand{oRT, oRes, oID, oID, oID, oImage}},
	{"OpImageSampleDrefExplicitLod", 90, []operand{oRT, oRes, oID, oID, oID, oImage}},
	{"OpImageFetch", 95, []operand{oRT, oRes, oID, oID, oImage}},
	{"OpImageGather", 96, []operand{oRT, oRes, oID, oID, oID, oImage}},
	{"OpImageRead", 98, []operand{oRT, oRes, oID, oID, oImage}},
	{"OpImageWrite", 99, []operand{oID, oID, oID, oImage}},
	unOp("OpImage", 100),
	binOp("OpImageQuerySizeLod", 103),
	unOp("OpImageQuerySize", 104),
	unOp("OpImageQueryLevels", 106),

	unOp("OpConvertFToU", 109),
	unOp("OpConvertFToS", 110),
	unOp("OpConvertSToF", 111),
	unOp("OpConvertUToF", 112),
	unOp("OpUConvert", 113),
	unOp("OpSConvert", 114),
	unOp("OpFConvert", 115),
	unOp("OpQuantizeToF16", 116),
	unOp("OpBitcast", 124),
	unOp("OpSNegate", 126),
	unOp("OpFNegate", 127),

	binOp("OpIAdd", 128),
	binOp("OpFAdd", 129),
	binOp("OpISub", 130),
	binOp("OpFSub", 131),
	binOp("OpIMul", 132),
	binOp("OpFMul", 133),
	binOp("OpUDiv", 134),
	binOp("OpSDiv", 135),
	binOp("OpFDiv", 136),
	binOp("OpUMod", 137),
	binOp("OpSRem", 138),
	binOp("OpSMod", 139),
	binOp("OpFRem", 140),
	binOp("OpFMod", 141),
	binOp("OpVectorTimesScalar", 142),
	binOp("OpDot", 148),
	binOp("OpIAddCarry", 149),
	binOp("OpISubBorrow", 150),
	binOp("OpUMulExtended", 151),
	binOp("OpSMulExtended", 152),

	unOp("OpAny", 154),
	unOp("OpAll", 155),
	unOp("OpIsNan", 156),
	unOp("OpIsInf", 157),
	binOp("OpLogicalEqual", 164),
	binOp("OpLogicalNotEqual", 165),
	binOp("OpLogicalOr", 166),
	binOp("OpLogicalAnd", 167),
	unOp("OpLogicalNot", 168),
	{"OpSelect", 169, []operand{oRT, oRes, oID, oID, oID}},
	binOp("OpIEqual", 170),
	binOp("OpINotEqual", 171),
	binOp("OpUGreaterThan", 172),
	binOp("OpSGreaterThan", 173),
	binOp("OpUGreaterThanEqual", 174),
	binOp("OpSGreaterThanEqual", 175),
	binOp("OpULessThan", 176),
	binOp("OpSLessThan", 177),
	binOp("OpULessThanEqual", 178),
	binOp("OpSLessThanEqual", 179),
	binOp("OpFOrdEqual", 180),
	binOp("OpFUnordEqual", 181),
	binOp("OpFOrdNotEqual", 182),
	binOp("OpFUnordNotEqual", 183),
	binOp("OpFOrdLessThan", 184),
	binOp("OpFUnordLessThan", 185),
	binOp("OpFOrdGreaterThan", 186),
	binOp("OpFUnordGreaterThan", 187),
	binOp("OpFOrdLessThanEqual", 188),
	binOp("OpFUnordLessThanEqual", 189),
	binOp("OpFOrdGreaterThanEqual", 190),
	binOp("OpFUnordGreaterThanEqual", 191),
	binOp("OpShiftRightLogical", 194),
	binOp("OpShiftRightArithmetic", 195),
	binOp("OpShiftLeftLogical", 196),
	binOp("OpBitwiseOr", 197),
	binOp("OpBitwiseXor", 198),
	binOp("OpBitwiseAnd", 199),
	unOp("OpNot", 200),
	{"OpBitFieldInsert", 201, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpBitFieldSExtract", 202, []operand{oRT, oRes, oID, oID, oID}},
	{"OpBitFieldUExtract", 203, []operand{oRT, oRes, oID, oID, oID}},
	unOp("OpBitReverse", 204),
	unOp("OpBitCount", 205),
	unOp("OpDPdx", 207),
	unOp("OpDPdy", 208),
	unOp("OpFwidth", 209),

	{"OpControlBarrier", 224, []operand{oID, oID, oID}},
	{"OpMemoryBarrier", 225, []operand{oID, oID}},
	{"OpAtomicLoad", 227, []operand{oRT, oRes, oID, oID, oID}},
	{"OpAtomicStore", 228, []operand{oID, oID, oID, oID}},
	{"OpAtomicExchange", 229, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicCompareExchange", 230, []operand{oRT, oRes, oID, oID, oID, oID, oID, oID}},
	{"OpAtomicIIncrement", 232, []operand{oRT, oRes, oID, oID, oID}},
	{"OpAtomicIDecrement", 233, []operand{oRT, oRes, oID, oID, oID}},
	{"OpAtomicIAdd", 234, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicISub", 235, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicSMin", 236, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicUMin", 237, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicSMax", 238, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicUMax", 239, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicAnd", 240, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicOr", 241, []operand{oRT, oRes, oID, oID, oID, oID}},
	{"OpAtomicXor", 242, []operand{oRT, oRes, oID, oID, oID, oID}},

	{"OpPhi", 245, []operand{oRT, oRes, oIDs}},
	{"OpLoopMerge", 246, []operand{oID, oID, enum(loopEnum)}},
	{"OpSelectionMerge", 247, []operand{oID, enum(selectEnum)}},
	{"OpLabel", spirv.OpLabel, []operand{oRes}},
	{"OpBranch", spirv.OpBranch, []operand{oID}},
	{"OpBranchConditional", 250, []operand{oID, oID, oID, oLits}},
	{"OpSwitch", 251, []operand{oID, oID, {kind: kSwitch}}},
	{"OpKill", 252, nil},
	{"OpReturn", spirv.OpReturn, nil},
	{"OpReturnValue", spirv.OpReturnValue, []operand{oID}},
	{"OpUnreachable", 255, nil},
}

var (
	opByName = map[string]*opInfo{}
	opByCode = map[spirv.OpCode]*opInfo{}
)

func init() {
	for i := range grammar {
		op := &grammar[i]
		opByName[op.name] = op
		opByCode[op.code] = op
	}
}

// Opcode returns the opcode for an instruction name.
func Opcode(name string) (spirv.OpCode, bool) {
	op, ok := opByName[name]
	if !ok {
		return 0, false
	}
	return op.code, true
}

// OpName returns the instruction name for an opcode.
func OpName(code spirv.OpCode) string {
	if op, ok := opByCode[code]; ok {
		return op.name
	}
	return fmt.Sprintf("Op%d", code)
}

// Opcodes lists every instruction name in the grammar, sorted.
func Opcodes() []string {
	names := make([]string, 0, len(opByName))
	for n := range opByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Opcode classes used by the validator and optimizer.
var (
	typeOps = map[spirv.OpCode]bool{
		spirv.OpTypeVoid: true, spirv.OpTypeBool: true, spirv.OpTypeInt: true, spirv.OpTypeFloat: true,
		spirv.OpTypeVector: true, spirv.OpTypeMatrix: true, 25: true,
		26: true, 27: true, spirv.OpTypeArray: true,
		29: true, spirv.OpTypeStruct: true, spirv.OpTypePointer: true, spirv.OpTypeFunction: true,
	}
	constantOps = map[spirv.OpCode]bool{
		41: true, 42: true, spirv.OpConstant: true,
		spirv.OpConstantComposite: true, 46: true, 1: true,
	}
	terminatorOps = map[spirv.OpCode]bool{
		spirv.OpBranch: true, 250: true, 251: true, 252: true,
		spirv.OpReturn: true, spirv.OpReturnValue: true, 255: true,
	}
	debugOps = map[spirv.OpCode]bool{
		spirv.OpSource: true, spirv.OpName: true, spirv.OpMemberName: true, 7: true,
	}
	annotationOps = map[spirv.OpCode]bool{
		spirv.OpDecorate: true, spirv.OpMemberDecorate: true,
	}
)

// sideEffectFree lists function-body instructions that can be dropped when
// their result is unused.
func sideEffectFree(code spirv.OpCode) bool {
	switch {
	case code == spirv.OpLoad, code == spirv.OpAccessChain, code == 1:
		return true
	case code >= 77 && code <= 83:
		return true
	case code == 86, code == 100:
		return true
	case code >= 109 && code <= 209:
		return true
	case code == 245:
		return true
	}
	return false
}
