package spvasm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/naga/spirv"
)

const computeSrc = `; minimal compute module
OpCapability Shader
%glsl = OpExtInstImport "GLSL.std.450"
OpMemoryModel Logical GLSL450
OpEntryPoint GLCompute %main "main"
OpExecutionMode %main LocalSize 64 1 1
OpName %main "main"
OpName %unused "unused"
%void = OpTypeVoid
%fn = OpTypeFunction %void
%float = OpTypeFloat 32
%uint = OpTypeInt 32 0
%half = OpConstant %float 1.5
%nan = OpConstant %float 0x7fc00000
%all = OpConstant %uint -1
%unused = OpConstant %uint 7
%ptr = OpTypePointer Function %uint
%main = OpFunction %void None %fn
%entry = OpLabel
%v = OpVariable %ptr Function
OpStore %v %all
%s = OpExtInst %float %glsl Sqrt %half
OpReturn
OpFunctionEnd
`

func mustAssemble(t *testing.T, src string) *Module {
	t.Helper()
	m, err := Assemble(src)
	if err != nil {
		var ae *AssembleError
		if errors.As(err, &ae) {
			t.Fatal(ae.Report())
		}
		t.Fatal(err)
	}
	return m
}

func TestAssemble_Header(t *testing.T) {
	m := mustAssemble(t, computeSrc)
	words := m.Words()
	if words[0] != spirv.MagicNumber {
		t.Fatalf("magic = 0x%08x", words[0])
	}
	if words[1] != 0x00010300 {
		t.Errorf("version word = 0x%08x, want 0x00010300", words[1])
	}
	// glsl main unused void fn float uint half nan all ptr entry v s
	if m.Bound != 15 {
		t.Errorf("bound = %d, want 15", m.Bound)
	}
	if m.Instructions[0].Opcode != spirv.OpCapability || m.Instructions[0].Words[0] != 1 {
		t.Errorf("first instruction = %+v", m.Instructions[0])
	}
}

func TestAssemble_Constants(t *testing.T) {
	m := mustAssemble(t, computeSrc)
	want := map[uint32]uint32{
		8:  0x3fc00000, // 1.5
		9:  0x7fc00000,
		10: 0xffffffff,
		3:  7,
	}
	for _, in := range m.Instructions {
		if in.Opcode != spirv.OpConstant {
			continue
		}
		id := in.Words[1]
		if in.Words[2] != want[id] {
			t.Errorf("constant %%%d = 0x%08x, want 0x%08x", id, in.Words[2], want[id])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	m := mustAssemble(t, computeSrc)
	text := Disassemble(m)
	again := mustAssemble(t, text)
	if !bytes.Equal(m.Bytes(), again.Bytes()) {
		t.Fatalf("round trip changed the module:\n%s", text)
	}
	parsed, err := ParseBytes(m.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if Disassemble(parsed) != text {
		t.Error("disassembly of parsed bytes differs")
	}
}

func TestDisassemble_Text(t *testing.T) {
	text := Disassemble(mustAssemble(t, computeSrc))
	for _, want := range []string{
		"OpEntryPoint GLCompute %2 \"main\"",
		"%1 = OpExtInstImport \"GLSL.std.450\"",
		"OpConstant %6 1.5",
		"OpConstant %6 0x7fc00000",
		"OpConstant %7 4294967295",
		"OpExtInst %6 %1 Sqrt %8",
		"OpExecutionMode %2 LocalSize 64 1 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("disassembly missing %q:\n%s", want, text)
		}
	}
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		col  int
		msg  string
	}{
		{"unknown op", "OpCapability Shader\nOpFrobnicate %x", 2, 1, "unknown instruction"},
		{"missing result", "OpTypeVoid", 1, 1, "requires a result id"},
		{"unexpected result", "%x = OpCapability Shader", 1, 1, "does not produce a result"},
		{"bad enum", "OpCapability Shadr", 1, 14, "unknown capability"},
		{"extra operand", "%v = OpTypeVoid %w", 1, 17, "unexpected operand"},
		{"unterminated", "OpName %x \"abc", 1, 11, "unterminated string"},
		{"missing operand", "%p = OpTypePointer Function", 1, 28, "missing id operand"},
		{"bad constant", "%u = OpTypeInt 32 0\n%c = OpConstant %u x", 2, 20, "expected number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.src)
			var ae *AssembleError
			if !errors.As(err, &ae) {
				t.Fatalf("err = %v, want *AssembleError", err)
			}
			if ae.Line != tt.line || ae.Column != tt.col {
				t.Errorf("position = %d:%d, want %d:%d", ae.Line, ae.Column, tt.line, tt.col)
			}
			if !strings.Contains(ae.Msg, tt.msg) {
				t.Errorf("msg = %q, want %q", ae.Msg, tt.msg)
			}
			if !strings.Contains(tt.src, ae.Window) || ae.Window == "" {
				t.Errorf("window %q not taken from source", ae.Window)
			}
		})
	}
}

func TestAssembleError_WindowClipped(t *testing.T) {
	src := strings.Repeat("; padding\n", 40) + "OpBogus\n" + strings.Repeat("; tail\n", 40)
	_, err := Assemble(src)
	var ae *AssembleError
	if !errors.As(err, &ae) {
		t.Fatal(err)
	}
	if len(ae.Window) != 2*windowRadius {
		t.Errorf("window length = %d, want %d", len(ae.Window), 2*windowRadius)
	}
	if !strings.Contains(ae.Report(), "OpBogus") {
		t.Error("report does not show the failing line")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(mustAssemble(t, computeSrc)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no entry point", "OpCapability Shader\nOpMemoryModel Logical GLSL450\n", "missing OpEntryPoint"},
		{"no capability", "OpMemoryModel Logical GLSL450\n", "missing OpCapability"},
		{"undefined id", strings.Replace(computeSrc, "OpStore %v %all", "OpStore %v %ghost", 1), "undefined id"},
		{"result type not a type", strings.Replace(computeSrc, "%s = OpExtInst %float", "%s = OpExtInst %half", 1), "not a type"},
		{"unterminated block", strings.Replace(computeSrc, "OpReturn\n", "", 1), "not terminated"},
		{"after terminator", strings.Replace(computeSrc, "OpReturn\n", "OpReturn\nOpStore %v %all\n", 1), "after a block terminator"},
		{"entry not a function", strings.Replace(computeSrc, `OpEntryPoint GLCompute %main`, `OpEntryPoint GLCompute %uint`, 1), "not a function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(mustAssemble(t, tt.src))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if !strings.Contains(strings.Join(ve.Problems, "\n"), tt.want) {
				t.Errorf("problems = %q, want %q", ve.Problems, tt.want)
			}
			if ve.Disassembly == "" {
				t.Error("missing disassembly")
			}
		})
	}
}

func TestValidate_Bound(t *testing.T) {
	m := mustAssemble(t, computeSrc)
	m.Bound = 5
	if err := Validate(m); err == nil || !strings.Contains(err.Error(), "outside bound") {
		t.Errorf("err = %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := ParseBytes([]byte{1, 2, 3}); !errors.Is(err, ErrTruncated) {
		t.Errorf("odd length: %v", err)
	}
	if _, err := Parse([]uint32{1, 2, 3, 4, 5}); !errors.Is(err, ErrBadMagic) {
		t.Errorf("bad magic: %v", err)
	}
	if _, err := Parse([]uint32{spirv.MagicNumber, 0x10300, 0, 2, 0, 3 << 16}); !errors.Is(err, ErrTruncated) {
		t.Errorf("short instruction: %v", err)
	}
}

func TestOptimize(t *testing.T) {
	m := mustAssemble(t, computeSrc)

	same, err := Optimize(m, ModeNone)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(same.Bytes(), m.Bytes()) {
		t.Error("ModeNone changed the module")
	}

	for _, mode := range []Mode{ModeSize, ModePerformance} {
		t.Run(mode.String(), func(t *testing.T) {
			out, err := Optimize(m, mode)
			if err != nil {
				t.Fatal(err)
			}
			if err := Validate(out); err != nil {
				t.Fatal(err.(*ValidationError).Report())
			}
			text := Disassemble(out)
			if strings.Count(text, "OpConstant ") != 2 || strings.Contains(text, "\"unused\"") {
				t.Errorf("unused constant survived:\n%s", text)
			}
			if got := strings.Contains(text, "OpName"); got != (mode == ModePerformance) {
				t.Errorf("OpName present = %v:\n%s", got, text)
			}
			if out.Bound >= m.Bound {
				t.Errorf("bound %d not compacted below %d", out.Bound, m.Bound)
			}
			if len(out.Bytes()) >= len(m.Bytes()) {
				t.Error("module did not shrink")
			}
		})
	}
}

func TestOptimize_KeepsInterface(t *testing.T) {
	src := `OpCapability Shader
OpMemoryModel Logical GLSL450
OpEntryPoint Vertex %main "main" %pos
OpDecorate %pos BuiltIn Position
%void = OpTypeVoid
%fn = OpTypeFunction %void
%float = OpTypeFloat 32
%vec4 = OpTypeVector %float 4
%out = OpTypePointer Output %vec4
%pos = OpVariable %out Output
%priv = OpVariable %out Output
%main = OpFunction %void None %fn
%l = OpLabel
OpReturn
OpFunctionEnd
`
	out, err := Optimize(mustAssemble(t, src), ModePerformance)
	if err != nil {
		t.Fatal(err)
	}
	text := Disassemble(out)
	if !strings.Contains(text, "BuiltIn Position") {
		t.Errorf("interface variable dropped:\n%s", text)
	}
	if strings.Count(text, "OpVariable") != 1 {
		t.Errorf("unreferenced variable kept:\n%s", text)
	}
}

func TestModeText(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("size")); err != nil || m != ModeSize {
		t.Errorf("size -> %v, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("fast")); err == nil {
		t.Error("accepted unknown mode")
	}
}

func TestOpcodeLookup(t *testing.T) {
	code, ok := Opcode("OpIAdd")
	if !ok || code != 128 {
		t.Errorf("OpIAdd = %d, %v", code, ok)
	}
	if OpName(spirv.OpReturn) != "OpReturn" {
		t.Errorf("OpName(OpReturn) = %q", OpName(spirv.OpReturn))
	}
	if OpName(9999) != "Op9999" {
		t.Errorf("unknown op name = %q", OpName(9999))
	}
	if len(Opcodes()) != len(grammar) {
		t.Errorf("Opcodes() has %d entries, grammar %d", len(Opcodes()), len(grammar))
	}
}

const fragmentSrc = `; sampled, fetched and queried image
OpCapability Shader
OpCapability ImageQuery
OpMemoryModel Logical GLSL450
OpEntryPoint Fragment %main "main" %uv %color
OpExecutionMode %main OriginUpperLeft
OpDecorate %uv Location 0
OpDecorate %color Location 0
OpDecorate %tex DescriptorSet 0
OpDecorate %tex Binding 1
OpDecorate %smp DescriptorSet 0
OpDecorate %smp Binding 2
%void = OpTypeVoid
%fn = OpTypeFunction %void
%bool = OpTypeBool
%float = OpTypeFloat 32
%int = OpTypeInt 32 1
%v2float = OpTypeVector %float 2
%v2int = OpTypeVector %int 2
%v4float = OpTypeVector %float 4
%image = OpTypeImage %float 2D 0 0 0 1 Unknown
%sampler = OpTypeSampler
%simage = OpTypeSampledImage %image
%yes = OpConstantTrue %bool
%no = OpConstantFalse %bool
%f0 = OpConstant %float 0
%i0 = OpConstant %int 0
%p_image = OpTypePointer UniformConstant %image
%p_sampler = OpTypePointer UniformConstant %sampler
%p_in = OpTypePointer Input %v2float
%p_out = OpTypePointer Output %v4float
%tex = OpVariable %p_image UniformConstant
%smp = OpVariable %p_sampler UniformConstant
%uv = OpVariable %p_in Input
%color = OpVariable %p_out Output
%main = OpFunction %void None %fn
%entry = OpLabel
%img = OpLoad %image %tex
%s = OpLoad %sampler %smp
%coord = OpLoad %v2float %uv
%si = OpSampledImage %simage %img %s
%a = OpImageSampleImplicitLod %v4float %si %coord
%b = OpImageSampleExplicitLod %v4float %si %coord Lod %f0
%size = OpImageQuerySizeLod %v2int %img %i0
%levels = OpImageQueryLevels %int %img
%c = OpImageFetch %v4float %img %size Lod %levels
%d = OpDot %float %a %b
%pick = OpSelect %bool %yes %no %yes
%e = OpVectorTimesScalar %v4float %c %d
OpStore %color %e
OpReturn
OpFunctionEnd
`

func TestAssemble_ImageSampling(t *testing.T) {
	m := mustAssemble(t, fragmentSrc)
	if err := Validate(m); err != nil {
		t.Fatal(err.(*ValidationError).Report())
	}

	want := map[string]spirv.OpCode{
		"OpTypeImage":              25,
		"OpTypeSampler":            26,
		"OpTypeSampledImage":       27,
		"OpConstantTrue":           41,
		"OpConstantFalse":          42,
		"OpSampledImage":           86,
		"OpImageSampleImplicitLod": 87,
		"OpImageSampleExplicitLod": 88,
		"OpImageFetch":             95,
		"OpImageQuerySizeLod":      103,
		"OpImageQueryLevels":       106,
		"OpDot":                    148,
	}
	seen := map[spirv.OpCode]bool{}
	for _, in := range m.Instructions {
		seen[in.Opcode] = true
	}
	for name, code := range want {
		if got, ok := Opcode(name); !ok || got != code {
			t.Errorf("Opcode(%s) = %d, %v, want %d", name, got, ok, code)
		}
		if !seen[code] {
			t.Errorf("%s (%d) not emitted", name, code)
		}
	}

	text := Disassemble(m)
	for _, s := range []string{
		"OpTypeImage %9 2D 0 0 0 1 Unknown",
		"OpImageSampleExplicitLod",
		" Lod %",
		"OpEntryPoint Fragment",
	} {
		if !strings.Contains(text, s) {
			t.Errorf("disassembly missing %q:\n%s", s, text)
		}
	}
	again := mustAssemble(t, text)
	if !bytes.Equal(m.Bytes(), again.Bytes()) {
		t.Fatalf("round trip changed the module:\n%s", text)
	}
}
