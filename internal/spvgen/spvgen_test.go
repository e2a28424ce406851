package spvgen

import (
	"errors"
	"strings"
	"testing"

	"gcnrecomp/internal/backend"
	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
	g "gcnrecomp/internal/gcn/gcntest"
	"gcnrecomp/internal/spvasm"
	"gcnrecomp/internal/stage"
)

const (
	opSMovB32      = 3
	opSSwappcB64   = 33
	opSEndpgm      = 1
	opSBranch      = 2
	opSCbranchScc0 = 4
	opSBarrier     = 10
	opSCmpEqU32    = 6
	opSBufferLoad  = 8
	opVMovB32      = 1
	opVAddF32      = 3
	opVCmpxGtF32   = 20
	opVInterpP1    = 0
	opVInterpP2    = 1
	opBufferLoad   = 12
	opImageSample  = 32
	opDsWriteB32   = 13
	opDsReadB32    = 54

	one = 242 // inline constant 1.0

	targetMrt0   = 0
	targetPos0   = 12
	targetParam0 = 32
)

func endpgm() uint32 { return g.SOPP(opSEndpgm, 0) }

func parse(t *testing.T, typ gcn.ShaderType, words ...[]uint32) *gcn.Code {
	t.Helper()
	var p g.Program
	for _, w := range words {
		p.Add(w...)
	}
	code, err := gcn.Parse(p.Words, gcn.Options{Type: typ})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return code
}

func w(words ...uint32) []uint32 { return words }

// assemble checks that the generated text assembles and validates in
// every optimizer mode.
func assemble(t *testing.T, src string) {
	t.Helper()
	for _, mode := range []spvasm.Mode{spvasm.ModeNone, spvasm.ModeSize, spvasm.ModePerformance} {
		if _, err := backend.New(backend.Options{Validate: true, Optimize: mode}).Run(src); err != nil {
			t.Fatalf("%s: %s\n%s", mode, backend.Report(err), src)
		}
	}
}

func wantText(t *testing.T, src string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(src, p) {
			t.Errorf("missing %q in\n%s", p, src)
		}
	}
}

func emptyLayout() bind.Layout {
	return bind.Layout{BufferBinding: -1, TextureBinding: -1, SamplerBinding: -1, GdsBinding: -1}
}

func TestVS_PositionAndAttributes(t *testing.T) {
	code := parse(t, gcn.TypeVertex,
		w(g.VOP2(opVAddF32, 1, g.V(4), 5)),
		w(g.VOP1(opVMovB32, 3, one)),
		g.EXP(targetPos0, 0xf, true, false, [4]uint32{1, 5, 6, 3}),
		g.EXP(targetParam0+1, 0xf, false, false, [4]uint32{4, 5, 6, 3}),
		w(endpgm()),
	)
	info := &stage.VsInputInfo{
		Attributes: []stage.Attribute{{RegStart: 4, RegCount: 3}},
		Resources:  bind.Resources{Layout: emptyLayout()},
	}
	src, err := VS(code, info, Options{PrintNames: true})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		`OpEntryPoint Vertex %main "main"`,
		"OpDecorate %vertex_index BuiltIn VertexIndex",
		"OpDecorate %position BuiltIn Position",
		"OpDecorate %attr0 Location 0",
		"OpDecorate %param1 Location 1",
		`OpName %v4 "v4"`,
	)
	if strings.Contains(src, "OpSelect %uint") {
		t.Errorf("program never writes EXEC, writes must not be predicated:\n%s", src)
	}
	assemble(t, src)
}

func TestVS_NamesOff(t *testing.T) {
	code := parse(t, gcn.TypeVertex, w(g.VOP1(opVMovB32, 0, one)), w(endpgm()))
	src, err := VS(code, &stage.VsInputInfo{Resources: bind.Resources{Layout: emptyLayout()}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(src, "OpName") {
		t.Errorf("OpName emitted without PrintNames:\n%s", src)
	}
}

func TestPS_InterpolationAndKill(t *testing.T) {
	code := parse(t, gcn.TypePixel,
		w(g.VINTRP(opVInterpP1, 2, 0, 0, 0)),
		w(g.VINTRP(opVInterpP2, 2, 1, 0, 0)),
		w(g.VINTRP(opVInterpP2, 3, 1, 1, 2)),
		w(g.VOPC(opVCmpxGtF32, g.V(2), 3)),
		g.EXP(targetMrt0, 0xf, true, true, [4]uint32{2, 3, 2, 3}),
		w(endpgm()),
	)
	info := &stage.PsInputInfo{
		Interpolators: []uint32{0, 1 << 10},
		InputAddr:     stage.InputPerspCenter | stage.InputPosX | stage.InputPosY,
		PixelKill:     true,
		Resources:     bind.Resources{Layout: emptyLayout()},
	}
	src, err := PS(code, info, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		`OpEntryPoint Fragment %main "main"`,
		"OpExecutionMode %main OriginUpperLeft",
		"OpDecorate %in1 Flat",
		"OpDecorate %frag_coord BuiltIn FragCoord",
		"OpDecorate %mrt0 Location 0",
		"OpKill",
	)
	if strings.Contains(src, "OpDecorate %in0 Flat") {
		t.Error("input 0 is not flat")
	}
	// v_cmpx writes EXEC, so vector writes keep inactive lanes.
	if !strings.Contains(src, "OpSelect %uint") {
		t.Errorf("vector writes not predicated:\n%s", src)
	}
	assemble(t, src)
}

func TestPS_FragCoordRegister(t *testing.T) {
	code := parse(t, gcn.TypePixel, w(endpgm()))
	info := &stage.PsInputInfo{
		// persp_center (2) and linear_center (2) come before pos_x.
		InputAddr: stage.InputPerspCenter | stage.InputLinearCenter | stage.InputPosX,
		Resources: bind.Resources{Layout: emptyLayout()},
	}
	src, err := PS(code, info, Options{PrintNames: true})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src, "OpStore %v4 ")
	assemble(t, src)
}

func TestCS_LDSAndBarrier(t *testing.T) {
	code := parse(t, gcn.TypeCompute,
		g.DS(opDsWriteB32, 0, 0, 1, 0, 0, 0, false),
		w(g.SOPP(opSBarrier, 0)),
		g.DS(opDsReadB32, 2, 0, 0, 0, 4, 0, false),
		w(g.VOP1(opVMovB32, 3, 8)),
		w(endpgm()),
	)
	info := &stage.CsInputInfo{
		ThreadsNum: [3]uint32{64, 1, 1},
		GroupID:    [3]bool{true, false, true},
		ThreadIDs:  1,
		LdsSize:    2,
		UserSgprs:  8,
		Resources:  bind.Resources{Layout: emptyLayout()},
	}
	src, err := CS(code, info, Options{PrintNames: true})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		"OpExecutionMode %main LocalSize 64 1 1",
		"OpDecorate %local_id BuiltIn LocalInvocationId",
		"OpDecorate %workgroup_id BuiltIn WorkgroupId",
		"OpVariable %ptr_Workgroup_lds_arr Workgroup",
		"%lds_arr = OpTypeArray %uint %u_256",
		"OpControlBarrier %u_2 %u_2 %u_264",
		"OpStore %s8 ",
		"OpStore %s9 ",
	)
	assemble(t, src)
}

func TestForwardBranch(t *testing.T) {
	code := parse(t, gcn.TypeCompute,
		w(g.SOPC(opSCmpEqU32, 0, 1)),
		w(g.SOPP(opSCbranchScc0, 1)),
		w(g.SOP1(opSMovB32, 2, g.Int(1))),
		w(endpgm()),
	)
	info := &stage.CsInputInfo{ThreadsNum: [3]uint32{1, 1, 1}, Resources: bind.Resources{Layout: emptyLayout()}}
	src, err := CS(code, info, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// Target of the branch at 0x04 is 0x0c.
	wantText(t, src, "OpSelect %uint", "%u_12", "OpStore %skip %u_4294967295", "OpSelectionMerge")
	assemble(t, src)
}

func TestErrors(t *testing.T) {
	csInfo := &stage.CsInputInfo{ThreadsNum: [3]uint32{1, 1, 1}, Resources: bind.Resources{Layout: emptyLayout()}}
	tests := []struct {
		name string
		code *gcn.Code
		want error
		pc   uint32
	}{
		{"backward", parse(t, gcn.TypeCompute,
			w(g.SOP1(opSMovB32, 0, 1)),
			w(g.SOPP(opSBranch, -2)),
			w(endpgm())), ErrBackwardBranch, 4},
		{"swappc without fetch", parse(t, gcn.TypeCompute,
			w(g.SOP1(opSMovB32, 0, 1)),
			w(g.SOP1(opSSwappcB64, 2, 4)),
			w(endpgm())), ErrUnsupported, 4},
		{"unbound constant buffer", parse(t, gcn.TypeCompute,
			w(g.SMRD(opSBufferLoad, 4, 8, true, 0)),
			w(endpgm())), ErrUnboundResource, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CS(tt.code, csInfo, Options{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var ge *Error
			if !errors.As(err, &ge) {
				t.Fatalf("error %T is not *spvgen.Error", err)
			}
			if ge.PC != tt.pc {
				t.Errorf("pc = %#x, want %#x", ge.PC, tt.pc)
			}
		})
	}
}

func TestBuffers(t *testing.T) {
	code := parse(t, gcn.TypeVertex,
		w(g.SMRD(opSBufferLoad, 8, 0, true, 1)),
		g.MUBUF(g.Buffer{Op: opBufferLoad, VData: 1, VAddr: 0, SRsrc: 0, SOffset: g.Int(0), Offen: true, Offset: 16}),
		w(g.VOP1(opVMovB32, 2, 8)),
		g.EXP(targetPos0, 0xf, true, false, [4]uint32{1, 2, 1, 2}),
		w(endpgm()),
	)
	l := emptyLayout()
	l.BufferBinding = 0
	l.DescriptorSet = 1
	l.PushConstantOffset = 32
	l.PushConstantSize = 16
	info := &stage.VsInputInfo{Resources: bind.Resources{
		Buffers: []bind.Buffer{{Usage: bind.KindConstant, Origin: bind.Origin{StartRegister: 0}}},
		Layout:  l,
	}}
	src, err := VS(code, info, Options{PrintNames: true})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		"OpDecorate %buffers DescriptorSet 1",
		"OpDecorate %buffers Binding 0",
		"OpMemberDecorate %PushConstants 0 Offset 32",
		"%pc_arr = OpTypeArray %v4uint %u_1",
		"OpVariable %ptr_StorageBuffer_buffer_arr StorageBuffer",
		"OpStore %s3 ",
	)
	assemble(t, src)
}

func TestImageSample(t *testing.T) {
	code := parse(t, gcn.TypePixel,
		g.MIMG(opImageSample, 0xf, 4, 0, 0, 8),
		g.EXP(targetMrt0, 0xf, true, true, [4]uint32{4, 5, 6, 7}),
		w(endpgm()),
	)
	l := emptyLayout()
	l.TextureBinding, l.SamplerBinding = 0, 1
	l.PushConstantSize = 48
	info := &stage.PsInputInfo{Resources: bind.Resources{
		Textures: []bind.Texture{{Usage: bind.KindSampled, Origin: bind.Origin{StartRegister: 0}}},
		Samplers: []bind.Sampler{{Origin: bind.Origin{StartRegister: 8}}},
		Layout:   l,
	}}
	src, err := PS(code, info, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		"%image = OpTypeImage %float 2D 0 0 0 1 Unknown",
		"OpSampledImage %simage",
		"OpImageSampleImplicitLod %v4float",
		"OpDecorate %samplers Binding 1",
	)
	assemble(t, src)
}

func TestDebugPrintf(t *testing.T) {
	code := parse(t, gcn.TypeCompute,
		w(g.SOP1(opSMovB32, 0, g.Int(7))),
		w(endpgm()),
	)
	code.InjectDebugPrintf(gcn.DebugPrintf{
		PC:     4,
		Format: "s0=%u",
		Types:  []gcn.PrintfArg{gcn.PrintfUint},
		Args:   []gcn.Operand{gcn.Sgpr(0, 1)},
	})
	info := &stage.CsInputInfo{ThreadsNum: [3]uint32{1, 1, 1}, Resources: bind.Resources{Layout: emptyLayout()}}
	src, err := CS(code, info, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, src,
		`OpExtension "SPV_KHR_non_semantic_info"`,
		`%printf = OpExtInstImport "NonSemantic.DebugPrintf"`,
		`%str0 = OpString "s0=%u"`,
		"OpExtInst %void %printf DebugPrintf %str0",
	)
	assemble(t, src)
}

func TestEmbedded(t *testing.T) {
	vs, err := EmbeddedVS(0, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, vs, "BuiltIn Position", "OpConvertUToF")
	assemble(t, vs)

	ps, err := PS(nil, &stage.PsInputInfo{Embedded: true}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	wantText(t, ps, "OpDecorate %mrt0 Location 0")
	assemble(t, ps)

	if _, err := EmbeddedVS(3, Options{}); !errors.Is(err, ErrUnknownEmbedded) {
		t.Errorf("EmbeddedVS(3) = %v, want ErrUnknownEmbedded", err)
	}
	if _, err := EmbeddedPS(1, Options{}); !errors.Is(err, ErrUnknownEmbedded) {
		t.Errorf("EmbeddedPS(1) = %v, want ErrUnknownEmbedded", err)
	}
}

func TestEmittersCoverDecodedTypes(t *testing.T) {
	// Every branch the decoder produces must be handled by the block walker.
	for _, typ := range []gcn.InstructionType{gcn.SBranch, gcn.SCbranchScc0, gcn.SCbranchExecz, gcn.SEndpgm} {
		if _, ok := emitters[typ]; !ok {
			t.Errorf("no emitter for %s", typ)
		}
	}
	for _, typ := range gcn.Types() {
		if gcn.IsCmpx(typ) && strings.HasSuffix(typ.String(), "_f32") {
			if _, ok := emitters[typ]; !ok {
				t.Errorf("no emitter for %s", typ)
			}
		}
	}
}
