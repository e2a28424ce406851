package gcn

import (
	"errors"
	"strings"
	"testing"

	g "gcnrecomp/internal/gcn/gcntest"
)

const (
	opSMovB32     = 3
	opSGetpcB64   = 31
	opSSetpcB64   = 32
	opSSwappcB64  = 33
	opSNop        = 0
	opSEndpgm     = 1
	opSBranch     = 2
	opSCbranchS0  = 4
	opSCbranchS1  = 5
	opSCodeEnd    = 31
	opSAddU32     = 0
	opVAddF32     = 3
	opVMadmkF32   = 32
	opVMovB32     = 1
	opVMadF32     = 321
	opSBufferLoad = 8
)

func endpgm() uint32 { return g.SOPP(opSEndpgm, 0) }

func mustParse(t *testing.T, words []uint32, opts Options) *Code {
	t.Helper()
	code, err := Parse(words, opts)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return code
}

func TestParse_Minimal(t *testing.T) {
	words := []uint32{g.SOP1(opSMovB32, 0, g.Literal), 0x12345678, endpgm()}
	code := mustParse(t, words, Options{Type: TypeVertex})
	if len(code.Instructions) != 2 {
		t.Fatalf("instructions = %d, want 2", len(code.Instructions))
	}
	mov := code.Instructions[0]
	if mov.Type != SMovB32 || mov.Words != 2 {
		t.Fatalf("got %s words=%d, want s_mov_b32 words=2", mov.Type, mov.Words)
	}
	if mov.Src[0].Kind != OperandLiteralConstant || mov.Src[0].Constant.U() != 0x12345678 || mov.Src[0].Size != 0 {
		t.Errorf("literal = %+v", mov.Src[0])
	}
	if code.Instructions[1].PC != 8 || code.Instructions[1].Type != SEndpgm {
		t.Errorf("end = %+v", code.Instructions[1])
	}
	if code.Size() != 12 {
		t.Errorf("Size() = %d, want 12", code.Size())
	}
	if code.Type != TypeVertex {
		t.Errorf("type = %s", code.Type)
	}
}

func TestParse_LiteralConsumption(t *testing.T) {
	tests := []struct {
		name     string
		words    []uint32
		fixed    int
		typ      InstructionType
		literals []uint32 // expected literal values in source order
	}{
		{"sop1 none", []uint32{g.SOP1(opSMovB32, 0, 1)}, 1, SMovB32, nil},
		{"vop2 src0", []uint32{g.VOP2(opVAddF32, 1, g.Literal, 0), 0x3f800000}, 1, VAddF32, []uint32{0x3f800000}},
		{"sop2 both", []uint32{g.SOP2(opSAddU32, 0, g.Literal, g.Literal), 11, 22}, 1, SAddU32, []uint32{11, 22}},
		{"madmk k", []uint32{g.VOP2(opVMadmkF32, 0, g.V(1), 2), 0x40000000}, 1, VMadmkF32, []uint32{0x40000000}},
		{"madmk src0+k", []uint32{g.VOP2(opVMadmkF32, 0, g.Literal, 2), 5, 6}, 1, VMadmkF32, []uint32{5, 6}},
		{"smrd offset", []uint32{g.SMRD(opSBufferLoad, 0, 4, false, 0xff), 0x100}, 1, SBufferLoadDword, []uint32{0x100}},
		{"setreg imm32", []uint32{g.SOPK(21, 0, 0x1801), 0xdeadbeef}, 1, SSetregImm32B32, []uint32{0xdeadbeef}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := DecodeOne(tt.words, 0, false)
			if err != nil {
				t.Fatalf("DecodeOne: %v", err)
			}
			if in.Type != tt.typ {
				t.Fatalf("type = %s, want %s", in.Type, tt.typ)
			}
			var lits []uint32
			for _, op := range in.Sources() {
				if op.Kind == OperandLiteralConstant {
					if op.Size != 0 {
						t.Errorf("literal size = %d, want 0", op.Size)
					}
					lits = append(lits, op.Constant.U())
				}
			}
			if in.Words != tt.fixed+len(lits) {
				t.Errorf("words = %d, want %d", in.Words, tt.fixed+len(lits))
			}
			if len(lits) != len(tt.literals) {
				t.Fatalf("literals = %v, want %v", lits, tt.literals)
			}
			for i := range lits {
				if lits[i] != tt.literals[i] {
					t.Errorf("literal %d = %#x, want %#x", i, lits[i], tt.literals[i])
				}
			}
		})
	}
}

func TestParse_ContinuesPastEndWhenLabelBeyond(t *testing.T) {
	// 0x00: s_branch label_000c
	// 0x04: s_endpgm          (not the end: label_000c is still ahead)
	// 0x08: s_mov_b32 s0, s1
	// 0x0c: s_endpgm
	words := []uint32{
		g.SOPP(opSBranch, 2),
		endpgm(),
		g.SOP1(opSMovB32, 0, 1),
		endpgm(),
		0xffffffff, // trailing garbage must not be decoded
	}
	code := mustParse(t, words, Options{})
	if len(code.Instructions) != 4 {
		t.Fatalf("instructions = %d, want 4", len(code.Instructions))
	}
	if len(code.Labels) != 1 || code.Labels[0] != (Label{Target: 12, Source: 0}) {
		t.Errorf("labels = %+v", code.Labels)
	}
	if len(code.IndirectLabels) != 0 {
		t.Errorf("unconditional branch produced indirect labels %+v", code.IndirectLabels)
	}
	end := code.Size()
	for _, l := range code.Labels {
		if l.Target >= end {
			t.Errorf("label %+v beyond end %d", l, end)
		}
	}
}

func TestParse_ConditionalBranchIndirectLabel(t *testing.T) {
	words := []uint32{
		g.SOPP(opSCbranchS0, 1), // -> 0x08
		g.SOP1(opSMovB32, 0, 1),
		endpgm(),
	}
	code := mustParse(t, words, Options{})
	if len(code.IndirectLabels) != 1 || code.IndirectLabels[0] != (Label{Target: 4, Source: 0}) {
		t.Errorf("indirect labels = %+v", code.IndirectLabels)
	}
	if !code.HasLabel(8) {
		t.Error("missing label at 0x08")
	}
}

func TestParse_BackwardBranch(t *testing.T) {
	words := []uint32{
		g.VOP2(opVAddF32, 0, g.V(0), 1),
		g.SOPP(opSCbranchS1, -2), // -> 0x00
		endpgm(),
	}
	code := mustParse(t, words, Options{})
	if code.Labels[0].Target != 0 || code.Labels[0].Source != 4 {
		t.Errorf("label = %+v", code.Labels[0])
	}
}

func TestParse_SubroutineCallLabels(t *testing.T) {
	words := []uint32{
		g.SOP1(opSGetpcB64, 0, 0),
		g.SOP1(opSSwappcB64, 2, 4),
		endpgm(),
	}
	code := mustParse(t, words, Options{})
	want := []Label{{Target: 4, Source: 0}, {Target: 8, Source: 4}}
	if len(code.IndirectLabels) != len(want) {
		t.Fatalf("indirect labels = %+v", code.IndirectLabels)
	}
	for i := range want {
		if code.IndirectLabels[i] != want[i] {
			t.Errorf("indirect %d = %+v, want %+v", i, code.IndirectLabels[i], want[i])
		}
	}
}

func TestParse_FetchEndsAtSetpc(t *testing.T) {
	words := []uint32{
		g.SOP1(opSMovB32, 0, 1),
		g.SOP1(opSSetpcB64, 0, 0),
		0xffffffff,
	}
	code := mustParse(t, words, Options{Type: TypeFetch})
	if len(code.Instructions) != 2 || code.Instructions[1].Type != SSetpcB64 {
		t.Fatalf("instructions = %d", len(code.Instructions))
	}
	if _, err := Parse(words, Options{Type: TypeVertex}); err == nil {
		t.Error("vertex program must not stop at s_setpc_b64")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint32
		nextGen bool
		want    error
	}{
		{"negative label", []uint32{g.SOPP(opSBranch, -5), endpgm()}, false, ErrMalformedLabel},
		{"label inside instruction", []uint32{g.SOPP(opSBranch, 1), g.VOP3(opVMadF32, 0, g.V(0), g.V(1), g.V(2))[0], g.VOP3(opVMadF32, 0, g.V(0), g.V(1), g.V(2))[1], endpgm()}, false, ErrMalformedLabel},
		{"missing literal", []uint32{g.SOP1(opSMovB32, 0, g.Literal)}, false, ErrTruncated},
		{"missing end", []uint32{g.SOP1(opSMovB32, 0, 1)}, false, ErrTruncated},
		{"unknown sop2", []uint32{g.SOP2(12, 0, 1, 2), endpgm()}, false, ErrUnknownOpcode},
		{"unknown operand", []uint32{g.VOP1(opVMovB32, 0, 251), endpgm()}, false, ErrUnknownOperand},
		{"unknown export target", append(g.EXP(10, 0xf, true, false, [4]uint32{}), endpgm()), false, ErrUnknownTarget},
		{"smrd on next gen", []uint32{g.SMRD(0, 0, 0, true, 0), endpgm()}, true, ErrGenerationMismatch},
		{"smem on current gen", append(g.SMEM(0, 0, 0, 0, g.Null), endpgm()), false, ErrGenerationMismatch},
		{"s_code_end on current gen", []uint32{g.SOPP(opSCodeEnd, 0), endpgm()}, false, ErrGenerationMismatch},
		{"v_mac_legacy on next gen", []uint32{g.VOP2(6, 0, g.V(0), 1), endpgm()}, true, ErrGenerationMismatch},
		{"next-gen vop3 on current gen", append(g.VOP3Next(0x36d, 0, g.V(0), g.V(1), g.V(2)), endpgm()), false, ErrGenerationMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.words, Options{NextGen: tt.nextGen})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if _, ok := AsDecodeError(err); !ok {
				t.Errorf("err %T is not a *DecodeError", err)
			}
		})
	}
}

func TestDecodeError_Context(t *testing.T) {
	words := []uint32{g.SOP1(opSMovB32, 0, 1), g.SOP2(12, 0, 1, 2), endpgm()}
	_, err := Parse(words, Options{HasHeader: true, Hash0: 0xabcd, Crc32: 0x1234})
	de, ok := AsDecodeError(err)
	if !ok {
		t.Fatalf("err = %v", err)
	}
	if de.Offset != 4 || de.Word != words[1] {
		t.Errorf("offset=%#x word=%#x", de.Offset, de.Word)
	}
	if !de.HasFamily || de.Family != FamilySOP2 || de.Opcode != 12 {
		t.Errorf("family=%s opcode=%d", de.Family, de.Opcode)
	}
	msg := de.Error()
	for _, want := range []string{"SOP2 opcode 12", "0x0004", "0x0000abcd", "0x00001234"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	if !strings.Contains(de.Dump, "s_mov_b32 s0, s1") {
		t.Errorf("dump missing decoded prefix:\n%s", de.Dump)
	}
	if !strings.Contains(de.Report(), de.Dump) {
		t.Error("report should include the dump")
	}
}

func TestParse_StepLimit(t *testing.T) {
	words := make([]uint32, 10)
	for i := range words {
		words[i] = g.SOPP(opSNop, 0)
	}
	_, err := Parse(words, Options{MaxSteps: 3})
	if !errors.Is(err, ErrTooManySteps) {
		t.Fatalf("err = %v, want ErrTooManySteps", err)
	}
}

func TestDecode_GenerationSpecificOpcode(t *testing.T) {
	w := g.VOP2(1, 0, g.V(1), 2)
	cur, err := DecodeOne([]uint32{w}, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	next, err := DecodeOne([]uint32{w}, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if cur.Type != VReadlaneB32 || next.Type != VCndmaskB32 {
		t.Errorf("current=%s next=%s", cur.Type, next.Type)
	}
	if cur.Dst.Kind != OperandSgpr {
		t.Errorf("v_readlane_b32 dst kind = %s, want sgpr", cur.Dst.Kind)
	}
	if next.SrcNum != 3 || next.Src[2].Kind != OperandVccLo || next.Src[2].Size != 2 {
		t.Errorf("v_cndmask_b32 implicit vcc = %+v", next.Src[2])
	}
}

func TestDecode_VOP3Modifiers(t *testing.T) {
	words := g.VOP3Mods(opVMadF32, 0, g.V(1), g.V(2), g.V(3), 1, 1, true, 1)
	in, err := DecodeOne(words, 0x10, false)
	if err != nil {
		t.Fatal(err)
	}
	if in.Type != VMadF32 || in.Words != 2 || in.SrcNum != 3 {
		t.Fatalf("got %s words=%d srcs=%d", in.Type, in.Words, in.SrcNum)
	}
	if !in.Src[0].Negate || !in.Src[0].Absolute || in.Src[1].Negate {
		t.Errorf("modifiers: %+v %+v", in.Src[0], in.Src[1])
	}
	if !in.Dst.Clamp || in.Dst.Multiplier != 2 {
		t.Errorf("dst = %+v", in.Dst)
	}
	if got, want := in.String(), "v_mad_f32 v0, -|v1|, v2, v3 mul:2 clamp"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDecode_VOP3CarryOut(t *testing.T) {
	words := g.VOP3(256+37, 1, g.V(2), g.V(3), 0)
	words[0] |= 4 << 8 // sdst = s[4:5]
	in, err := DecodeOne(words, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if in.Type != VAddI32 || in.Dst2.Kind != OperandSgpr || in.Dst2.RegisterID != 4 || in.Dst2.Size != 2 {
		t.Fatalf("got %s dst2=%+v", in.Type, in.Dst2)
	}
	if got := in.String(); got != "v_add_i32 v1, s[4:5], v2, v3" {
		t.Errorf("String() = %q", got)
	}
}

func TestDecode_VOP3Compare(t *testing.T) {
	in, err := DecodeOne(g.VOP3(0x81, g.VccLo, g.V(0), g.Int(1), 0), 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if in.Type != VCmpLtI32 || in.Dst.Kind != OperandVccLo || in.Dst.Size != 2 {
		t.Fatalf("got %s dst=%+v", in.Type, in.Dst)
	}
	if got := in.String(); got != "v_cmp_lt_i32 vcc, v0, 1" {
		t.Errorf("String() = %q", got)
	}
}

func TestDecode_NextGenVOP3(t *testing.T) {
	in, err := DecodeOne(g.VOP3Next(0x36d, 5, g.V(0), g.V(1), g.V(2)), 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if in.Type != VAdd3U32 || in.SrcNum != 3 {
		t.Errorf("got %s srcs=%d", in.Type, in.SrcNum)
	}
}

func TestDecode_Memory(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint32
		nextGen bool
		want    string
	}{
		{
			"mubuf load",
			g.MUBUF(g.Buffer{Op: 3, VData: 4, VAddr: 0, SRsrc: 8, SOffset: g.Int(0), Idxen: true}),
			false,
			"buffer_load_format_xyzw v[4:7], v0, s[8:11], 0 idxen",
		},
		{
			"mubuf store",
			g.MUBUF(g.Buffer{Op: 28, VData: 1, VAddr: 0, SRsrc: 4, SOffset: g.Int(0), Offen: true, Offset: 16}),
			false,
			"buffer_store_dword v1, v0, s[4:7], 0 offset:16 offen",
		},
		{
			"mtbuf load",
			g.MTBUF(g.Buffer{Op: 1, VData: 2, VAddr: 0, SRsrc: 8, SOffset: g.Int(0), Idxen: true, Dfmt: 11, Nfmt: 7}),
			false,
			"tbuffer_load_format_xy v[2:3], v0, s[8:11], 0 format:[11,7] idxen",
		},
		{
			"mimg sample",
			g.MIMG(32, 0xf, 0, 4, 8, 16),
			false,
			"image_sample v[0:3], v[4:5], s[8:15], s[16:19] dmask:0xf",
		},
		{
			"ds write",
			g.DS(13, 0, 1, 2, 0, 16, 0, false),
			false,
			"ds_write_b32 v1, v2 offset:16",
		},
		{
			"ds append gds",
			g.DS(62, 3, 0, 0, 0, 0, 0, true),
			false,
			"ds_append v3 gds",
		},
		{
			"smem load",
			g.SMEM(2, 4, 2, 0x20, g.Null),
			true,
			"s_load_dwordx4 s[4:7], s[2:3], 0x08",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := DecodeOne(tt.words, 0, tt.nextGen)
			if err != nil {
				t.Fatal(err)
			}
			if got := in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if in.Words != 2 {
				t.Errorf("words = %d, want 2", in.Words)
			}
		})
	}
}

func TestDecode_MTBUFNextGenFormat(t *testing.T) {
	b := g.Buffer{Op: 0, VData: 1, VAddr: 0, SRsrc: 4, SOffset: g.Int(0), Idxen: true}
	words := g.MTBUF(b)
	words[0] |= 0x4a << 19 // 7-bit unified format
	in, err := DecodeOne(words, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if in.Dfmt != 0x4a || in.Nfmt != 0 {
		t.Errorf("format = %d/%d, want 74/0", in.Dfmt, in.Nfmt)
	}
}

func TestDecode_ExportAndInterp(t *testing.T) {
	exp, err := DecodeOne(g.EXP(TargetPos0, 0xf, true, false, [4]uint32{4, 5, 6, 7}), 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if exp.Target != TargetPos0 || !exp.Flags.Has(FlagDone) || exp.Mask != 0xf {
		t.Fatalf("export = %+v", exp)
	}
	if got := exp.String(); got != "exp pos0, v4, v5, v6, v7 done" {
		t.Errorf("String() = %q", got)
	}
	mrt, _ := DecodeOne(g.EXP(TargetMrt0, 0x3, false, true, [4]uint32{0, 1, 0, 0}), 0, false)
	if got := mrt.String(); got != "exp mrt0, v0, v1, off, off vm" {
		t.Errorf("String() = %q", got)
	}

	p1, err := DecodeOne([]uint32{g.VINTRP(0, 2, 0, 3, 1)}, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Type != VInterpP1F32 || p1.Attr != 3 || p1.Chan != 1 {
		t.Fatalf("interp = %+v", p1)
	}
	if got := p1.String(); got != "v_interp_p1_f32 v2, v0, attr3.y" {
		t.Errorf("String() = %q", got)
	}
	mov, _ := DecodeOne([]uint32{g.VINTRP(2, 2, 2, 0, 0)}, 0, false)
	if got := mov.String(); got != "v_interp_mov_f32 v2, p0, attr0.x" {
		t.Errorf("String() = %q", got)
	}
}

func TestTypeNames(t *testing.T) {
	seen := make(map[string]bool)
	for i := TypeUnknown + 1; i < typeCount; i++ {
		name := i.String()
		if name == "" {
			t.Fatalf("type %d has no name", i)
		}
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		if got, ok := LookupType(name); !ok || got != i {
			t.Errorf("LookupType(%q) = %d, %v", name, got, ok)
		}
	}
}

func TestTablesConsistent(t *testing.T) {
	for fam, tbl := range familyTables {
		for gen, m := range []map[uint32]entry{tbl.current, tbl.next} {
			for op := range m {
				if _, dup := tbl.both[op]; dup {
					t.Errorf("%s op %d in both and generation %d table", Family(fam), op, gen)
				}
			}
		}
	}
}

func TestTableSpans(t *testing.T) {
	tests := []struct {
		name  string
		tbl   *opcodeTable
		op    uint32
		typ   InstructionType
		dst   uint8
		src   uint8
		src1  uint8
		flags entryFlags
	}{
		{"s_lshl_b64", sop2Table, 31, SLshlB64, 2, 2, 1, 0},
		{"s_ashr_i64", sop2Table, 35, SAshrI64, 2, 2, 1, 0},
		{"s_bfe_u64", sop2Table, 41, SBfeU64, 2, 2, 1, 0},
		{"s_cbranch_g_fork", sop2Table, 43, SCbranchGFork, 0, 2, 2, 0},
		{"s_bitcmp0_b64", sopcTable, 14, SBitcmp0B64, 0, 2, 1, 0},
		{"v_addc_u32", vop2Table, 40, VAddcU32, 1, 1, 0, flagVccOut | flagVccIn},
		{"s_lshl_b32", sop2Table, 30, SLshlB32, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok, _ := tt.tbl.lookup(tt.op, false)
			if !ok {
				t.Fatalf("op %d not found", tt.op)
			}
			if e.typ != tt.typ || e.dst != tt.dst || e.src != tt.src || e.src1 != tt.src1 || e.flags != tt.flags {
				t.Errorf("entry = %+v, want typ=%v dst=%d src=%d src1=%d flags=%v", e, tt.typ, tt.dst, tt.src, tt.src1, tt.flags)
			}
		})
	}
}
