package translator

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/naga/spirv"

	"gcnrecomp/internal/config"
	"gcnrecomp/internal/debug"
	"gcnrecomp/internal/gcn"
	g "gcnrecomp/internal/gcn/gcntest"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/spvgen"
	"gcnrecomp/internal/stage"
)

const (
	vsAddr = 0x1000
	psAddr = 0x2000
	csAddr = 0x3000
	bbAddr = 0x4000

	opSMovB32  = 3
	opSEndpgm  = 1
	opSBranch  = 2
	opVMovB32  = 1
	one        = 242
	targetMrt0 = 0
	targetPos0 = 12
)

var (
	vsKey = debug.Key{Hash0: 0x1111, Crc32: 0xa}
	psKey = debug.Key{Hash0: 0x2222, Crc32: 0xb}
	csKey = debug.Key{Hash0: 0x3333, Crc32: 0xc}
)

func header(k debug.Key) g.Header { return g.Header{Hash0: k.Hash0, Crc32: k.Crc32} }

func program(k debug.Key, words ...[]uint32) []uint32 {
	var p g.Program
	for _, w := range words {
		p.Add(w...)
	}
	p.Add(g.SOPP(opSEndpgm, 0))
	return g.Binary(p.Words, nil, header(k))
}

func w(words ...uint32) []uint32 { return words }

func memory(t *testing.T) *guest.Map {
	t.Helper()
	regions := map[uint64][]uint32{
		vsAddr: program(vsKey,
			w(g.VOP1(opVMovB32, 1, one)),
			g.EXP(targetPos0, 0xf, true, false, [4]uint32{1, 1, 1, 1})),
		psAddr: program(psKey,
			w(g.VOP1(opVMovB32, 0, one)),
			g.EXP(targetMrt0, 0xf, true, true, [4]uint32{0, 0, 0, 0})),
		csAddr: program(csKey, w(g.SOP1(opSMovB32, 0, 1))),
		bbAddr: program(csKey,
			w(g.SOP1(opSMovB32, 0, 1)),
			w(g.SOPP(opSBranch, -2))),
	}
	m := &guest.Map{}
	for base, words := range regions {
		if err := m.Add(&guest.Image{Base: base, Data: words}); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func newTranslator(t *testing.T, opts config.Options) *Translator {
	t.Helper()
	opts.Log = config.LogNone
	return New(memory(t), opts, nil, nil)
}

func isModule(t *testing.T, module []byte) {
	t.Helper()
	if len(module) < 20 || binary.LittleEndian.Uint32(module) != spirv.MagicNumber {
		t.Fatalf("not a SPIR-V module: % x", module[:min(len(module), 8)])
	}
}

func TestRecompileVSAndPS(t *testing.T) {
	tr := newTranslator(t, config.Default())
	vsRegs := &stage.VsRegisters{DataAddr: vsAddr}
	vs, err := tr.InputInfoVS(vsRegs)
	if err != nil {
		t.Fatal(err)
	}
	module, err := tr.RecompileVS(vsRegs, vs)
	if err != nil {
		t.Fatal(err)
	}
	isModule(t, module)

	psRegs := &stage.PsRegisters{DataAddr: psAddr, InputAddr: stage.InputPerspCenter}
	ps, err := tr.InputInfoPS(psRegs, vs)
	if err != nil {
		t.Fatal(err)
	}
	module, err = tr.RecompilePS(psRegs, ps)
	if err != nil {
		t.Fatal(err)
	}
	isModule(t, module)

	if !tr.IDVS(vs).Equal(tr.IDVS(vs)) {
		t.Error("vertex identity is not deterministic")
	}
	if tr.IDVS(vs).Equal(tr.IDPS(ps)) {
		t.Error("vertex and pixel identities collide")
	}
}

func TestRecompileCS(t *testing.T) {
	tr := newTranslator(t, config.Default())
	regs := &stage.CsRegisters{DataAddr: csAddr, NumThreadX: 64, NumThreadY: 1, NumThreadZ: 1}
	info, err := tr.InputInfoCS(regs)
	if err != nil {
		t.Fatal(err)
	}
	module, err := tr.RecompileCS(regs, info)
	if err != nil {
		t.Fatal(err)
	}
	isModule(t, module)
	if len(tr.IDCS(info)) == 0 {
		t.Error("empty compute identity")
	}
}

func TestEmbeddedBypassesMemory(t *testing.T) {
	tr := New(nil, config.Default(), nil, nil)
	vsRegs := &stage.VsRegisters{Embedded: true}
	vs, err := tr.InputInfoVS(vsRegs)
	if err != nil {
		t.Fatal(err)
	}
	module, err := tr.RecompileVS(vsRegs, vs)
	if err != nil {
		t.Fatal(err)
	}
	isModule(t, module)

	psRegs := &stage.PsRegisters{Embedded: true}
	ps, err := tr.InputInfoPS(psRegs, vs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.RecompilePS(psRegs, ps); err != nil {
		t.Fatal(err)
	}

	_, err = tr.RecompileVS(vsRegs, &stage.VsInputInfo{Embedded: true, EmbeddedID: 9})
	if !errors.Is(err, spvgen.ErrUnknownEmbedded) {
		t.Fatalf("err = %v, want ErrUnknownEmbedded", err)
	}
}

func TestDisable(t *testing.T) {
	tr := newTranslator(t, config.Default())
	if d, err := tr.IsDisabled(vsAddr); err != nil || d {
		t.Fatalf("IsDisabled = %v, %v", d, err)
	}
	k, err := tr.Key(vsAddr)
	if err != nil {
		t.Fatal(err)
	}
	if k != vsKey {
		t.Fatalf("Key = %v, want %v", k, vsKey)
	}
	tr.Disable(k)
	if d, _ := tr.IsDisabled(vsAddr); !d {
		t.Fatal("Disable had no effect")
	}

	regs := &stage.VsRegisters{DataAddr: vsAddr}
	info, err := tr.InputInfoVS(regs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.RecompileVS(regs, info); !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
	if _, err := tr.IsDisabled(0xdead000); !errors.Is(err, guest.ErrUnmapped) {
		t.Fatalf("err = %v, want ErrUnmapped", err)
	}
}

func TestParseAppliesPrintfs(t *testing.T) {
	tr := newTranslator(t, config.Default())
	tr.InjectDebugPrintf(psKey, gcn.DebugPrintf{
		PC:     0,
		Format: "v0=%f",
		Types:  []gcn.PrintfArg{gcn.PrintfFloat},
		Args:   []gcn.Operand{gcn.Vgpr(0, 1)},
	})
	code, err := tr.Parse(psAddr, gcn.TypePixel)
	if err != nil {
		t.Fatal(err)
	}
	if len(code.PrintfsAt(0)) != 1 {
		t.Fatalf("got %d printfs at 0, want 1", len(code.PrintfsAt(0)))
	}
	other, err := tr.Parse(vsAddr, gcn.TypeVertex)
	if err != nil {
		t.Fatal(err)
	}
	if len(other.DebugPrintfs) != 0 {
		t.Fatal("printf attached to the wrong shader")
	}
	if !strings.Contains(tr.DumpInstructions(code), `printf "v0=%f"`) {
		t.Errorf("dump lacks the printf:\n%s", tr.DumpInstructions(code))
	}
}

func TestDumpDir(t *testing.T) {
	opts := config.Default()
	opts.DumpDir = t.TempDir()
	tr := newTranslator(t, opts)
	regs := &stage.CsRegisters{DataAddr: csAddr, NumThreadX: 8, NumThreadY: 8, NumThreadZ: 1}
	info, err := tr.InputInfoCS(regs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.RecompileCS(regs, info); err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(opts.DumpDir, "cs_00003333_0000000c")
	for _, ext := range []string{".gcn.txt", ".info.txt", ".spvasm", ".spv", ".dis.spvasm"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing dump %s: %v", ext, err)
		}
	}
	data, err := os.ReadFile(base + ".info.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "ThreadsNum") {
		t.Errorf("input info dump = %q", data)
	}
}

func TestCodegenFailureDumps(t *testing.T) {
	opts := config.Default()
	opts.DumpDir = t.TempDir()
	tr := newTranslator(t, opts)
	regs := &stage.CsRegisters{DataAddr: bbAddr, NumThreadX: 1, NumThreadY: 1, NumThreadZ: 1}
	info, err := tr.InputInfoCS(regs)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tr.RecompileCS(regs, info)
	if !errors.Is(err, spvgen.ErrBackwardBranch) {
		t.Fatalf("err = %v, want ErrBackwardBranch", err)
	}
	base := filepath.Join(opts.DumpDir, "cs_00003333_0000000c")
	if _, err := os.Stat(base + ".gcn.txt"); err != nil {
		t.Errorf("decoded program not dumped: %v", err)
	}
	if _, err := os.Stat(base + ".spv"); err == nil {
		t.Error("binary dumped for a failed translation")
	}
}

func TestIDTracksPrintfs(t *testing.T) {
	tr := newTranslator(t, config.Default())
	regs := &stage.CsRegisters{DataAddr: csAddr, NumThreadX: 64, NumThreadY: 1, NumThreadZ: 1}
	info, err := tr.InputInfoCS(regs)
	if err != nil {
		t.Fatal(err)
	}
	plain := tr.IDCS(info)

	tr.InjectDebugPrintf(csKey, gcn.DebugPrintf{
		Format: "s0=%u",
		Types:  []gcn.PrintfArg{gcn.PrintfUint},
		Args:   []gcn.Operand{gcn.Sgpr(0, 1)},
	})
	printed := tr.IDCS(info)
	if printed.Equal(plain) {
		t.Fatal("injected printf did not change the compute identity")
	}
	if module, err := tr.RecompileCS(regs, info); err != nil {
		t.Fatal(err)
	} else {
		isModule(t, module)
	}

	tr.InjectDebugPrintf(vsKey, gcn.DebugPrintf{Format: "vs"})
	if !tr.IDCS(info).Equal(printed) {
		t.Error("printf for another shader changed the compute identity")
	}

	tr.Registry().ClearPrintfs(csKey)
	if !tr.IDCS(info).Equal(plain) {
		t.Error("clearing printfs did not restore the plain identity")
	}
}
