package shaderid

import (
	"testing"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
	"gcnrecomp/internal/resource"
	"gcnrecomp/internal/shaderbin"
	"gcnrecomp/internal/stage"
)

func vsInfo() *stage.VsInputInfo {
	info := &stage.VsInputInfo{
		Header: shaderbin.Info{Length: 64, Hash0: 1, Hash1: 2, Crc32: 3},
		Fetch:  true,
		Attributes: []stage.Attribute{
			{Index: 0, RegStart: 4, RegCount: 3, Offset: 0, Dfmt: 13, Nfmt: 7},
			{Index: 1, RegStart: 8, RegCount: 2, Offset: 12, Dfmt: 11, Nfmt: 7},
		},
		Buffers:     []stage.VertexBuffer{{Stride: 20, Attributes: []int{0, 1}}},
		ExportCount: 1,
	}
	info.Resources.Textures = []bind.Texture{{Desc: resource.Texture{0, 10 << 20, 0, 9 << 28}, Usage: bind.KindSampled}}
	info.Resources.Samplers = []bind.Sampler{{Origin: bind.Origin{StartRegister: 8}}}
	bind.ComputeLayout(&info.Resources)
	return info
}

func TestComputeVS_Deterministic(t *testing.T) {
	a, b := ComputeVS(vsInfo()), ComputeVS(vsInfo())
	if !a.Equal(b) || a.Hash() != b.Hash() || a.Key() != b.Key() {
		t.Fatalf("ids differ:\n%v\n%v", a, b)
	}
}

func TestComputeVS_Sensitivity(t *testing.T) {
	base := ComputeVS(vsInfo())
	mutations := map[string]func(*stage.VsInputInfo){
		"crc":              func(i *stage.VsInputInfo) { i.Header.Crc32++ },
		"fetch":            func(i *stage.VsInputInfo) { i.Fetch = false },
		"attribute offset": func(i *stage.VsInputInfo) { i.Attributes[1].Offset = 16 },
		"buffer stride":    func(i *stage.VsInputInfo) { i.Buffers[0].Stride = 24 },
		"texture format":   func(i *stage.VsInputInfo) { i.Resources.Textures[0].Desc[1] = 11 << 20 },
		"texture type":     func(i *stage.VsInputInfo) { i.Resources.Textures[0].Desc[3] = 10 << 28 },
		"sampler filter":   func(i *stage.VsInputInfo) { i.Resources.Samplers[0].Desc[2] = 1 << 20 },
		"push offset":      func(i *stage.VsInputInfo) { i.Resources.Layout.PushConstantOffset = 16 },
		"extended":         func(i *stage.VsInputInfo) { i.Resources.Extended.Used = true },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			info := vsInfo()
			mutate(info)
			if ComputeVS(info).Equal(base) {
				t.Errorf("id unchanged after %s mutation", name)
			}
		})
	}
}

func TestComputeVS_IgnoresBaseAddress(t *testing.T) {
	info := vsInfo()
	info.Resources.Textures[0].Desc[0] = 0x1234
	info.Buffers[0].Base = 0x9000
	if !ComputeVS(info).Equal(ComputeVS(vsInfo())) {
		t.Error("id depends on descriptor base address")
	}
}

func TestComputeVS_Embedded(t *testing.T) {
	a := ComputeVS(&stage.VsInputInfo{Embedded: true, EmbeddedID: 1})
	b := ComputeVS(&stage.VsInputInfo{Embedded: true, EmbeddedID: 2})
	if a.Equal(b) {
		t.Error("embedded ids collide")
	}
}

func TestComputePS_InterpolatorSensitivity(t *testing.T) {
	info := func() *stage.PsInputInfo {
		return &stage.PsInputInfo{Interpolators: []uint32{0, 1}, PosXY: true}
	}
	base := ComputePS(info())
	if !ComputePS(info()).Equal(base) {
		t.Fatal("ps id not deterministic")
	}
	changed := info()
	changed.Interpolators[1] = 1 | 1<<10
	if ComputePS(changed).Equal(base) {
		t.Error("id unchanged after flat-shade change")
	}
}

func TestComputeCS(t *testing.T) {
	a := ComputeCS(&stage.CsInputInfo{ThreadsNum: [3]uint32{64, 1, 1}})
	b := ComputeCS(&stage.CsInputInfo{ThreadsNum: [3]uint32{32, 2, 1}})
	if a.Equal(b) {
		t.Error("thread group change not reflected")
	}
}

func TestStagesDoNotCollide(t *testing.T) {
	vs := ComputeVS(&stage.VsInputInfo{})
	ps := ComputePS(&stage.PsInputInfo{})
	cs := ComputeCS(&stage.CsInputInfo{})
	if vs.Equal(ps) || ps.Equal(cs) || vs.Equal(cs) {
		t.Error("empty stage ids collide")
	}
}

func TestEqualLength(t *testing.T) {
	if (ID{1, 2}).Equal(ID{1, 2, 0}) {
		t.Error("prefix compared equal")
	}
}

func TestWithPrintfs(t *testing.T) {
	base := ComputeVS(vsInfo())
	if got := WithPrintfs(base, nil); !got.Equal(base) {
		t.Fatal("no printfs changed the id")
	}

	p := gcn.DebugPrintf{PC: 0x10, Format: "v0=%u", Types: []gcn.PrintfArg{gcn.PrintfUint}, Args: []gcn.Operand{gcn.Vgpr(0, 1)}}
	with := WithPrintfs(base, []gcn.DebugPrintf{p})
	if with.Equal(base) {
		t.Fatal("printf did not change the id")
	}
	if !with[:len(base)].Equal(base) {
		t.Error("printf section does not extend the base id")
	}
	if !WithPrintfs(base, []gcn.DebugPrintf{p}).Equal(with) {
		t.Error("printf id is not deterministic")
	}

	mutations := map[string]func(*gcn.DebugPrintf){
		"pc":       func(p *gcn.DebugPrintf) { p.PC = 0x14 },
		"format":   func(p *gcn.DebugPrintf) { p.Format = "v0=%d" },
		"type":     func(p *gcn.DebugPrintf) { p.Types = []gcn.PrintfArg{gcn.PrintfFloat} },
		"register": func(p *gcn.DebugPrintf) { p.Args = []gcn.Operand{gcn.Vgpr(1, 1)} },
		"kind":     func(p *gcn.DebugPrintf) { p.Args = []gcn.Operand{gcn.Sgpr(0, 1)} },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			q := p
			mutate(&q)
			if WithPrintfs(base, []gcn.DebugPrintf{q}).Equal(with) {
				t.Errorf("id unchanged after %s mutation", name)
			}
		})
	}
	if !base.Equal(ComputeVS(vsInfo())) {
		t.Error("WithPrintfs modified its input")
	}
}
