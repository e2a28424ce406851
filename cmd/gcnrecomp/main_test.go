package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gcnrecomp/internal/config"
	"gcnrecomp/internal/debug"
	"gcnrecomp/internal/gcn"
	g "gcnrecomp/internal/gcn/gcntest"
	"gcnrecomp/internal/guest"
	"gcnrecomp/internal/spvasm"
	"gcnrecomp/internal/stage"
	"gcnrecomp/internal/translator"
)

const (
	vsAddr = 0x1000
	psAddr = 0x2000
	csAddr = 0x3000
)

func testTranslator(t *testing.T) *translator.Translator {
	t.Helper()
	end := g.SOPP(1, 0)
	regions := map[uint64][]uint32{
		vsAddr: g.Binary(append(g.EXP(gcn.TargetPos0, 0xf, true, false, [4]uint32{0, 0, 0, 0}), end),
			nil, g.Header{Hash0: 1, Crc32: 1}),
		psAddr: g.Binary(append(g.EXP(gcn.TargetMrt0, 0xf, true, true, [4]uint32{0, 0, 0, 0}), end),
			nil, g.Header{Hash0: 2, Crc32: 2}),
		csAddr: g.Binary([]uint32{end}, nil, g.Header{Hash0: 3, Crc32: 3}),
	}
	m := &guest.Map{}
	for base, words := range regions {
		if err := m.Add(&guest.Image{Base: base, Data: words}); err != nil {
			t.Fatal(err)
		}
	}
	opts := config.Default()
	opts.Log = config.LogNone
	return translator.New(m, opts, nil, nil)
}

func writeRegs(t *testing.T, dir, name string, r regsFile) {
	t.Helper()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParseShaderType(t *testing.T) {
	for _, s := range []string{"vs", "ps", "cs", "fs"} {
		typ, err := parseShaderType(s)
		if err != nil || typ.String() != s {
			t.Errorf("parseShaderType(%q) = %v, %v", s, typ, err)
		}
	}
	if _, err := parseShaderType("gs"); err == nil {
		t.Error("gs accepted")
	}
}

func TestOptFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "opts.json")
	if err := os.WriteFile(cfg, []byte(`{"optimize":"size","next_gen":true,"max_steps":50}`), 0644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	of := addOptFlags(fs)
	if err := fs.Parse([]string{"--config", cfg, "--optimize", "none", "--names"}); err != nil {
		t.Fatal(err)
	}
	opts, err := of.options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Optimize != spvasm.ModeNone {
		t.Errorf("optimize = %v, flag should win", opts.Optimize)
	}
	if !opts.NextGen || opts.MaxSteps != 50 {
		t.Errorf("file values lost: %+v", opts)
	}
	if !opts.PrintNames {
		t.Error("--names not applied")
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	of = addOptFlags(fs)
	if err := fs.Parse([]string{"--optimize", "fastest"}); err != nil {
		t.Fatal(err)
	}
	if _, err := of.options(); err == nil {
		t.Error("unknown optimizer mode accepted")
	}
}

func TestMemFlags(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "mem.bin")
	if err := os.WriteFile(raw, g.Bytes([]uint32{0xdeadbeef}), 0644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	mf := addMemFlags(fs)
	if err := fs.Parse([]string{"--raw", raw, "--base", "0x8000"}); err != nil {
		t.Fatal(err)
	}
	mem, err := mf.load()
	if err != nil {
		t.Fatal(err)
	}
	words, err := mem.Words(0x8000)
	if err != nil || len(words) != 1 || words[0] != 0xdeadbeef {
		t.Fatalf("Words = %x, %v", words, err)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	mf = addMemFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if _, err := mf.load(); err == nil {
		t.Error("missing image accepted")
	}
}

func TestRecompileStages(t *testing.T) {
	tr := testTranslator(t)
	r := &regsFile{
		VS: &stage.VsRegisters{DataAddr: vsAddr},
		PS: &stage.PsRegisters{DataAddr: psAddr, InputAddr: stage.InputPerspCenter},
	}
	mods, err := recompile(tr, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 2 || mods[0].Stage != "vs" || mods[1].Stage != "ps" {
		t.Fatalf("modules = %+v", mods)
	}
	if _, err := recompile(tr, &regsFile{}); err == nil {
		t.Error("empty regs file accepted")
	}
}

func TestDisableKeys(t *testing.T) {
	tr := testTranslator(t)
	if err := disableKeys(tr, "00000003:00000003, 1:1"); err != nil {
		t.Fatal(err)
	}
	if !tr.Registry().IsDisabled(debug.Key{Hash0: 3, Crc32: 3}) || !tr.Registry().IsDisabled(debug.Key{Hash0: 1, Crc32: 1}) {
		t.Fatalf("disabled = %v", tr.Registry().Disabled())
	}
	if err := disableKeys(tr, "nonsense"); !errors.Is(err, debug.ErrBadKey) {
		t.Fatalf("err = %v, want ErrBadKey", err)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeRegs(t, dir, "draw.json", regsFile{
		VS: &stage.VsRegisters{DataAddr: vsAddr},
		PS: &stage.PsRegisters{DataAddr: psAddr},
	})
	writeRegs(t, dir, "dispatch.json", regsFile{
		CS: &stage.CsRegisters{DataAddr: csAddr, NumThreadX: 64, NumThreadY: 1, NumThreadZ: 1},
	})
	writeRegs(t, dir, "broken.json", regsFile{
		CS: &stage.CsRegisters{DataAddr: csAddr},
	})
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(manifestPath, []byte(`{"jobs":[
		{"name":"draw","regs":"draw.json"},
		{"name":"dispatch","regs":"dispatch.json"},
		{"name":"broken","regs":"broken.json"}
	]}`), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := loadManifest(manifestPath)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	results, err := runBatch(context.Background(), testTranslator(t), m, out, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	// Sorted by name: broken, dispatch, draw.
	if results[0].Name != "broken" || !strings.Contains(results[0].Error, "thread group") {
		t.Errorf("broken = %+v", results[0])
	}
	if results[1].Error != "" || len(results[1].Modules) != 1 {
		t.Errorf("dispatch = %+v", results[1])
	}
	if results[2].Error != "" || len(results[2].Modules) != 2 {
		t.Errorf("draw = %+v", results[2])
	}
	for _, f := range []string{"draw_vs.spv", "draw_ps.spv", "dispatch_cs.spv"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	if _, err := runBatch(context.Background(), testTranslator(t), m, out, 1, true); err == nil {
		t.Error("fail-fast batch reported no error")
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"missing.json":   `{"jobs":[{"name":"a"}]}`,
		"duplicate.json": `{"jobs":[{"name":"a","regs":"x"},{"name":"a","regs":"y"}]}`,
		"garbage.json":   `{`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadManifest(path); err == nil {
			t.Errorf("%s accepted", name)
		}
	}
}
