package render

import (
	"strings"
	"testing"

	"gcnrecomp/internal/gcn"
	g "gcnrecomp/internal/gcn/gcntest"
)

func parse(t *testing.T, words ...uint32) *gcn.Code {
	t.Helper()
	code, err := gcn.Parse(words, gcn.Options{Type: gcn.TypeCompute})
	if err != nil {
		t.Fatal(err)
	}
	return code
}

func TestCFGDOT(t *testing.T) {
	// s_cmp_eq_u32 s0, s1; s_cbranch_scc0 +1; v_mov_b32 v0, 1.0; s_endpgm
	code := parse(t,
		g.SOPC(6, 0, 1),
		g.SOPP(4, 1),
		g.VOP1(1, 0, 242),
		g.SOPP(1, 0),
	)
	code.InjectDebugPrintf(gcn.DebugPrintf{PC: 8, Format: "<v0>"})
	dot := CFGDOT(gcn.BuildCFG(code), "cs_main", NASA)

	for _, want := range []string{
		"digraph cfg {",
		"cs_main (cs, 4 instructions)",
		`bb0 -> bb2 [color="#0B3D91"`,
		`bb0 -> bb1 [color="#FC3D21"`,
		`bb1 -> bb2 [color="#424242"]`,
		"0x0008: v_mov_b32",
		"&quot;&lt;v0&gt;&quot;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in\n%s", want, dot)
		}
	}
	if !strings.Contains(dot, "bb0 [label=") || !strings.Contains(dot, `penwidth=1.5, color="#0B3D91"`) {
		t.Errorf("entry block not highlighted:\n%s", dot)
	}
}

func TestCFGDOT_Empty(t *testing.T) {
	if dot := CFGDOT(gcn.BuildCFG(&gcn.Code{}), "x", NASA); dot != "" {
		t.Fatalf("got %q for an empty program", dot)
	}
}

func TestCFGDOT_TruncatesLongBlocks(t *testing.T) {
	var words []uint32
	for i := 0; i < 20; i++ {
		words = append(words, g.VOP1(1, 0, 242))
	}
	words = append(words, g.SOPP(1, 0))
	dot := CFGDOT(gcn.BuildCFG(parse(t, words...)), "long", NASA)
	if !strings.Contains(dot, "... (11 more)") {
		t.Errorf("long block not truncated:\n%s", dot)
	}
	if !strings.Contains(dot, "0x0050: s_endpgm") {
		t.Errorf("last instruction dropped:\n%s", dot)
	}
}
