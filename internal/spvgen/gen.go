// Package spvgen lowers decoded GCN programs to SPIR-V assembly text for
// the spvasm assembler.
//
// Each invocation runs one GCN lane. Registers become Private uint
// variables; EXEC, VCC and SCC hold this lane's bit. Branches must go
// forward: every basic block is guarded by a skip target that taken
// branches raise, which keeps the output a chain of selection constructs.
package spvgen

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gcnrecomp/internal/bind"
	"gcnrecomp/internal/gcn"
)

var (
	ErrUnsupported     = errors.New("spvgen: unsupported instruction")
	ErrBackwardBranch  = errors.New("spvgen: backward branch")
	ErrBadBranch       = errors.New("spvgen: branch target outside program")
	ErrUnboundResource = errors.New("spvgen: resource register not bound")
	ErrUnknownEmbedded = errors.New("spvgen: unknown embedded shader")
)

// Error locates a generation failure at one instruction.
type Error struct {
	PC          uint32
	Instruction string
	Err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("spvgen: 0x%04x %s: %v", e.PC, e.Instruction, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Options controls the generated text.
type Options struct {
	// PrintNames emits OpName for every register variable.
	PrintNames bool
}

// skipDone is the skip target after s_endpgm; no block starts there.
const skipDone = 0xffffffff

type gen struct {
	opts Options
	code *gcn.Code
	res  *bind.Resources

	model string
	caps  []string
	modes []string
	iface []string

	strs   strings.Builder
	names  strings.Builder
	annots strings.Builder
	decls  strings.Builder
	body   strings.Builder

	declared  map[string]bool
	tmp       int
	labels    int
	strCount  int
	printf    bool
	predicate bool
	err       error

	buffers  map[int]int // first sgpr of a V# -> Resources.Buffers index
	textures map[int]int
	samplers map[int]int

	outputs map[uint8]string
	flat    []bool // PS interpolated inputs, true when flat shaded
	lds     string
	ldsSize uint32
	fetch   bool // VS: s_swappc_b64 enters the fetch program
	kill    bool // PS: discard lanes whose EXEC is clear at s_endpgm
}

func newGen(code *gcn.Code, res *bind.Resources, opts Options) *gen {
	g := &gen{
		opts:     opts,
		code:     code,
		res:      res,
		caps:     []string{"Shader"},
		declared: map[string]bool{},
		buffers:  map[int]int{},
		textures: map[int]int{},
		samplers: map[int]int{},
		outputs:  map[uint8]string{},
	}
	if code != nil {
		g.predicate = code.WritesExec()
	}
	if res != nil {
		for i, b := range res.Buffers {
			if !b.Extended {
				g.buffers[b.StartRegister] = i
			}
		}
		for i, t := range res.Textures {
			if !t.Extended {
				g.textures[t.StartRegister] = i
			}
		}
		for i, s := range res.Samplers {
			if !s.Extended {
				g.samplers[s.StartRegister] = i
			}
		}
	}
	for _, t := range [...][2]string{
		{"%void", "OpTypeVoid"},
		{"%bool", "OpTypeBool"},
		{"%uint", "OpTypeInt 32 0"},
		{"%int", "OpTypeInt 32 1"},
		{"%float", "OpTypeFloat 32"},
		{"%v2float", "OpTypeVector %float 2"},
		{"%v4float", "OpTypeVector %float 4"},
		{"%v2uint", "OpTypeVector %uint 2"},
		{"%v3uint", "OpTypeVector %uint 3"},
		{"%v4uint", "OpTypeVector %uint 4"},
		{"%v2int", "OpTypeVector %int 2"},
		{"%fn", "OpTypeFunction %void"},
		{"%true", "OpConstantTrue %bool"},
		{"%false", "OpConstantFalse %bool"},
	} {
		g.declare(t[0], t[1])
	}
	return g
}

func (g *gen) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

func (g *gen) emit(format string, args ...any) { line(&g.body, format, args...) }

// declare adds "name = def" to the global section once.
func (g *gen) declare(name, def string) string {
	if !g.declared[name] {
		g.declared[name] = true
		line(&g.decls, "%s = %s", name, def)
	}
	return name
}

func (g *gen) decorate(target string, decorations ...string) {
	for _, d := range decorations {
		line(&g.annots, "OpDecorate %s %s", target, d)
	}
}

func (g *gen) name(target, name string) {
	if g.opts.PrintNames {
		line(&g.names, "OpName %s %s", target, quote(name))
	}
}

func (g *gen) capability(c string) {
	for _, have := range g.caps {
		if have == c {
			return
		}
	}
	g.caps = append(g.caps, c)
}

func (g *gen) temp() string {
	g.tmp++
	return fmt.Sprintf("%%t%d", g.tmp)
}

func (g *gen) label() string {
	g.labels++
	return fmt.Sprintf("%%l%d", g.labels)
}

// val emits "t = op typ args..." and returns t.
func (g *gen) val(typ, op string, args ...string) string {
	t := g.temp()
	if len(args) == 0 {
		g.emit("%s = %s %s", t, op, typ)
	} else {
		g.emit("%s = %s %s %s", t, op, typ, strings.Join(args, " "))
	}
	return t
}

func (g *gen) ext(typ, fn string, args ...string) string {
	return g.val(typ, "OpExtInst", append([]string{"%glsl", fn}, args...)...)
}

func (g *gen) u(v uint32) string {
	return g.declare(fmt.Sprintf("%%u_%d", v), fmt.Sprintf("OpConstant %%uint %d", v))
}

func (g *gen) f(v float32) string {
	bits := math.Float32bits(v)
	return g.declare(fmt.Sprintf("%%f_%08x", bits), fmt.Sprintf("OpConstant %%float 0x%08x", bits))
}

func (g *gen) ptr(storage, elem string) string {
	name := "%ptr_" + storage + "_" + strings.TrimPrefix(elem, "%")
	return g.declare(name, fmt.Sprintf("OpTypePointer %s %s", storage, elem))
}

func (g *gen) load(typ, ptr string) string { return g.val(typ, "OpLoad", ptr) }

func (g *gen) bitcast(typ, v string) string { return g.val(typ, "OpBitcast", v) }

// sel converts a bool to 1 or 0.
func (g *gen) sel(cond string) string {
	return g.val("%uint", "OpSelect", cond, g.u(1), g.u(0))
}

func (g *gen) nonzero(v string) string { return g.val("%bool", "OpINotEqual", v, g.u(0)) }

func (g *gen) isZero(v string) string { return g.val("%bool", "OpIEqual", v, g.u(0)) }

// global declares a module-scope variable with decorations.
func (g *gen) global(name, storage, elem string, decorations ...string) string {
	if g.declared[name] {
		return name
	}
	g.declare(name, fmt.Sprintf("OpVariable %s %s", g.ptr(storage, elem), storage))
	g.decorate(name, decorations...)
	if storage == "Input" || storage == "Output" {
		g.iface = append(g.iface, name)
	}
	g.name(name, strings.TrimPrefix(name, "%"))
	return name
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
