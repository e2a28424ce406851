package spvasm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/naga/spirv"
)

// windowRadius is how much source text around an error AssembleError
// carries on each side.
const windowRadius = 100

// AssembleError reports a parse failure at a source position.
type AssembleError struct {
	Line   int
	Column int
	Offset int
	Msg    string
	// Window is the source text around Offset.
	Window string
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("spvasm: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Report renders the error followed by the source window.
func (e *AssembleError) Report() string {
	return fmt.Sprintf("%s\n----\n%s\n----", e.Error(), e.Window)
}

func (e *AssembleError) fill(src string) *AssembleError {
	lo := max(0, e.Offset-windowRadius)
	hi := min(len(src), e.Offset+windowRadius)
	e.Window = src[lo:hi]
	return e
}

// scalarType records what OpConstant needs to know about a result type.
type scalarType struct {
	float  bool
	signed bool
	width  uint32
}

type assembler struct {
	src    string
	ids    map[string]uint32
	order  []string
	types  map[uint32]scalarType
	sets   map[uint32]string
	module *Module
}

// Assemble parses SPIR-V assembly text. Ids are numbered in order of first
// appearance.
func Assemble(src string) (*Module, error) {
	a := &assembler{
		src:    src,
		ids:    map[string]uint32{},
		types:  map[uint32]scalarType{},
		sets:   map[uint32]string{},
		module: &Module{Version: spirv.Version1_3, Generator: spirv.GeneratorID},
	}
	base := 0
	for n, line := range strings.Split(src, "\n") {
		if err := a.line(line, n+1, base); err != nil {
			return nil, err.fill(src)
		}
		base += len(line) + 1
	}
	a.module.Bound = uint32(len(a.order)) + 1
	return a.module, nil
}

func (a *assembler) id(name string) uint32 {
	if v, ok := a.ids[name]; ok {
		return v
	}
	a.order = append(a.order, name)
	v := uint32(len(a.order))
	a.ids[name] = v
	return v
}

// cursor walks the tokens of one instruction.
type cursor struct {
	toks []token
	pos  int
	end  token // position reported for missing operands
}

func (c *cursor) more() bool { return c.pos < len(c.toks) }

func (c *cursor) next() (token, bool) {
	if !c.more() {
		return token{}, false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

func (c *cursor) peek() (token, bool) {
	if !c.more() {
		return token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) missing(what string) *AssembleError {
	return tokError(c.end, "missing "+what)
}

func (a *assembler) line(line string, lineNo, base int) *AssembleError {
	toks, err := lexLine(line, lineNo, base)
	if err != nil || len(toks) == 0 {
		return err
	}

	var result *token
	if len(toks) >= 2 && toks[0].kind == tokID && toks[1].kind == tokEquals {
		result = &toks[0]
		toks = toks[2:]
		if len(toks) == 0 {
			return tokError(*result, "missing instruction after '='")
		}
	}
	opTok := toks[0]
	if opTok.kind != tokIdent {
		return tokError(opTok, fmt.Sprintf("expected instruction name, found %s", opTok))
	}
	op, ok := opByName[opTok.text]
	if !ok {
		return tokError(opTok, fmt.Sprintf("unknown instruction %q", opTok.text))
	}
	if result != nil && !op.hasResult() {
		return tokError(*result, fmt.Sprintf("%s does not produce a result", op.name))
	}
	if result == nil && op.hasResult() {
		return tokError(opTok, fmt.Sprintf("%s requires a result id", op.name))
	}

	last := toks[len(toks)-1]
	c := &cursor{toks: toks[1:], end: token{line: lineNo, col: last.col + len(last.text), offset: last.offset + len(last.text)}}
	b := spirv.NewInstructionBuilder()
	var words []uint32 // mirror of the builder contents for typed lookups
	add := func(w uint32) {
		b.AddWord(w)
		words = append(words, w)
	}

	for _, o := range op.operands {
		switch o.kind {
		case kResultType, kID:
			t, ok := c.next()
			if !ok {
				return c.missing("id operand")
			}
			if t.kind != tokID {
				return tokError(t, fmt.Sprintf("expected id, found %s", t))
			}
			add(a.id(t.text))
		case kResult:
			add(a.id(result.text))
		case kIDs:
			for c.more() {
				t, _ := c.next()
				if t.kind != tokID {
					return tokError(t, fmt.Sprintf("expected id, found %s", t))
				}
				add(a.id(t.text))
			}
		case kLiteral:
			t, ok := c.next()
			if !ok {
				return c.missing("literal")
			}
			v, err := parseInt(t)
			if err != nil {
				return err
			}
			add(v)
		case kLiterals:
			for c.more() {
				t, _ := c.next()
				v, err := parseInt(t)
				if err != nil {
					return err
				}
				add(v)
			}
		case kString:
			t, ok := c.next()
			if !ok {
				return c.missing("string")
			}
			if t.kind != tokString {
				return tokError(t, fmt.Sprintf("expected string, found %s", t))
			}
			sb := spirv.NewInstructionBuilder()
			sb.AddString(t.text)
			for _, w := range sb.Build(0).Words {
				add(w)
			}
		case kValue:
			t, ok := c.next()
			if !ok {
				return c.missing("constant value")
			}
			typ, ok := a.types[words[0]]
			if !ok {
				return tokError(t, "constant type is not a scalar int or float")
			}
			vs, err := parseValue(t, typ)
			if err != nil {
				return err
			}
			for _, w := range vs {
				add(w)
			}
		case kEnum, kOptEnum:
			t, ok := c.next()
			if !ok {
				if o.kind == kOptEnum {
					break
				}
				return c.missing(o.enum.name)
			}
			v, err := parseEnum(t, o.enum)
			if err != nil {
				return err
			}
			add(v)
		case kDecoration, kExecMode:
			t, ok := c.next()
			if !ok {
				return c.missing(o.enum.name)
			}
			v, err := parseEnum(t, o.enum)
			if err != nil {
				return err
			}
			add(v)
			if o.kind == kDecoration && v == uint32(spirv.DecorationBuiltIn) {
				t, ok := c.next()
				if !ok {
					return c.missing("builtin")
				}
				bv, err := parseEnum(t, builtinEnum)
				if err != nil {
					return err
				}
				add(bv)
			}
			for c.more() {
				t, _ := c.next()
				v, err := parseInt(t)
				if err != nil {
					return err
				}
				add(v)
			}
		case kExtInst:
			t, ok := c.next()
			if !ok {
				return c.missing("extended instruction")
			}
			set := extSets[a.sets[words[len(words)-1]]]
			if set == nil {
				v, err := parseInt(t)
				if err != nil {
					return tokError(t, "extended instruction set not imported by name")
				}
				add(v)
				break
			}
			v, err := parseEnum(t, set)
			if err != nil {
				return err
			}
			add(v)
		case kImageOps:
			t, ok := c.peek()
			if !ok {
				break
			}
			if t.kind == tokID {
				return tokError(t, "image operands must start with a mask")
			}
			c.next()
			v, err := parseEnum(t, imageOpsEnum)
			if err != nil {
				return err
			}
			add(v)
			for c.more() {
				t, _ := c.next()
				if t.kind != tokID {
					return tokError(t, fmt.Sprintf("expected id, found %s", t))
				}
				add(a.id(t.text))
			}
		case kMemAccess:
			t, ok := c.next()
			if !ok {
				break
			}
			v, err := parseEnum(t, memAccEnum)
			if err != nil {
				return err
			}
			add(v)
			if v&2 != 0 {
				t, ok := c.next()
				if !ok {
					return c.missing("alignment")
				}
				al, err := parseInt(t)
				if err != nil {
					return err
				}
				add(al)
			}
		case kSwitch:
			for c.more() {
				t, _ := c.next()
				v, err := parseInt(t)
				if err != nil {
					return err
				}
				lt, ok := c.next()
				if !ok {
					return c.missing("switch target")
				}
				if lt.kind != tokID {
					return tokError(lt, fmt.Sprintf("expected label id, found %s", lt))
				}
				add(v)
				add(a.id(lt.text))
			}
		}
	}
	if t, ok := c.next(); ok {
		return tokError(t, fmt.Sprintf("unexpected operand %s for %s", t, op.name))
	}

	a.record(op, words)
	a.module.Instructions = append(a.module.Instructions, b.Build(op.code))
	return nil
}

// record tracks the scalar types and extended instruction sets later
// instructions need to interpret their operands.
func (a *assembler) record(op *opInfo, words []uint32) {
	switch op.code {
	case spirv.OpTypeInt:
		a.types[words[0]] = scalarType{width: words[1], signed: words[2] != 0}
	case spirv.OpTypeFloat:
		a.types[words[0]] = scalarType{float: true, width: words[1]}
	case spirv.OpExtInstImport:
		a.sets[words[0]] = decodeString(words[1:])
	}
}

func parseInt(t token) (uint32, *AssembleError) {
	if t.kind != tokNumber {
		return 0, tokError(t, fmt.Sprintf("expected number, found %s", t))
	}
	if v, err := strconv.ParseUint(t.text, 0, 32); err == nil {
		return uint32(v), nil
	}
	v, err := strconv.ParseInt(t.text, 0, 32)
	if err != nil {
		return 0, tokError(t, fmt.Sprintf("invalid 32-bit integer %q", t.text))
	}
	return uint32(int32(v)), nil
}

func parseEnum(t token, e *enumTable) (uint32, *AssembleError) {
	if t.kind != tokIdent && t.kind != tokNumber {
		return 0, tokError(t, fmt.Sprintf("expected %s, found %s", e.name, t))
	}
	v, err := e.parse(t.text)
	if err != nil {
		return 0, tokError(t, err.Error())
	}
	return v, nil
}

// parseValue converts a constant literal to words for typ. A float
// constant written as plain hex ("0x7fc00000") gives the raw bits.
func parseValue(t token, typ scalarType) ([]uint32, *AssembleError) {
	if t.kind != tokNumber && !(typ.float && t.kind == tokIdent) {
		return nil, tokError(t, fmt.Sprintf("expected number, found %s", t))
	}
	s := t.text
	rawHex := strings.HasPrefix(s, "0x") && !strings.ContainsAny(s, "pP")
	switch {
	case typ.float && typ.width == 32 && !rawHex:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, tokError(t, fmt.Sprintf("invalid float %q", s))
		}
		return []uint32{math.Float32bits(float32(f))}, nil
	case typ.float && typ.width == 64 && !rawHex:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, tokError(t, fmt.Sprintf("invalid float %q", s))
		}
		bits := math.Float64bits(f)
		return []uint32{uint32(bits), uint32(bits >> 32)}, nil
	case typ.width == 64:
		if v, err := strconv.ParseUint(s, 0, 64); err == nil {
			return []uint32{uint32(v), uint32(v >> 32)}, nil
		}
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, tokError(t, fmt.Sprintf("invalid 64-bit integer %q", s))
		}
		return []uint32{uint32(v), uint32(uint64(v) >> 32)}, nil
	}
	v, err := parseInt(t)
	if err != nil {
		return nil, err
	}
	return []uint32{v}, nil
}

// decodeString reads a nul-terminated string packed into words.
func decodeString(words []uint32) string {
	var sb strings.Builder
	for _, w := range words {
		for i := 0; i < 4; i++ {
			c := byte(w >> (8 * i))
			if c == 0 {
				return sb.String()
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// stringWords is the number of words a packed string occupies.
func stringWords(words []uint32) int {
	for i, w := range words {
		if w>>24 == 0 || w&0xff == 0 || w&0xff00 == 0 || w&0xff0000 == 0 {
			return i + 1
		}
	}
	return len(words)
}
