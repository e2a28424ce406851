package gcn

import (
	"fmt"
	"math/bits"
)

// EndProgram is the s_endpgm instruction word.
const EndProgram uint32 = 0xBF810000

// DefaultMaxSteps bounds the decode loop when Options.MaxSteps is zero.
const DefaultMaxSteps = 1 << 16

// Options configures a decode pass.
type Options struct {
	Type     ShaderType
	NextGen  bool
	MaxSteps int // 0 = DefaultMaxSteps

	// Header identity, reported in decode errors when HasHeader is set.
	HasHeader bool
	Hash0     uint32
	Crc32     uint32
}

func (o Options) effectiveMaxSteps() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return DefaultMaxSteps
}

type decoder struct {
	words []uint32
	base  uint32
	opts  Options
	code  *Code

	idx   int // first word of the instruction being decoded
	fixed int // fixed word count of the current encoding
	extra int // literal words consumed so far

	family    Family
	hasFamily bool
	opcode    uint32
}

// Parse decodes a program starting at words[0]. Decoding stops at
// s_endpgm (or s_setpc_b64 for fetch programs) once no branch label points
// at or past the next instruction.
func Parse(words []uint32, opts Options) (*Code, error) {
	code := &Code{Type: opts.Type}
	d := &decoder{words: words, opts: opts, code: code}

	maxSteps := opts.effectiveMaxSteps()
	for steps := 0; ; steps++ {
		if steps >= maxSteps {
			return nil, d.fail(ErrTooManySteps, false)
		}
		if d.idx >= len(words) {
			return nil, d.fail(ErrTruncated, false)
		}
		in, err := d.next()
		if err != nil {
			return nil, err
		}
		code.Instructions = append(code.Instructions, in)
		d.idx += in.Words

		next := in.Next()
		if in.IsBranch() {
			target := int64(in.PC) + 4 + int64(in.SImm)*4
			if target < 0 {
				return nil, d.failAt(ErrMalformedLabel, in.PC)
			}
			code.Labels = append(code.Labels, Label{Target: uint32(target), Source: in.PC})
			if in.IsConditionalBranch() {
				code.IndirectLabels = append(code.IndirectLabels, Label{Target: next, Source: in.PC})
			}
		}
		switch in.Type {
		case SSwappcB64, SGetpcB64:
			code.IndirectLabels = append(code.IndirectLabels, Label{Target: next, Source: in.PC})
		}

		if d.terminates(&in) && !labelAtOrBeyond(code.Labels, next) {
			break
		}
	}

	for _, l := range code.Labels {
		if _, ok := code.InstructionAt(l.Target); !ok {
			return nil, d.failAt(ErrMalformedLabel, l.Source)
		}
	}
	return code, nil
}

// DecodeOne decodes the single instruction at words[0], reporting it at
// byte offset pc.
func DecodeOne(words []uint32, pc uint32, nextGen bool) (Instruction, error) {
	if len(words) == 0 {
		return Instruction{}, &DecodeError{Err: ErrTruncated, Offset: pc}
	}
	d := &decoder{words: words, base: pc, opts: Options{NextGen: nextGen}}
	return d.next()
}

func (d *decoder) terminates(in *Instruction) bool {
	if in.Type == SEndpgm {
		return true
	}
	return d.opts.Type == TypeFetch && in.Type == SSetpcB64
}

func labelAtOrBeyond(labels []Label, pc uint32) bool {
	for _, l := range labels {
		if l.Target >= pc {
			return true
		}
	}
	return false
}

func (d *decoder) pc() uint32 { return d.base + uint32(d.idx)*4 }

func (d *decoder) fail(err error, withFamily bool) *DecodeError {
	e := &DecodeError{
		Err:       err,
		Offset:    d.pc(),
		HasHeader: d.opts.HasHeader,
		Hash0:     d.opts.Hash0,
		Crc32:     d.opts.Crc32,
	}
	if d.idx < len(d.words) {
		e.Word = d.words[d.idx]
	}
	if withFamily && d.hasFamily {
		e.HasFamily, e.Family, e.Opcode = true, d.family, d.opcode
	}
	if d.code != nil {
		e.Dump = d.code.Dump(DumpOptions{})
	}
	return e
}

func (d *decoder) failAt(err error, pc uint32) *DecodeError {
	e := d.fail(err, false)
	e.Offset = pc
	if i := int(pc-d.base) / 4; i < len(d.words) {
		e.Word = d.words[i]
	}
	return e
}

// classify selects the encoding family and its fixed word count.
func (d *decoder) classify(w uint32) (Family, int, error) {
	next := d.opts.NextGen
	switch w >> 23 {
	case 0x17D:
		return FamilySOP1, 1, nil
	case 0x17E:
		return FamilySOPC, 1, nil
	case 0x17F:
		return FamilySOPP, 1, nil
	}
	if w>>28 == 0xB {
		return FamilySOPK, 1, nil
	}
	if w>>30 == 0x2 {
		return FamilySOP2, 1, nil
	}
	switch w >> 25 {
	case 0x3F:
		return FamilyVOP1, 1, nil
	case 0x3E:
		return FamilyVOPC, 1, nil
	}
	if w>>31 == 0 {
		return FamilyVOP2, 1, nil
	}
	if w>>27 == 0x18 {
		if next {
			return FamilySMRD, 1, ErrGenerationMismatch
		}
		return FamilySMRD, 1, nil
	}
	switch w >> 26 {
	case 0x32:
		return FamilyVINTRP, 1, nil
	case 0x34:
		if next {
			return FamilyVOP3, 2, ErrGenerationMismatch
		}
		return FamilyVOP3, 2, nil
	case 0x35:
		if !next {
			return FamilyVOP3, 2, ErrGenerationMismatch
		}
		return FamilyVOP3, 2, nil
	case 0x36:
		return FamilyDS, 2, nil
	case 0x38:
		return FamilyMUBUF, 2, nil
	case 0x3A:
		return FamilyMTBUF, 2, nil
	case 0x3C:
		return FamilyMIMG, 2, nil
	case 0x3D:
		if !next {
			return FamilySMEM, 2, ErrGenerationMismatch
		}
		return FamilySMEM, 2, nil
	case 0x3E:
		return FamilyEXP, 2, nil
	}
	return 0, 0, ErrUnknownEncoding
}

func (d *decoder) next() (Instruction, error) {
	w := d.words[d.idx]
	d.hasFamily = false
	fam, fixed, err := d.classify(w)
	if err == ErrGenerationMismatch {
		return Instruction{}, d.fail(fmt.Errorf("%w: %s encoding", err, fam), false)
	}
	if err != nil {
		return Instruction{}, d.fail(err, false)
	}
	if d.idx+fixed > len(d.words) {
		return Instruction{}, d.fail(ErrTruncated, false)
	}
	d.family, d.fixed, d.extra = fam, fixed, 0

	in := Instruction{PC: d.pc(), Family: fam}
	switch fam {
	case FamilySOP2:
		err = d.sop2(&in, w)
	case FamilySOPK:
		err = d.sopk(&in, w)
	case FamilySOP1:
		err = d.sop1(&in, w)
	case FamilySOPC:
		err = d.sopc(&in, w)
	case FamilySOPP:
		err = d.sopp(&in, w)
	case FamilySMRD:
		err = d.smrd(&in, w)
	case FamilySMEM:
		err = d.smem(&in, w, d.words[d.idx+1])
	case FamilyVOP2:
		err = d.vop2(&in, w)
	case FamilyVOP1:
		err = d.vop1(&in, w)
	case FamilyVOPC:
		err = d.vopc(&in, w)
	case FamilyVOP3:
		err = d.vop3(&in, w, d.words[d.idx+1])
	case FamilyVINTRP:
		err = d.vintrp(&in, w)
	case FamilyEXP:
		err = d.exp(&in, w, d.words[d.idx+1])
	case FamilyMUBUF:
		err = d.mubuf(&in, w, d.words[d.idx+1])
	case FamilyMTBUF:
		err = d.mtbuf(&in, w, d.words[d.idx+1])
	case FamilyMIMG:
		err = d.mimg(&in, w, d.words[d.idx+1])
	case FamilyDS:
		err = d.ds(&in, w, d.words[d.idx+1])
	}
	if err != nil {
		return Instruction{}, d.fail(err, true)
	}
	in.Words = d.fixed + d.extra
	return in, nil
}

// lookup resolves an opcode in a family table and records it for errors.
func (d *decoder) lookup(fam Family, op uint32) (entry, error) {
	d.hasFamily, d.family, d.opcode = true, fam, op
	e, ok, mismatch := familyTables[fam].lookup(op, d.opts.NextGen)
	switch {
	case ok:
		return e, nil
	case mismatch:
		return entry{}, ErrGenerationMismatch
	}
	return entry{}, ErrUnknownOpcode
}

// literal consumes the next unconsumed word of the stream.
func (d *decoder) literal() (uint32, error) {
	i := d.idx + d.fixed + d.extra
	if i >= len(d.words) {
		return 0, ErrTruncated
	}
	d.extra++
	return d.words[i], nil
}

// operand resolves an operand field. Register operands get the given span;
// a literal placeholder is replaced by the next stream word.
func (d *decoder) operand(code uint32, size uint8) (Operand, error) {
	op, err := DecodeOperand(uint16(code))
	if err != nil {
		return Operand{}, err
	}
	switch op.Kind {
	case OperandLiteralConstant:
		v, err := d.literal()
		if err != nil {
			return Operand{}, err
		}
		op.Constant.Bits = v
		op.Size = 0
	case OperandSgpr, OperandVgpr, OperandVccLo, OperandExecLo:
		if size > 0 {
			op.Size = int(size)
		}
	}
	return op, nil
}

func literalK(d *decoder) (Operand, error) {
	v, err := d.literal()
	if err != nil {
		return Operand{}, err
	}
	return Operand{Kind: OperandLiteralConstant, Constant: Constant{Bits: v}, Multiplier: 1}, nil
}

func vcc() Operand {
	return Operand{Kind: OperandVccLo, Size: 2, Multiplier: 1}
}

func (e entry) src1Size() uint8 {
	if e.src1 != 0 {
		return e.src1
	}
	return e.src
}

func (d *decoder) apply(in *Instruction, e entry) {
	in.Type, in.Format = e.typ, e.format
}

func (d *decoder) sop2(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySOP2, (w>>23)&0x7f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if in.Src[0], err = d.operand(w&0xff, e.src); err != nil {
		return err
	}
	if in.Src[1], err = d.operand((w>>8)&0xff, e.src1Size()); err != nil {
		return err
	}
	in.SrcNum = 2
	if e.format == FmtSdstSsrc0Ssrc1 {
		in.Dst, err = d.operand((w>>16)&0x7f, e.dst)
	}
	return err
}

func (d *decoder) sopk(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySOPK, (w>>23)&0x1f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.SImm = int16(w & 0xffff)
	switch e.format {
	case FmtSdstSimm16:
		in.Dst, err = d.operand((w>>16)&0x7f, e.dst)
	case FmtSimm16Literal:
		in.Src[0], err = literalK(d)
		in.SrcNum = 1
	}
	return err
}

func (d *decoder) sop1(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySOP1, (w>>8)&0xff)
	if err != nil {
		return err
	}
	d.apply(in, e)
	switch e.format {
	case FmtSdstSsrc0, FmtSdst:
		if in.Dst, err = d.operand((w>>16)&0x7f, e.dst); err != nil {
			return err
		}
	}
	switch e.format {
	case FmtSdstSsrc0, FmtSsrc0:
		in.Src[0], err = d.operand(w&0xff, e.src)
		in.SrcNum = 1
	}
	return err
}

func (d *decoder) sopc(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySOPC, (w>>16)&0x7f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if in.Src[0], err = d.operand(w&0xff, e.src); err != nil {
		return err
	}
	in.Src[1], err = d.operand((w>>8)&0xff, e.src1Size())
	in.SrcNum = 2
	return err
}

func (d *decoder) sopp(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySOPP, (w>>16)&0x7f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.SImm = int16(w & 0xffff)
	return nil
}

func (d *decoder) smrd(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilySMRD, (w>>22)&0x1f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	switch e.format {
	case FmtNone:
		return nil
	case FmtSmemSdst:
		in.Dst, err = d.operand((w>>15)&0x7f, e.dst)
		return err
	}
	if in.Dst, err = d.operand((w>>15)&0x7f, e.dst); err != nil {
		return err
	}
	in.Src[0] = Sgpr(int((w>>9)&0x3f)*2, int(e.src))
	in.SrcNum = 1
	offset := w & 0xff
	if (w>>8)&1 != 0 {
		in.Flags |= FlagImm
		in.Offset = offset
		return nil
	}
	in.Src[1], err = d.operand(offset, 1)
	in.SrcNum = 2
	return err
}

func (d *decoder) smem(in *Instruction, w0, w1 uint32) error {
	e, err := d.lookup(FamilySMEM, (w0>>18)&0xff)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if (w0>>14)&1 != 0 {
		in.Flags |= FlagDlc
	}
	if (w0>>16)&1 != 0 {
		in.Flags |= FlagGlc
	}
	switch e.format {
	case FmtNone:
		return nil
	case FmtSmemSdst:
		in.Dst, err = d.operand((w0>>6)&0x7f, e.dst)
		return err
	}
	if in.Dst, err = d.operand((w0>>6)&0x7f, e.dst); err != nil {
		return err
	}
	in.Src[0] = Sgpr(int(w0&0x3f)*2, int(e.src))
	in.SrcNum = 1
	in.Flags |= FlagImm
	in.Offset = (w1 & 0x1fffff) / 4
	if soff := (w1 >> 25) & 0x7f; soff != codeNull {
		in.Src[1], err = d.operand(soff, 1)
		in.SrcNum = 2
	}
	return err
}

// vdst builds the destination of a VALU op, which is an SGPR for the
// lane-read instructions.
func vdst(e entry, id uint32) Operand {
	if e.flags&flagDstScalar != 0 {
		return Sgpr(int(id), 1)
	}
	return Vgpr(int(id), int(e.dst))
}

func (d *decoder) vop2(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilyVOP2, (w>>25)&0x3f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.Dst = vdst(e, (w>>17)&0xff)
	if in.Src[0], err = d.operand(w&0x1ff, e.src); err != nil {
		return err
	}
	vsrc1 := Vgpr(int((w>>9)&0xff), int(e.src1Size()))
	switch {
	case e.flags&flagLiteralK != 0:
		k, err := literalK(d)
		if err != nil {
			return err
		}
		if e.typ == VMadmkF32 {
			in.Src[1], in.Src[2] = k, vsrc1
		} else {
			in.Src[1], in.Src[2] = vsrc1, k
		}
		in.SrcNum = 3
		return nil
	case e.typ == VReadlaneB32 || e.typ == VWritelaneB32:
		in.Src[1] = Sgpr(int((w>>9)&0xff), 1)
	default:
		in.Src[1] = vsrc1
	}
	in.SrcNum = 2
	if e.flags&flagVccIn != 0 {
		in.Src[2] = vcc()
		in.SrcNum = 3
	}
	if e.flags&flagVccOut != 0 {
		in.Dst2 = vcc()
	}
	return nil
}

func (d *decoder) vop1(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilyVOP1, (w>>9)&0xff)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if e.format == FmtNone {
		return nil
	}
	in.Dst = vdst(e, (w>>17)&0xff)
	in.Src[0], err = d.operand(w&0x1ff, e.src)
	in.SrcNum = 1
	return err
}

func (d *decoder) vopc(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilyVOPC, (w>>17)&0xff)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.Dst = vcc()
	if in.Src[0], err = d.operand(w&0x1ff, e.src); err != nil {
		return err
	}
	in.Src[1] = Vgpr(int((w>>9)&0xff), int(e.src1Size()))
	in.SrcNum = 2
	return nil
}

var outputModifiers = [4]float32{1, 2, 4, 0.5}

// vop3 decodes the 64-bit VALU encoding. Opcodes 0-255 are compares,
// 256-319 two-operand ops, 320-383 three-operand ops and 384-511 one-operand
// ops; the next generation widens the field to 10 bits for more
// three-operand ops.
func (d *decoder) vop3(in *Instruction, w0, w1 uint32) error {
	var op, clamp uint32
	if d.opts.NextGen {
		op, clamp = (w0>>16)&0x3ff, (w0>>15)&1
	} else {
		op, clamp = (w0>>17)&0x1ff, (w0>>11)&1
	}
	var (
		e   entry
		err error
		fam = FamilyVOP3
		raw = op
	)
	switch {
	case op < 256:
		fam = FamilyVOPC
	case op < 320:
		fam, raw = FamilyVOP2, op-256
	case op >= 384 && op < 512:
		fam, raw = FamilyVOP1, op-384
	}
	if e, err = d.lookup(fam, raw); err != nil {
		d.family, d.opcode = FamilyVOP3, op
		return err
	}
	d.family, d.opcode = FamilyVOP3, op
	if e.flags&flagLiteralK != 0 {
		return ErrUnknownOpcode
	}
	d.apply(in, e)
	in.Flags |= FlagVop3
	if e.format == FmtNone {
		return nil
	}

	vdstField := w0 & 0xff
	sdstField := (w0 >> 8) & 0x7f
	vop3b := e.flags&flagVccOut != 0 && fam != FamilyVOPC

	switch {
	case fam == FamilyVOPC:
		if in.Dst, err = d.operand(vdstField, 2); err != nil {
			return err
		}
	default:
		in.Dst = vdst(e, vdstField)
	}
	if vop3b {
		if in.Dst2, err = d.operand(sdstField, 2); err != nil {
			return err
		}
	}

	n := 2
	switch e.format {
	case FmtVdstSrc0:
		n = 1
	case FmtVdstSrc0Src1Src2, FmtVdstSdstSrc0Src1Src2:
		n = 3
	}
	sizes := [3]uint8{e.src, e.src1Size(), e.src}
	if e.flags&flagVccIn != 0 {
		sizes[2] = 2
	}
	fields := [3]uint32{w1 & 0x1ff, (w1 >> 9) & 0x1ff, (w1 >> 18) & 0x1ff}
	abs := (w0 >> 8) & 7
	neg := (w1 >> 29) & 7
	for i := 0; i < n; i++ {
		if in.Src[i], err = d.operand(fields[i], sizes[i]); err != nil {
			return err
		}
		if !vop3b && abs&(1<<i) != 0 {
			in.Src[i].Absolute = true
		}
		if neg&(1<<i) != 0 {
			in.Src[i].Negate = true
		}
	}
	in.SrcNum = n
	if !vop3b {
		in.Dst.Clamp = clamp != 0
	}
	in.Dst.Multiplier = outputModifiers[(w1>>27)&3]
	return nil
}

func (d *decoder) vintrp(in *Instruction, w uint32) error {
	e, err := d.lookup(FamilyVINTRP, (w>>16)&3)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.Dst = Vgpr(int((w>>18)&0xff), 1)
	in.Attr = uint8((w >> 10) & 0x3f)
	in.Chan = uint8((w >> 8) & 3)
	vsrc := w & 0xff
	if e.typ == VInterpMovF32 {
		in.Src[0] = Operand{Kind: OperandIntegerInlineConstant, Constant: Constant{Bits: vsrc}, Multiplier: 1}
	} else {
		in.Src[0] = Vgpr(int(vsrc), 1)
	}
	in.SrcNum = 1
	return nil
}

func validTarget(t uint32) bool {
	switch {
	case t <= TargetNull:
		return true
	case t >= TargetPos0 && t < TargetPos0+4:
		return true
	case t >= TargetParam0 && t <= maxTarget:
		return true
	}
	return false
}

func (d *decoder) exp(in *Instruction, w0, w1 uint32) error {
	e, err := d.lookup(FamilyEXP, 0)
	if err != nil {
		return err
	}
	d.apply(in, e)
	target := (w0 >> 4) & 0x3f
	if !validTarget(target) {
		d.opcode = target
		return ErrUnknownTarget
	}
	in.Target = uint8(target)
	in.Mask = uint8(w0 & 0xf)
	if (w0>>10)&1 != 0 {
		in.Flags |= FlagCompr
	}
	if (w0>>11)&1 != 0 {
		in.Flags |= FlagDone
	}
	if (w0>>12)&1 != 0 {
		in.Flags |= FlagVM
	}
	for i := 0; i < 4; i++ {
		in.Src[i] = Vgpr(int((w1>>(8*i))&0xff), 1)
	}
	in.SrcNum = 4
	return nil
}

// bufferCommon decodes the fields MUBUF and MTBUF share.
func (d *decoder) bufferCommon(in *Instruction, e entry, w0, w1 uint32) error {
	in.Offset = w0 & 0xfff
	if (w0>>12)&1 != 0 {
		in.Flags |= FlagOffen
	}
	if (w0>>13)&1 != 0 {
		in.Flags |= FlagIdxen
	}
	if (w0>>14)&1 != 0 {
		in.Flags |= FlagGlc
	}
	if (w0>>15)&1 != 0 {
		if d.opts.NextGen {
			in.Flags |= FlagDlc
		} else {
			in.Flags |= FlagAddr64
		}
	}
	if (w1>>22)&1 != 0 {
		in.Flags |= FlagSlc
	}
	if (w1>>23)&1 != 0 {
		in.Flags |= FlagTfe
	}
	if e.format == FmtNone {
		return nil
	}

	addrSize := 1
	if in.Flags.Has(FlagOffen) && in.Flags.Has(FlagIdxen) || in.Flags.Has(FlagAddr64) {
		addrSize = 2
	}
	vdata := int((w1 >> 8) & 0xff)
	in.Src[0] = Vgpr(int(w1&0xff), addrSize)
	in.Src[1] = Sgpr(int((w1>>16)&0x1f)*4, 4)
	soff, err := d.operand((w1>>24)&0xff, 1)
	if err != nil {
		return err
	}
	in.Src[2] = soff
	in.SrcNum = 3
	switch {
	case e.flags&flagStore != 0:
		in.Src[3] = Vgpr(vdata, int(e.src))
		in.SrcNum = 4
	case e.flags&flagAtomic != 0:
		in.Src[3] = Vgpr(vdata, int(e.src))
		in.SrcNum = 4
		if in.Flags.Has(FlagGlc) {
			in.Dst = Vgpr(vdata, int(e.dst))
		}
	default:
		in.Dst = Vgpr(vdata, int(e.dst))
	}
	return nil
}

func (d *decoder) mubuf(in *Instruction, w0, w1 uint32) error {
	e, err := d.lookup(FamilyMUBUF, (w0>>18)&0x7f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if (w0>>16)&1 != 0 {
		in.Flags |= FlagLds
	}
	return d.bufferCommon(in, e, w0, w1)
}

func (d *decoder) mtbuf(in *Instruction, w0, w1 uint32) error {
	op := (w0 >> 16) & 7
	if d.opts.NextGen {
		op |= ((w1 >> 21) & 1) << 3
	}
	e, err := d.lookup(FamilyMTBUF, op)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if d.opts.NextGen {
		in.Dfmt = uint8((w0 >> 19) & 0x7f)
	} else {
		in.Dfmt = uint8((w0 >> 19) & 0xf)
		in.Nfmt = uint8((w0 >> 23) & 7)
	}
	return d.bufferCommon(in, e, w0, w1)
}

func (d *decoder) mimg(in *Instruction, w0, w1 uint32) error {
	e, err := d.lookup(FamilyMIMG, (w0>>18)&0x7f)
	if err != nil {
		return err
	}
	d.apply(in, e)
	in.Mask = uint8((w0 >> 8) & 0xf)
	set := func(bit uint, f Flags) {
		if (w0>>bit)&1 != 0 {
			in.Flags |= f
		}
	}
	set(12, FlagUnorm)
	set(13, FlagGlc)
	set(15, FlagR128)
	set(16, FlagTfe)
	set(17, FlagLwe)
	set(25, FlagSlc)
	if d.opts.NextGen {
		if (w0>>1)&3 != 0 {
			return fmt.Errorf("%w: non-sequential image address", ErrUnknownEncoding)
		}
		set(7, FlagDlc)
	} else {
		set(14, FlagDa)
	}

	rsrc := 8
	if in.Flags.Has(FlagR128) && !d.opts.NextGen {
		rsrc = 4
	}
	components := bits.OnesCount8(in.Mask)
	if components == 0 || e.typ == ImageGather4 {
		components = 4
	}
	vdata := int((w1 >> 8) & 0xff)
	in.Src[0] = Vgpr(int(w1&0xff), int(e.src))
	in.Src[1] = Sgpr(int((w1>>16)&0x1f)*4, rsrc)
	in.SrcNum = 2
	if e.flags&flagSampler != 0 {
		in.Src[2] = Sgpr(int((w1>>21)&0x1f)*4, 4)
		in.SrcNum = 3
	}
	if e.flags&flagStore != 0 {
		in.Src[3] = Vgpr(vdata, components)
		in.SrcNum = 4
		return nil
	}
	in.Dst = Vgpr(vdata, components)
	return nil
}

func (d *decoder) ds(in *Instruction, w0, w1 uint32) error {
	e, err := d.lookup(FamilyDS, (w0>>18)&0xff)
	if err != nil {
		return err
	}
	d.apply(in, e)
	if (w0>>17)&1 != 0 {
		in.Flags |= FlagGds
	}
	off0, off1 := w0&0xff, (w0>>8)&0xff
	addr := Vgpr(int(w1&0xff), 1)
	data0 := Vgpr(int((w1>>8)&0xff), int(e.src))
	data1 := Vgpr(int((w1>>16)&0xff), int(e.src))
	dst := Vgpr(int((w1>>24)&0xff), int(e.dst))

	in.Offset = off0 | off1<<8
	switch e.format {
	case FmtDsAddrData:
		in.Src[0], in.Src[1], in.SrcNum = addr, data0, 2
	case FmtDsAddrData2:
		in.Src[0], in.Src[1], in.Src[2], in.SrcNum = addr, data0, data1, 3
		in.Offset, in.Offset1 = off0, off1
	case FmtDsVdstAddr:
		in.Dst, in.Src[0], in.SrcNum = dst, addr, 1
		if e.typ == DsRead2B32 {
			in.Offset, in.Offset1 = off0, off1
		}
	case FmtDsVdstAddrData:
		in.Dst, in.Src[0], in.Src[1], in.SrcNum = dst, addr, data0, 2
	case FmtDsVdst:
		in.Dst = dst
	}
	return nil
}
